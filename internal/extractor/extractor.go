package extractor

import (
	"context"

	"appdesigner/internal/common/logger"
	"appdesigner/internal/common/metrics"
	"appdesigner/internal/models"
	"appdesigner/internal/templates"
)

// Extractor runs the provider chain. Construction always appends the rules
// tier, so the chain has a floor that cannot fail.
type Extractor struct {
	providers []Provider
	logger    logger.Logger
}

func New(log logger.Logger, providers ...Provider) *Extractor {
	chain := append([]Provider(nil), providers...)
	chain = append(chain, NewRulesProvider())
	return &Extractor{
		providers: chain,
		logger:    log,
	}
}

// Extract tries each tier in order and post-validates whichever result won.
// It never returns an unusable requirements value.
func (e *Extractor) Extract(ctx context.Context, prompt string, prefs models.Preferences) *models.Requirements {
	for _, p := range e.providers {
		req, err := p.Extract(ctx, prompt, prefs)
		if err != nil {
			metrics.ProviderAttempts.WithLabelValues(p.Name(), "error").Inc()
			e.logger.Warn("extraction tier failed", map[string]interface{}{
				"provider": p.Name(),
				"error":    err.Error(),
			})
			continue
		}

		metrics.ProviderAttempts.WithLabelValues(p.Name(), "success").Inc()
		e.postValidate(req, prompt, prefs)
		return req
	}

	// Unreachable: the rules tier never errors. Kept as a hard floor.
	req, _ := NewRulesProvider().Extract(ctx, prompt, prefs)
	e.postValidate(req, prompt, prefs)
	return req
}

// postValidate normalizes a requirements value from any tier: category and
// style fall back to known values, empty screen inventories are backfilled
// from category defaults, and the complexity estimate is recomputed from the
// weighted formula.
func (e *Extractor) postValidate(req *models.Requirements, prompt string, prefs models.Preferences) {
	if !knownCategory(req.AppType) {
		req.AppType = DetectCategory(prompt)
	}
	if req.DesignStyle == "" {
		if prefs.Style != "" {
			req.DesignStyle = prefs.Style
		} else {
			req.DesignStyle = models.StyleModern
		}
	}
	if req.TargetAudience == "" {
		req.TargetAudience = templates.Audience(req.AppType)
	}
	if len(req.PrimaryGoals) == 0 {
		req.PrimaryGoals = templates.Goals(req.AppType)
	}

	if len(req.ScreenTypes) == 0 {
		names := templates.DefaultScreenList(req.AppType, templates.ScreenTier(prefs.Complexity))
		req.ScreenTypes = make([]models.ScreenType, 0, len(names))
		for _, name := range names {
			req.ScreenTypes = append(req.ScreenTypes, models.ScreenType{
				Name:       name,
				Type:       name,
				Components: []string{"Header", "Content", "Navigation"},
			})
		}
	}

	req.EstimatedComplexity = EstimateComplexity(len(req.ScreenTypes), len(req.KeyFeatures), len(req.UserFlows))
}

func knownCategory(category string) bool {
	for _, c := range templates.Categories() {
		if c == category {
			return true
		}
	}
	return false
}

// EstimateComplexity applies the weighted scoring formula. The thresholds
// are contractual; screen-count tier defaults depend on them.
func EstimateComplexity(screens, features, flows int) string {
	score := 2*float64(screens) + 3*float64(features) + 1.5*float64(flows)
	switch {
	case score < 50:
		return models.ComplexitySimple
	case score < 150:
		return models.ComplexityMedium
	default:
		return models.ComplexityComplex
	}
}
