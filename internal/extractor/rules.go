package extractor

import (
	"context"
	"strings"

	"appdesigner/internal/models"
	"appdesigner/internal/templates"
)

// RulesProvider is the deterministic final tier. It classifies the prompt by
// keyword score and assembles requirements entirely from the template
// library; it cannot fail.
type RulesProvider struct{}

func NewRulesProvider() *RulesProvider {
	return &RulesProvider{}
}

func (p *RulesProvider) Name() string {
	return "rules"
}

// DetectCategory scores every category's keyword set against the lowercased
// prompt. A strictly greater score wins; ties keep the earlier category, and
// a zero score everywhere keeps the default.
func DetectCategory(prompt string) string {
	lower := strings.ToLower(prompt)

	best := models.DefaultCategory
	bestScore := 0
	for _, category := range templates.Categories() {
		score := 0
		for _, word := range templates.Keywords(category) {
			if strings.Contains(lower, word) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = category
		}
	}
	return best
}

func (p *RulesProvider) Extract(_ context.Context, prompt string, prefs models.Preferences) (*models.Requirements, error) {
	category := DetectCategory(prompt)

	style := prefs.Style
	if style == "" {
		style = models.StyleModern
	}

	screenCount := templates.ScreenTier(prefs.Complexity)
	names := templates.DefaultScreenList(category, screenCount)
	screenTypes := make([]models.ScreenType, 0, len(names))
	for _, name := range names {
		screenTypes = append(screenTypes, models.ScreenType{
			Name:       name,
			Type:       name,
			Components: []string{"Header", "Content", "Navigation"},
		})
	}

	return &models.Requirements{
		AppType:        category,
		TargetAudience: templates.Audience(category),
		PrimaryGoals:   templates.Goals(category),
		KeyFeatures:    templates.Features(category),
		UserFlows:      templates.Flows(category),
		ScreenTypes:    screenTypes,
		DesignStyle:    style,
	}, nil
}
