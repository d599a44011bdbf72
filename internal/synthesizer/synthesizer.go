// Package synthesizer expands a requirements object into a full design
// document: one screen record per requested screen type, the component
// catalog, design tokens, user flows, and assets.
package synthesizer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"appdesigner/internal/common/logger"
	"appdesigner/internal/common/metrics"
	"appdesigner/internal/models"
	"appdesigner/internal/preview"
	"appdesigner/internal/templates"
)

var ErrSynthesisFailed = errors.New("SYNTHESIS_FAILED")

type Synthesizer struct {
	renderer *preview.Renderer
	logger   logger.Logger
}

func New(renderer *preview.Renderer, log logger.Logger) *Synthesizer {
	return &Synthesizer{
		renderer: renderer,
		logger:   log,
	}
}

// Synthesize builds a complete document from requirements. Any failure
// aborts the whole call; no partial document is ever returned.
func (s *Synthesizer) Synthesize(req *models.Requirements) (*models.DesignDocument, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: nil requirements", ErrSynthesisFailed)
	}
	if len(req.ScreenTypes) == 0 {
		return nil, fmt.Errorf("%w: no screen types requested", ErrSynthesisFailed)
	}

	start := time.Now()
	tokens := templates.BuildTokens(req.DesignStyle)

	screens := make([]models.Screen, 0, len(req.ScreenTypes))
	for _, st := range req.ScreenTypes {
		screen, err := s.buildScreen(st, req.AppType, tokens)
		if err != nil {
			return nil, fmt.Errorf("%w: screen %q: %v", ErrSynthesisFailed, st.Name, err)
		}
		screens = append(screens, screen)
	}

	doc := &models.DesignDocument{
		ID:           uuid.NewString(),
		Requirements: *req,
		Screens:      screens,
		Components:   s.buildComponents(req.AppType),
		DesignSystem: tokens,
		UserFlows:    append([]models.UserFlow(nil), req.UserFlows...),
		Assets:       templates.Assets(req.AppType),
	}

	metrics.DesignsGenerated.WithLabelValues(req.AppType).Inc()
	metrics.SynthesisDuration.WithLabelValues(req.AppType).Observe(time.Since(start).Seconds())

	s.logger.Info("design synthesized", map[string]interface{}{
		"design_id":    doc.ID,
		"app_type":     req.AppType,
		"screen_count": len(doc.Screens),
		"duration_ms":  time.Since(start).Milliseconds(),
	})

	return doc, nil
}

func (s *Synthesizer) buildScreen(st models.ScreenType, category string, tokens models.DesignTokens) (models.Screen, error) {
	name := st.Name
	if name == "" {
		name = st.Type
	}
	screenType := st.Type
	if screenType == "" {
		screenType = st.Name
	}
	if screenType == "" {
		return models.Screen{}, errors.New("screen entry has neither name nor type")
	}

	tpl, ok := templates.LookupTemplate(category, screenType)
	if !ok {
		tpl = templates.GenericTemplate(screenType)
	}

	markup := s.renderer.Render(screenType, category, tokens)

	return models.Screen{
		ID:   uuid.NewString(),
		Name: name,
		Type: screenType,
		Layout: models.Layout{
			Archetype: tpl.Archetype,
			Sections:  tpl.Sections,
		},
		Elements:   tpl.Elements,
		Components: templates.ScreenComponents(screenType),
		Interactions: models.Interactions{
			Gestures:    []string{"tap", "swipe", "scroll"},
			Animations:  []string{"fade", "slide", "scale"},
			Transitions: []string{"page", "modal", "drawer"},
		},
		Responsive: map[string]models.Breakpoint{
			"mobile":  {Breakpoint: "0px", Columns: 1},
			"tablet":  {Breakpoint: "768px", Columns: 2},
			"desktop": {Breakpoint: "1024px", Columns: 3},
		},
		Preview: models.Preview{
			Markup:      markup,
			Description: fmt.Sprintf("%s - Interactive %s screen", name, category),
			KeyFeatures: templates.KeyFeatures(category, screenType),
		},
	}, nil
}

func (s *Synthesizer) buildComponents(category string) []models.Component {
	kinds := templates.ComponentCatalog(category)
	out := make([]models.Component, 0, len(kinds))
	for _, kind := range kinds {
		out = append(out, models.Component{
			ID:       uuid.NewString(),
			Name:     kind,
			Type:     strings.ToLower(kind),
			Variants: templates.ComponentVariants(kind),
			Props:    templates.ComponentProps(kind),
			Styling: models.Styling{
				Base:       map[string]interface{}{},
				Variants:   map[string]interface{}{},
				Responsive: map[string]interface{}{},
			},
		})
	}
	return out
}
