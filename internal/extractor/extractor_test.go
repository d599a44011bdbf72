package extractor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appdesigner/internal/common/logger"
	"appdesigner/internal/models"
)

type stubProvider struct {
	name string
	req  *models.Requirements
	err  error
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Extract(context.Context, string, models.Preferences) (*models.Requirements, error) {
	return s.req, s.err
}

func TestEstimateComplexity(t *testing.T) {
	// 2*20 + 3*10 + 1.5*5 = 77.5
	assert.Equal(t, "medium", EstimateComplexity(20, 10, 5))
	// 2*5 + 3*2 + 1.5*1 = 17.5
	assert.Equal(t, "simple", EstimateComplexity(5, 2, 1))
	// 2*80 + 3*30 + 1.5*10 = 295
	assert.Equal(t, "complex", EstimateComplexity(80, 30, 10))

	assert.Equal(t, "simple", EstimateComplexity(0, 0, 0))
	assert.Equal(t, "medium", EstimateComplexity(25, 0, 0))
	assert.Equal(t, "complex", EstimateComplexity(75, 0, 0))
}

func TestDetectCategory(t *testing.T) {
	assert.Equal(t, "e-commerce", DetectCategory("An online shop with a cart and payment flow"))
	assert.Equal(t, "social", DetectCategory("Share posts and chat with friends"))
	assert.Equal(t, "fitness", DetectCategory("Track workouts at the gym"))

	// Nothing matches: the default category wins.
	assert.Equal(t, "productivity", DetectCategory("lorem ipsum dolor"))

	// Equal scores keep the earlier category in canonical order.
	// "store" is e-commerce, "chat" is social; one keyword each.
	assert.Equal(t, "e-commerce", DetectCategory("a store with chat"))
}

func TestRulesProviderStandardTier(t *testing.T) {
	p := NewRulesProvider()

	req, err := p.Extract(context.Background(), "A modern e-commerce app for selling books", models.Preferences{Complexity: "standard"})
	require.NoError(t, err)

	assert.Equal(t, "e-commerce", req.AppType)
	assert.Len(t, req.ScreenTypes, 35)
	assert.Equal(t, "splash", req.ScreenTypes[0].Name)
	assert.Equal(t, "screen-35", req.ScreenTypes[34].Name)
	assert.Equal(t, "modern", req.DesignStyle)
	assert.NotEmpty(t, req.KeyFeatures)
	assert.NotEmpty(t, req.UserFlows)
}

func TestExtractNeverFails(t *testing.T) {
	e := New(logger.NewNoOpLogger(),
		&stubProvider{name: "primary", err: errors.New("quota exceeded")},
		&stubProvider{name: "secondary", err: errors.New("timeout")},
	)

	req := e.Extract(context.Background(), "a budget and investment wallet", models.Preferences{})
	require.NotNil(t, req)
	assert.Equal(t, "finance", req.AppType)
	assert.NotEmpty(t, req.ScreenTypes)
	assert.Contains(t, []string{"simple", "medium", "complex"}, req.EstimatedComplexity)
}

func TestExtractFirstSuccessWins(t *testing.T) {
	won := &models.Requirements{
		AppType:        "social",
		TargetAudience: "testers",
		ScreenTypes: []models.ScreenType{
			{Name: "feed", Type: "feed"},
		},
	}
	e := New(logger.NewNoOpLogger(),
		&stubProvider{name: "primary", req: won},
		&stubProvider{name: "secondary", err: errors.New("must not be reached")},
	)

	req := e.Extract(context.Background(), "anything", models.Preferences{})
	assert.Equal(t, "social", req.AppType)
	assert.Len(t, req.ScreenTypes, 1)
}

func TestPostValidateBackfills(t *testing.T) {
	e := New(logger.NewNoOpLogger(), &stubProvider{
		name: "primary",
		req:  &models.Requirements{AppType: "spaceships"},
	})

	req := e.Extract(context.Background(), "a shop for model spaceships", models.Preferences{Complexity: "basic", Style: "minimal"})

	// Unknown category reclassified from the prompt; empty fields filled in.
	assert.Equal(t, "e-commerce", req.AppType)
	assert.Equal(t, "minimal", req.DesignStyle)
	assert.Len(t, req.ScreenTypes, 15)
	assert.NotEmpty(t, req.TargetAudience)
	assert.NotEmpty(t, req.PrimaryGoals)
	// 15 screens, no features, no flows: 30 -> simple.
	assert.Equal(t, "simple", req.EstimatedComplexity)
}

func TestPostValidateRecomputesComplexity(t *testing.T) {
	provided := &models.Requirements{
		AppType:             "social",
		EstimatedComplexity: "complex",
		ScreenTypes: []models.ScreenType{
			{Name: "feed", Type: "feed"},
			{Name: "profile", Type: "profile"},
		},
	}
	e := New(logger.NewNoOpLogger(), &stubProvider{name: "primary", req: provided})

	req := e.Extract(context.Background(), "social", models.Preferences{})
	// 2 screens -> score 4 -> simple, regardless of the provider's claim.
	assert.Equal(t, "simple", req.EstimatedComplexity)
}
