package synthesizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appdesigner/internal/common/logger"
	"appdesigner/internal/models"
	"appdesigner/internal/preview"
	"appdesigner/internal/templates"
)

func newTestSynthesizer() *Synthesizer {
	return New(preview.NewRenderer(), logger.NewNoOpLogger())
}

func ecommerceRequirements(screens int) *models.Requirements {
	names := templates.DefaultScreenList(models.CategoryEcommerce, screens)
	types := make([]models.ScreenType, 0, screens)
	for _, n := range names {
		types = append(types, models.ScreenType{Name: n, Type: n, Components: []string{"Header", "Content", "Navigation"}})
	}
	return &models.Requirements{
		AppType:             models.CategoryEcommerce,
		TargetAudience:      templates.Audience(models.CategoryEcommerce),
		PrimaryGoals:        templates.Goals(models.CategoryEcommerce),
		KeyFeatures:         templates.Features(models.CategoryEcommerce),
		UserFlows:           templates.Flows(models.CategoryEcommerce),
		ScreenTypes:         types,
		DesignStyle:         models.StyleModern,
		EstimatedComplexity: models.ComplexityMedium,
	}
}

func TestSynthesizeStandardTierDocument(t *testing.T) {
	s := newTestSynthesizer()
	doc, err := s.Synthesize(ecommerceRequirements(35))
	require.NoError(t, err)

	assert.NotEmpty(t, doc.ID)
	assert.Len(t, doc.Screens, 35)
	// 14 generic kinds plus the category-specific additions.
	assert.GreaterOrEqual(t, len(doc.Components), 8)
	assert.Len(t, doc.Components, 19)
	assert.Equal(t, "#3B82F6", doc.DesignSystem.Colors.Primary)
	assert.NotEmpty(t, doc.UserFlows)
	assert.Contains(t, doc.Assets.Icons, "cart")
}

func TestSynthesizePreservesScreenOrder(t *testing.T) {
	s := newTestSynthesizer()
	req := ecommerceRequirements(10)
	doc, err := s.Synthesize(req)
	require.NoError(t, err)

	for i, st := range req.ScreenTypes {
		assert.Equal(t, st.Name, doc.Screens[i].Name)
	}
}

func TestSynthesizeScreenContents(t *testing.T) {
	s := newTestSynthesizer()
	doc, err := s.Synthesize(ecommerceRequirements(10))
	require.NoError(t, err)

	byType := map[string]models.Screen{}
	for _, sc := range doc.Screens {
		byType[sc.Type] = sc
	}

	home := byType["home"]
	assert.Equal(t, "header-hero-grid-footer", home.Layout.Archetype)
	assert.Equal(t, []string{"Header", "Hero", "FeatureGrid", "Testimonials", "Footer"}, home.Components)
	assert.Contains(t, home.Preview.Markup, "Summer Sale")
	assert.Equal(t, "home - Interactive e-commerce screen", home.Preview.Description)
	assert.Len(t, home.Preview.KeyFeatures, 4)

	// A screen outside the library gets the generic treatment.
	splash := byType["splash"]
	assert.Equal(t, "generic", splash.Layout.Archetype)
	assert.Equal(t, []string{"Header", "Content", "Footer"}, splash.Components)
	assert.Len(t, splash.Preview.KeyFeatures, 3)

	for _, sc := range doc.Screens {
		assert.NotEmpty(t, sc.ID)
		assert.Equal(t, []string{"tap", "swipe", "scroll"}, sc.Interactions.Gestures)
		assert.Equal(t, 1, sc.Responsive["mobile"].Columns)
		assert.Equal(t, 2, sc.Responsive["tablet"].Columns)
		assert.Equal(t, 3, sc.Responsive["desktop"].Columns)
	}
}

func TestSynthesizeComponentCatalog(t *testing.T) {
	s := newTestSynthesizer()
	doc, err := s.Synthesize(ecommerceRequirements(5))
	require.NoError(t, err)

	byName := map[string]models.Component{}
	for _, c := range doc.Components {
		byName[c.Name] = c
	}

	button := byName["Button"]
	assert.Equal(t, "button", button.Type)
	assert.Equal(t, []string{"primary", "secondary", "outline", "ghost", "link"}, button.Variants)

	badge := byName["Badge"]
	assert.Equal(t, []string{"default"}, badge.Variants)
	assert.Equal(t, []string{"children"}, badge.Props)

	assert.Contains(t, byName, "ProductCard")
	assert.NotNil(t, button.Styling.Base)
}

func TestSynthesizeFailsOnEmptyScreens(t *testing.T) {
	s := newTestSynthesizer()

	_, err := s.Synthesize(&models.Requirements{AppType: "social"})
	assert.ErrorIs(t, err, ErrSynthesisFailed)

	_, err = s.Synthesize(nil)
	assert.ErrorIs(t, err, ErrSynthesisFailed)
}

func TestSynthesizeFreshIDsPerCall(t *testing.T) {
	s := newTestSynthesizer()
	req := ecommerceRequirements(3)

	first, err := s.Synthesize(req)
	require.NoError(t, err)
	second, err := s.Synthesize(req)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.Screens[0].ID, second.Screens[0].ID)
}
