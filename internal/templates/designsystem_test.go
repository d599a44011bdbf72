package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildTokensStyles(t *testing.T) {
	modern := BuildTokens("modern")
	assert.Equal(t, "#3B82F6", modern.Colors.Primary)
	assert.Equal(t, "Inter, sans-serif", modern.Typography.FontFamily)

	minimal := BuildTokens("minimal")
	assert.Equal(t, "#000000", minimal.Colors.Primary)
	assert.Equal(t, "Helvetica Neue, sans-serif", minimal.Typography.FontFamily)

	playful := BuildTokens("playful")
	assert.Equal(t, "#EC4899", playful.Colors.Primary)
	assert.Equal(t, "#FFFBEB", playful.Colors.Background)

	professional := BuildTokens("professional")
	assert.Equal(t, "#1E40AF", professional.Colors.Primary)
}

func TestBuildTokensUnknownFallsBackToModern(t *testing.T) {
	assert.Equal(t, BuildTokens("modern"), BuildTokens("brutalist"))
	assert.Equal(t, BuildTokens("modern"), BuildTokens(""))
}

func TestBuildTokensEveryKeyPopulated(t *testing.T) {
	for _, style := range []string{"modern", "minimal", "playful", "professional"} {
		tokens := BuildTokens(style)
		assert.NotEmpty(t, tokens.Colors.Primary)
		assert.NotEmpty(t, tokens.Colors.Success)
		assert.NotEmpty(t, tokens.Colors.Warning)
		assert.NotEmpty(t, tokens.Colors.Error)
		assert.NotEmpty(t, tokens.Typography.Sizes.XXL)
		assert.Equal(t, 700, tokens.Typography.Weights.Bold)
		assert.Equal(t, "48px", tokens.Spacing.XXL)
		assert.Equal(t, "16px", tokens.BorderRadius.XL)
		assert.NotEmpty(t, tokens.Shadows.LG)
	}
}
