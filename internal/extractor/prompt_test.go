package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validResponse = `{
  "appType": "e-commerce",
  "targetAudience": "shoppers",
  "primaryGoals": ["sell things"],
  "keyFeatures": [{"name": "Cart", "description": "holds items", "priority": "high"}],
  "userFlows": [{"name": "Purchase", "steps": ["browse", "buy"]}],
  "screenTypes": [{"name": "home", "type": "home", "components": ["Header"]}],
  "designSystemStyle": "modern",
  "estimatedComplexity": "simple"
}`

func TestDecodeRequirements(t *testing.T) {
	req, err := decodeRequirements(validResponse)
	require.NoError(t, err)

	assert.Equal(t, "e-commerce", req.AppType)
	assert.Equal(t, "modern", req.DesignStyle)
	assert.Len(t, req.ScreenTypes, 1)
	assert.Equal(t, "high", req.KeyFeatures[0].Priority)
}

func TestDecodeRequirementsStripsCodeFences(t *testing.T) {
	fenced := "```json\n" + validResponse + "\n```"
	req, err := decodeRequirements(fenced)
	require.NoError(t, err)
	assert.Equal(t, "e-commerce", req.AppType)

	bare := "```\n" + validResponse + "\n```"
	req, err = decodeRequirements(bare)
	require.NoError(t, err)
	assert.Equal(t, "e-commerce", req.AppType)
}

func TestDecodeRequirementsRejectsGarbage(t *testing.T) {
	_, err := decodeRequirements("")
	assert.Error(t, err)

	_, err = decodeRequirements("I would be happy to help you design an app!")
	assert.Error(t, err)

	// Valid JSON, wrong shape.
	_, err = decodeRequirements(`{"appType": 42}`)
	assert.Error(t, err)

	_, err = decodeRequirements(`{"targetAudience": "missing appType"}`)
	assert.Error(t, err)

	// Bad priority enum.
	_, err = decodeRequirements(`{"appType":"social","targetAudience":"x","keyFeatures":[{"name":"f","priority":"urgent"}]}`)
	assert.Error(t, err)
}
