package extractor

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"appdesigner/internal/models"
)

const systemPrompt = `You are an expert UX/UI designer and product strategist.
Analyze user prompts and generate comprehensive design requirements for complete applications.

Return a JSON object with this exact structure:
{
  "appType": "e-commerce|social|productivity|fitness|education|finance|travel|food",
  "targetAudience": "detailed description of target users",
  "primaryGoals": ["goal1", "goal2", "goal3"],
  "keyFeatures": [
    {"name": "feature name", "description": "feature description", "priority": "high|medium|low"}
  ],
  "userFlows": [
    {"name": "flow name", "steps": ["step1", "step2"]}
  ],
  "screenTypes": [
    {"name": "screen name", "type": "screen type", "components": ["component1", "component2"]}
  ],
  "designSystemStyle": "modern|minimal|playful|professional",
  "estimatedComplexity": "simple|medium|complex"
}

Respond with the JSON object only. Be thorough and generate 20-100+ screens for comprehensive applications.`

func buildUserPrompt(prompt string, prefs models.Preferences) string {
	prefsJSON, _ := json.Marshal(prefs)
	return fmt.Sprintf(`User wants to build: %s

Additional preferences: %s

Generate complete design requirements including:
1. All necessary screens and user flows
2. Detailed feature specifications
3. Design system recommendations
4. User experience considerations

Consider scalability - this could be 100+ screens for complex applications.`, prompt, prefsJSON)
}

// decodeRequirements parses a provider response into requirements. Code
// fences are stripped first since models wrap JSON in them routinely; the
// payload is then schema-checked before unmarshalling.
func decodeRequirements(raw string) (*models.Requirements, error) {
	payload := stripCodeFences(raw)
	if payload == "" {
		return nil, fmt.Errorf("empty response body")
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(requirementsSchema),
		gojsonschema.NewStringLoader(payload),
	)
	if err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w", err)
	}
	if !result.Valid() {
		issues := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			issues = append(issues, e.String())
		}
		return nil, fmt.Errorf("response failed schema validation: %s", strings.Join(issues, "; "))
	}

	var req models.Requirements
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return nil, fmt.Errorf("unmarshal requirements: %w", err)
	}
	return &req, nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
	}
	return strings.TrimSpace(s)
}
