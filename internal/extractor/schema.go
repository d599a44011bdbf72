package extractor

// requirementsSchema guards provider output before it is trusted. It checks
// shape, not content: post-validation fixes categories, styles, and screen
// inventories afterwards.
const requirementsSchema = `{
  "type": "object",
  "required": ["appType", "targetAudience"],
  "properties": {
    "appType": {"type": "string", "minLength": 1},
    "targetAudience": {"type": "string"},
    "primaryGoals": {
      "type": "array",
      "items": {"type": "string"}
    },
    "keyFeatures": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name"],
        "properties": {
          "name": {"type": "string"},
          "description": {"type": "string"},
          "priority": {"type": "string", "enum": ["high", "medium", "low"]}
        }
      }
    },
    "userFlows": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name"],
        "properties": {
          "name": {"type": "string"},
          "steps": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "screenTypes": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "name": {"type": "string"},
          "type": {"type": "string"},
          "components": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "designSystemStyle": {"type": "string"},
    "estimatedComplexity": {"type": "string"}
  }
}`
