package templates

import "appdesigner/internal/models"

// Spacing, radius, and shadow scales are shared across all styles; only
// colors and typography vary per style.
var sharedSpacing = models.SizeScale{XS: "4px", SM: "8px", MD: "16px", LG: "24px", XL: "32px", XXL: "48px"}

var sharedRadius = models.RadiusScale{SM: "4px", MD: "8px", LG: "12px", XL: "16px"}

var sharedShadows = models.ShadowScale{
	SM: "0 1px 3px rgba(0,0,0,0.1)",
	MD: "0 4px 6px rgba(0,0,0,0.1)",
	LG: "0 10px 15px rgba(0,0,0,0.1)",
}

var sharedSizes = models.SizeScale{XS: "12px", SM: "14px", MD: "16px", LG: "18px", XL: "24px", XXL: "32px"}

var sharedWeights = models.WeightScale{Light: 300, Regular: 400, Medium: 500, Bold: 700}

var stylePalettes = map[string]models.ColorPalette{
	models.StyleModern: {
		Primary: "#3B82F6", Secondary: "#8B5CF6", Accent: "#10B981",
		Background: "#FFFFFF", Surface: "#F9FAFB", Text: "#111827",
		Success: "#10B981", Warning: "#F59E0B", Error: "#EF4444",
	},
	models.StyleMinimal: {
		Primary: "#000000", Secondary: "#6B7280", Accent: "#F59E0B",
		Background: "#FFFFFF", Surface: "#F3F4F6", Text: "#374151",
		Success: "#10B981", Warning: "#F59E0B", Error: "#EF4444",
	},
	models.StylePlayful: {
		Primary: "#EC4899", Secondary: "#8B5CF6", Accent: "#F59E0B",
		Background: "#FFFBEB", Surface: "#FEF3C7", Text: "#92400E",
		Success: "#10B981", Warning: "#F59E0B", Error: "#EF4444",
	},
	models.StyleProfessional: {
		Primary: "#1E40AF", Secondary: "#374151", Accent: "#059669",
		Background: "#FFFFFF", Surface: "#F8FAFC", Text: "#1F2937",
		Success: "#10B981", Warning: "#F59E0B", Error: "#EF4444",
	},
}

var styleFonts = map[string]string{
	models.StyleModern:       "Inter, sans-serif",
	models.StyleMinimal:      "Helvetica Neue, sans-serif",
	models.StylePlayful:      "Poppins, sans-serif",
	models.StyleProfessional: "Source Sans Pro, sans-serif",
}

// BuildTokens resolves a style name into a complete token set. Unknown
// style names resolve to the modern tokens; every token key is always
// populated.
func BuildTokens(style string) models.DesignTokens {
	palette, ok := stylePalettes[style]
	if !ok {
		style = models.StyleModern
		palette = stylePalettes[models.StyleModern]
	}
	return models.DesignTokens{
		Colors: palette,
		Typography: models.Typography{
			FontFamily: styleFonts[style],
			Sizes:      sharedSizes,
			Weights:    sharedWeights,
		},
		Spacing:      sharedSpacing,
		BorderRadius: sharedRadius,
		Shadows:      sharedShadows,
	}
}
