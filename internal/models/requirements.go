// internal/models/requirements.go
package models

// App categories in their canonical order. The order matters: keyword
// classification ties resolve to the earliest category, and the default
// category wins when nothing matches.
const (
	CategoryEcommerce    = "e-commerce"
	CategorySocial       = "social"
	CategoryProductivity = "productivity"
	CategoryFitness      = "fitness"
	CategoryEducation    = "education"
	CategoryFinance      = "finance"
	CategoryTravel       = "travel"
	CategoryFood         = "food"

	DefaultCategory = CategoryProductivity
)

// Design-system style names.
const (
	StyleModern       = "modern"
	StyleMinimal      = "minimal"
	StylePlayful      = "playful"
	StyleProfessional = "professional"
)

// Complexity estimates derived from the weighted screen/feature/flow score.
const (
	ComplexitySimple  = "simple"
	ComplexityMedium  = "medium"
	ComplexityComplex = "complex"
)

// Feature priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Preferences are the optional knobs accompanying a prompt.
type Preferences struct {
	Style      string `json:"style,omitempty"`
	Platform   string `json:"platform,omitempty"`
	Complexity string `json:"complexity,omitempty"`
}

type Feature struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

type UserFlow struct {
	Name  string   `json:"name"`
	Steps []string `json:"steps"`
}

type ScreenType struct {
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	Components []string `json:"components"`
}

// Requirements is the structured interpretation of a free-text app
// description. Every field is populated by the extractor regardless of
// which tier produced it; ScreenTypes is never empty after post-validation.
type Requirements struct {
	AppType             string       `json:"appType"`
	TargetAudience      string       `json:"targetAudience"`
	PrimaryGoals        []string     `json:"primaryGoals"`
	KeyFeatures         []Feature    `json:"keyFeatures"`
	UserFlows           []UserFlow   `json:"userFlows"`
	ScreenTypes         []ScreenType `json:"screenTypes"`
	DesignStyle         string       `json:"designSystemStyle"`
	EstimatedComplexity string       `json:"estimatedComplexity"`
}
