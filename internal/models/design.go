// internal/models/design.go
package models

import (
	"encoding/json"
	"time"
)

// --- Design Tokens ---

type ColorPalette struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Surface    string `json:"surface"`
	Text       string `json:"text"`
	Success    string `json:"success"`
	Warning    string `json:"warning"`
	Error      string `json:"error"`
}

type SizeScale struct {
	XS  string `json:"xs"`
	SM  string `json:"sm"`
	MD  string `json:"md"`
	LG  string `json:"lg"`
	XL  string `json:"xl"`
	XXL string `json:"xxl"`
}

type WeightScale struct {
	Light   int `json:"light"`
	Regular int `json:"regular"`
	Medium  int `json:"medium"`
	Bold    int `json:"bold"`
}

type Typography struct {
	FontFamily string      `json:"fontFamily"`
	Sizes      SizeScale   `json:"sizes"`
	Weights    WeightScale `json:"weights"`
}

type RadiusScale struct {
	SM string `json:"sm"`
	MD string `json:"md"`
	LG string `json:"lg"`
	XL string `json:"xl"`
}

type ShadowScale struct {
	SM string `json:"sm"`
	MD string `json:"md"`
	LG string `json:"lg"`
}

// DesignTokens is the named constant set shared by a document. Struct-typed
// scales keep every token key present in the output; no lookup can yield a
// missing field.
type DesignTokens struct {
	Colors       ColorPalette `json:"colors"`
	Typography   Typography   `json:"typography"`
	Spacing      SizeScale    `json:"spacing"`
	BorderRadius RadiusScale  `json:"borderRadius"`
	Shadows      ShadowScale  `json:"shadows"`
}

// --- Screens ---

// Section is one named region of a screen layout with its geometry in
// logical units (375-wide mobile viewport).
type Section struct {
	Name     string   `json:"name"`
	X        int      `json:"x"`
	Y        int      `json:"y"`
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	Elements []string `json:"elements"`
}

type Layout struct {
	Archetype string    `json:"archetype"`
	Sections  []Section `json:"sections"`
}

type Breakpoint struct {
	Breakpoint string `json:"breakpoint"`
	Columns    int    `json:"columns"`
}

// Interactions are static descriptive affordance lists, not live bindings.
type Interactions struct {
	Gestures    []string `json:"gestures"`
	Animations  []string `json:"animations"`
	Transitions []string `json:"transitions"`
}

type Preview struct {
	Markup      string   `json:"markup"`
	Description string   `json:"description"`
	KeyFeatures []string `json:"keyFeatures"`
}

type Screen struct {
	ID           string                 `json:"id"`
	Name         string                 `json:"name"`
	Type         string                 `json:"type"`
	Layout       Layout                 `json:"layout"`
	Elements     map[string]interface{} `json:"elements"`
	Components   []string               `json:"components"`
	Interactions Interactions           `json:"interactions"`
	Responsive   map[string]Breakpoint  `json:"responsive"`
	Preview      Preview                `json:"preview"`
}

// --- Components ---

// Styling holds placeholder slots for later styling systems; the default
// generator leaves them empty.
type Styling struct {
	Base       map[string]interface{} `json:"base"`
	Variants   map[string]interface{} `json:"variants"`
	Responsive map[string]interface{} `json:"responsive"`
}

type Component struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Variants []string `json:"variants"`
	Props    []string `json:"props"`
	Styling  Styling  `json:"styling"`
}

type AssetSet struct {
	Icons         []string `json:"icons"`
	Images        []string `json:"images"`
	Illustrations []string `json:"illustrations"`
}

// --- Document ---

// DesignDocument is the complete synthesized artifact. It exclusively owns
// its screens/components/tokens; consumers mutate it only through the store,
// which refreshes UpdatedAt. ID and CreatedAt never change after creation.
type DesignDocument struct {
	ID           string       `json:"id"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
	Requirements Requirements `json:"requirements"`
	Screens      []Screen     `json:"screens"`
	Components   []Component  `json:"components"`
	DesignSystem DesignTokens `json:"designSystem"`
	UserFlows    []UserFlow   `json:"userFlows"`
	Assets       AssetSet     `json:"assets"`
}

// Clone returns a deep copy of the document so store consumers never alias
// the stored substructures.
func (d *DesignDocument) Clone() *DesignDocument {
	if d == nil {
		return nil
	}
	raw, err := json.Marshal(d)
	if err != nil {
		// The document is plain data; marshal cannot fail in practice.
		copied := *d
		return &copied
	}
	var out DesignDocument
	if err := json.Unmarshal(raw, &out); err != nil {
		copied := *d
		return &copied
	}
	// Timestamps survive the JSON round trip, but re-set them to preserve
	// monotonic clock readings for comparisons.
	out.CreatedAt = d.CreatedAt
	out.UpdatedAt = d.UpdatedAt
	return &out
}
