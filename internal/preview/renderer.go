// Package preview produces lightweight vector mockups for screens: a fixed
// 375x812 SVG scene built from rectangles and text, specialized per app
// category where a template exists and generic otherwise.
package preview

import (
	"fmt"
	"strings"

	"appdesigner/internal/models"
)

const (
	canvasWidth  = 375
	canvasHeight = 812
)

// Renderer renders screen previews. It is stateless; Render is a pure
// function of its inputs and the same inputs produce byte-identical markup.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render returns the SVG markup for one screen. Missing token colors are
// defaulted before substitution, so this never fails.
func (r *Renderer) Render(screenType, category string, tokens models.DesignTokens) string {
	colors := withDefaults(tokens.Colors)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg" style="background: %s">`,
		canvasWidth, canvasHeight, colors.Background)

	switch category {
	case models.CategoryEcommerce:
		b.WriteString(r.ecommerceScene(screenType, colors))
	case models.CategorySocial:
		b.WriteString(r.socialScene(screenType, colors))
	default:
		b.WriteString(r.genericScene(screenType, colors))
	}

	b.WriteString("</svg>")
	return b.String()
}

func withDefaults(c models.ColorPalette) models.ColorPalette {
	if c.Primary == "" {
		c.Primary = "#3B82F6"
	}
	if c.Secondary == "" {
		c.Secondary = "#8B5CF6"
	}
	if c.Background == "" {
		c.Background = "#FFFFFF"
	}
	if c.Surface == "" {
		c.Surface = "#F9FAFB"
	}
	if c.Text == "" {
		c.Text = "#111827"
	}
	return c
}

func (r *Renderer) ecommerceScene(screenType string, colors models.ColorPalette) string {
	switch screenType {
	case "home":
		var b strings.Builder
		b.WriteString(headerBar("ShopApp", colors))
		fmt.Fprintf(&b, `<rect x="280" y="15" width="80" height="30" rx="15" fill="%s"/>`, colors.Primary)
		fmt.Fprintf(&b, `<text x="310" y="33" font-family="Arial" font-size="12" fill="white">Cart (2)</text>`)

		// Hero block with a gradient from primary to secondary.
		fmt.Fprintf(&b, `<rect x="0" y="60" width="%d" height="200" fill="url(#heroGradient)"/>`, canvasWidth)
		fmt.Fprintf(&b, `<defs><linearGradient id="heroGradient" x1="0%%" y1="0%%" x2="100%%" y2="100%%">`+
			`<stop offset="0%%" style="stop-color:%s;stop-opacity:1"/>`+
			`<stop offset="100%%" style="stop-color:%s;stop-opacity:1"/>`+
			`</linearGradient></defs>`, colors.Primary, colors.Secondary)
		fmt.Fprintf(&b, `<text x="20" y="140" font-family="Arial" font-size="24" font-weight="bold" fill="white">Summer Sale</text>`)
		fmt.Fprintf(&b, `<text x="20" y="165" font-family="Arial" font-size="14" fill="white">Up to 50%% off on selected items</text>`)
		fmt.Fprintf(&b, `<rect x="20" y="180" width="100" height="35" rx="18" fill="white"/>`)
		fmt.Fprintf(&b, `<text x="55" y="200" font-family="Arial" font-size="12" font-weight="bold" fill="%s">Shop Now</text>`, colors.Primary)

		fmt.Fprintf(&b, `<g transform="translate(20, 280)">%s</g>`, productCards(colors, 3))
		return b.String()

	case "product-detail":
		var b strings.Builder
		b.WriteString(headerBar("Product Details", colors))
		fmt.Fprintf(&b, `<rect x="20" y="80" width="%d" height="250" rx="8" fill="#f3f4f6" stroke="#e5e7eb"/>`, canvasWidth-40)
		fmt.Fprintf(&b, `<text x="%d" y="210" text-anchor="middle" font-family="Arial" font-size="14" fill="#6b7280">Product Image</text>`, canvasWidth/2)
		fmt.Fprintf(&b, `<text x="20" y="360" font-family="Arial" font-size="20" font-weight="bold" fill="%s">Wireless Headphones</text>`, colors.Text)
		fmt.Fprintf(&b, `<text x="20" y="385" font-family="Arial" font-size="18" font-weight="bold" fill="%s">$99.99</text>`, colors.Primary)
		fmt.Fprintf(&b, `<text x="20" y="410" font-family="Arial" font-size="14" fill="#6b7280">★★★★☆ (4.5) • 1,234 reviews</text>`)
		fmt.Fprintf(&b, `<rect x="20" y="450" width="%d" height="50" rx="25" fill="%s"/>`, canvasWidth-40, colors.Primary)
		fmt.Fprintf(&b, `<text x="%d" y="480" text-anchor="middle" font-family="Arial" font-size="16" font-weight="bold" fill="white">Add to Cart</text>`, canvasWidth/2)
		return b.String()

	default:
		return r.genericScene(screenType, colors)
	}
}

func (r *Renderer) socialScene(screenType string, colors models.ColorPalette) string {
	switch screenType {
	case "feed":
		var b strings.Builder
		b.WriteString(headerBar("Social Feed", colors))
		fmt.Fprintf(&b, `<g transform="translate(0, 70)">%s</g>`, socialPosts(colors))
		return b.String()
	default:
		return r.genericScene(screenType, colors)
	}
}

func (r *Renderer) genericScene(screenType string, colors models.ColorPalette) string {
	var b strings.Builder
	b.WriteString(headerBar(screenType, colors))
	fmt.Fprintf(&b, `<rect x="20" y="80" width="%d" height="200" rx="8" fill="%s" stroke="#e5e7eb"/>`, canvasWidth-40, colors.Surface)
	fmt.Fprintf(&b, `<text x="%d" y="190" text-anchor="middle" font-family="Arial" font-size="14" fill="#6b7280">%s Content</text>`, canvasWidth/2, screenType)
	return b.String()
}

func headerBar(title string, colors models.ColorPalette) string {
	return fmt.Sprintf(`<rect x="0" y="0" width="%d" height="60" fill="%s" stroke="#e5e7eb"/>`+
		`<text x="20" y="35" font-family="Arial" font-size="16" font-weight="bold" fill="%s">%s</text>`,
		canvasWidth, colors.Surface, colors.Text, title)
}

func productCards(colors models.ColorPalette, count int) string {
	const (
		cardWidth  = 100
		cardHeight = 140
		gap        = 15
	)

	var b strings.Builder
	for i := 0; i < count; i++ {
		x := i * (cardWidth + gap)
		fmt.Fprintf(&b, `<g transform="translate(%d, 0)">`, x)
		fmt.Fprintf(&b, `<rect width="%d" height="%d" rx="8" fill="%s" stroke="#e5e7eb"/>`, cardWidth, cardHeight, colors.Surface)
		fmt.Fprintf(&b, `<rect x="10" y="10" width="80" height="60" rx="4" fill="#f3f4f6"/>`)
		fmt.Fprintf(&b, `<text x="50" y="45" text-anchor="middle" font-family="Arial" font-size="10" fill="#6b7280">Product</text>`)
		fmt.Fprintf(&b, `<text x="10" y="90" font-family="Arial" font-size="12" font-weight="bold" fill="%s">Item %d</text>`, colors.Text, i+1)
		fmt.Fprintf(&b, `<text x="10" y="110" font-family="Arial" font-size="12" font-weight="bold" fill="%s">$%d.99</text>`, colors.Primary, (i+1)*25)
		fmt.Fprintf(&b, `<text x="10" y="125" font-family="Arial" font-size="10" fill="#6b7280">★★★★☆</text>`)
		b.WriteString("</g>")
	}
	return b.String()
}

type samplePost struct {
	user     string
	when     string
	text     string
	activity string
}

func socialPosts(colors models.ColorPalette) string {
	posts := []samplePost{
		{"John Doe", "2 hours ago", "Just captured this amazing sunset!", "234 likes • 45 comments"},
		{"Sarah Wilson", "4 hours ago", "Working on a new photography project", "156 likes • 23 comments"},
	}

	var b strings.Builder
	for i, p := range posts {
		y := i * 140
		fmt.Fprintf(&b, `<rect x="20" y="%d" width="%d" height="120" rx="8" fill="%s" stroke="#e5e7eb"/>`, y, canvasWidth-40, colors.Surface)
		fmt.Fprintf(&b, `<circle cx="40" cy="%d" r="15" fill="#f3f4f6"/>`, y+25)
		fmt.Fprintf(&b, `<text x="65" y="%d" font-family="Arial" font-size="14" font-weight="bold" fill="%s">%s</text>`, y+25, colors.Text, p.user)
		fmt.Fprintf(&b, `<text x="65" y="%d" font-family="Arial" font-size="12" fill="#6b7280">%s</text>`, y+40, p.when)
		fmt.Fprintf(&b, `<text x="25" y="%d" font-family="Arial" font-size="14" fill="%s">%s</text>`, y+65, colors.Text, p.text)
		fmt.Fprintf(&b, `<text x="25" y="%d" font-family="Arial" font-size="12" fill="#6b7280">%s</text>`, y+95, p.activity)
	}
	return b.String()
}
