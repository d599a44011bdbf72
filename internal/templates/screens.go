package templates

import "appdesigner/internal/models"

// ScreenTemplate is one resolved entry of the screen library: a named layout
// archetype with section geometry in the 375x812 mobile viewport, plus the
// sample element content rendered into mockups.
type ScreenTemplate struct {
	Archetype string
	Sections  []models.Section
	Elements  map[string]interface{}
}

var screenLibrary = map[string]map[string]ScreenTemplate{
	models.CategoryEcommerce: {
		"home": {
			Archetype: "header-hero-grid-footer",
			Sections: []models.Section{
				{Name: "header", X: 0, Y: 0, Width: 375, Height: 60, Elements: []string{"logo", "search", "cart", "menu"}},
				{Name: "hero", X: 0, Y: 60, Width: 375, Height: 200, Elements: []string{"headline", "subtitle", "cta-button"}},
				{Name: "product-grid", X: 20, Y: 280, Width: 335, Height: 332, Elements: []string{"product-cards"}},
				{Name: "footer", X: 0, Y: 612, Width: 375, Height: 200, Elements: []string{"links", "social", "newsletter"}},
			},
			Elements: map[string]interface{}{
				"hero": map[string]interface{}{
					"title":    "Discover Amazing Products",
					"subtitle": "Shop the latest trends with free shipping",
					"cta":      "Shop Now",
				},
				"productGrid": map[string]interface{}{
					"columns": 3,
					"items": []map[string]interface{}{
						{"title": "Wireless Headphones", "price": "$99.99", "rating": 4.5},
						{"title": "Smart Watch", "price": "$199.99", "rating": 4.8},
						{"title": "Laptop Stand", "price": "$49.99", "rating": 4.2},
						{"title": "Phone Case", "price": "$24.99", "rating": 4.6},
						{"title": "Bluetooth Speaker", "price": "$79.99", "rating": 4.4},
						{"title": "Desk Lamp", "price": "$34.99", "rating": 4.3},
					},
				},
				"footer": map[string]interface{}{
					"links":  []string{"About", "Contact", "Privacy", "Terms"},
					"social": []string{"Facebook", "Twitter", "Instagram"},
				},
			},
		},
		"product-detail": {
			Archetype: "header-product-details-reviews",
			Sections: []models.Section{
				{Name: "header", X: 0, Y: 0, Width: 375, Height: 60, Elements: []string{"logo", "search", "cart"}},
				{Name: "product-images", X: 20, Y: 80, Width: 335, Height: 250, Elements: []string{"main-image", "thumbnails"}},
				{Name: "product-info", X: 20, Y: 350, Width: 335, Height: 90, Elements: []string{"title", "price", "rating"}},
				{Name: "actions", X: 20, Y: 450, Width: 335, Height: 50, Elements: []string{"add-to-cart", "add-to-wishlist"}},
				{Name: "reviews", X: 20, Y: 520, Width: 335, Height: 272, Elements: []string{"rating-summary", "recent-reviews"}},
			},
			Elements: map[string]interface{}{
				"productInfo": map[string]interface{}{
					"title":       "Premium Wireless Headphones",
					"price":       "$99.99",
					"rating":      4.5,
					"reviews":     1234,
					"description": "High-quality wireless headphones with noise cancellation and 30-hour battery life.",
					"features":    []string{"Noise Cancellation", "30h Battery", "Wireless Charging", "Premium Sound"},
				},
			},
		},
		"cart": {
			Archetype: "header-cart-summary",
			Sections: []models.Section{
				{Name: "header", X: 0, Y: 0, Width: 375, Height: 60, Elements: []string{"logo", "breadcrumb"}},
				{Name: "cart-items", X: 20, Y: 80, Width: 335, Height: 300, Elements: []string{"item-rows"}},
				{Name: "summary", X: 20, Y: 400, Width: 335, Height: 220, Elements: []string{"subtotal", "shipping", "tax", "total", "promo-code"}},
				{Name: "actions", X: 20, Y: 640, Width: 335, Height: 50, Elements: []string{"continue-shopping", "checkout"}},
			},
			Elements: map[string]interface{}{
				"cartItems": []map[string]interface{}{
					{"title": "Wireless Headphones", "price": "$99.99", "quantity": 1},
					{"title": "Smart Watch", "price": "$199.99", "quantity": 2},
				},
				"summary": map[string]interface{}{
					"subtotal": "$499.97",
					"shipping": "Free",
					"tax":      "$45.00",
					"total":    "$544.97",
				},
			},
		},
		"login": {
			Archetype: "centered-form",
			Sections: []models.Section{
				{Name: "header", X: 0, Y: 0, Width: 375, Height: 60, Elements: []string{"logo"}},
				{Name: "form", X: 40, Y: 200, Width: 295, Height: 360, Elements: []string{"email", "password", "remember-me", "submit", "social-login"}},
			},
			Elements: map[string]interface{}{
				"form": map[string]interface{}{
					"title":       "Welcome Back",
					"subtitle":    "Sign in to your account",
					"fields":      []string{"email", "password"},
					"socialLogin": []string{"Google", "Facebook"},
				},
			},
		},
	},
	models.CategorySocial: {
		"feed": {
			Archetype: "header-feed-navigation",
			Sections: []models.Section{
				{Name: "header", X: 0, Y: 0, Width: 375, Height: 60, Elements: []string{"logo", "search", "notifications", "profile"}},
				{Name: "feed", X: 20, Y: 70, Width: 335, Height: 662, Elements: []string{"post-cards"}},
				{Name: "navigation", X: 0, Y: 732, Width: 375, Height: 80, Elements: []string{"home", "explore", "create", "activity", "profile"}},
			},
			Elements: map[string]interface{}{
				"posts": []map[string]interface{}{
					{"user": "John Doe", "timestamp": "2 hours ago", "text": "Just captured this amazing sunset!", "likes": 234, "comments": 45},
					{"user": "Sarah Wilson", "timestamp": "4 hours ago", "text": "Working on a new photography project", "likes": 156, "comments": 23},
				},
			},
		},
	},
}

// LookupTemplate resolves a (category, screenType) pair against the library.
// The second return reports whether a specific template existed; callers
// that need totality use GenericTemplate on a miss.
func LookupTemplate(category, screenType string) (ScreenTemplate, bool) {
	byScreen, ok := screenLibrary[category]
	if !ok {
		return ScreenTemplate{}, false
	}
	tpl, ok := byScreen[screenType]
	return tpl, ok
}

// GenericTemplate is the fallback for every (category, screenType) pair the
// library does not cover: a header, one content block, and a footer.
func GenericTemplate(screenType string) ScreenTemplate {
	return ScreenTemplate{
		Archetype: "generic",
		Sections: []models.Section{
			{Name: "header", X: 0, Y: 0, Width: 375, Height: 60, Elements: []string{"title"}},
			{Name: "content", X: 20, Y: 80, Width: 335, Height: 652, Elements: []string{"content-block"}},
			{Name: "footer", X: 0, Y: 732, Width: 375, Height: 80, Elements: []string{"navigation"}},
		},
		Elements: map[string]interface{}{
			"content": map[string]interface{}{"title": screenType},
		},
	}
}
