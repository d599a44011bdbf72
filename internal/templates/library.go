// Package templates is the static content library behind design synthesis:
// per-category screen inventories, fallback requirements content, the
// component catalog, and the design-token styles. Every lookup in this
// package is total; unknown keys resolve to a documented generic default.
package templates

import (
	"fmt"

	"appdesigner/internal/models"
)

// Categories returns the app categories in canonical order. The order is
// part of the contract: keyword-classification ties resolve to the earliest
// category that reached the winning score.
func Categories() []string {
	return []string{
		models.CategoryEcommerce,
		models.CategorySocial,
		models.CategoryProductivity,
		models.CategoryFitness,
		models.CategoryEducation,
		models.CategoryFinance,
		models.CategoryTravel,
		models.CategoryFood,
	}
}

var categoryKeywords = map[string][]string{
	models.CategoryEcommerce:    {"shop", "buy", "sell", "product", "cart", "payment", "store", "marketplace", "retail"},
	models.CategorySocial:       {"social", "friend", "post", "share", "follow", "chat", "message", "community", "network"},
	models.CategoryProductivity: {"task", "project", "team", "work", "manage", "organize", "collaborate", "office"},
	models.CategoryFitness:      {"fitness", "workout", "exercise", "health", "gym", "training", "nutrition", "wellness"},
	models.CategoryEducation:    {"learn", "course", "study", "education", "school", "student", "teacher", "training"},
	models.CategoryFinance:      {"money", "bank", "payment", "finance", "budget", "investment", "wallet", "crypto"},
	models.CategoryTravel:       {"travel", "trip", "hotel", "flight", "booking", "vacation", "tourism", "destination"},
	models.CategoryFood:         {"food", "restaurant", "recipe", "cooking", "delivery", "dining", "meal", "cuisine"},
}

// Keywords returns the classification keyword set for a category. Unknown
// categories have no keywords and therefore never score.
func Keywords(category string) []string {
	return categoryKeywords[category]
}

var categoryAudiences = map[string]string{
	models.CategoryEcommerce:    "Online shoppers aged 18-45 looking for convenient shopping experiences",
	models.CategorySocial:       "Social media users aged 16-35 seeking connection and content sharing",
	models.CategoryProductivity: "Professionals and teams needing efficient workflow management",
	models.CategoryFitness:      "Health-conscious individuals aged 20-50 pursuing fitness goals",
	models.CategoryEducation:    "Students and lifelong learners seeking knowledge and skills",
	models.CategoryFinance:      "Adults managing personal finances and investments",
	models.CategoryTravel:       "Travelers planning and booking trips and experiences",
	models.CategoryFood:         "Food enthusiasts and people seeking dining experiences",
}

func Audience(category string) string {
	if a, ok := categoryAudiences[category]; ok {
		return a
	}
	return "General users seeking efficient solutions"
}

var categoryGoals = map[string][]string{
	models.CategoryEcommerce:    {"Increase sales conversion", "Improve user experience", "Build customer loyalty"},
	models.CategorySocial:       {"Foster community engagement", "Enable content sharing", "Connect users"},
	models.CategoryProductivity: {"Enhance team collaboration", "Streamline workflows", "Increase efficiency"},
	models.CategoryFitness:      {"Motivate healthy habits", "Track progress", "Build fitness community"},
	models.CategoryEducation:    {"Facilitate learning", "Track progress", "Engage students"},
	models.CategoryFinance:      {"Simplify money management", "Provide insights", "Ensure security"},
	models.CategoryTravel:       {"Simplify trip planning", "Enhance travel experience", "Save money"},
	models.CategoryFood:         {"Discover great food", "Simplify ordering", "Share experiences"},
}

func Goals(category string) []string {
	if g, ok := categoryGoals[category]; ok {
		return append([]string(nil), g...)
	}
	return []string{"Solve user problems", "Provide value", "Ensure usability"}
}

var categoryFeatures = map[string][]models.Feature{
	models.CategoryEcommerce: {
		{Name: "Product Catalog", Description: "Browse and search products", Priority: models.PriorityHigh},
		{Name: "Shopping Cart", Description: "Add and manage items", Priority: models.PriorityHigh},
		{Name: "Secure Checkout", Description: "Payment processing", Priority: models.PriorityHigh},
		{Name: "User Accounts", Description: "Registration and profiles", Priority: models.PriorityHigh},
		{Name: "Order Tracking", Description: "Monitor order status", Priority: models.PriorityMedium},
		{Name: "Reviews & Ratings", Description: "Product feedback", Priority: models.PriorityMedium},
		{Name: "Wishlist", Description: "Save favorite items", Priority: models.PriorityLow},
		{Name: "Recommendations", Description: "Personalized suggestions", Priority: models.PriorityLow},
	},
	models.CategorySocial: {
		{Name: "User Profiles", Description: "Personal pages and info", Priority: models.PriorityHigh},
		{Name: "Content Feed", Description: "Timeline of posts", Priority: models.PriorityHigh},
		{Name: "Messaging", Description: "Direct communication", Priority: models.PriorityHigh},
		{Name: "Content Sharing", Description: "Post photos/videos", Priority: models.PriorityHigh},
		{Name: "Friend System", Description: "Connect with others", Priority: models.PriorityMedium},
		{Name: "Notifications", Description: "Activity alerts", Priority: models.PriorityMedium},
		{Name: "Groups", Description: "Community spaces", Priority: models.PriorityLow},
	},
}

func Features(category string) []models.Feature {
	if f, ok := categoryFeatures[category]; ok {
		return append([]models.Feature(nil), f...)
	}
	return []models.Feature{
		{Name: "Core Functionality", Description: "Main app features", Priority: models.PriorityHigh},
		{Name: "User Management", Description: "Account system", Priority: models.PriorityHigh},
		{Name: "Settings", Description: "App configuration", Priority: models.PriorityMedium},
	}
}

var categoryFlows = map[string][]models.UserFlow{
	models.CategoryEcommerce: {
		{Name: "User Registration", Steps: []string{"Landing", "Sign Up", "Email Verification", "Profile Setup"}},
		{Name: "Product Purchase", Steps: []string{"Browse", "Product Detail", "Add to Cart", "Checkout", "Payment", "Confirmation"}},
		{Name: "Order Management", Steps: []string{"Order History", "Track Order", "Return Request"}},
	},
	models.CategorySocial: {
		{Name: "User Onboarding", Steps: []string{"Welcome", "Sign Up", "Profile Creation", "Find Friends"}},
		{Name: "Content Creation", Steps: []string{"Create Post", "Add Media", "Write Caption", "Publish"}},
		{Name: "Social Interaction", Steps: []string{"View Feed", "Like/Comment", "Share Content"}},
	},
}

func Flows(category string) []models.UserFlow {
	if f, ok := categoryFlows[category]; ok {
		return append([]models.UserFlow(nil), f...)
	}
	return []models.UserFlow{
		{Name: "User Setup", Steps: []string{"Registration", "Profile", "Preferences"}},
		{Name: "Core Usage", Steps: []string{"Dashboard", "Main Feature", "Results"}},
	}
}

var canonicalScreens = map[string][]string{
	models.CategoryEcommerce: {
		"splash", "onboarding", "login", "register", "home", "categories", "search",
		"product-list", "product-detail", "cart", "checkout", "payment", "order-confirmation",
		"profile", "orders", "order-detail", "wishlist", "reviews", "settings",
		"shipping-address", "payment-methods", "notifications", "help", "about",
	},
	models.CategorySocial: {
		"splash", "onboarding", "login", "register", "feed", "profile", "edit-profile",
		"create-post", "messages", "chat", "notifications", "search", "discover",
		"friends", "followers", "following", "settings", "privacy", "help",
	},
	models.CategoryProductivity: {
		"splash", "onboarding", "login", "register", "dashboard", "projects",
		"tasks", "calendar", "team", "settings", "reports", "files",
		"chat", "video-call", "notes", "time-tracking", "billing",
	},
	models.CategoryFitness: {
		"splash", "onboarding", "login", "register", "home", "workouts",
		"exercises", "nutrition", "progress", "social", "challenges",
		"profile", "settings", "goals", "calendar", "stats", "shop",
	},
}

var genericScreens = []string{"splash", "onboarding", "login", "register", "home", "profile", "settings"}

// DefaultScreenList returns exactly n screen types for a category: the
// canonical ordered list, padded with synthetic screen-N names past its end
// and truncated to n. n=0 yields an empty non-nil slice.
func DefaultScreenList(category string, n int) []string {
	base, ok := canonicalScreens[category]
	if !ok {
		base = genericScreens
	}

	out := make([]string, 0, n)
	out = append(out, base...)
	for len(out) < n {
		out = append(out, fmt.Sprintf("screen-%d", len(out)+1))
	}
	return out[:n]
}

// Screen tier sizes keyed by the request's complexity preference.
const (
	TierBasic         = 15
	TierStandard      = 35
	TierComprehensive = 75
)

// ScreenTier maps a complexity preference to a screen count. Anything
// unrecognized, including the empty string, lands on the standard tier.
func ScreenTier(complexity string) int {
	switch complexity {
	case "basic":
		return TierBasic
	case "comprehensive":
		return TierComprehensive
	case "standard":
		return TierStandard
	default:
		return TierStandard
	}
}

var screenComponents = map[string][]string{
	"home":           {"Header", "Hero", "FeatureGrid", "Testimonials", "Footer"},
	"product-list":   {"Header", "FilterSidebar", "ProductGrid", "Pagination"},
	"product-detail": {"Header", "ProductImages", "ProductInfo", "Reviews"},
	"cart":           {"Header", "CartItems", "OrderSummary", "CheckoutButton"},
	"profile":        {"Header", "ProfileSidebar", "ProfileContent"},
}

// ScreenComponents returns the ordered component names used on a screen,
// with a fixed three-entry default for screens without a specific mapping.
func ScreenComponents(screenType string) []string {
	if c, ok := screenComponents[screenType]; ok {
		return append([]string(nil), c...)
	}
	return []string{"Header", "Content", "Footer"}
}

var screenKeyFeatures = map[string]map[string][]string{
	models.CategoryEcommerce: {
		"home":           {"Product showcase", "Search functionality", "Category navigation", "Featured deals"},
		"product-detail": {"Product images", "Detailed description", "Reviews & ratings", "Add to cart"},
		"cart":           {"Item management", "Quantity adjustment", "Price calculation", "Checkout process"},
		"login":          {"Secure authentication", "Social login options", "Password recovery", "Remember me"},
		"checkout":       {"Shipping details", "Payment methods", "Order summary", "Confirmation"},
		"profile":        {"User information", "Order history", "Preferences", "Account settings"},
	},
	models.CategorySocial: {
		"feed":        {"Content timeline", "Like & comment", "Share functionality", "Real-time updates"},
		"profile":     {"User bio", "Photo gallery", "Follower count", "Activity feed"},
		"create-post": {"Media upload", "Text editor", "Privacy settings", "Hashtags"},
		"messages":    {"Chat interface", "Media sharing", "Online status", "Message history"},
	},
	models.CategoryProductivity: {
		"dashboard": {"Overview metrics", "Quick actions", "Recent activity", "Progress tracking"},
		"tasks":     {"Task creation", "Priority levels", "Due dates", "Status tracking"},
		"projects":  {"Project overview", "Team members", "Milestones", "File sharing"},
		"calendar":  {"Event scheduling", "Meeting rooms", "Reminders", "Time blocking"},
	},
}

// KeyFeatures returns up to four highlight tags for a (category, screen)
// pair, or three generic tags when the pair has no entry.
func KeyFeatures(category, screenType string) []string {
	if byScreen, ok := screenKeyFeatures[category]; ok {
		if tags, ok := byScreen[screenType]; ok {
			return append([]string(nil), tags...)
		}
	}
	return []string{"Interactive elements", "User-friendly design", "Responsive layout"}
}

var baseAssets = models.AssetSet{
	Icons:         []string{"home", "search", "user", "settings", "menu", "close", "arrow-left", "arrow-right"},
	Images:        []string{"logo", "placeholder", "hero-image"},
	Illustrations: []string{"empty-state", "error-404", "success", "loading"},
}

var categoryAssets = map[string]models.AssetSet{
	models.CategoryEcommerce: {
		Icons:         append(append([]string(nil), baseAssets.Icons...), "cart", "heart", "star", "filter", "sort"),
		Images:        append(append([]string(nil), baseAssets.Images...), "product-placeholder", "category-banner"),
		Illustrations: append(append([]string(nil), baseAssets.Illustrations...), "empty-cart", "order-success"),
	},
	models.CategorySocial: {
		Icons:         append(append([]string(nil), baseAssets.Icons...), "like", "comment", "share", "message", "camera"),
		Images:        append(append([]string(nil), baseAssets.Images...), "avatar-placeholder", "post-placeholder"),
		Illustrations: append(append([]string(nil), baseAssets.Illustrations...), "no-posts", "no-friends"),
	},
}

// Assets returns the icon/image/illustration name lists for a category.
func Assets(category string) models.AssetSet {
	set, ok := categoryAssets[category]
	if !ok {
		set = baseAssets
	}
	return models.AssetSet{
		Icons:         append([]string(nil), set.Icons...),
		Images:        append([]string(nil), set.Images...),
		Illustrations: append([]string(nil), set.Illustrations...),
	}
}
