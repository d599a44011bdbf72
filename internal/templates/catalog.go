package templates

import "appdesigner/internal/models"

var baseCatalog = []string{
	"Button", "Input", "Card", "Modal", "Header", "Navigation", "Footer",
	"SearchBar", "Avatar", "Badge", "Tabs", "Dropdown", "Checkbox", "Radio",
}

var categoryCatalog = map[string][]string{
	models.CategoryEcommerce:    {"ProductCard", "CartItem", "PriceTag", "Rating", "Filter"},
	models.CategorySocial:       {"PostCard", "UserCard", "MessageBubble", "LikeButton", "ShareButton"},
	models.CategoryProductivity: {"TaskCard", "ProjectCard", "Calendar", "Chart", "FileUpload"},
	models.CategoryFitness:      {"WorkoutCard", "ExerciseCard", "ProgressRing", "Timer", "Counter"},
}

// ComponentCatalog returns the ordered component kinds for a category: the
// generic base set followed by the category-specific additions, if any.
func ComponentCatalog(category string) []string {
	out := append([]string(nil), baseCatalog...)
	return append(out, categoryCatalog[category]...)
}

var componentVariants = map[string][]string{
	"Button": {"primary", "secondary", "outline", "ghost", "link"},
	"Input":  {"text", "email", "password", "search", "textarea"},
	"Card":   {"basic", "elevated", "outlined", "interactive"},
}

func ComponentVariants(name string) []string {
	if v, ok := componentVariants[name]; ok {
		return append([]string(nil), v...)
	}
	return []string{"default"}
}

var componentProps = map[string][]string{
	"Button": {"variant", "size", "disabled", "loading", "onClick"},
	"Input":  {"type", "placeholder", "value", "onChange", "error"},
	"Card":   {"elevation", "padding", "onClick", "children"},
}

func ComponentProps(name string) []string {
	if p, ok := componentProps[name]; ok {
		return append([]string(nil), p...)
	}
	return []string{"children"}
}
