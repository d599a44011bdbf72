package figma

import (
	"fmt"

	"appdesigner/internal/models"
)

// Node is a placeholder rectangle inside a frame.
type Node struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Fills  []Fill `json:"fills"`
}

type Fill struct {
	Type  string `json:"type"`
	Color RGB    `json:"color"`
}

type RGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// Frame is one viewport rendering of a screen.
type Frame struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Children []Node `json:"children"`
}

// Page holds the two frames (mobile and desktop) for one screen.
type Page struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	Children []Frame `json:"children"`
}

const (
	viewportMobile  = "mobile"
	viewportDesktop = "desktop"

	mobileWidth   = 375
	mobileHeight  = 812
	desktopWidth  = 1440
	desktopHeight = 1024
)

// BuildPages maps every screen of a document onto a page with a mobile and
// a desktop frame, each populated with placeholder rectangles positioned by
// the fixed per-component geometry tables.
func BuildPages(doc *models.DesignDocument) []Page {
	pages := make([]Page, 0, len(doc.Screens))
	for _, screen := range doc.Screens {
		pages = append(pages, Page{
			ID:   screen.ID,
			Name: screen.Name,
			Type: "CANVAS",
			Children: []Frame{
				buildFrame(screen, viewportMobile, mobileWidth, mobileHeight),
				buildFrame(screen, viewportDesktop, desktopWidth, desktopHeight),
			},
		})
	}
	return pages
}

func buildFrame(screen models.Screen, viewport string, width, height int) Frame {
	children := make([]Node, 0, len(screen.Components))
	for _, name := range screen.Components {
		children = append(children, Node{
			ID:     fmt.Sprintf("%s-%s-%s", screen.ID, name, viewport),
			Name:   name,
			Type:   "RECTANGLE",
			Width:  componentWidth(name, viewport),
			Height: componentHeight(name),
			X:      componentX(name, viewport),
			Y:      componentY(name),
			Fills: []Fill{
				{Type: "SOLID", Color: RGB{R: 0.9, G: 0.9, B: 0.9}},
			},
		})
	}

	title := "Mobile"
	if viewport == viewportDesktop {
		title = "Desktop"
	}

	return Frame{
		ID:       fmt.Sprintf("%s-%s", screen.ID, viewport),
		Name:     fmt.Sprintf("%s - %s", screen.Name, title),
		Type:     "FRAME",
		Width:    width,
		Height:   height,
		Children: children,
	}
}

var mobileWidths = map[string]int{"Header": 375, "Hero": 375, "ProductGrid": 375}

var desktopWidths = map[string]int{"Header": 1440, "Hero": 1440, "ProductGrid": 1200}

func componentWidth(name, viewport string) int {
	table := mobileWidths
	if viewport == viewportDesktop {
		table = desktopWidths
	}
	if w, ok := table[name]; ok {
		return w
	}
	return 200
}

var componentHeights = map[string]int{"Header": 60, "Hero": 400, "ProductGrid": 600, "ProductDetail": 800}

func componentHeight(name string) int {
	if h, ok := componentHeights[name]; ok {
		return h
	}
	return 100
}

func componentX(name, viewport string) int {
	if viewport == viewportDesktop && name == "ProductGrid" {
		return 120
	}
	return 0
}

var componentYs = map[string]int{"Header": 0, "Hero": 60, "ProductGrid": 460, "ProductDetail": 60}

func componentY(name string) int {
	if y, ok := componentYs[name]; ok {
		return y
	}
	return 0
}
