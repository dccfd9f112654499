package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Category is the presentation of one record category: a glyph, a light color
// for backgrounds and a darker shade for text drawn on top of it.
type Category struct {
	Name   string
	Icon   string
	Color  lipgloss.Color
	Darker lipgloss.Color
}

const colorUnknownCategory = lipgloss.Color("#888888")

// categories is keyed by lower-case category name. vol and poison have no light
// shade of their own and fall back to gray.
var categories = map[string]Category{
	"feu":     {Icon: "♨", Color: "#FB6C6B", Darker: "#B95150"},
	"vol":     {Icon: "➶", Color: colorUnknownCategory, Darker: "#0228E8"},
	"normal":  {Icon: "●", Color: "#B6BDC4", Darker: "#7F848A"},
	"eau":     {Icon: "≈", Color: "#76BDFE", Darker: "#3C81C0"},
	"insecte": {Icon: "¤", Color: "#FAD775", Darker: "#D5B355"},
	"plante":  {Icon: "♣", Color: "#48D0B0", Darker: "#379983"},
	"poison":  {Icon: "☠", Color: colorUnknownCategory, Darker: "#E8022F"},
}

// CategoryFor looks up a category case-insensitively. Unknown names get a gray
// placeholder that keeps the name as written.
func CategoryFor(name string) Category {
	c, ok := categories[strings.ToLower(name)]
	if !ok {
		return Category{
			Name:   name,
			Icon:   "?",
			Color:  colorUnknownCategory,
			Darker: colorUnknownCategory,
		}
	}
	c.Name = name
	return c
}

// renderBadges renders each category as a colored badge, separated by a space.
func renderBadges(names []string) string {
	badges := make([]string, 0, len(names))
	for _, n := range names {
		c := CategoryFor(n)
		badges = append(badges, styleBadge(c).Render(c.Icon+" "+c.Name))
	}
	return strings.Join(badges, " ")
}
