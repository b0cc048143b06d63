package project

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/cascii/internal/cframe"
)

// namedColors maps the color names accepted in project details files.
var namedColors = map[string]cframe.Color{
	"black":   {R: 0, G: 0, B: 0},
	"white":   {R: 255, G: 255, B: 255},
	"red":     {R: 255, G: 0, B: 0},
	"green":   {R: 0, G: 128, B: 0},
	"blue":    {R: 0, G: 0, B: 255},
	"yellow":  {R: 255, G: 255, B: 0},
	"cyan":    {R: 0, G: 255, B: 255},
	"magenta": {R: 255, G: 0, B: 255},
	"gray":    {R: 128, G: 128, B: 128},
	"grey":    {R: 128, G: 128, B: 128},
	"orange":  {R: 255, G: 165, B: 0},
	"purple":  {R: 128, G: 0, B: 128},
	"pink":    {R: 255, G: 192, B: 203},
	"brown":   {R: 139, G: 69, B: 19},
}

// ParseColor parses a named color or a #RGB/#RRGGBB hex string.
// Matching is case-insensitive and surrounding whitespace is ignored.
func ParseColor(s string) (cframe.Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(s, "#") {
		if len(s) != 4 && len(s) != 7 {
			return cframe.Color{}, false
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return cframe.Color{}, false
		}
		r, g, b := c.RGB255()
		return cframe.Color{R: r, G: g, B: b}, true
	}
	c, ok := namedColors[s]
	return c, ok
}

// Colors holds the display colors for a project.
type Colors struct {
	Foreground cframe.Color
	Background cframe.Color
}

// ColorsFromStrings parses foreground and background color strings,
// falling back to white on black for invalid values.
func ColorsFromStrings(fg, bg string) Colors {
	colors := Colors{
		Foreground: cframe.Color{R: 255, G: 255, B: 255},
		Background: cframe.Color{},
	}
	if c, ok := ParseColor(fg); ok {
		colors.Foreground = c
	}
	if c, ok := ParseColor(bg); ok {
		colors.Background = c
	}
	return colors
}
