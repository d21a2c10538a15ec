// Package style holds the colors and fonts used to draw a plot.
package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Font describes a font by family and pixel size
type Font struct {
	Family string
	Size   float64
}

// DefaultFont is used for every text role unless configured otherwise
var DefaultFont = Font{Family: "Helvetica", Size: 13}

// Style is passed to a scene at construction and names every color and font role
type Style struct {
	Background      color.RGBA
	PlaneColor      color.RGBA
	GridColor       color.RGBA
	AxisColor       color.RGBA
	LabelColor      color.RGBA
	TickLabelColor  color.RGBA
	LegendFill      color.RGBA
	LegendBorder    color.RGBA
	LegendTextColor color.RGBA
	OverlayFill     color.RGBA
	OverlayText     color.RGBA

	LabelFont   Font
	TicksFont   Font
	LegendFont  Font
	OverlayFont Font

	// TickTarget is the number of tick intervals aimed for per axis
	TickTarget int
	// ScreenSpaceLines draws curves as anti-aliased screen-space quads instead of
	// world-space line strips
	ScreenSpaceLines bool
}

// Default returns the look of the classic plot widget
func Default() Style {
	black := color.RGBA{A: 255}
	translucent := color.RGBA{R: 204, G: 204, B: 217, A: 128}
	return Style{
		Background:      color.RGBA{R: 255, G: 255, B: 255, A: 255},
		PlaneColor:      color.RGBA{R: 230, G: 230, B: 242, A: 255},
		GridColor:       color.RGBA{R: 204, G: 204, B: 217, A: 255},
		AxisColor:       black,
		LabelColor:      black,
		TickLabelColor:  black,
		LegendFill:      translucent,
		LegendBorder:    black,
		LegendTextColor: black,
		OverlayFill:     translucent,
		OverlayText:     black,
		LabelFont:       DefaultFont,
		TicksFont:       Font{Family: DefaultFont.Family, Size: 11},
		LegendFont:      DefaultFont,
		OverlayFont:     DefaultFont,
		TickTarget:      5,
	}
}

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa"
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: expected #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// FormatColor renders c as "#rrggbbaa"
func FormatColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
