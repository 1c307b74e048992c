package chrome

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

type Color color.RGBA

func (c Color) RGBA() (r, g, b, a uint32) {
	cc := color.RGBA(c)
	return cc.RGBA()
}

func (c Color) ToRGBA() color.RGBA { return color.RGBA(c) }

// NewColor returns an opaque or translucent color.
func NewColor(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// String formats c as #rrggbb, or #rrggbbaa when not opaque.
func (c Color) String() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

var namedColors = map[string]Color{
	"black":       NewColor(0, 0, 0, 255),
	"white":       NewColor(255, 255, 255, 255),
	"gray":        NewColor(128, 128, 128, 255),
	"grey":        NewColor(128, 128, 128, 255),
	"dimgray":     NewColor(105, 105, 105, 255),
	"dimgrey":     NewColor(105, 105, 105, 255),
	"darkgray":    NewColor(169, 169, 169, 255),
	"lightgray":   NewColor(211, 211, 211, 255),
	"dodgerblue":  NewColor(30, 144, 255, 255),
	"red":         NewColor(255, 0, 0, 255),
	"green":       NewColor(0, 128, 0, 255),
	"blue":        NewColor(0, 0, 255, 255),
	"transparent": NewColor(0, 0, 0, 0),
}

// ParseColor accepts #rgb, #rrggbb, #rrggbbaa (the leading # is optional) or
// a color name.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}) + "ff"
	case 6:
		hex += "ff"
	case 8:
	default:
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return NewColor(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// Theme is the set of colors the renderer paints with.
type Theme struct {
	WindowBackColor   Color
	ContentBackColor  Color
	ControlHoverColor Color
	GlyphColor        Color
}

// LightTheme is the stock palette: a gray frame around a white content area.
func LightTheme() Theme {
	return Theme{
		WindowBackColor:   namedColors["gray"],
		ContentBackColor:  namedColors["white"],
		ControlHoverColor: namedColors["dimgray"],
		GlyphColor:        namedColors["dodgerblue"],
	}
}

// DarkTheme keeps the light theme's layout but uses dark surfaces.
func DarkTheme() Theme {
	return Theme{
		WindowBackColor:   NewColor(41, 44, 48, 255),
		ContentBackColor:  NewColor(32, 35, 38, 255),
		ControlHoverColor: NewColor(63, 63, 63, 255),
		GlyphColor:        NewColor(60, 173, 232, 255),
	}
}
