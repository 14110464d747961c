package shape

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an opaque 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// White is the color used when the text names none.
var White = Color{R: 0xff, G: 0xff, B: 0xff}

// String returns the color as lowercase #rrggbb.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBA returns the color channels plus a fully opaque alpha, ready for raylib.
func (c Color) RGBA() [4]uint8 {
	return [4]uint8{c.R, c.G, c.B, 255}
}

// ParseHexColor parses #RGB or #RRGGBB (leading # optional). Returns White and false on parse error.
func ParseHexColor(s string) (Color, bool) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return White, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return White, false
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, true
}

// MarshalText writes the #rrggbb form.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText reads #RGB or #RRGGBB.
func (c *Color) UnmarshalText(b []byte) error {
	v, ok := ParseHexColor(string(b))
	if !ok {
		return fmt.Errorf("invalid color %q", b)
	}
	*c = v
	return nil
}
