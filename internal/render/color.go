package render

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrInvalidColor is returned for anything that is not a hex colour or "transparent".
var ErrInvalidColor = errors.New("invalid color")

// ParseColor accepts #RGB, #RRGGBB, #RRGGBBAA (the # is optional) and "transparent".
func ParseColor(s string) (color.NRGBA, error) {
	v := strings.TrimSpace(s)
	if strings.EqualFold(v, "transparent") {
		return color.NRGBA{}, nil
	}
	v = strings.TrimPrefix(v, "#")

	switch len(v) {
	case 3:
		v = string([]byte{v[0], v[0], v[1], v[1], v[2], v[2]}) + "ff"
	case 6:
		v += "ff"
	case 8:
	default:
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.NRGBA{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, nil
}

// hexColor formats c as #RRGGBB for SVG output; alpha is emitted separately.
func hexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
