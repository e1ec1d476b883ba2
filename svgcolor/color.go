// Provides parsing of the color literals found in SVG paint values:
// named colors, currentColor, hex and rgb()/rgba() forms.
package svgcolor

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrInvalidColor is returned when a token is not a recognized color literal.
var ErrInvalidColor = errors.New("invalid color")

// Color is a solid color literal. When IsCurrentColor is set, the color
// must be looked up in the inherited style at resolution time and ARGB
// is meaningless.
type Color struct {
	IsCurrentColor bool
	ARGB           uint32
}

// New packs the given channels into an opaque-by-default Color.
func New(r, g, b, a uint8) Color {
	return Color{ARGB: uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)}
}

// FromNRGBA converts a non-premultiplied color.
func FromNRGBA(c color.NRGBA) Color {
	return New(c.R, c.G, c.B, c.A)
}

// NRGBA unpacks the color for consumption by the renderer.
// The result for a currentColor marker is undefined.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(c.ARGB >> 16),
		G: uint8(c.ARGB >> 8),
		B: uint8(c.ARGB),
		A: uint8(c.ARGB >> 24),
	}
}

// Parse interprets `token` as a CSS color literal: the currentColor
// keyword, #rgb[a] and #rrggbb[aa] hex forms, rgb()/rgba() functional
// forms, or a named color such as "blue".
// Alpha defaults to fully opaque when unspecified.
func Parse(token string) (Color, error) {
	v := strings.TrimSpace(token)
	switch {
	case v == "":
		return Color{}, fmt.Errorf("%w: empty token", ErrInvalidColor)
	case strings.EqualFold(v, "currentColor"):
		return Color{IsCurrentColor: true}, nil
	case v[0] == '#':
		return parseHex(v[1:])
	case hasFoldPrefix(v, "rgb(") || hasFoldPrefix(v, "rgba("):
		return parseRGB(v)
	}
	if c, ok := colornames.Map[strings.ToLower(v)]; ok {
		return New(c.R, c.G, c.B, c.A), nil
	}
	return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, token)
}

func hasFoldPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func parseHex(hex string) (Color, error) {
	var digits [8]uint8
	if len(hex) > 8 {
		return Color{}, fmt.Errorf("%w: #%s", ErrInvalidColor, hex)
	}
	for i := 0; i < len(hex); i++ {
		d, err := strconv.ParseUint(hex[i:i+1], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: #%s", ErrInvalidColor, hex)
		}
		digits[i] = uint8(d)
	}
	wide := func(d uint8) uint8 { return d<<4 | d }
	switch len(hex) {
	case 3: // #rgb
		return New(wide(digits[0]), wide(digits[1]), wide(digits[2]), 0xff), nil
	case 4: // #rgba
		return New(wide(digits[0]), wide(digits[1]), wide(digits[2]), wide(digits[3])), nil
	case 6: // #rrggbb
		return New(digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5], 0xff), nil
	case 8: // #rrggbbaa
		return New(digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5],
			digits[6]<<4|digits[7]), nil
	}
	return Color{}, fmt.Errorf("%w: #%s", ErrInvalidColor, hex)
}

func parseRGB(v string) (Color, error) {
	open := strings.IndexByte(v, '(')
	close_ := strings.LastIndexByte(v, ')')
	if close_ != len(v)-1 || close_ < open {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, v)
	}
	values := splitOnCommaOrSpace(v[open+1 : close_])
	if len(values) != 3 && len(values) != 4 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, v)
	}
	var channels [3]uint8
	for i, s := range values[:3] {
		c, err := parseChannel(s)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, v)
		}
		channels[i] = c
	}
	alpha := uint8(0xff)
	if len(values) == 4 {
		a, err := parseAlpha(values[3])
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, v)
		}
		alpha = a
	}
	return New(channels[0], channels[1], channels[2], alpha), nil
}

// parseChannel reads one r, g or b component: an integer in 0-255
// or a percentage.
func parseChannel(s string) (uint8, error) {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "%") {
		p, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return 0, err
		}
		return clampChannel(p * 255 / 100), nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return clampChannel(n), nil
}

// parseAlpha reads the alpha component: a fraction in 0-1 or a percentage.
func parseAlpha(s string) (uint8, error) {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "%") {
		p, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return 0, err
		}
		return clampChannel(p * 255 / 100), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return clampChannel(f * 255), nil
}

func clampChannel(f float64) uint8 {
	switch {
	case f <= 0:
		return 0
	case f >= 255:
		return 255
	}
	return uint8(f + 0.5)
}

// splitOnCommaOrSpace returns a list of strings after splitting the input on comma and space delimiters
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || r == ' '
		})
}
