package svgcolor

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseColors(t *testing.T) {
	for _, test := range []struct {
		token    string
		expected uint32
	}{
		{"#ff0000", 0xffff0000},
		{"#FF0000", 0xffff0000},
		{"#f00", 0xffff0000},
		{"#00ff00", 0xff00ff00},
		{"#0000ff80", 0x800000ff},
		{"#0f08", 0x8800ff00},
		{"red", 0xffff0000},
		{"Blue", 0xff0000ff},
		{"black", 0xff000000},
		{"rgb(255, 0, 0)", 0xffff0000},
		{"rgb(255 0 0)", 0xffff0000},
		{"rgb(100%, 0%, 0%)", 0xffff0000},
		{"rgba(0, 255, 0, 0.5)", 0x8000ff00},
		{"rgba(0, 0, 255, 1)", 0xff0000ff},
		{"rgba(0, 0, 255, 50%)", 0x800000ff},
		{"rgb(300, -4, 0)", 0xffff0000}, // out of range values are clamped
		{"  lime  ", 0xff00ff00},
	} {
		c, err := Parse(test.token)
		if err != nil {
			t.Fatalf("can't parse color %q: %s", test.token, err)
		}
		if c.IsCurrentColor {
			t.Errorf("color %q parsed as currentColor", test.token)
		}
		if c.ARGB != test.expected {
			t.Errorf("color %q: expected 0x%08x, got 0x%08x", test.token, test.expected, c.ARGB)
		}
	}
}

func TestParseCurrentColor(t *testing.T) {
	for _, token := range []string{"currentColor", "currentcolor", "CURRENTCOLOR"} {
		c, err := Parse(token)
		if err != nil {
			t.Fatal(err)
		}
		if !c.IsCurrentColor {
			t.Errorf("token %q: expected the currentColor marker", token)
		}
	}
}

func TestParseInvalidColors(t *testing.T) {
	for _, token := range []string{
		"", "#", "#ff000", "#xyzxyz", "#ff00000000",
		"rgb(1,2)", "rgb(1,2,3,4,5)", "rgb(a,b,c)", "rgb(0,0,0",
		"notacolorname", "url(#g1)",
	} {
		_, err := Parse(token)
		if !errors.Is(err, ErrInvalidColor) {
			t.Errorf("token %q: expected ErrInvalidColor, got %v", token, err)
		}
	}
}

func TestNRGBARoundTrip(t *testing.T) {
	src := color.NRGBA{R: 12, G: 34, B: 56, A: 78}
	if got := FromNRGBA(src).NRGBA(); got != src {
		t.Errorf("expected %v, got %v", src, got)
	}
}
