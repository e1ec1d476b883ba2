package svgtree

import (
	"strings"
	"testing"
)

const defsDoc = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 100 100">
  <defs>
    <linearGradient id="g1" x1="10%" y1="0" x2="90%" y2="0" spreadMethod="reflect">
      <stop offset="0" stop-color="#ff0000"/>
      <stop offset="50%" stop-color="rgb(0,255,0)" stop-opacity="0.5"/>
      <stop offset="1" stop-color="blue"/>
    </linearGradient>
    <radialGradient id="g2" xlink:href="#g1" cx="0.4" r="0.25" gradientUnits="userSpaceOnUse"
                    gradientTransform="translate(10, 20)"/>
    <pattern id="p1" width="0.25" height="0.25" patternUnits="objectBoundingBox"
             patternTransform="scale(2)" preserveAspectRatio="xMinYMin slice">
      <rect x="0" y="0" width="5" height="5" fill="#00ff00"/>
      <rect x="5" y="5" width="5" height="5" fill="black"/>
    </pattern>
  </defs>
  <rect x="0" y="0" width="100" height="100" fill="url(#g1)"/>
</svg>`

func TestReadDefs(t *testing.T) {
	defs, err := ReadDefs(strings.NewReader(defsDoc), StrictErrorMode)
	if err != nil {
		t.Fatal(err)
	}

	g1, ok := defs.FindByID("g1").(*GradientNode)
	if !ok {
		t.Fatal("g1 not found")
	}
	if g1.NodeKind() != KindLinearGradient {
		t.Errorf("unexpected kind %s", g1.NodeKind())
	}
	if g1.X1 == nil || *g1.X1 != 0.1 || g1.X2 == nil || *g1.X2 != 0.9 {
		t.Errorf("percentage geometry not read: %+v", g1)
	}
	if g1.Spread == nil || *g1.Spread != ReflectSpread {
		t.Errorf("spreadMethod not read: %+v", g1.Spread)
	}
	if len(g1.Stops) != 3 {
		t.Fatalf("expected 3 stops, got %d", len(g1.Stops))
	}
	if g1.Stops[1].Offset != 0.5 || g1.Stops[1].Opacity != 0.5 {
		t.Errorf("unexpected middle stop: %+v", g1.Stops[1])
	}
	if g1.Stops[2].Color.ARGB != 0xff0000ff {
		t.Errorf("unexpected last stop color: %08x", g1.Stops[2].Color.ARGB)
	}

	g2, ok := defs.FindByID("g2").(*GradientNode)
	if !ok {
		t.Fatal("g2 not found")
	}
	if !g2.IsRadial || g2.Href != "g1" {
		t.Errorf("radial href not read: %+v", g2)
	}
	if g2.Units == nil || *g2.Units != UserSpaceOnUse {
		t.Errorf("gradientUnits not read: %+v", g2.Units)
	}
	if g2.Transform == nil || g2.Transform.E != 10 || g2.Transform.F != 20 {
		t.Errorf("gradientTransform not read: %+v", g2.Transform)
	}

	// the inheritance chain set up in the document materializes
	eff, err := MaterializeGradient(g2, defs)
	if err != nil {
		t.Fatal(err)
	}
	if len(eff.Stops) != 3 {
		t.Errorf("stops not inherited from g1: %v", eff.Stops)
	}

	p1, ok := defs.FindByID("p1").(*PatternNode)
	if !ok {
		t.Fatal("p1 not found")
	}
	if p1.Width == nil || *p1.Width != 0.25 {
		t.Errorf("tile rect not read: %+v", p1)
	}
	if len(p1.Content) != 2 || p1.Content[0].Color != 0xff00ff00 {
		t.Errorf("tile content not read: %+v", p1.Content)
	}
	if p1.Transform == nil || p1.Transform.A != 2 || p1.Transform.D != 2 {
		t.Errorf("patternTransform not read: %+v", p1.Transform)
	}
	if p1.AspectRatio == nil || *p1.AspectRatio != (AspectRatio{Align: XMinYMin, Fit: Slice}) {
		t.Errorf("preserveAspectRatio not read: %+v", p1.AspectRatio)
	}

	// the shape rect at the document level is not pattern content
	if defs.FindByID("") != nil {
		t.Error("anonymous nodes must not be registered")
	}
}

func TestReadDefsInvalid(t *testing.T) {
	if _, err := ReadDefs(strings.NewReader("not xml at all"), StrictErrorMode); err == nil {
		t.Error("expected an error for a tagless document")
	}

	bad := `<svg><linearGradient id="g" x1="nope"/></svg>`
	if _, err := ReadDefs(strings.NewReader(bad), StrictErrorMode); err == nil {
		t.Error("expected an error in strict mode")
	}
	badPattern := `<svg><pattern id="p" preserveAspectRatio="sideways"/></svg>`
	if _, err := ReadDefs(strings.NewReader(badPattern), StrictErrorMode); err == nil {
		t.Error("expected an error for a malformed preserveAspectRatio")
	}

	defs, err := ReadDefs(strings.NewReader(bad), IgnoreErrorMode)
	if err != nil {
		t.Fatal(err)
	}
	if defs.FindByID("g") != nil {
		t.Error("the malformed gradient should have been skipped")
	}
}
