package svgtree

import (
	"errors"
	"testing"

	"github.com/benoitkugler/svgpaint/svgcolor"
)

func f64(v float64) *float64 { return &v }

func defsWith(t *testing.T, nodes ...Node) *Defs {
	t.Helper()
	defs := NewDefs()
	for _, n := range nodes {
		if err := defs.Add(n); err != nil {
			t.Fatal(err)
		}
	}
	return defs
}

var redStops = []GradStop{
	{Color: svgcolor.New(0xff, 0, 0, 0xff), Offset: 0, Opacity: 1},
	{Color: svgcolor.New(0, 0, 0xff, 0xff), Offset: 1, Opacity: 1},
}

func TestMaterializeGradientDefaults(t *testing.T) {
	g := &GradientNode{Id: "g1", Stops: redStops}
	eff, err := MaterializeGradient(g, defsWith(t, g))
	if err != nil {
		t.Fatal(err)
	}
	if eff.Direction != (Linear{0, 0, 1, 0}) {
		t.Errorf("unexpected default linear direction: %v", eff.Direction)
	}
	if eff.Units != ObjectBoundingBox || eff.Spread != PadSpread || eff.Transform != Identity {
		t.Errorf("unexpected defaults: %+v", eff)
	}

	r := &GradientNode{Id: "g2", IsRadial: true, Cx: f64(0.3), Stops: redStops}
	eff, err = MaterializeGradient(r, defsWith(t, r))
	if err != nil {
		t.Fatal(err)
	}
	// fx follows cx when unset
	if eff.Direction != (Radial{0.3, 0.5, 0.3, 0.5, 0.5, 0}) {
		t.Errorf("unexpected radial direction: %v", eff.Direction)
	}
}

func TestMaterializeGradientInheritance(t *testing.T) {
	spread := ReflectSpread
	base := &GradientNode{Id: "base", X2: f64(0.75), Spread: &spread, Stops: redStops}
	derived := &GradientNode{Id: "derived", Href: "base", X1: f64(0.25)}
	defs := defsWith(t, base, derived)

	eff, err := MaterializeGradient(derived, defs)
	if err != nil {
		t.Fatal(err)
	}
	if eff.Direction != (Linear{0.25, 0, 0.75, 0}) {
		t.Errorf("geometry not merged: %v", eff.Direction)
	}
	if eff.Spread != ReflectSpread {
		t.Errorf("spread not merged: %v", eff.Spread)
	}
	if len(eff.Stops) != 2 {
		t.Errorf("stops not inherited: %v", eff.Stops)
	}

	// geometry must not cross gradient kinds, but stops still transfer
	radial := &GradientNode{Id: "radial", IsRadial: true, Href: "base", Cx: f64(0.1)}
	defs = defsWith(t, base, radial)
	eff, err = MaterializeGradient(radial, defs)
	if err != nil {
		t.Fatal(err)
	}
	if !eff.Direction.IsRadial() {
		t.Fatal("expected a radial direction")
	}
	if dir := eff.Direction.(Radial); dir[4] != 0.5 {
		t.Errorf("radius should stay at its default: %v", dir)
	}
	if len(eff.Stops) != 2 {
		t.Errorf("stops should inherit across kinds: %v", eff.Stops)
	}
}

func TestMaterializeGradientChainEnds(t *testing.T) {
	// a dangling href just ends the chain
	g := &GradientNode{Id: "g1", Href: "missing", Stops: redStops}
	eff, err := MaterializeGradient(g, defsWith(t, g))
	if err != nil {
		t.Fatal(err)
	}
	if eff.Direction != (Linear{0, 0, 1, 0}) {
		t.Errorf("unexpected direction: %v", eff.Direction)
	}

	// an href pointing at a pattern is incompatible and ends the chain
	p := &PatternNode{Id: "p1"}
	g = &GradientNode{Id: "g2", Href: "p1"}
	eff, err = MaterializeGradient(g, defsWith(t, g, p))
	if err != nil {
		t.Fatal(err)
	}
	if len(eff.Stops) != 0 {
		t.Errorf("expected no stops, got %v", eff.Stops)
	}
}

func TestMaterializeGradientCycles(t *testing.T) {
	self := &GradientNode{Id: "a", Href: "a"}
	if _, err := MaterializeGradient(self, defsWith(t, self)); !errors.Is(err, ErrCycle) {
		t.Errorf("self cycle: expected ErrCycle, got %v", err)
	}

	a := &GradientNode{Id: "a", Href: "b"}
	b := &GradientNode{Id: "b", Href: "a"}
	if _, err := MaterializeGradient(a, defsWith(t, a, b)); !errors.Is(err, ErrCycle) {
		t.Errorf("mutual cycle: expected ErrCycle, got %v", err)
	}

	x := &GradientNode{Id: "x", Href: "y"}
	y := &GradientNode{Id: "y", Href: "z"}
	z := &GradientNode{Id: "z", Href: "x"}
	if _, err := MaterializeGradient(x, defsWith(t, x, y, z)); !errors.Is(err, ErrCycle) {
		t.Errorf("three-node cycle: expected ErrCycle, got %v", err)
	}
}

func TestMaterializeGradientDoesNotMutate(t *testing.T) {
	base := &GradientNode{Id: "base", Stops: redStops}
	derived := &GradientNode{Id: "derived", Href: "base"}
	if _, err := MaterializeGradient(derived, defsWith(t, base, derived)); err != nil {
		t.Fatal(err)
	}
	if len(derived.Stops) != 0 {
		t.Error("materialization must not mutate the source node")
	}
}

func TestMaterializePattern(t *testing.T) {
	content := []TileRect{{Rect: Bounds{0, 0, 5, 5}, Color: 0xffff0000}}
	scaled := Identity.Scale(2, 2)
	fitted := AspectRatio{Align: XMaxYMax, Fit: Slice}
	base := &PatternNode{Id: "base", Width: f64(0.2), Height: f64(0.2),
		Transform: &scaled, AspectRatio: &fitted, Content: content}
	derived := &PatternNode{Id: "derived", Href: "base", X: f64(0.1)}
	defs := defsWith(t, base, derived)

	eff, err := MaterializePattern(derived, defs)
	if err != nil {
		t.Fatal(err)
	}
	if eff.X != 0.1 || eff.Y != 0 || eff.Width != 0.2 || eff.Height != 0.2 {
		t.Errorf("tile rect not merged: %+v", eff)
	}
	if eff.Units != ObjectBoundingBox || eff.ContentUnits != UserSpaceOnUse {
		t.Errorf("unexpected default units: %+v", eff)
	}
	if eff.Transform != scaled {
		t.Errorf("transform not inherited: %+v", eff.Transform)
	}
	if eff.AspectRatio != fitted {
		t.Errorf("aspect ratio not inherited: %+v", eff.AspectRatio)
	}
	if len(eff.Content) != 1 {
		t.Errorf("content not inherited: %v", eff.Content)
	}

	bare := &PatternNode{Id: "bare", Content: content, Width: f64(0.2), Height: f64(0.2)}
	eff, err = MaterializePattern(bare, defsWith(t, bare))
	if err != nil {
		t.Fatal(err)
	}
	if eff.Transform != Identity || eff.AspectRatio != DefaultAspectRatio {
		t.Errorf("unexpected defaults: %+v", eff)
	}

	a := &PatternNode{Id: "a", Href: "b"}
	b := &PatternNode{Id: "b", Href: "a"}
	if _, err := MaterializePattern(a, defsWith(t, a, b)); !errors.Is(err, ErrCycle) {
		t.Errorf("expected ErrCycle, got %v", err)
	}
}
