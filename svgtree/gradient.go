package svgtree

import "github.com/benoitkugler/svgpaint/svgcolor"

// GradientUnits is the type for gradient units
type GradientUnits byte

// SVG bounds parameter constants
const (
	ObjectBoundingBox GradientUnits = iota
	UserSpaceOnUse
)

// SpreadMethod is the type for spread parameters
type SpreadMethod byte

// SVG spread parameter constants
const (
	PadSpread SpreadMethod = iota
	ReflectSpread
	RepeatSpread
)

// GradStop represents a stop in the SVG 2.0 gradient specification
type GradStop struct {
	Color   svgcolor.Color
	Offset  float64
	Opacity float64
}

// GradientNode is a linearGradient or radialGradient definition.
// Unset attributes are nil and may be inherited along the Href chain;
// geometry attributes only inherit between gradients of the same kind.
type GradientNode struct {
	Id       string
	IsRadial bool
	Href     string // id of the gradient to inherit unset attributes from

	Units     *GradientUnits
	Spread    *SpreadMethod
	Transform *Matrix2D

	X1, Y1, X2, Y2 *float64 // linear geometry
	Cx, Cy, R      *float64 // radial geometry
	Fx, Fy, Fr     *float64

	Stops []GradStop
}

func (g *GradientNode) ID() string { return g.Id }

func (g *GradientNode) NodeKind() Kind {
	if g.IsRadial {
		return KindRadialGradient
	}
	return KindLinearGradient
}

// radial or linear
type Direction interface {
	IsRadial() bool
}

// x1, y1, x2, y2
type Linear [4]float64

func (Linear) IsRadial() bool { return false }

// cx, cy, fx, fy, r, fr
type Radial [6]float64

func (Radial) IsRadial() bool { return true }

// EffectiveGradient is a gradient with its inheritance chain applied
// and every remaining unset attribute replaced by its default.
type EffectiveGradient struct {
	Direction Direction
	Stops     []GradStop
	Units     GradientUnits
	Spread    SpreadMethod
	Transform Matrix2D
}

// mergeFrom fills the unset attributes of g from o.
// Geometry only transfers between gradients of the same kind.
func (g *GradientNode) mergeFrom(o *GradientNode) {
	if g.Units == nil {
		g.Units = o.Units
	}
	if g.Spread == nil {
		g.Spread = o.Spread
	}
	if g.Transform == nil {
		g.Transform = o.Transform
	}
	if len(g.Stops) == 0 {
		g.Stops = o.Stops
	}
	if g.IsRadial != o.IsRadial {
		return
	}
	if g.IsRadial {
		mergeFloats(&g.Cx, o.Cx)
		mergeFloats(&g.Cy, o.Cy)
		mergeFloats(&g.R, o.R)
		mergeFloats(&g.Fx, o.Fx)
		mergeFloats(&g.Fy, o.Fy)
		mergeFloats(&g.Fr, o.Fr)
	} else {
		mergeFloats(&g.X1, o.X1)
		mergeFloats(&g.Y1, o.Y1)
		mergeFloats(&g.X2, o.X2)
		mergeFloats(&g.Y2, o.Y2)
	}
}

func mergeFloats(dst **float64, src *float64) {
	if *dst == nil {
		*dst = src
	}
}

func floatOr(v *float64, def float64) float64 {
	if v != nil {
		return *v
	}
	return def
}

// MaterializeGradient walks the href inheritance chain starting at g,
// collecting unset attributes, then applies the spec defaults.
// The chain stops at the first missing or incompatible target; walking
// the same node twice reports ErrCycle.
func MaterializeGradient(g *GradientNode, lookup Lookup) (*EffectiveGradient, error) {
	merged := *g // g itself is never mutated
	visited := map[string]bool{g.Id: true}
	for cur := g; cur.Href != ""; {
		if visited[cur.Href] {
			return nil, ErrCycle
		}
		visited[cur.Href] = true
		next, ok := findGradient(lookup, cur.Href)
		if !ok {
			break
		}
		merged.mergeFrom(next)
		cur = next
	}

	eff := &EffectiveGradient{
		Stops:     merged.Stops,
		Units:     ObjectBoundingBox,
		Spread:    PadSpread,
		Transform: Identity,
	}
	if merged.Units != nil {
		eff.Units = *merged.Units
	}
	if merged.Spread != nil {
		eff.Spread = *merged.Spread
	}
	if merged.Transform != nil {
		eff.Transform = *merged.Transform
	}
	if merged.IsRadial {
		cx := floatOr(merged.Cx, 0.5)
		cy := floatOr(merged.Cy, 0.5)
		eff.Direction = Radial{
			cx, cy,
			floatOr(merged.Fx, cx), // fx and fy default to the center
			floatOr(merged.Fy, cy),
			floatOr(merged.R, 0.5),
			floatOr(merged.Fr, 0),
		}
	} else {
		eff.Direction = Linear{
			floatOr(merged.X1, 0),
			floatOr(merged.Y1, 0),
			floatOr(merged.X2, 1),
			floatOr(merged.Y2, 0),
		}
	}
	return eff, nil
}

func findGradient(lookup Lookup, id string) (*GradientNode, bool) {
	if lookup == nil {
		return nil, false
	}
	g, ok := lookup.FindByID(id).(*GradientNode)
	return g, ok
}
