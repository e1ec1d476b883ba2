package svgresolve

import (
	"github.com/srwiley/rasterx"

	"github.com/benoitkugler/svgpaint/svgtree"
)

// gradientPaint materializes the gradient's inheritance chain and
// builds the rasterizer gradient, positioned against the shape bounding
// box when the gradient uses objectBoundingBox units.
// ok is false when the gradient is unusable and the caller should fall
// back (cycle in the chain, or no color stops at all).
func (ctx *Context) gradientPaint(g *svgtree.GradientNode, opacity uint8, bbox svgtree.Bounds) (Paint, bool) {
	eff, err := svgtree.MaterializeGradient(g, ctx.Lookup)
	if err != nil {
		ctx.warn("gradient", g.Id, "degraded:", err)
		return nil, false
	}
	if len(eff.Stops) == 0 {
		ctx.warn("gradient", g.Id, "has no stops")
		return nil, false
	}

	grad := rasterx.Gradient{
		Stops:    make([]rasterx.GradStop, len(eff.Stops)),
		Matrix:   rasterx.Matrix2D(eff.Transform),
		Spread:   rasterx.SpreadMethod(eff.Spread),
		Units:    rasterx.GradientUnits(eff.Units),
		IsRadial: eff.Direction.IsRadial(),
	}
	switch dir := eff.Direction.(type) {
	case svgtree.Linear:
		grad.Points[0], grad.Points[1], grad.Points[2], grad.Points[3] = dir[0], dir[1], dir[2], dir[3]
	case svgtree.Radial:
		// in rasterx fr is ignored
		grad.Points[0], grad.Points[1], grad.Points[2], grad.Points[3], grad.Points[4] =
			dir[0], dir[1], dir[2], dir[3], dir[4]
	}
	for i, stop := range eff.Stops {
		c := stop.Color
		if c.IsCurrentColor {
			flat := ctx.flat(c, 0xff).(Flat)
			c.ARGB = flat.ARGB
			c.IsCurrentColor = false
		}
		grad.Stops[i] = rasterx.GradStop{
			StopColor: c.NRGBA(),
			Offset:    stop.Offset,
			Opacity:   stop.Opacity,
		}
	}
	// bounding-box relative units place the gradient in the shape
	// extent; user-space points need no positioning
	grad.Bounds.X, grad.Bounds.Y = bbox.X, bbox.Y
	grad.Bounds.W, grad.Bounds.H = bbox.W, bbox.H

	return GradientPaint{Gradient: grad, Opacity: opacity}, true
}
