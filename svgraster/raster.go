// Implements a raster backend to draw resolved paints,
// by wrapping rasterx.
package svgraster

import (
	"image/color"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/benoitkugler/svgpaint/svgresolve"
	"github.com/benoitkugler/svgpaint/svgtree"
)

type Renderer struct {
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance
}

// NewRenderer returns a renderer with default values.
// In addition to rasterizing lines like a Scanner,
// it can also rasterize quadratic and cubic bezier curves.
func NewRenderer(width, height int, scanner rasterx.Scanner) *Renderer {
	return &Renderer{dasher: rasterx.NewDasher(width, height, scanner), filler: rasterx.NewFiller(width, height, scanner)}
}

// applyPaint installs the resolved paint on the scanner, reporting
// whether a draw call should be issued at all.
func applyPaint(scanner rasterx.Scanner, p svgresolve.Paint) bool {
	switch p := p.(type) {
	case svgresolve.Flat:
		scanner.SetColor(rasterx.ApplyOpacity(argbToNRGBA(p.ARGB), float64(p.Opacity)/255))
	case svgresolve.GradientPaint:
		scanner.SetColor(p.Gradient.GetColorFunction(float64(p.Opacity) / 255))
	case svgresolve.TilePaint:
		scanner.SetColor(tileColorFunc(p))
	default: // Nothing
		return false
	}
	return true
}

// SetFillPaint installs the paint used by Fill, reporting whether
// there is anything to fill.
func (rd *Renderer) SetFillPaint(p svgresolve.Paint) bool {
	return applyPaint(rd.filler.Scanner, p)
}

// SetStrokePaint installs the paint used by Stroke, reporting whether
// there is anything to stroke.
func (rd *Renderer) SetStrokePaint(p svgresolve.Paint) bool {
	return applyPaint(rd.dasher.Scanner, p)
}

func argbToNRGBA(argb uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(argb >> 16),
		G: uint8(argb >> 8),
		B: uint8(argb),
		A: uint8(argb >> 24),
	}
}

// tileColorFunc repeats the rendered tile over the plane, anchored at
// the tile rect origin. Device points are mapped back to pattern space
// through the inverse pattern transform before tiling.
func tileColorFunc(p svgresolve.TilePaint) rasterx.ColorFunc {
	bounds := p.Tile.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	inv, ok := p.Transform.Invert()
	if !ok {
		inv = svgtree.Identity // resolution rejects singular transforms
	}
	opacity := float64(p.Opacity) / 255
	return func(x, y int) color.Color {
		ux, uy := inv.Apply(float64(x)+0.5, float64(y)+0.5)
		tx := mod(int(math.Floor(ux-p.Rect.X)), w)
		ty := mod(int(math.Floor(uy-p.Rect.Y)), h)
		return rasterx.ApplyOpacity(p.Tile.At(bounds.Min.X+tx, bounds.Min.Y+ty), opacity)
	}
}

func mod(v, m int) int {
	v %= m
	if v < 0 {
		v += m
	}
	return v
}

func (rd *Renderer) Clear() {
	rd.dasher.Clear()
	rd.filler.Clear()
}

func (rd *Renderer) SetWinding(useNonZeroWinding bool) {
	rd.dasher.SetWinding(useNonZeroWinding)
	rd.filler.SetWinding(useNonZeroWinding)
}

// SetStroke parametrizes the stroking style with butt caps and
// round joins.
func (rd *Renderer) SetStroke(lineWidth float64) {
	rd.dasher.SetStroke(fixed.Int26_6(lineWidth*64), fixed.Int26_6(4*64),
		rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Round, nil, 0)
}

func (rd *Renderer) Start(a fixed.Point26_6) {
	rd.filler.Start(a)
	rd.dasher.Start(a)
}

func (rd *Renderer) Line(b fixed.Point26_6) {
	rd.filler.Line(b)
	rd.dasher.Line(b)
}

func (rd *Renderer) QuadBezier(b fixed.Point26_6, c fixed.Point26_6) {
	rd.filler.QuadBezier(b, c)
	rd.dasher.QuadBezier(b, c)
}

func (rd *Renderer) CubeBezier(b fixed.Point26_6, c fixed.Point26_6, d fixed.Point26_6) {
	rd.filler.CubeBezier(b, c, d)
	rd.dasher.CubeBezier(b, c, d)
}

func (rd *Renderer) Stop(closeLoop bool) {
	rd.filler.Stop(closeLoop)
	rd.dasher.Stop(closeLoop)
}

func (rd *Renderer) Fill() {
	rd.filler.Draw()
}

func (rd *Renderer) Stroke() {
	rd.dasher.Draw()
}
