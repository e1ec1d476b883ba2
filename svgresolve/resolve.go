// Resolves parsed paint servers into renderer-ready paints: url()
// references are looked up in the definition tree, materialized through
// their inheritance chain, and degraded to their fallback when anything
// goes wrong. Resolution never fails hard; a dangling reference at draw
// time must not abort the rendering of the rest of the document.
package svgresolve

import (
	"image"
	"log"

	"github.com/srwiley/rasterx"

	"github.com/benoitkugler/svgpaint/svgcolor"
	"github.com/benoitkugler/svgpaint/svgpaint"
	"github.com/benoitkugler/svgpaint/svgtree"
)

// Paint is the resolved, ephemeral output handed to the drawing
// context: Nothing, Flat, GradientPaint or TilePaint.
type Paint interface {
	isResolved()
}

// Nothing means no draw call should be issued for the shape.
type Nothing struct{}

// Flat is a plain color fill.
type Flat struct {
	ARGB    uint32
	Opacity uint8
}

// GradientPaint carries a positioned gradient, ready for the
// rasterizer.
type GradientPaint struct {
	Gradient rasterx.Gradient
	Opacity  uint8
}

// TilePaint repeats a rendered pattern tile over the shape. Rect is the
// placement of one tile in pattern space; Transform maps pattern space
// to user space (the patternTransform attribute, identity when absent).
type TilePaint struct {
	Tile      *image.RGBA
	Rect      svgtree.Bounds
	Transform svgtree.Matrix2D
	Opacity   uint8
}

func (Nothing) isResolved()       {}
func (Flat) isResolved()          {}
func (GradientPaint) isResolved() {}
func (TilePaint) isResolved()     {}

// ColorSource supplies the inherited currentColor value,
// consulted only for paints carrying the currentColor marker.
type ColorSource interface {
	CurrentColor() uint32
}

// TileRenderer rasterizes the content of a materialized pattern into a
// surface of the given pixel size. A nil result marks the content as
// unusable, triggering the fallback cascade.
type TileRenderer interface {
	RenderTile(def *svgtree.EffectivePattern, width, height int) *image.RGBA
}

// Context groups the collaborators needed at resolution time. The
// zero value resolves solid paints and degrades every reference to its
// fallback.
//
// Resolution only reads the definition tree, so one Context may be
// shared by concurrent resolutions as long as the tree is not mutated
// during the render pass.
type Context struct {
	Lookup svgtree.Lookup
	Colors ColorSource
	Tiles  TileRenderer

	// ErrorMode controls diagnostics for degraded references.
	// Resolution falls back silently in IgnoreErrorMode and logs in
	// WarnErrorMode; there is no hard-failure mode here.
	ErrorMode svgtree.ErrorMode
}

// Resolve turns the paint server into a renderer-ready paint for a
// shape with the given bounding box. opacity is the effective paint
// opacity. A nil server paints nothing.
func (ctx *Context) Resolve(s *svgpaint.Server, opacity uint8, bbox svgtree.Bounds) Paint {
	if s == nil {
		return Nothing{}
	}
	switch p := s.Paint().(type) {
	case svgpaint.None:
		return Nothing{}
	case svgpaint.Solid:
		return ctx.flat(svgcolor.Color(p), opacity)
	case svgpaint.Iri:
		return ctx.resolveIri(p, opacity, bbox)
	}
	return Nothing{}
}

func (ctx *Context) flat(c svgcolor.Color, opacity uint8) Paint {
	argb := c.ARGB
	if c.IsCurrentColor {
		argb = 0xff000000 // initial value of the color property
		if ctx.Colors != nil {
			argb = ctx.Colors.CurrentColor()
		}
	}
	return Flat{ARGB: argb, Opacity: opacity}
}

// resolveIri looks the reference up and dispatches on the kind of the
// target. Not found, wrong kind, inheritance cycles and empty results
// all end in the fallback.
func (ctx *Context) resolveIri(iri svgpaint.Iri, opacity uint8, bbox svgtree.Bounds) Paint {
	var node svgtree.Node
	if ctx.Lookup != nil {
		node = ctx.Lookup.FindByID(iri.Ref)
	}
	switch n := node.(type) {
	case nil:
		ctx.warn("reference not found:", iri.Ref)
	case *svgtree.GradientNode:
		if p, ok := ctx.gradientPaint(n, opacity, bbox); ok {
			return p
		}
	case *svgtree.PatternNode:
		if p, ok := ctx.patternPaint(n, opacity, bbox); ok {
			return p
		}
	default:
		ctx.warn("reference is not a paint server:", iri.Ref)
	}
	return ctx.fallback(iri, opacity)
}

func (ctx *Context) fallback(iri svgpaint.Iri, opacity uint8) Paint {
	fb := iri.Fallback
	if fb == nil || fb.None {
		return Nothing{}
	}
	return ctx.flat(fb.Color, opacity)
}

func (ctx *Context) warn(msg ...interface{}) {
	if ctx.ErrorMode == svgtree.WarnErrorMode {
		log.Println(append([]interface{}{"svgresolve:"}, msg...)...)
	}
}
