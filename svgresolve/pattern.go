package svgresolve

import (
	"github.com/benoitkugler/svgpaint/svgtree"
)

const epsilonF = 1e-5

// patternPaint materializes the pattern's inheritance chain, sizes the
// tile against the shape bounding box, and has the tile renderer
// collaborator rasterize the content once.
// ok is false when the pattern is unusable (cycle, no content, empty
// tile, no renderer) and the caller should fall back.
func (ctx *Context) patternPaint(p *svgtree.PatternNode, opacity uint8, bbox svgtree.Bounds) (Paint, bool) {
	eff, err := svgtree.MaterializePattern(p, ctx.Lookup)
	if err != nil {
		ctx.warn("pattern", p.Id, "degraded:", err)
		return nil, false
	}
	if len(eff.Content) == 0 {
		ctx.warn("pattern", p.Id, "has no content")
		return nil, false
	}
	if ctx.Tiles == nil {
		return nil, false
	}

	// place one tile in user space
	rect := svgtree.Bounds{X: eff.X, Y: eff.Y, W: eff.Width, H: eff.Height}
	if eff.Units == svgtree.ObjectBoundingBox {
		rect = svgtree.Bounds{
			X: bbox.X + eff.X*bbox.W,
			Y: bbox.Y + eff.Y*bbox.H,
			W: eff.Width * bbox.W,
			H: eff.Height * bbox.H,
		}
	}
	if rect.W < epsilonF || rect.H < epsilonF {
		ctx.warn("pattern", p.Id, "has an empty tile")
		return nil, false
	}
	// the rasterizer samples through the inverse transform
	if _, ok := eff.Transform.Invert(); !ok {
		ctx.warn("pattern", p.Id, "has a singular transform")
		return nil, false
	}

	width, height := int(rect.W+0.5), int(rect.H+0.5)
	tile := ctx.Tiles.RenderTile(eff, width, height)
	if tile == nil {
		ctx.warn("pattern", p.Id, "tile content could not be rendered")
		return nil, false
	}
	return TilePaint{Tile: tile, Rect: rect, Transform: eff.Transform, Opacity: opacity}, true
}
