package svgraster

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/benoitkugler/svgpaint/svgresolve"
	"github.com/benoitkugler/svgpaint/svgtree"
)

var _ svgresolve.TileRenderer = DefsTileRenderer{}

// DefsTileRenderer rasterizes the solid-filled tile content kept on
// pattern definitions (see svgtree.TileRect), so that pattern paints
// resolve fully in-process. Richer pattern content needs a dedicated
// TileRenderer implementation.
type DefsTileRenderer struct{}

// RenderTile draws the pattern content into a width x height surface.
// Content coordinates are mapped from the pattern viewBox when there is
// one (fitted per its preserveAspectRatio value), from the unit square
// for objectBoundingBox content units, and taken as tile pixels
// otherwise.
func (DefsTileRenderer) RenderTile(def *svgtree.EffectivePattern, width, height int) *image.RGBA {
	if width <= 0 || height <= 0 || len(def.Content) == 0 {
		return nil
	}
	sx, sy := 1.0, 1.0
	ox, oy := 0.0, 0.0
	switch {
	case def.ViewBox != nil && def.ViewBox.W > 0 && def.ViewBox.H > 0:
		x, y, w, h := def.AspectRatio.Compute(def.ViewBox.W, def.ViewBox.H,
			0, 0, float64(width), float64(height))
		sx = w / def.ViewBox.W
		sy = h / def.ViewBox.H
		ox = def.ViewBox.X - x/sx
		oy = def.ViewBox.Y - y/sy
	case def.ContentUnits == svgtree.ObjectBoundingBox:
		sx, sy = float64(width), float64(height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for _, cell := range def.Content {
		rect := image.Rect(
			int((cell.Rect.X-ox)*sx+0.5),
			int((cell.Rect.Y-oy)*sy+0.5),
			int((cell.Rect.X-ox+cell.Rect.W)*sx+0.5),
			int((cell.Rect.Y-oy+cell.Rect.H)*sy+0.5),
		).Intersect(img.Bounds())
		if rect.Empty() {
			continue
		}
		draw.Draw(img, rect, image.NewUniform(tileColorToNRGBA(cell.Color)), image.Point{}, draw.Over)
	}
	return img
}

func tileColorToNRGBA(c svgtree.TileColor) color.NRGBA {
	return argbToNRGBA(uint32(c))
}
