package svgtree

// TileRect is a solid-filled rectangle inside a pattern tile, in tile
// content coordinates. The defs reader keeps this subset of pattern
// content; richer content is up to the tile renderer collaborator.
type TileRect struct {
	Rect  Bounds
	Color TileColor
}

// TileColor is the fill of a TileRect, already resolved to plain ARGB.
type TileColor uint32

// PatternNode is a pattern definition. As with gradients, unset
// attributes are nil and inherit along the Href chain; the tile content
// inherits as a whole from the first node in the chain that has any.
type PatternNode struct {
	Id   string
	Href string

	Units        *GradientUnits // units of the tile rectangle
	ContentUnits *GradientUnits // units of the tile content
	ViewBox      *Bounds
	AspectRatio  *AspectRatio // viewBox fitting, defaults to xMidYMid meet
	Transform    *Matrix2D

	X, Y, Width, Height *float64

	Content []TileRect
}

func (p *PatternNode) ID() string     { return p.Id }
func (p *PatternNode) NodeKind() Kind { return KindPattern }

// EffectivePattern is a pattern with its inheritance chain applied and
// defaults filled in. ViewBox stays nil when no node in the chain set
// one.
type EffectivePattern struct {
	Units        GradientUnits
	ContentUnits GradientUnits
	ViewBox      *Bounds
	AspectRatio  AspectRatio
	Transform    Matrix2D

	X, Y, Width, Height float64

	Content []TileRect
}

func (p *PatternNode) mergeFrom(o *PatternNode) {
	if p.Units == nil {
		p.Units = o.Units
	}
	if p.ContentUnits == nil {
		p.ContentUnits = o.ContentUnits
	}
	if p.ViewBox == nil {
		p.ViewBox = o.ViewBox
	}
	if p.AspectRatio == nil {
		p.AspectRatio = o.AspectRatio
	}
	if p.Transform == nil {
		p.Transform = o.Transform
	}
	mergeFloats(&p.X, o.X)
	mergeFloats(&p.Y, o.Y)
	mergeFloats(&p.Width, o.Width)
	mergeFloats(&p.Height, o.Height)
	if len(p.Content) == 0 {
		p.Content = o.Content
	}
}

// MaterializePattern walks the href inheritance chain starting at p,
// collecting unset attributes, then applies the spec defaults
// (objectBoundingBox tile rect, userSpaceOnUse content, zero geometry).
// Walking the same node twice reports ErrCycle.
func MaterializePattern(p *PatternNode, lookup Lookup) (*EffectivePattern, error) {
	merged := *p
	visited := map[string]bool{p.Id: true}
	for cur := p; cur.Href != ""; {
		if visited[cur.Href] {
			return nil, ErrCycle
		}
		visited[cur.Href] = true
		next, ok := findPattern(lookup, cur.Href)
		if !ok {
			break
		}
		merged.mergeFrom(next)
		cur = next
	}

	eff := &EffectivePattern{
		Units:        ObjectBoundingBox,
		ContentUnits: UserSpaceOnUse,
		ViewBox:      merged.ViewBox,
		AspectRatio:  DefaultAspectRatio,
		Transform:    Identity,
		X:            floatOr(merged.X, 0),
		Y:            floatOr(merged.Y, 0),
		Width:        floatOr(merged.Width, 0),
		Height:       floatOr(merged.Height, 0),
		Content:      merged.Content,
	}
	if merged.Units != nil {
		eff.Units = *merged.Units
	}
	if merged.ContentUnits != nil {
		eff.ContentUnits = *merged.ContentUnits
	}
	if merged.AspectRatio != nil {
		eff.AspectRatio = *merged.AspectRatio
	}
	if merged.Transform != nil {
		eff.Transform = *merged.Transform
	}
	return eff, nil
}

func findPattern(lookup Lookup, id string) (*PatternNode, bool) {
	if lookup == nil {
		return nil, false
	}
	p, ok := lookup.FindByID(id).(*PatternNode)
	return p, ok
}
