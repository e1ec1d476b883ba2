// Provides the paint server abstraction behind SVG fill and stroke
// attributes: the textual paint value is parsed once into a shared,
// immutable Server, resolved against the document tree at draw time
// (see the svgresolve package).
package svgpaint

import (
	"sync/atomic"

	"github.com/benoitkugler/svgpaint/svgcolor"
)

// Paint is the payload of a paint server: either None, Solid or Iri.
type Paint interface {
	isPaint()
}

// None paints nothing. It is an explicit author choice,
// distinct from an unset (inherited) paint.
type None struct{}

// Solid is a color literal, possibly the currentColor marker.
type Solid svgcolor.Color

// Iri references a gradient or pattern definition elsewhere in the
// document, with an optional fallback used when the reference can't be
// resolved. Ref is never empty.
type Iri struct {
	Ref      string
	Fallback *Fallback // nil when no fallback was given
}

// Fallback is the trailing token after a url() reference:
// the keyword "none", or a color.
type Fallback struct {
	None  bool // when set, an unresolvable reference paints nothing
	Color svgcolor.Color
}

func (None) isPaint()  {}
func (Solid) isPaint() {}
func (Iri) isPaint()   {}

// Server is a reference-counted, immutable paint value. Every shape
// whose computed style uses the same paint string may alias the same
// Server; the value is released when the last reference is dropped.
// The refcount is atomic, so servers may be shared across goroutines.
type Server struct {
	refcnt int32
	paint  Paint
}

// NewServer wraps the paint with an initial reference count of one,
// owned by the caller.
func NewServer(p Paint) *Server {
	return &Server{refcnt: 1, paint: p}
}

// Paint returns the payload. It never changes after construction.
func (s *Server) Paint() Paint { return s.paint }

// Ref acquires an additional reference.
func (s *Server) Ref() { atomic.AddInt32(&s.refcnt, 1) }

// Unref drops one reference, reporting whether this was the last one.
func (s *Server) Unref() bool {
	return atomic.AddInt32(&s.refcnt, -1) == 0
}

func (s *Server) refs() int32 { return atomic.LoadInt32(&s.refcnt) }
