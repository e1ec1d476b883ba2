// Stores gradient and pattern definitions referenced by url() paint
// values, and materializes their href inheritance chains into fully
// specified definitions the fallback cascade can consume.
package svgtree

import "errors"

var (
	errZeroLengthID = errors.New("definition id must not be empty")

	// ErrCycle reports a self- or mutual-reference in an href
	// inheritance chain.
	ErrCycle = errors.New("definition inheritance cycle")
)

// Kind discriminates paint server definitions from other elements.
type Kind uint8

const (
	KindOther Kind = iota
	KindLinearGradient
	KindRadialGradient
	KindPattern
)

func (k Kind) String() string {
	switch k {
	case KindLinearGradient:
		return "linearGradient"
	case KindRadialGradient:
		return "radialGradient"
	case KindPattern:
		return "pattern"
	default:
		return "<other>"
	}
}

// IsGradient reports whether the kind is one of the two gradient kinds.
func (k Kind) IsGradient() bool {
	return k == KindLinearGradient || k == KindRadialGradient
}

// Node is an element of the document tree as seen by paint resolution.
// Nodes are owned by the document; resolution only borrows them and
// never mutates them.
type Node interface {
	ID() string
	NodeKind() Kind
}

// Lookup finds a node by the id a url() reference points at,
// returning nil when there is none.
type Lookup interface {
	FindByID(id string) Node
}

// Bounds defines a bounding box, such as a viewport or a path extent.
type Bounds struct{ X, Y, W, H float64 }

// Defs is an in-memory id-indexed store of definition nodes,
// usable as the Lookup collaborator of the resolver.
type Defs struct {
	nodes map[string]Node
}

func NewDefs() *Defs {
	return &Defs{nodes: make(map[string]Node)}
}

// Add registers the node under its id, replacing any previous
// definition with the same id (last one wins, as in a parsed document).
func (d *Defs) Add(n Node) error {
	if n.ID() == "" {
		return errZeroLengthID
	}
	d.nodes[n.ID()] = n
	return nil
}

func (d *Defs) FindByID(id string) Node { return d.nodes[id] }

// ErrorMode determines how the defs reader reacts to
// elements or attributes it does not handle.
type ErrorMode uint8

const (
	IgnoreErrorMode ErrorMode = iota
	WarnErrorMode
	StrictErrorMode
)
