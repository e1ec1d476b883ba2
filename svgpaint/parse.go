package svgpaint

import (
	"errors"
	"fmt"
	"strings"

	"github.com/benoitkugler/svgpaint/svgcolor"
)

// ErrInvalidSyntax is returned for paint values not matching the grammar
//
//	paint := "inherit" | "none" | color | "url(" iri ")" [ "none" | color ]
var ErrInvalidSyntax = errors.New("invalid paint syntax")

// Parse builds a paint server from the value of a fill or stroke
// attribute. The keyword "inherit" is a distinguished outcome: it
// returns (true, nil, nil) and the caller should reuse the parent
// style's server unchanged.
// Parsing is pure: the url() reference is kept as a raw string and only
// looked up in the document at resolution time.
func Parse(spec string) (inherit bool, s *Server, err error) {
	v := strings.TrimSpace(spec)
	switch {
	case v == "":
		return false, nil, fmt.Errorf("%w: empty value", ErrInvalidSyntax)
	case strings.EqualFold(v, "inherit"):
		return true, nil, nil
	case strings.EqualFold(v, "none"):
		return false, NewServer(None{}), nil
	case len(v) >= 4 && strings.EqualFold(v[:4], "url("):
		s, err = parseIri(v)
		return false, s, err
	}
	c, errc := svgcolor.Parse(v)
	if errc != nil {
		if len(strings.Fields(v)) > 1 {
			// several tokens without a leading url() reference
			return false, nil, fmt.Errorf("%w: %q", ErrInvalidSyntax, spec)
		}
		return false, nil, errc
	}
	return false, NewServer(Solid(c)), nil
}

func parseIri(v string) (*Server, error) {
	end := strings.IndexByte(v, ')')
	if end < 0 {
		return nil, fmt.Errorf("%w: unclosed url() in %q", ErrInvalidSyntax, v)
	}
	ref := strings.TrimSpace(v[4:end])
	ref = strings.Trim(ref, `'"`)
	ref = strings.TrimPrefix(ref, "#")
	if ref == "" {
		return nil, fmt.Errorf("%w: empty url() reference in %q", ErrInvalidSyntax, v)
	}
	iri := Iri{Ref: ref}
	if rest := strings.TrimSpace(v[end+1:]); rest != "" {
		if strings.EqualFold(rest, "none") {
			iri.Fallback = &Fallback{None: true}
		} else {
			c, err := svgcolor.Parse(rest)
			if err != nil {
				return nil, fmt.Errorf("%w: bad fallback in %q", ErrInvalidSyntax, v)
			}
			iri.Fallback = &Fallback{Color: c}
		}
	}
	return NewServer(iri), nil
}
