package svgtree

import (
	"encoding/xml"
	"errors"
	"io"
	"log"
	"math"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/benoitkugler/svgpaint/svgcolor"
)

// Reads paint server definitions (linearGradient, radialGradient,
// pattern and their stops) out of an SVG document, ignoring everything
// else. This is a convenience for building a Defs store; a full
// document parser may also assemble the nodes directly.

var errParamMismatch = errors.New("parameter mismatch")

// defsCursor is used while parsing defs out of SVG files
type defsCursor struct {
	defs      *Defs
	grad      *GradientNode
	pattern   *PatternNode
	errorMode ErrorMode
}

// ReadDefs collects the paint server definitions of the SVG document in
// `stream` into a Defs store. errMode determines if the reader ignores,
// errors out, or logs a warning when it meets a malformed definition
// attribute.
func ReadDefs(stream io.Reader, errMode ErrorMode) (*Defs, error) {
	cursor := &defsCursor{defs: NewDefs(), errorMode: errMode}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	seenTag := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenTag {
					return nil, errors.New("invalid svg xml document")
				}
				break
			}
			return cursor.defs, err
		}
		switch se := t.(type) {
		case xml.StartElement:
			seenTag = true
			if err := cursor.readStartElement(se); err != nil {
				return cursor.defs, err
			}
		case xml.EndElement:
			switch se.Name.Local {
			case "linearGradient", "radialGradient":
				cursor.grad = nil
			case "pattern":
				cursor.pattern = nil
			}
		}
	}
	return cursor.defs, nil
}

func (c *defsCursor) readStartElement(se xml.StartElement) error {
	var err error
	switch se.Name.Local {
	case "linearGradient":
		err = c.linearGradient(se.Attr)
	case "radialGradient":
		err = c.radialGradient(se.Attr)
	case "stop":
		err = c.stop(se.Attr)
	case "pattern":
		err = c.patternElt(se.Attr)
	case "rect":
		err = c.tileRect(se.Attr)
	default:
		return nil
	}
	if err != nil {
		return c.handleError(err)
	}
	return nil
}

func (c *defsCursor) handleError(err error) error {
	switch c.errorMode {
	case StrictErrorMode:
		return err
	case WarnErrorMode:
		log.Println("svgtree: skipping malformed definition:", err)
	}
	return nil
}

func (c *defsCursor) linearGradient(attrs []xml.Attr) error {
	grad := &GradientNode{}
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "id":
			grad.Id = attr.Value
		case "x1":
			grad.X1, err = readFractionPtr(attr.Value)
		case "y1":
			grad.Y1, err = readFractionPtr(attr.Value)
		case "x2":
			grad.X2, err = readFractionPtr(attr.Value)
		case "y2":
			grad.Y2, err = readFractionPtr(attr.Value)
		default:
			err = readCommonGradAttr(grad, attr)
		}
		if err != nil {
			return err
		}
	}
	c.grad = grad
	return c.defs.Add(grad)
}

func (c *defsCursor) radialGradient(attrs []xml.Attr) error {
	grad := &GradientNode{IsRadial: true}
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "id":
			grad.Id = attr.Value
		case "cx":
			grad.Cx, err = readFractionPtr(attr.Value)
		case "cy":
			grad.Cy, err = readFractionPtr(attr.Value)
		case "r":
			grad.R, err = readFractionPtr(attr.Value)
		case "fx":
			grad.Fx, err = readFractionPtr(attr.Value)
		case "fy":
			grad.Fy, err = readFractionPtr(attr.Value)
		case "fr":
			grad.Fr, err = readFractionPtr(attr.Value)
		default:
			err = readCommonGradAttr(grad, attr)
		}
		if err != nil {
			return err
		}
	}
	c.grad = grad
	return c.defs.Add(grad)
}

// readCommonGradAttr handles the attributes shared by both gradient kinds.
func readCommonGradAttr(grad *GradientNode, attr xml.Attr) error {
	switch attr.Name.Local {
	case "href":
		grad.Href = strings.TrimPrefix(attr.Value, "#")
	case "gradientUnits":
		u, err := parseUnits(attr.Value)
		if err != nil {
			return err
		}
		grad.Units = &u
	case "spreadMethod":
		switch attr.Value {
		case "pad":
			s := PadSpread
			grad.Spread = &s
		case "reflect":
			s := ReflectSpread
			grad.Spread = &s
		case "repeat":
			s := RepeatSpread
			grad.Spread = &s
		default:
			return errParamMismatch
		}
	case "gradientTransform":
		m, err := parseTransform(attr.Value)
		if err != nil {
			return err
		}
		grad.Transform = &m
	}
	return nil
}

func (c *defsCursor) stop(attrs []xml.Attr) error {
	if c.grad == nil {
		return nil
	}
	stop := GradStop{Opacity: 1.0}
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "offset":
			stop.Offset, err = readFraction(attr.Value)
		case "stop-color":
			stop.Color, err = svgcolor.Parse(attr.Value)
		case "stop-opacity":
			stop.Opacity, err = strconv.ParseFloat(attr.Value, 64)
		}
		if err != nil {
			return err
		}
	}
	c.grad.Stops = append(c.grad.Stops, stop)
	return nil
}

func (c *defsCursor) patternElt(attrs []xml.Attr) error {
	pattern := &PatternNode{}
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "id":
			pattern.Id = attr.Value
		case "href":
			pattern.Href = strings.TrimPrefix(attr.Value, "#")
		case "x":
			pattern.X, err = readFractionPtr(attr.Value)
		case "y":
			pattern.Y, err = readFractionPtr(attr.Value)
		case "width":
			pattern.Width, err = readFractionPtr(attr.Value)
		case "height":
			pattern.Height, err = readFractionPtr(attr.Value)
		case "patternUnits":
			var u GradientUnits
			u, err = parseUnits(attr.Value)
			if err == nil {
				pattern.Units = &u
			}
		case "patternContentUnits":
			var u GradientUnits
			u, err = parseUnits(attr.Value)
			if err == nil {
				pattern.ContentUnits = &u
			}
		case "preserveAspectRatio":
			var ar AspectRatio
			ar, err = ParseAspectRatio(attr.Value)
			if err == nil {
				pattern.AspectRatio = &ar
			}
		case "viewBox":
			var points []float64
			points, err = getPoints(attr.Value)
			if err == nil && len(points) != 4 {
				err = errParamMismatch
			}
			if err == nil {
				pattern.ViewBox = &Bounds{points[0], points[1], points[2], points[3]}
			}
		case "patternTransform":
			var m Matrix2D
			m, err = parseTransform(attr.Value)
			if err == nil {
				pattern.Transform = &m
			}
		}
		if err != nil {
			return err
		}
	}
	c.pattern = pattern
	return c.defs.Add(pattern)
}

// tileRect reads a solid-filled rect inside the current pattern element;
// rects met outside a pattern belong to the shape tree and are skipped.
func (c *defsCursor) tileRect(attrs []xml.Attr) error {
	if c.pattern == nil {
		return nil
	}
	var (
		rect Bounds
		fill = svgcolor.Color{ARGB: 0xff000000}
		err  error
	)
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "x":
			rect.X, err = strconv.ParseFloat(attr.Value, 64)
		case "y":
			rect.Y, err = strconv.ParseFloat(attr.Value, 64)
		case "width":
			rect.W, err = strconv.ParseFloat(attr.Value, 64)
		case "height":
			rect.H, err = strconv.ParseFloat(attr.Value, 64)
		case "fill":
			fill, err = svgcolor.Parse(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	if fill.IsCurrentColor {
		fill = svgcolor.Color{ARGB: 0xff000000} // no style context inside a tile
	}
	c.pattern.Content = append(c.pattern.Content, TileRect{Rect: rect, Color: TileColor(fill.ARGB)})
	return nil
}

func parseUnits(v string) (GradientUnits, error) {
	switch v {
	case "objectBoundingBox":
		return ObjectBoundingBox, nil
	case "userSpaceOnUse":
		return UserSpaceOnUse, nil
	}
	return 0, errParamMismatch
}

func readFraction(v string) (f float64, err error) {
	v = strings.TrimSpace(v)
	d := 1.0
	if strings.HasSuffix(v, "%") {
		d = 100
		v = strings.TrimSuffix(v, "%")
	}
	f, err = strconv.ParseFloat(v, 64)
	f /= d
	return
}

func readFractionPtr(v string) (*float64, error) {
	f, err := readFraction(v)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// splitOnCommaOrSpace returns a list of strings after splitting the input on comma and space delimiters
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || r == ' '
		})
}

func getPoints(v string) ([]float64, error) {
	chunks := splitOnCommaOrSpace(v)
	points := make([]float64, len(chunks))
	for i, chunk := range chunks {
		f, err := strconv.ParseFloat(strings.TrimSpace(chunk), 64)
		if err != nil {
			return nil, err
		}
		points[i] = f
	}
	return points, nil
}

func readTransformAttr(m1 Matrix2D, points []float64, k string) (Matrix2D, error) {
	ln := len(points)
	switch k {
	case "rotate":
		if ln == 1 {
			m1 = m1.Rotate(points[0] * math.Pi / 180)
		} else if ln == 3 {
			m1 = m1.Translate(points[1], points[2]).
				Rotate(points[0]*math.Pi/180).
				Translate(-points[1], -points[2])
		} else {
			return m1, errParamMismatch
		}
	case "translate":
		if ln == 1 {
			m1 = m1.Translate(points[0], 0)
		} else if ln == 2 {
			m1 = m1.Translate(points[0], points[1])
		} else {
			return m1, errParamMismatch
		}
	case "skewx":
		if ln == 1 {
			m1 = m1.SkewX(points[0] * math.Pi / 180)
		} else {
			return m1, errParamMismatch
		}
	case "skewy":
		if ln == 1 {
			m1 = m1.SkewY(points[0] * math.Pi / 180)
		} else {
			return m1, errParamMismatch
		}
	case "scale":
		if ln == 1 {
			m1 = m1.Scale(points[0], points[0])
		} else if ln == 2 {
			m1 = m1.Scale(points[0], points[1])
		} else {
			return m1, errParamMismatch
		}
	case "matrix":
		if ln == 6 {
			m1 = m1.Mult(Matrix2D{
				A: points[0],
				B: points[1],
				C: points[2],
				D: points[3],
				E: points[4],
				F: points[5]})
		} else {
			return m1, errParamMismatch
		}
	default:
		return m1, errParamMismatch
	}
	return m1, nil
}

func parseTransform(v string) (Matrix2D, error) {
	ts := strings.Split(v, ")")
	m1 := Identity
	for _, t := range ts {
		t = strings.TrimSpace(t)
		if len(t) == 0 {
			continue
		}
		d := strings.Split(t, "(")
		if len(d) != 2 || len(d[1]) < 1 {
			return m1, errParamMismatch // badly formed transformation
		}
		points, err := getPoints(d[1])
		if err != nil {
			return m1, err
		}
		m1, err = readTransformAttr(m1, points, strings.ToLower(strings.TrimSpace(d[0])))
		if err != nil {
			return m1, err
		}
	}
	return m1, nil
}
