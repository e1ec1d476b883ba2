package svgtree

import (
	"errors"
	"math"
	"strings"
)

var errInvalidAspectRatio = errors.New(`expected "[defer] <align> [meet | slice]"`)

// AlignMode places the scaled viewBox inside the viewport.
type AlignMode byte

const (
	// AlignNone disables uniform scaling: the viewBox is stretched onto
	// the viewport.
	AlignNone AlignMode = iota
	XMinYMin
	XMidYMin
	XMaxYMin
	XMinYMid
	XMidYMid
	XMaxYMid
	XMinYMax
	XMidYMax
	XMaxYMax
)

// FitMode selects how much of the viewport the scaled viewBox covers.
type FitMode byte

const (
	// Meet keeps the whole viewBox visible inside the viewport.
	Meet FitMode = iota
	// Slice covers the whole viewport, cropping the viewBox.
	Slice
)

// AspectRatio is a parsed preserveAspectRatio attribute.
type AspectRatio struct {
	Defer bool
	Align AlignMode
	Fit   FitMode
}

// DefaultAspectRatio is the initial value, "xMidYMid meet".
var DefaultAspectRatio = AspectRatio{Align: XMidYMid, Fit: Meet}

var alignModes = map[string]AlignMode{
	"none":     AlignNone,
	"xMinYMin": XMinYMin,
	"xMidYMin": XMidYMin,
	"xMaxYMin": XMaxYMin,
	"xMinYMid": XMinYMid,
	"xMidYMid": XMidYMid,
	"xMaxYMid": XMaxYMid,
	"xMinYMax": XMinYMax,
	"xMidYMax": XMidYMax,
	"xMaxYMax": XMaxYMax,
}

// ParseAspectRatio reads the "[defer] <align> [meet | slice]" grammar
// of the preserveAspectRatio attribute.
func ParseAspectRatio(v string) (AspectRatio, error) {
	out := DefaultAspectRatio
	fields := strings.Fields(v)
	if len(fields) != 0 && fields[0] == "defer" {
		out.Defer = true
		fields = fields[1:]
	}
	if len(fields) == 0 || len(fields) > 2 {
		return out, errInvalidAspectRatio
	}
	align, ok := alignModes[fields[0]]
	if !ok {
		return out, errInvalidAspectRatio
	}
	out.Align = align
	if len(fields) == 2 {
		switch fields[1] {
		case "meet":
			out.Fit = Meet
		case "slice":
			out.Fit = Slice
		default:
			return out, errInvalidAspectRatio
		}
	}
	return out, nil
}

type align1D byte

const (
	alignMin align1D = iota
	alignMid
	alignMax
)

func (m align1D) place(destPos, destSize, objSize float64) float64 {
	switch m {
	case alignMid:
		return destPos + (destSize-objSize)/2
	case alignMax:
		return destPos + destSize - objSize
	}
	return destPos
}

func (a AlignMode) split() (x, y align1D) {
	switch a {
	case XMinYMin:
		return alignMin, alignMin
	case XMidYMin:
		return alignMid, alignMin
	case XMaxYMin:
		return alignMax, alignMin
	case XMinYMid:
		return alignMin, alignMid
	case XMidYMid:
		return alignMid, alignMid
	case XMaxYMid:
		return alignMax, alignMid
	case XMinYMax:
		return alignMin, alignMax
	case XMidYMax:
		return alignMid, alignMax
	}
	return alignMax, alignMax
}

// Compute fits an object of size objW x objH into the given viewport,
// returning the position and size of the scaled object.
func (a AspectRatio) Compute(objW, objH, destX, destY, destW, destH float64) (x, y, w, h float64) {
	if a.Align == AlignNone {
		return destX, destY, destW, destH
	}
	wFactor, hFactor := destW/objW, destH/objH
	var factor float64
	if a.Fit == Meet {
		factor = math.Min(wFactor, hFactor)
	} else {
		factor = math.Max(wFactor, hFactor)
	}
	w, h = objW*factor, objH*factor
	xAlign, yAlign := a.Align.split()
	x = xAlign.place(destX, destW, w)
	y = yAlign.place(destY, destH, h)
	return x, y, w, h
}
