// seehuhn.de/go/haru - a safe Go binding for the Haru PDF library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package haru

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/haru/native"
)

// This file implements path construction and path painting.  The wrapper
// keeps its own copy of the page's graphics mode so that segment operators
// without an open path, or painting operators without a path, are rejected
// with a [PathStateError] before any native call is made.

// MoveTo starts a new subpath at (x, y).
func (p *Page) MoveTo(x, y float64) error {
	if err := p.isValid("MoveTo", modePage|modePath); err != nil {
		return err
	}
	if err := checkCoords("MoveTo", x, y); err != nil {
		return err
	}
	if err := p.check("MoveTo", p.doc.eng.PageMoveTo(p.handle, x, y), classDraw); err != nil {
		return err
	}
	p.mode = modePath
	p.subpathClosed = false
	return nil
}

// LineTo appends a straight line segment from the current point to (x, y).
// A path must have been started with [Page.MoveTo].
func (p *Page) LineTo(x, y float64) error {
	if err := p.isValid("LineTo", modePath); err != nil {
		return err
	}
	if err := checkCoords("LineTo", x, y); err != nil {
		return err
	}
	if err := p.check("LineTo", p.doc.eng.PageLineTo(p.handle, x, y), classDraw); err != nil {
		return err
	}
	p.subpathClosed = false
	return nil
}

// CurveTo appends a cubic Bézier curve from the current point to (x3, y3),
// using (x1, y1) and (x2, y2) as control points.
func (p *Page) CurveTo(x1, y1, x2, y2, x3, y3 float64) error {
	if err := p.isValid("CurveTo", modePath); err != nil {
		return err
	}
	if err := checkCoords("CurveTo", x1, y1, x2, y2, x3, y3); err != nil {
		return err
	}
	s := p.doc.eng.PageCurveTo(p.handle, x1, y1, x2, y2, x3, y3)
	if err := p.check("CurveTo", s, classDraw); err != nil {
		return err
	}
	p.subpathClosed = false
	return nil
}

// CurveTo2 appends a cubic Bézier curve from the current point to (x3, y3),
// using the current point and (x2, y2) as control points.
func (p *Page) CurveTo2(x2, y2, x3, y3 float64) error {
	if err := p.isValid("CurveTo2", modePath); err != nil {
		return err
	}
	if err := checkCoords("CurveTo2", x2, y2, x3, y3); err != nil {
		return err
	}
	s := p.doc.eng.PageCurveTo2(p.handle, x2, y2, x3, y3)
	if err := p.check("CurveTo2", s, classDraw); err != nil {
		return err
	}
	p.subpathClosed = false
	return nil
}

// CurveTo3 appends a cubic Bézier curve from the current point to (x3, y3),
// using (x1, y1) and (x3, y3) as control points.
func (p *Page) CurveTo3(x1, y1, x3, y3 float64) error {
	if err := p.isValid("CurveTo3", modePath); err != nil {
		return err
	}
	if err := checkCoords("CurveTo3", x1, y1, x3, y3); err != nil {
		return err
	}
	s := p.doc.eng.PageCurveTo3(p.handle, x1, y1, x3, y3)
	if err := p.check("CurveTo3", s, classDraw); err != nil {
		return err
	}
	p.subpathClosed = false
	return nil
}

// Rectangle appends a rectangle with lower-left corner (x, y) to the
// current path as a closed subpath, starting a path if none is open.
func (p *Page) Rectangle(x, y, width, height float64) error {
	if err := p.isValid("Rectangle", modePage|modePath); err != nil {
		return err
	}
	if err := checkCoords("Rectangle", x, y); err != nil {
		return err
	}
	if err := checkNonNegative("Rectangle", "width", width); err != nil {
		return err
	}
	if err := checkNonNegative("Rectangle", "height", height); err != nil {
		return err
	}
	s := p.doc.eng.PageRectangle(p.handle, x, y, width, height)
	if err := p.check("Rectangle", s, classDraw); err != nil {
		return err
	}
	p.mode = modePath
	p.subpathClosed = true
	return nil
}

// Circle appends a circle with the given center and radius to the current
// path as a closed subpath, starting a path if none is open.
func (p *Page) Circle(x, y, radius float64) error {
	if err := p.isValid("Circle", modePage|modePath); err != nil {
		return err
	}
	if err := checkCoords("Circle", x, y); err != nil {
		return err
	}
	if err := checkPositive("Circle", "radius", radius); err != nil {
		return err
	}
	s := p.doc.eng.PageCircle(p.handle, x, y, radius)
	if err := p.check("Circle", s, classDraw); err != nil {
		return err
	}
	p.mode = modePath
	p.subpathClosed = true
	return nil
}

// Arc appends a circular arc to the current path, starting a path if none
// is open.  Angles are in degrees, measured clockwise from the upward
// vertical through the center.
func (p *Page) Arc(x, y, radius, angle0, angle1 float64) error {
	if err := p.isValid("Arc", modePage|modePath); err != nil {
		return err
	}
	if err := checkCoords("Arc", x, y, angle0, angle1); err != nil {
		return err
	}
	if err := checkPositive("Arc", "radius", radius); err != nil {
		return err
	}
	s := p.doc.eng.PageArc(p.handle, x, y, radius, angle0, angle1)
	if err := p.check("Arc", s, classDraw); err != nil {
		return err
	}
	p.mode = modePath
	p.subpathClosed = false
	return nil
}

// ClosePath appends a straight line from the current point back to the
// start of the current subpath.  Closing an already-closed subpath is a
// no-op.
func (p *Page) ClosePath() error {
	if err := p.isValid("ClosePath", modePath); err != nil {
		return err
	}
	if p.subpathClosed {
		return nil
	}
	if err := p.check("ClosePath", p.doc.eng.PageClosePath(p.handle), classDraw); err != nil {
		return err
	}
	p.subpathClosed = true
	return nil
}

// Stroke paints the current path and ends it.
func (p *Page) Stroke() error {
	return p.endPathWith("Stroke", p.doc.eng.PageStroke)
}

// Fill fills the current path using the nonzero winding number rule and
// ends it.  Open subpaths are implicitly closed.
func (p *Page) Fill() error {
	return p.endPathWith("Fill", p.doc.eng.PageFill)
}

// FillEvenOdd fills the current path using the even-odd rule and ends it.
func (p *Page) FillEvenOdd() error {
	return p.endPathWith("FillEvenOdd", p.doc.eng.PageEofill)
}

// FillStroke fills and strokes the current path and ends it.
func (p *Page) FillStroke() error {
	return p.endPathWith("FillStroke", p.doc.eng.PageFillStroke)
}

// FillStrokeEvenOdd fills the current path using the even-odd rule, strokes
// it, and ends it.
func (p *Page) FillStrokeEvenOdd() error {
	return p.endPathWith("FillStrokeEvenOdd", p.doc.eng.PageEofillStroke)
}

// CloseAndStroke closes the current subpath, then strokes the path and
// ends it.
func (p *Page) CloseAndStroke() error {
	return p.endPathWith("CloseAndStroke", p.doc.eng.PageClosePathStroke)
}

// CloseFillStroke closes the current subpath, fills the path using the
// nonzero winding number rule, strokes it, and ends it.
func (p *Page) CloseFillStroke() error {
	return p.endPathWith("CloseFillStroke", p.doc.eng.PageClosePathFillStroke)
}

// CloseFillStrokeEvenOdd closes the current subpath, fills the path using
// the even-odd rule, strokes it, and ends it.
func (p *Page) CloseFillStrokeEvenOdd() error {
	return p.endPathWith("CloseFillStrokeEvenOdd", p.doc.eng.PageClosePathEofillStroke)
}

// EndPath ends the current path without filling or stroking it.
func (p *Page) EndPath() error {
	return p.endPathWith("EndPath", p.doc.eng.PageEndPath)
}

func (p *Page) endPathWith(op string, f func(native.PageHandle) native.Status) error {
	if err := p.isValid(op, modePath); err != nil {
		return err
	}
	if err := p.check(op, f(p.handle), classDraw); err != nil {
		return err
	}
	p.mode = modePage
	p.subpathClosed = false
	return nil
}

// CurrentPos returns the current position for path construction.  If the
// page is not in path mode the result is the origin.
func (p *Page) CurrentPos() (vec.Vec2, error) {
	if err := p.doc.alive(); err != nil {
		return vec.Vec2{}, err
	}
	x, y := p.doc.eng.PageCurrentPos(p.handle)
	return vec.Vec2{X: x, Y: y}, nil
}

// Concat modifies the current transformation matrix of the page by
// multiplying m from the left.  The matrix entries must be finite.
func (p *Page) Concat(m matrix.Matrix) error {
	if err := p.isValid("Concat", modePage); err != nil {
		return err
	}
	if err := checkCoords("Concat", m[0], m[1], m[2], m[3], m[4], m[5]); err != nil {
		return err
	}
	s := p.doc.eng.PageConcat(p.handle, m[0], m[1], m[2], m[3], m[4], m[5])
	return p.check("Concat", s, classDraw)
}
