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
	"fmt"
	"math"

	"seehuhn.de/go/haru/native"
)

// A Page is a single page of a [Document].  Pages have no independent
// lifetime: the engine owns them as sub-objects of the document, and a Page
// value is only a reference into that document.  Once the document is
// closed every method returns [ErrClosed].
type Page struct {
	doc    *Document
	handle native.PageHandle

	// Graphics mode of the page's content stream, mirrored here so that
	// calls invalid in the current mode are rejected before they reach the
	// engine.  The engine remains the source of truth after a failed call.
	mode          graphicsMode
	subpathClosed bool
}

type graphicsMode int

const (
	// modePage is the page-description mode: no path and no text object is
	// open.
	modePage graphicsMode = 1 << iota
	// modePath means a path object is under construction.
	modePath
	// modeText means a text object is open.
	modeText
)

func (m graphicsMode) String() string {
	switch m {
	case modePage:
		return "page description"
	case modePath:
		return "path"
	case modeText:
		return "text"
	default:
		return fmt.Sprintf("graphicsMode(%d)", int(m))
	}
}

// isValid checks that the page is usable and that the current graphics mode
// is one of the allowed modes.
func (p *Page) isValid(op string, allowed graphicsMode) error {
	if err := p.doc.alive(); err != nil {
		return err
	}
	if p.mode&allowed == 0 {
		return &PathStateError{Op: op, State: p.mode.String()}
	}
	return nil
}

func (p *Page) check(op string, s native.Status, class errClass) error {
	return p.doc.check(op, s, class)
}

// checkCoords rejects NaN and infinite coordinate values.
func checkCoords(op string, coords ...float64) error {
	for _, v := range coords {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &ArgumentError{Op: op, Param: "coordinates",
				Reason: "must be finite"}
		}
	}
	return nil
}

// checkPositive rejects values that are not positive finite numbers.
func checkPositive(op, param string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return &ArgumentError{Op: op, Param: param,
			Reason: "must be a positive finite number"}
	}
	return nil
}

// checkNonNegative rejects values that are negative, NaN or infinite.
func checkNonNegative(op, param string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return &ArgumentError{Op: op, Param: param,
			Reason: "must be a non-negative finite number"}
	}
	return nil
}

// Width returns the page width in user-space units.
func (p *Page) Width() (float64, error) {
	if err := p.doc.alive(); err != nil {
		return 0, err
	}
	return p.doc.eng.PageWidth(p.handle), nil
}

// SetWidth sets the page width.  The width must be a positive finite
// number.
func (p *Page) SetWidth(width float64) error {
	if err := p.doc.alive(); err != nil {
		return err
	}
	if err := checkPositive("SetWidth", "width", width); err != nil {
		return err
	}
	return p.check("SetWidth", p.doc.eng.PageSetWidth(p.handle, width), classLayout)
}

// Height returns the page height in user-space units.
func (p *Page) Height() (float64, error) {
	if err := p.doc.alive(); err != nil {
		return 0, err
	}
	return p.doc.eng.PageHeight(p.handle), nil
}

// SetHeight sets the page height.  The height must be a positive finite
// number.
func (p *Page) SetHeight(height float64) error {
	if err := p.doc.alive(); err != nil {
		return err
	}
	if err := checkPositive("SetHeight", "height", height); err != nil {
		return err
	}
	return p.check("SetHeight", p.doc.eng.PageSetHeight(p.handle, height), classLayout)
}

// SetSize sets the page width and height in one call.  Both must be
// positive finite numbers; if either is not, the page is left unchanged.
func (p *Page) SetSize(width, height float64) error {
	if err := p.doc.alive(); err != nil {
		return err
	}
	if err := checkPositive("SetSize", "width", width); err != nil {
		return err
	}
	if err := checkPositive("SetSize", "height", height); err != nil {
		return err
	}
	if err := p.check("SetSize", p.doc.eng.PageSetWidth(p.handle, width), classLayout); err != nil {
		return err
	}
	return p.check("SetSize", p.doc.eng.PageSetHeight(p.handle, height), classLayout)
}

// Orientation returns the orientation implied by the current page size.
// Square pages count as portrait.
func (p *Page) Orientation() (Orientation, error) {
	if err := p.doc.alive(); err != nil {
		return 0, err
	}
	if p.doc.eng.PageWidth(p.handle) > p.doc.eng.PageHeight(p.handle) {
		return Landscape, nil
	}
	return Portrait, nil
}

// SetOrientation swaps the page width and height if needed so that the page
// has the requested orientation.
func (p *Page) SetOrientation(o Orientation) error {
	if err := p.doc.alive(); err != nil {
		return err
	}
	if o != Portrait && o != Landscape {
		return &ArgumentError{Op: "SetOrientation", Param: "orientation",
			Reason: "unknown orientation"}
	}
	w := p.doc.eng.PageWidth(p.handle)
	h := p.doc.eng.PageHeight(p.handle)
	cur := Portrait
	if w > h {
		cur = Landscape
	}
	if cur == o || w == h {
		return nil
	}
	if err := p.check("SetOrientation", p.doc.eng.PageSetWidth(p.handle, h), classLayout); err != nil {
		return err
	}
	return p.check("SetOrientation", p.doc.eng.PageSetHeight(p.handle, w), classLayout)
}

// SetPaper sets the page to a named paper size in the given orientation.
func (p *Page) SetPaper(paper Paper, o Orientation) error {
	if o != Portrait && o != Landscape {
		return &ArgumentError{Op: "SetPaper", Param: "orientation",
			Reason: "unknown orientation"}
	}
	w, h := paper.Width, paper.Height
	if o == Landscape {
		w, h = h, w
	}
	return p.SetSize(w, h)
}
