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
	"strings"
	"unicode/utf8"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/haru/native"
)

// checkText rejects strings the engine cannot represent.  The engine
// expects NUL-terminated UTF-8.
func checkText(op string, text string) error {
	if !utf8.ValidString(text) {
		return &ArgumentError{Op: op, Param: "text",
			Reason: "not valid UTF-8"}
	}
	if strings.ContainsRune(text, 0) {
		return &ArgumentError{Op: op, Param: "text",
			Reason: "must not contain NUL bytes"}
	}
	return nil
}

// BeginText starts a text object.  Text objects cannot be nested, and no
// path may be under construction.
func (p *Page) BeginText() error {
	if err := p.isValid("BeginText", modePage); err != nil {
		return err
	}
	if err := p.check("BeginText", p.doc.eng.PageBeginText(p.handle), classDraw); err != nil {
		return err
	}
	p.mode = modeText
	return nil
}

// EndText closes the current text object.
func (p *Page) EndText() error {
	if err := p.isValid("EndText", modeText); err != nil {
		return err
	}
	if err := p.check("EndText", p.doc.eng.PageEndText(p.handle), classDraw); err != nil {
		return err
	}
	p.mode = modePage
	return nil
}

// SetFontAndSize selects the font and font size for subsequent text.  The
// font must belong to the same document as the page.
func (p *Page) SetFontAndSize(f *Font, size float64) error {
	if err := p.isValid("SetFontAndSize", modePage|modeText); err != nil {
		return err
	}
	if f == nil || f.doc != p.doc {
		return &ArgumentError{Op: "SetFontAndSize", Param: "font",
			Reason: "font does not belong to this document"}
	}
	if err := checkPositive("SetFontAndSize", "size", size); err != nil {
		return err
	}
	s := p.doc.eng.PageSetFontAndSize(p.handle, f.handle, size)
	return p.check("SetFontAndSize", s, classDraw)
}

// SetTextLeading sets the line spacing used by [Page.MoveToNextLine].
func (p *Page) SetTextLeading(leading float64) error {
	if err := p.isValid("SetTextLeading", modePage|modeText); err != nil {
		return err
	}
	if err := checkNonNegative("SetTextLeading", "leading", leading); err != nil {
		return err
	}
	s := p.doc.eng.PageSetTextLeading(p.handle, leading)
	return p.check("SetTextLeading", s, classDraw)
}

// MoveTextPos moves the text position by (dx, dy) relative to the start of
// the current line.
func (p *Page) MoveTextPos(dx, dy float64) error {
	if err := p.isValid("MoveTextPos", modeText); err != nil {
		return err
	}
	if err := checkCoords("MoveTextPos", dx, dy); err != nil {
		return err
	}
	s := p.doc.eng.PageMoveTextPos(p.handle, dx, dy)
	return p.check("MoveTextPos", s, classDraw)
}

// MoveToNextLine moves the text position to the start of the next line,
// using the leading set with [Page.SetTextLeading].
func (p *Page) MoveToNextLine() error {
	if err := p.isValid("MoveToNextLine", modeText); err != nil {
		return err
	}
	return p.check("MoveToNextLine", p.doc.eng.PageMoveToNextLine(p.handle), classDraw)
}

// ShowText prints text at the current text position.  A font must have
// been selected with [Page.SetFontAndSize].
func (p *Page) ShowText(text string) error {
	if err := p.isValid("ShowText", modeText); err != nil {
		return err
	}
	if err := checkText("ShowText", text); err != nil {
		return err
	}
	return p.check("ShowText", p.doc.eng.PageShowText(p.handle, text), classDraw)
}

// TextOut moves the text position to (x, y) and prints text there.
func (p *Page) TextOut(x, y float64, text string) error {
	if err := p.isValid("TextOut", modeText); err != nil {
		return err
	}
	if err := checkCoords("TextOut", x, y); err != nil {
		return err
	}
	if err := checkText("TextOut", text); err != nil {
		return err
	}
	return p.check("TextOut", p.doc.eng.PageTextOut(p.handle, x, y, text), classDraw)
}

// TextRect prints text inside the given region, wrapping lines as needed.
// Text which does not fit into the region is silently dropped; this is not
// reported as an error.
func (p *Page) TextRect(left, top, right, bottom float64, text string, align TextAlignment) error {
	if err := p.isValid("TextRect", modeText); err != nil {
		return err
	}
	if err := checkCoords("TextRect", left, top, right, bottom); err != nil {
		return err
	}
	if err := checkText("TextRect", text); err != nil {
		return err
	}
	code, ok := align.toNative()
	if !ok {
		return &ArgumentError{Op: "TextRect", Param: "align",
			Reason: "unknown text alignment"}
	}
	s := p.doc.eng.PageTextRect(p.handle, left, top, right, bottom, text, code)
	if s == native.StatusPageInsufficientSpace {
		p.doc.eng.ResetError(p.doc.handle)
		return nil
	}
	return p.check("TextRect", s, classDraw)
}

// CurrentTextPos returns the current text position.  Outside of a text
// object the result is the origin.
func (p *Page) CurrentTextPos() (vec.Vec2, error) {
	if err := p.doc.alive(); err != nil {
		return vec.Vec2{}, err
	}
	x, y := p.doc.eng.PageCurrentTextPos(p.handle)
	return vec.Vec2{X: x, Y: y}, nil
}
