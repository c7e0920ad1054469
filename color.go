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
	"math"

	"seehuhn.de/go/haru/native"
)

// Color setters are valid both in page-description mode and inside a text
// object; the path painting operators inherit whatever color is current
// when they run.  All components are intensities in the range [0, 1].

// checkComponent rejects color components outside [0, 1].
func checkComponent(op, param string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return &ArgumentError{Op: op, Param: param,
			Reason: "must be in the range [0, 1]"}
	}
	return nil
}

func checkComponents(op string, vals ...float64) error {
	for _, v := range vals {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return &ArgumentError{Op: op, Param: "color components",
				Reason: "must be in the range [0, 1]"}
		}
	}
	return nil
}

// SetGrayStroke sets the stroking color to a gray level.
func (p *Page) SetGrayStroke(gray float64) error {
	if err := p.isValid("SetGrayStroke", modePage|modeText); err != nil {
		return err
	}
	if err := checkComponent("SetGrayStroke", "gray", gray); err != nil {
		return err
	}
	return p.check("SetGrayStroke", p.doc.eng.PageSetGrayStroke(p.handle, gray), classDraw)
}

// SetGrayFill sets the filling color to a gray level.
func (p *Page) SetGrayFill(gray float64) error {
	if err := p.isValid("SetGrayFill", modePage|modeText); err != nil {
		return err
	}
	if err := checkComponent("SetGrayFill", "gray", gray); err != nil {
		return err
	}
	return p.check("SetGrayFill", p.doc.eng.PageSetGrayFill(p.handle, gray), classDraw)
}

// SetRGBStroke sets the stroking color in the DeviceRGB color space.
func (p *Page) SetRGBStroke(r, g, b float64) error {
	if err := p.isValid("SetRGBStroke", modePage|modeText); err != nil {
		return err
	}
	if err := checkComponents("SetRGBStroke", r, g, b); err != nil {
		return err
	}
	return p.check("SetRGBStroke", p.doc.eng.PageSetRGBStroke(p.handle, r, g, b), classDraw)
}

// SetRGBFill sets the filling color in the DeviceRGB color space.
func (p *Page) SetRGBFill(r, g, b float64) error {
	if err := p.isValid("SetRGBFill", modePage|modeText); err != nil {
		return err
	}
	if err := checkComponents("SetRGBFill", r, g, b); err != nil {
		return err
	}
	return p.check("SetRGBFill", p.doc.eng.PageSetRGBFill(p.handle, r, g, b), classDraw)
}

// SetCMYKStroke sets the stroking color in the DeviceCMYK color space.
func (p *Page) SetCMYKStroke(c, m, y, k float64) error {
	if err := p.isValid("SetCMYKStroke", modePage|modeText); err != nil {
		return err
	}
	if err := checkComponents("SetCMYKStroke", c, m, y, k); err != nil {
		return err
	}
	return p.check("SetCMYKStroke", p.doc.eng.PageSetCMYKStroke(p.handle, c, m, y, k), classDraw)
}

// SetCMYKFill sets the filling color in the DeviceCMYK color space.
func (p *Page) SetCMYKFill(c, m, y, k float64) error {
	if err := p.isValid("SetCMYKFill", modePage|modeText); err != nil {
		return err
	}
	if err := checkComponents("SetCMYKFill", c, m, y, k); err != nil {
		return err
	}
	return p.check("SetCMYKFill", p.doc.eng.PageSetCMYKFill(p.handle, c, m, y, k), classDraw)
}

// GrayStroke returns the current stroking gray level.  The result is only
// meaningful while the stroking color space is DeviceGray.
func (p *Page) GrayStroke() (float64, error) {
	if err := p.doc.alive(); err != nil {
		return 0, err
	}
	return p.doc.eng.PageGrayStroke(p.handle), nil
}

// GrayFill returns the current filling gray level.
func (p *Page) GrayFill() (float64, error) {
	if err := p.doc.alive(); err != nil {
		return 0, err
	}
	return p.doc.eng.PageGrayFill(p.handle), nil
}

// RGBStroke returns the current stroking color as RGB components.
func (p *Page) RGBStroke() (r, g, b float64, err error) {
	if err := p.doc.alive(); err != nil {
		return 0, 0, 0, err
	}
	r, g, b = p.doc.eng.PageRGBStroke(p.handle)
	return r, g, b, nil
}

// RGBFill returns the current filling color as RGB components.
func (p *Page) RGBFill() (r, g, b float64, err error) {
	if err := p.doc.alive(); err != nil {
		return 0, 0, 0, err
	}
	r, g, b = p.doc.eng.PageRGBFill(p.handle)
	return r, g, b, nil
}

// CMYKStroke returns the current stroking color as CMYK components.
func (p *Page) CMYKStroke() (c, m, y, k float64, err error) {
	if err := p.doc.alive(); err != nil {
		return 0, 0, 0, 0, err
	}
	c, m, y, k = p.doc.eng.PageCMYKStroke(p.handle)
	return c, m, y, k, nil
}

// CMYKFill returns the current filling color as CMYK components.
func (p *Page) CMYKFill() (c, m, y, k float64, err error) {
	if err := p.doc.alive(); err != nil {
		return 0, 0, 0, 0, err
	}
	c, m, y, k = p.doc.eng.PageCMYKFill(p.handle)
	return c, m, y, k, nil
}

// StrokingColorSpace returns the color space currently used for stroking.
func (p *Page) StrokingColorSpace() (ColorSpace, error) {
	if err := p.doc.alive(); err != nil {
		return 0, err
	}
	cs, ok := colorSpaceFromNative(p.doc.eng.PageStrokingColorSpace(p.handle))
	if !ok {
		return 0, &DrawError{Op: "StrokingColorSpace",
			Code: native.StatusInvalidPage}
	}
	return cs, nil
}

// FillingColorSpace returns the color space currently used for filling.
func (p *Page) FillingColorSpace() (ColorSpace, error) {
	if err := p.doc.alive(); err != nil {
		return 0, err
	}
	cs, ok := colorSpaceFromNative(p.doc.eng.PageFillingColorSpace(p.handle))
	if !ok {
		return 0, &DrawError{Op: "FillingColorSpace",
			Code: native.StatusInvalidPage}
	}
	return cs, nil
}

// SetLineWidth sets the stroke line width.  The width must be a
// non-negative finite number.
func (p *Page) SetLineWidth(width float64) error {
	if err := p.isValid("SetLineWidth", modePage|modeText); err != nil {
		return err
	}
	if err := checkNonNegative("SetLineWidth", "width", width); err != nil {
		return err
	}
	return p.check("SetLineWidth", p.doc.eng.PageSetLineWidth(p.handle, width), classDraw)
}

// LineWidth returns the current stroke line width.
func (p *Page) LineWidth() (float64, error) {
	if err := p.doc.alive(); err != nil {
		return 0, err
	}
	return p.doc.eng.PageLineWidth(p.handle), nil
}

// SetLineCap sets the shape of the ends of stroked lines.
func (p *Page) SetLineCap(c LineCap) error {
	if err := p.isValid("SetLineCap", modePage|modeText); err != nil {
		return err
	}
	code, ok := c.toNative()
	if !ok {
		return &ArgumentError{Op: "SetLineCap", Param: "cap",
			Reason: "unknown line cap style"}
	}
	return p.check("SetLineCap", p.doc.eng.PageSetLineCap(p.handle, code), classDraw)
}

// LineCapStyle returns the current line cap style.
func (p *Page) LineCapStyle() (LineCap, error) {
	if err := p.doc.alive(); err != nil {
		return 0, err
	}
	return lineCapFromNative(p.doc.eng.PageLineCap(p.handle)), nil
}

// SetLineJoin sets the shape of the corners of stroked paths.
func (p *Page) SetLineJoin(j LineJoin) error {
	if err := p.isValid("SetLineJoin", modePage|modeText); err != nil {
		return err
	}
	code, ok := j.toNative()
	if !ok {
		return &ArgumentError{Op: "SetLineJoin", Param: "join",
			Reason: "unknown line join style"}
	}
	return p.check("SetLineJoin", p.doc.eng.PageSetLineJoin(p.handle, code), classDraw)
}

// LineJoinStyle returns the current line join style.
func (p *Page) LineJoinStyle() (LineJoin, error) {
	if err := p.doc.alive(); err != nil {
		return 0, err
	}
	return lineJoinFromNative(p.doc.eng.PageLineJoin(p.handle)), nil
}

// SetMiterLimit sets the miter limit for [JoinMiter] corners.  The limit
// must be at least 1.
func (p *Page) SetMiterLimit(limit float64) error {
	if err := p.isValid("SetMiterLimit", modePage|modeText); err != nil {
		return err
	}
	if math.IsNaN(limit) || math.IsInf(limit, 0) || limit < 1 {
		return &ArgumentError{Op: "SetMiterLimit", Param: "limit",
			Reason: "must be a finite number >= 1"}
	}
	return p.check("SetMiterLimit", p.doc.eng.PageSetMiterLimit(p.handle, limit), classDraw)
}

// MiterLimit returns the current miter limit.
func (p *Page) MiterLimit() (float64, error) {
	if err := p.doc.alive(); err != nil {
		return 0, err
	}
	return p.doc.eng.PageMiterLimit(p.handle), nil
}

// SetDash sets the dash pattern for stroked lines.  The engine measures
// dashes in whole user-space units: entries must be integers in the range
// [1, 65535] and the phase a non-negative integer.  An empty pattern makes
// lines solid.  A pattern with an odd number of entries other than one is
// rejected.
func (p *Page) SetDash(pattern []float64, phase float64) error {
	if err := p.isValid("SetDash", modePage|modeText); err != nil {
		return err
	}
	if len(pattern) > 8 {
		return &ArgumentError{Op: "SetDash", Param: "pattern",
			Reason: "at most 8 entries allowed"}
	}
	if len(pattern)%2 != 0 && len(pattern) != 1 {
		return &ArgumentError{Op: "SetDash", Param: "pattern",
			Reason: "must have an even number of entries, or exactly one"}
	}
	if phase != math.Trunc(phase) || phase < 0 || phase > math.MaxUint32 {
		return &ArgumentError{Op: "SetDash", Param: "phase",
			Reason: "must be a non-negative integer"}
	}
	buf := make([]uint16, len(pattern))
	for i, v := range pattern {
		if v != math.Trunc(v) || v < 1 || v > math.MaxUint16 {
			return &ArgumentError{Op: "SetDash", Param: "pattern",
				Reason: "entries must be integers in [1, 65535]"}
		}
		buf[i] = uint16(v)
	}
	return p.check("SetDash", p.doc.eng.PageSetDash(p.handle, buf, uint32(phase)), classDraw)
}

// Dash returns the current dash pattern and phase.
func (p *Page) Dash() (pattern []float64, phase float64, err error) {
	if err := p.doc.alive(); err != nil {
		return nil, 0, err
	}
	raw, ph := p.doc.eng.PageDash(p.handle)
	if len(raw) > 0 {
		pattern = make([]float64, len(raw))
		for i, v := range raw {
			pattern[i] = float64(v)
		}
	}
	return pattern, float64(ph), nil
}

// SetFlatness sets the maximum distance between a path and its
// approximation by line segments, in device pixels.
func (p *Page) SetFlatness(flatness float64) error {
	if err := p.isValid("SetFlatness", modePage|modeText); err != nil {
		return err
	}
	if err := checkNonNegative("SetFlatness", "flatness", flatness); err != nil {
		return err
	}
	return p.check("SetFlatness", p.doc.eng.PageSetFlatness(p.handle, flatness), classDraw)
}

// Flatness returns the current flatness tolerance.
func (p *Page) Flatness() (float64, error) {
	if err := p.doc.alive(); err != nil {
		return 0, err
	}
	return p.doc.eng.PageFlatness(p.handle), nil
}
