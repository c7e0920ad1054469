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
	"bytes"
	"io"

	"seehuhn.de/go/sfnt"

	"seehuhn.de/go/haru/native"
)

// A Font is a font loaded into a [Document].  Like pages, fonts are owned
// by the document and become unusable when it is closed.
type Font struct {
	doc    *Document
	handle native.FontHandle

	// name is the registration name of the font inside the engine.
	name string

	// FamilyName is the font family, as recorded in the font file.
	FamilyName string

	// PostScriptName is the PostScript name of the font.
	PostScriptName string
}

// LoadTTFFont loads a TrueType font from r and registers it with the
// document, ready for use with [Page.SetFontAndSize].  Text shown with the
// font is encoded as UTF-8.
//
// Only fonts with TrueType ("glyf") outlines are supported.  CFF-based
// OpenType fonts are rejected with a [FontError].
func (d *Document) LoadTTFFont(r io.Reader) (*Font, error) {
	if err := d.alive(); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &IOError{Op: "LoadTTFFont", Err: err}
	}
	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, &FontError{Op: "LoadTTFFont", Err: err}
	}
	if !info.IsGlyf() {
		return nil, &FontError{Op: "LoadTTFFont",
			Code: native.StatusUnsupportedFontType}
	}

	name, s, ferr := d.eng.LoadTTFont(d.handle, data)
	if ferr != nil {
		return nil, &IOError{Op: "LoadTTFFont", Code: s, Err: ferr}
	}
	if s != native.StatusOK {
		detail := d.eng.ErrorDetail(d.handle)
		d.eng.ResetError(d.handle)
		return nil, nativeError(classFont, "LoadTTFFont", s, detail)
	}
	h := d.eng.GetFont(d.handle, name, "UTF-8")
	if h == 0 {
		return nil, d.nullHandle("LoadTTFFont", classFont)
	}

	return &Font{
		doc:            d,
		handle:         h,
		name:           name,
		FamilyName:     info.FamilyName,
		PostScriptName: info.PostScriptName(),
	}, nil
}

// Name returns the name under which the font is registered with the
// engine.
func (f *Font) Name() (string, error) {
	if err := f.doc.alive(); err != nil {
		return "", err
	}
	if name := f.doc.eng.FontName(f.handle); name != "" {
		return name, nil
	}
	return f.name, nil
}
