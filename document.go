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
	"io"

	"seehuhn.de/go/haru/native"
)

// A Document owns a native document handle.  It is the only allocator and
// the only deallocator of that handle: [New] acquires it and [Document.Close]
// releases it, exactly once.  Pages, fonts and images are sub-objects of the
// document inside the engine; the Go values handed out for them keep a
// reference to the Document and refuse to work once it is closed.
//
// A Document and its sub-objects must not be used from more than one
// goroutine at a time.
type Document struct {
	eng    native.Engine
	handle native.DocHandle
	closed bool
}

// New creates an empty document.
func New() (*Document, error) {
	return newDocument(native.Get())
}

func newDocument(eng native.Engine) (*Document, error) {
	h := eng.NewDoc()
	if h == 0 {
		return nil, &AllocError{Op: "New"}
	}
	d := &Document{eng: eng, handle: h}
	if err := d.check("New", eng.UseUTFEncodings(h), classLayout); err != nil {
		eng.FreeDoc(h)
		return nil, err
	}
	return d, nil
}

// Close releases the native document handle.  All pages, fonts and images
// derived from the document become unusable; their methods return
// [ErrClosed] from then on.  Calling Close a second time is a no-op.
func (d *Document) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	d.eng.FreeDoc(d.handle)
	d.handle = 0
	return nil
}

func (d *Document) alive() error {
	if d == nil || d.closed {
		return ErrClosed
	}
	return nil
}

// check converts a native status into a typed error.  On failure the detail
// code is fetched and the engine's sticky error state is reset, so that
// subsequent calls on the document work normally again.
func (d *Document) check(op string, s native.Status, class errClass) error {
	if s == native.StatusOK {
		return nil
	}
	detail := d.eng.ErrorDetail(d.handle)
	d.eng.ResetError(d.handle)
	return nativeError(class, op, s, detail)
}

// nullHandle builds the error for a native call that returned no handle.
// If the engine has no error recorded the allocation itself must have
// failed.
func (d *Document) nullHandle(op string, class errClass) error {
	code := d.eng.LastError(d.handle)
	if code == native.StatusOK {
		return &AllocError{Op: op}
	}
	detail := d.eng.ErrorDetail(d.handle)
	d.eng.ResetError(d.handle)
	return nativeError(class, op, code, detail)
}

// SaveToFile writes the document to the named file.  A path that cannot be
// opened or written yields an [IOError]; in that case no partial output file
// is created.  Serialisation failures yield an [EncodingError].
func (d *Document) SaveToFile(name string) error {
	if err := d.alive(); err != nil {
		return err
	}
	return d.check("SaveToFile", d.eng.SaveToFile(d.handle, name), classSave)
}

// Save writes the document to w.
func (d *Document) Save(w io.Writer) error {
	if err := d.alive(); err != nil {
		return err
	}
	return d.check("Save", d.eng.SaveToWriter(d.handle, w), classSave)
}

// AddPage creates a new page after the last page of the document.
func (d *Document) AddPage() (*Page, error) {
	if err := d.alive(); err != nil {
		return nil, err
	}
	h := d.eng.AddPage(d.handle)
	if h == 0 {
		return nil, d.nullHandle("AddPage", classLayout)
	}
	return &Page{doc: d, handle: h, mode: modePage}, nil
}

// InsertPage creates a new page just before the given page.
func (d *Document) InsertPage(before *Page) (*Page, error) {
	if err := d.alive(); err != nil {
		return nil, err
	}
	if before == nil || before.doc != d {
		return nil, &ArgumentError{Op: "InsertPage", Param: "before",
			Reason: "page does not belong to this document"}
	}
	h := d.eng.InsertPage(d.handle, before.handle)
	if h == 0 {
		return nil, d.nullHandle("InsertPage", classLayout)
	}
	return &Page{doc: d, handle: h, mode: modePage}, nil
}

// SetPagesConfiguration sets the number of "Pages" children of the root
// pages object.  By default all pages are direct children of the root,
// which limits a document to 8191 pages; with n children the limit becomes
// 8191*n.  The call fails if pages have already been added.
func (d *Document) SetPagesConfiguration(pagePerPages uint32) error {
	if err := d.alive(); err != nil {
		return err
	}
	return d.check("SetPagesConfiguration",
		d.eng.SetPagesConfiguration(d.handle, pagePerPages), classLayout)
}

// PageLayout returns the viewer page layout of the document.
func (d *Document) PageLayout() (PageLayout, error) {
	if err := d.alive(); err != nil {
		return 0, err
	}
	return pageLayoutFromNative(d.eng.PageLayout(d.handle)), nil
}

// SetPageLayout sets the viewer page layout of the document.
func (d *Document) SetPageLayout(layout PageLayout) error {
	if err := d.alive(); err != nil {
		return err
	}
	code, ok := layout.toNative()
	if !ok {
		return &ArgumentError{Op: "SetPageLayout", Param: "layout",
			Reason: "unknown page layout"}
	}
	return d.check("SetPageLayout", d.eng.SetPageLayout(d.handle, code), classLayout)
}

// SetCompressionMode selects which parts of the document the engine
// compresses when saving.
func (d *Document) SetCompressionMode(mode CompressionMode) error {
	if err := d.alive(); err != nil {
		return err
	}
	if mode&^CompressAll != 0 {
		return &ArgumentError{Op: "SetCompressionMode", Param: "mode",
			Reason: "unknown compression flags"}
	}
	return d.check("SetCompressionMode",
		d.eng.SetCompressionMode(d.handle, uint32(mode)), classLayout)
}
