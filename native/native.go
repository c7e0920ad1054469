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

// Package native defines the call surface of the Haru PDF engine.
//
// The exported [Engine] interface mirrors the C API one call per method:
// handle allocation and release, the error-code query, page configuration,
// path construction and painting, text output, and document serialisation.
// The real engine is linked in via cgo when the "haru" build tag is set;
// without the tag every call reports [StatusUnsupportedFunc] so that pure-Go
// builds still compile and the wrapper's own validation can be exercised.
package native

import "io"

// Handles are opaque references to engine-side objects.  The zero value means
// "no object"; the engine returns it where the C API would return NULL.
type (
	DocHandle   uintptr
	PageHandle  uintptr
	FontHandle  uintptr
	ImageHandle uintptr
)

// Numeric codes shared with the engine's C enums.  The wrapper converts these
// to and from its exported types; raw values never cross the public API.

// Page layout codes (HPDF_PageLayout).
const (
	LayoutSingle int32 = iota
	LayoutOneColumn
	LayoutTwoColumnLeft
	LayoutTwoColumnRight
	LayoutDefault // HPDF_PAGE_LAYOUT_EOF
)

// Line cap codes (HPDF_LineCap).
const (
	CapButt int32 = iota
	CapRound
	CapProjectingSquare
)

// Line join codes (HPDF_LineJoin).
const (
	JoinMiter int32 = iota
	JoinRound
	JoinBevel
)

// Color space codes (HPDF_ColorSpace).
const (
	CSDeviceGray int32 = iota
	CSDeviceRGB
	CSDeviceCMYK
	CSCalGray
	CSCalRGB
	CSLab
	CSICCBased
	CSSeparation
	CSDeviceN
	CSIndexed
	CSPattern
	CSEOF
)

// Text alignment codes (HPDF_TextAlignment).
const (
	AlignLeft int32 = iota
	AlignRight
	AlignCenter
	AlignJustify
)

// Compression mode flags (HPDF_COMP_*).
const (
	CompNone     uint32 = 0x00
	CompText     uint32 = 0x01
	CompImage    uint32 = 0x02
	CompMetadata uint32 = 0x04
	CompAll      uint32 = 0x0f
)

// Engine is the native call surface consumed by the wrapper.
//
// Methods that mirror status-returning C functions return a [Status];
// methods that mirror pointer-returning C functions return a handle, with
// the zero handle standing in for NULL.  After any failure the error code
// and its detail stick to the document until ResetError is called, exactly
// as in the C API.
type Engine interface {
	// Document lifecycle.
	NewDoc() DocHandle
	FreeDoc(DocHandle)
	UseUTFEncodings(DocHandle) Status

	// Error-code query.
	LastError(DocHandle) Status
	ErrorDetail(DocHandle) Status
	ResetError(DocHandle)

	// Serialisation.
	SaveToFile(DocHandle, string) Status
	SaveToWriter(DocHandle, io.Writer) Status

	// Document configuration.
	SetPagesConfiguration(DocHandle, uint32) Status
	PageLayout(DocHandle) int32
	SetPageLayout(DocHandle, int32) Status
	SetCompressionMode(DocHandle, uint32) Status

	// Page allocation.
	AddPage(DocHandle) PageHandle
	InsertPage(DocHandle, PageHandle) PageHandle

	// Fonts and images.  LoadTTFont reports file-system failures on the
	// way into the engine through err; s covers failures inside the
	// engine itself.
	LoadTTFont(doc DocHandle, data []byte) (name string, s Status, err error)
	GetFont(doc DocHandle, name, encoding string) FontHandle
	FontName(FontHandle) string
	LoadRawImage(doc DocHandle, data []byte, width, height uint32, colorSpace int32) ImageHandle

	// Page geometry.
	PageWidth(PageHandle) float64
	PageSetWidth(PageHandle, float64) Status
	PageHeight(PageHandle) float64
	PageSetHeight(PageHandle, float64) Status

	// Stroke style.
	PageLineWidth(PageHandle) float64
	PageSetLineWidth(PageHandle, float64) Status
	PageLineCap(PageHandle) int32
	PageSetLineCap(PageHandle, int32) Status
	PageLineJoin(PageHandle) int32
	PageSetLineJoin(PageHandle, int32) Status
	PageMiterLimit(PageHandle) float64
	PageSetMiterLimit(PageHandle, float64) Status
	PageDash(PageHandle) (pattern []uint16, phase uint32)
	PageSetDash(PageHandle, []uint16, uint32) Status
	PageFlatness(PageHandle) float64
	PageSetFlatness(PageHandle, float64) Status

	// Color.
	PageGrayStroke(PageHandle) float64
	PageSetGrayStroke(PageHandle, float64) Status
	PageGrayFill(PageHandle) float64
	PageSetGrayFill(PageHandle, float64) Status
	PageRGBStroke(PageHandle) (r, g, b float64)
	PageSetRGBStroke(p PageHandle, r, g, b float64) Status
	PageRGBFill(PageHandle) (r, g, b float64)
	PageSetRGBFill(p PageHandle, r, g, b float64) Status
	PageCMYKStroke(PageHandle) (c, m, y, k float64)
	PageSetCMYKStroke(p PageHandle, c, m, y, k float64) Status
	PageCMYKFill(PageHandle) (c, m, y, k float64)
	PageSetCMYKFill(p PageHandle, c, m, y, k float64) Status
	PageStrokingColorSpace(PageHandle) int32
	PageFillingColorSpace(PageHandle) int32

	// Path construction.
	PageCurrentPos(PageHandle) (x, y float64)
	PageMoveTo(p PageHandle, x, y float64) Status
	PageLineTo(p PageHandle, x, y float64) Status
	PageCurveTo(p PageHandle, x1, y1, x2, y2, x3, y3 float64) Status
	PageCurveTo2(p PageHandle, x2, y2, x3, y3 float64) Status
	PageCurveTo3(p PageHandle, x1, y1, x3, y3 float64) Status
	PageRectangle(p PageHandle, x, y, width, height float64) Status
	PageCircle(p PageHandle, x, y, radius float64) Status
	PageArc(p PageHandle, x, y, radius, angle0, angle1 float64) Status
	PageClosePath(PageHandle) Status
	PageEndPath(PageHandle) Status

	// Path painting.
	PageStroke(PageHandle) Status
	PageFill(PageHandle) Status
	PageEofill(PageHandle) Status
	PageFillStroke(PageHandle) Status
	PageEofillStroke(PageHandle) Status
	PageClosePathStroke(PageHandle) Status
	PageClosePathFillStroke(PageHandle) Status
	PageClosePathEofillStroke(PageHandle) Status

	// Coordinate system.
	PageConcat(p PageHandle, a, b, c, d, x, y float64) Status

	// Text output.
	PageBeginText(PageHandle) Status
	PageEndText(PageHandle) Status
	PageSetFontAndSize(p PageHandle, f FontHandle, size float64) Status
	PageSetTextLeading(PageHandle, float64) Status
	PageMoveTextPos(p PageHandle, dx, dy float64) Status
	PageMoveToNextLine(PageHandle) Status
	PageShowText(p PageHandle, text string) Status
	PageTextOut(p PageHandle, x, y float64, text string) Status
	PageTextRect(p PageHandle, left, top, right, bottom float64, text string, align int32) Status
	PageCurrentTextPos(PageHandle) (x, y float64)

	// Images.
	PageDrawImage(p PageHandle, img ImageHandle, x, y, width, height float64) Status
}

// Get returns the engine selected at build time.
func Get() Engine {
	return engine
}

// Available reports whether the real engine is linked into this binary.
func Available() bool {
	return available
}
