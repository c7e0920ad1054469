//go:build haru && cgo

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

package native

// #cgo LDFLAGS: -lhpdf -lm -lz
// #include <stdlib.h>
// #include <hpdf.h>
import "C"

import (
	"io"
	"os"
	"unsafe"
)

var (
	engine    Engine = haruEngine{}
	available        = true
)

// haruEngine forwards every call to libhpdf.  Handles are the C pointers
// themselves, stored as uintptr; the C objects are owned by the engine's
// memory manager, never by the Go garbage collector.
type haruEngine struct{}

func cdoc(d DocHandle) C.HPDF_Doc     { return C.HPDF_Doc(unsafe.Pointer(d)) }
func cpage(p PageHandle) C.HPDF_Page  { return C.HPDF_Page(unsafe.Pointer(p)) }
func cfont(f FontHandle) C.HPDF_Font  { return C.HPDF_Font(unsafe.Pointer(f)) }
func cimg(i ImageHandle) C.HPDF_Image { return C.HPDF_Image(unsafe.Pointer(i)) }

func (haruEngine) NewDoc() DocHandle {
	h := C.HPDF_New(nil, nil)
	return DocHandle(uintptr(unsafe.Pointer(h)))
}

func (haruEngine) FreeDoc(d DocHandle) {
	C.HPDF_Free(cdoc(d))
}

func (haruEngine) UseUTFEncodings(d DocHandle) Status {
	return Status(C.HPDF_UseUTFEncodings(cdoc(d)))
}

func (haruEngine) LastError(d DocHandle) Status {
	return Status(C.HPDF_GetError(cdoc(d)))
}

func (haruEngine) ErrorDetail(d DocHandle) Status {
	return Status(C.HPDF_GetErrorDetail(cdoc(d)))
}

func (haruEngine) ResetError(d DocHandle) {
	C.HPDF_ResetError(cdoc(d))
}

func (haruEngine) SaveToFile(d DocHandle, name string) Status {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	return Status(C.HPDF_SaveToFile(cdoc(d), cname))
}

func (haruEngine) SaveToWriter(d DocHandle, w io.Writer) Status {
	doc := cdoc(d)
	if s := Status(C.HPDF_SaveToStream(doc)); s != StatusOK {
		return s
	}
	var buf [4096]C.HPDF_BYTE
	for {
		size := C.HPDF_UINT(len(buf))
		s := Status(C.HPDF_ReadFromStream(doc, &buf[0], &size))
		if size > 0 {
			chunk := C.GoBytes(unsafe.Pointer(&buf[0]), C.int(size))
			if _, err := w.Write(chunk); err != nil {
				C.HPDF_ResetStream(doc)
				C.HPDF_ResetError(doc)
				return StatusFileIOError
			}
		}
		if s == StatusStreamEOF {
			break
		}
		if s != StatusOK {
			return s
		}
	}
	C.HPDF_ResetStream(doc)
	C.HPDF_ResetError(doc)
	return StatusOK
}

func (haruEngine) SetPagesConfiguration(d DocHandle, pagePerPages uint32) Status {
	return Status(C.HPDF_SetPagesConfiguration(cdoc(d), C.HPDF_UINT(pagePerPages)))
}

func (haruEngine) PageLayout(d DocHandle) int32 {
	return int32(C.HPDF_GetPageLayout(cdoc(d)))
}

func (haruEngine) SetPageLayout(d DocHandle, layout int32) Status {
	return Status(C.HPDF_SetPageLayout(cdoc(d), C.HPDF_PageLayout(layout)))
}

func (haruEngine) SetCompressionMode(d DocHandle, mode uint32) Status {
	return Status(C.HPDF_SetCompressionMode(cdoc(d), C.HPDF_UINT(mode)))
}

func (haruEngine) AddPage(d DocHandle) PageHandle {
	p := C.HPDF_AddPage(cdoc(d))
	return PageHandle(uintptr(unsafe.Pointer(p)))
}

func (haruEngine) InsertPage(d DocHandle, before PageHandle) PageHandle {
	p := C.HPDF_InsertPage(cdoc(d), cpage(before))
	return PageHandle(uintptr(unsafe.Pointer(p)))
}

// LoadTTFont registers a TrueType font with the engine.  The engine only
// loads fonts from files, so the data takes a detour through a temporary
// file.
func (haruEngine) LoadTTFont(d DocHandle, data []byte) (string, Status, error) {
	tmp, err := os.CreateTemp("", "haru-font-*.ttf")
	if err != nil {
		return "", StatusFileOpenError, err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", StatusFileIOError, err
	}
	if err := tmp.Close(); err != nil {
		return "", StatusFileIOError, err
	}

	cname := C.CString(tmp.Name())
	defer C.free(unsafe.Pointer(cname))
	name := C.HPDF_LoadTTFontFromFile(cdoc(d), cname, C.HPDF_TRUE)
	if name == nil {
		return "", Status(C.HPDF_GetError(cdoc(d))), nil
	}
	return C.GoString(name), StatusOK, nil
}

func (haruEngine) GetFont(d DocHandle, name, encoding string) FontHandle {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))
	var cenc *C.char
	if encoding != "" {
		cenc = C.CString(encoding)
		defer C.free(unsafe.Pointer(cenc))
	}
	f := C.HPDF_GetFont(cdoc(d), cname, cenc)
	return FontHandle(uintptr(unsafe.Pointer(f)))
}

func (haruEngine) FontName(f FontHandle) string {
	return C.GoString(C.HPDF_Font_GetFontName(cfont(f)))
}

func (haruEngine) LoadRawImage(d DocHandle, data []byte, width, height uint32, colorSpace int32) ImageHandle {
	img := C.HPDF_LoadRawImageFromMem(cdoc(d),
		(*C.HPDF_BYTE)(unsafe.Pointer(&data[0])),
		C.HPDF_UINT(width), C.HPDF_UINT(height),
		C.HPDF_ColorSpace(colorSpace), 8)
	return ImageHandle(uintptr(unsafe.Pointer(img)))
}

func (haruEngine) PageWidth(p PageHandle) float64 {
	return float64(C.HPDF_Page_GetWidth(cpage(p)))
}

func (haruEngine) PageSetWidth(p PageHandle, w float64) Status {
	return Status(C.HPDF_Page_SetWidth(cpage(p), C.HPDF_REAL(w)))
}

func (haruEngine) PageHeight(p PageHandle) float64 {
	return float64(C.HPDF_Page_GetHeight(cpage(p)))
}

func (haruEngine) PageSetHeight(p PageHandle, h float64) Status {
	return Status(C.HPDF_Page_SetHeight(cpage(p), C.HPDF_REAL(h)))
}

func (haruEngine) PageLineWidth(p PageHandle) float64 {
	return float64(C.HPDF_Page_GetLineWidth(cpage(p)))
}

func (haruEngine) PageSetLineWidth(p PageHandle, w float64) Status {
	return Status(C.HPDF_Page_SetLineWidth(cpage(p), C.HPDF_REAL(w)))
}

func (haruEngine) PageLineCap(p PageHandle) int32 {
	return int32(C.HPDF_Page_GetLineCap(cpage(p)))
}

func (haruEngine) PageSetLineCap(p PageHandle, lineCap int32) Status {
	return Status(C.HPDF_Page_SetLineCap(cpage(p), C.HPDF_LineCap(lineCap)))
}

func (haruEngine) PageLineJoin(p PageHandle) int32 {
	return int32(C.HPDF_Page_GetLineJoin(cpage(p)))
}

func (haruEngine) PageSetLineJoin(p PageHandle, join int32) Status {
	return Status(C.HPDF_Page_SetLineJoin(cpage(p), C.HPDF_LineJoin(join)))
}

func (haruEngine) PageMiterLimit(p PageHandle) float64 {
	return float64(C.HPDF_Page_GetMiterLimit(cpage(p)))
}

func (haruEngine) PageSetMiterLimit(p PageHandle, limit float64) Status {
	return Status(C.HPDF_Page_SetMiterLimit(cpage(p), C.HPDF_REAL(limit)))
}

func (haruEngine) PageDash(p PageHandle) ([]uint16, uint32) {
	mode := C.HPDF_Page_GetDash(cpage(p))
	n := int(mode.num_ptn)
	pattern := make([]uint16, n)
	for i := 0; i < n; i++ {
		pattern[i] = uint16(mode.ptn[i])
	}
	return pattern, uint32(mode.phase)
}

func (haruEngine) PageSetDash(p PageHandle, pattern []uint16, phase uint32) Status {
	var ptn *C.HPDF_UINT16
	if len(pattern) > 0 {
		ptn = (*C.HPDF_UINT16)(unsafe.Pointer(&pattern[0]))
	}
	return Status(C.HPDF_Page_SetDash(cpage(p), ptn,
		C.HPDF_UINT(len(pattern)), C.HPDF_UINT(phase)))
}

func (haruEngine) PageFlatness(p PageHandle) float64 {
	return float64(C.HPDF_Page_GetFlat(cpage(p)))
}

func (haruEngine) PageSetFlatness(p PageHandle, flatness float64) Status {
	return Status(C.HPDF_Page_SetFlat(cpage(p), C.HPDF_REAL(flatness)))
}

func (haruEngine) PageGrayStroke(p PageHandle) float64 {
	return float64(C.HPDF_Page_GetGrayStroke(cpage(p)))
}

func (haruEngine) PageSetGrayStroke(p PageHandle, g float64) Status {
	return Status(C.HPDF_Page_SetGrayStroke(cpage(p), C.HPDF_REAL(g)))
}

func (haruEngine) PageGrayFill(p PageHandle) float64 {
	return float64(C.HPDF_Page_GetGrayFill(cpage(p)))
}

func (haruEngine) PageSetGrayFill(p PageHandle, g float64) Status {
	return Status(C.HPDF_Page_SetGrayFill(cpage(p), C.HPDF_REAL(g)))
}

func (haruEngine) PageRGBStroke(p PageHandle) (r, g, b float64) {
	c := C.HPDF_Page_GetRGBStroke(cpage(p))
	return float64(c.r), float64(c.g), float64(c.b)
}

func (haruEngine) PageSetRGBStroke(p PageHandle, r, g, b float64) Status {
	return Status(C.HPDF_Page_SetRGBStroke(cpage(p),
		C.HPDF_REAL(r), C.HPDF_REAL(g), C.HPDF_REAL(b)))
}

func (haruEngine) PageRGBFill(p PageHandle) (r, g, b float64) {
	c := C.HPDF_Page_GetRGBFill(cpage(p))
	return float64(c.r), float64(c.g), float64(c.b)
}

func (haruEngine) PageSetRGBFill(p PageHandle, r, g, b float64) Status {
	return Status(C.HPDF_Page_SetRGBFill(cpage(p),
		C.HPDF_REAL(r), C.HPDF_REAL(g), C.HPDF_REAL(b)))
}

func (haruEngine) PageCMYKStroke(p PageHandle) (c, m, y, k float64) {
	col := C.HPDF_Page_GetCMYKStroke(cpage(p))
	return float64(col.c), float64(col.m), float64(col.y), float64(col.k)
}

func (haruEngine) PageSetCMYKStroke(p PageHandle, c, m, y, k float64) Status {
	return Status(C.HPDF_Page_SetCMYKStroke(cpage(p),
		C.HPDF_REAL(c), C.HPDF_REAL(m), C.HPDF_REAL(y), C.HPDF_REAL(k)))
}

func (haruEngine) PageCMYKFill(p PageHandle) (c, m, y, k float64) {
	col := C.HPDF_Page_GetCMYKFill(cpage(p))
	return float64(col.c), float64(col.m), float64(col.y), float64(col.k)
}

func (haruEngine) PageSetCMYKFill(p PageHandle, c, m, y, k float64) Status {
	return Status(C.HPDF_Page_SetCMYKFill(cpage(p),
		C.HPDF_REAL(c), C.HPDF_REAL(m), C.HPDF_REAL(y), C.HPDF_REAL(k)))
}

func (haruEngine) PageStrokingColorSpace(p PageHandle) int32 {
	return int32(C.HPDF_Page_GetStrokingColorSpace(cpage(p)))
}

func (haruEngine) PageFillingColorSpace(p PageHandle) int32 {
	return int32(C.HPDF_Page_GetFillingColorSpace(cpage(p)))
}

func (haruEngine) PageCurrentPos(p PageHandle) (x, y float64) {
	pos := C.HPDF_Page_GetCurrentPos(cpage(p))
	return float64(pos.x), float64(pos.y)
}

func (haruEngine) PageMoveTo(p PageHandle, x, y float64) Status {
	return Status(C.HPDF_Page_MoveTo(cpage(p), C.HPDF_REAL(x), C.HPDF_REAL(y)))
}

func (haruEngine) PageLineTo(p PageHandle, x, y float64) Status {
	return Status(C.HPDF_Page_LineTo(cpage(p), C.HPDF_REAL(x), C.HPDF_REAL(y)))
}

func (haruEngine) PageCurveTo(p PageHandle, x1, y1, x2, y2, x3, y3 float64) Status {
	return Status(C.HPDF_Page_CurveTo(cpage(p),
		C.HPDF_REAL(x1), C.HPDF_REAL(y1),
		C.HPDF_REAL(x2), C.HPDF_REAL(y2),
		C.HPDF_REAL(x3), C.HPDF_REAL(y3)))
}

func (haruEngine) PageCurveTo2(p PageHandle, x2, y2, x3, y3 float64) Status {
	return Status(C.HPDF_Page_CurveTo2(cpage(p),
		C.HPDF_REAL(x2), C.HPDF_REAL(y2),
		C.HPDF_REAL(x3), C.HPDF_REAL(y3)))
}

func (haruEngine) PageCurveTo3(p PageHandle, x1, y1, x3, y3 float64) Status {
	return Status(C.HPDF_Page_CurveTo3(cpage(p),
		C.HPDF_REAL(x1), C.HPDF_REAL(y1),
		C.HPDF_REAL(x3), C.HPDF_REAL(y3)))
}

func (haruEngine) PageRectangle(p PageHandle, x, y, width, height float64) Status {
	return Status(C.HPDF_Page_Rectangle(cpage(p),
		C.HPDF_REAL(x), C.HPDF_REAL(y),
		C.HPDF_REAL(width), C.HPDF_REAL(height)))
}

func (haruEngine) PageCircle(p PageHandle, x, y, radius float64) Status {
	return Status(C.HPDF_Page_Circle(cpage(p),
		C.HPDF_REAL(x), C.HPDF_REAL(y), C.HPDF_REAL(radius)))
}

func (haruEngine) PageArc(p PageHandle, x, y, radius, angle0, angle1 float64) Status {
	return Status(C.HPDF_Page_Arc(cpage(p),
		C.HPDF_REAL(x), C.HPDF_REAL(y), C.HPDF_REAL(radius),
		C.HPDF_REAL(angle0), C.HPDF_REAL(angle1)))
}

func (haruEngine) PageClosePath(p PageHandle) Status {
	return Status(C.HPDF_Page_ClosePath(cpage(p)))
}

func (haruEngine) PageEndPath(p PageHandle) Status {
	return Status(C.HPDF_Page_EndPath(cpage(p)))
}

func (haruEngine) PageStroke(p PageHandle) Status {
	return Status(C.HPDF_Page_Stroke(cpage(p)))
}

func (haruEngine) PageFill(p PageHandle) Status {
	return Status(C.HPDF_Page_Fill(cpage(p)))
}

func (haruEngine) PageEofill(p PageHandle) Status {
	return Status(C.HPDF_Page_Eofill(cpage(p)))
}

func (haruEngine) PageFillStroke(p PageHandle) Status {
	return Status(C.HPDF_Page_FillStroke(cpage(p)))
}

func (haruEngine) PageEofillStroke(p PageHandle) Status {
	return Status(C.HPDF_Page_EofillStroke(cpage(p)))
}

func (haruEngine) PageClosePathStroke(p PageHandle) Status {
	return Status(C.HPDF_Page_ClosePathStroke(cpage(p)))
}

func (haruEngine) PageClosePathFillStroke(p PageHandle) Status {
	return Status(C.HPDF_Page_ClosePathFillStroke(cpage(p)))
}

func (haruEngine) PageClosePathEofillStroke(p PageHandle) Status {
	return Status(C.HPDF_Page_ClosePathEofillStroke(cpage(p)))
}

func (haruEngine) PageConcat(p PageHandle, a, b, c, d, x, y float64) Status {
	return Status(C.HPDF_Page_Concat(cpage(p),
		C.HPDF_REAL(a), C.HPDF_REAL(b), C.HPDF_REAL(c),
		C.HPDF_REAL(d), C.HPDF_REAL(x), C.HPDF_REAL(y)))
}

func (haruEngine) PageBeginText(p PageHandle) Status {
	return Status(C.HPDF_Page_BeginText(cpage(p)))
}

func (haruEngine) PageEndText(p PageHandle) Status {
	return Status(C.HPDF_Page_EndText(cpage(p)))
}

func (haruEngine) PageSetFontAndSize(p PageHandle, f FontHandle, size float64) Status {
	return Status(C.HPDF_Page_SetFontAndSize(cpage(p), cfont(f), C.HPDF_REAL(size)))
}

func (haruEngine) PageSetTextLeading(p PageHandle, leading float64) Status {
	return Status(C.HPDF_Page_SetTextLeading(cpage(p), C.HPDF_REAL(leading)))
}

func (haruEngine) PageMoveTextPos(p PageHandle, dx, dy float64) Status {
	return Status(C.HPDF_Page_MoveTextPos(cpage(p), C.HPDF_REAL(dx), C.HPDF_REAL(dy)))
}

func (haruEngine) PageMoveToNextLine(p PageHandle) Status {
	return Status(C.HPDF_Page_MoveToNextLine(cpage(p)))
}

func (haruEngine) PageShowText(p PageHandle, text string) Status {
	ctext := C.CString(text)
	defer C.free(unsafe.Pointer(ctext))
	return Status(C.HPDF_Page_ShowText(cpage(p), ctext))
}

func (haruEngine) PageTextOut(p PageHandle, x, y float64, text string) Status {
	ctext := C.CString(text)
	defer C.free(unsafe.Pointer(ctext))
	return Status(C.HPDF_Page_TextOut(cpage(p), C.HPDF_REAL(x), C.HPDF_REAL(y), ctext))
}

func (haruEngine) PageTextRect(p PageHandle, left, top, right, bottom float64, text string, align int32) Status {
	ctext := C.CString(text)
	defer C.free(unsafe.Pointer(ctext))
	return Status(C.HPDF_Page_TextRect(cpage(p),
		C.HPDF_REAL(left), C.HPDF_REAL(top),
		C.HPDF_REAL(right), C.HPDF_REAL(bottom),
		ctext, C.HPDF_TextAlignment(align), nil))
}

func (haruEngine) PageCurrentTextPos(p PageHandle) (x, y float64) {
	pos := C.HPDF_Page_GetCurrentTextPos(cpage(p))
	return float64(pos.x), float64(pos.y)
}

func (haruEngine) PageDrawImage(p PageHandle, img ImageHandle, x, y, width, height float64) Status {
	return Status(C.HPDF_Page_DrawImage(cpage(p), cimg(img),
		C.HPDF_REAL(x), C.HPDF_REAL(y),
		C.HPDF_REAL(width), C.HPDF_REAL(height)))
}
