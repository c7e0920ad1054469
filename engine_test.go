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

// fakeEngine is a scripted in-memory implementation of [native.Engine] for
// the unit tests.  It records every call in order, simulates the sticky
// error state of the real engine, and can be told to fail specific calls.
type fakeEngine struct {
	calls []string

	// fail maps a method name to the status that method returns.
	fail map[string]native.Status

	// detail is the detail code recorded together with a scripted failure.
	detail native.Status

	// ttfErr, when set, makes LoadTTFont fail with a file-system error.
	ttfErr error

	lastErr    native.Status
	lastDetail native.Status

	numDocs  int
	numFreed int

	nextHandle uintptr

	width, height      float64
	lineWidth          float64
	lineCap, lineJoin  int32
	miterLimit         float64
	dash               []uint16
	dashPhase          uint32
	flatness           float64
	grayStroke         float64
	grayFill           float64
	rs, gs, bs         float64
	rf, gf, bf         float64
	cs, ms, ys, ks     float64
	cf, mf, yf, kf     float64
	strokeSpace        int32
	fillSpace          int32
	posX, posY         float64
	textPosX, textPosY float64
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		fail:        make(map[string]native.Status),
		nextHandle:  1,
		width:       595.276,
		height:      841.890,
		lineWidth:   1,
		miterLimit:  10,
		strokeSpace: native.CSDeviceGray,
		fillSpace:   native.CSDeviceGray,
	}
}

// failWith makes the named method return the given status.
func (e *fakeEngine) failWith(method string, s native.Status) {
	e.fail[method] = s
}

func (e *fakeEngine) status(method string) native.Status {
	e.calls = append(e.calls, method)
	if s, ok := e.fail[method]; ok {
		e.lastErr = s
		e.lastDetail = e.detail
		return s
	}
	return native.StatusOK
}

func (e *fakeEngine) handle() uintptr {
	h := e.nextHandle
	e.nextHandle++
	return h
}

func (e *fakeEngine) NewDoc() native.DocHandle {
	e.calls = append(e.calls, "NewDoc")
	if _, ok := e.fail["NewDoc"]; ok {
		return 0
	}
	e.numDocs++
	return native.DocHandle(e.handle())
}

func (e *fakeEngine) FreeDoc(native.DocHandle) {
	e.calls = append(e.calls, "FreeDoc")
	e.numFreed++
}

func (e *fakeEngine) UseUTFEncodings(native.DocHandle) native.Status {
	return e.status("UseUTFEncodings")
}

func (e *fakeEngine) LastError(native.DocHandle) native.Status   { return e.lastErr }
func (e *fakeEngine) ErrorDetail(native.DocHandle) native.Status { return e.lastDetail }
func (e *fakeEngine) ResetError(native.DocHandle) {
	e.calls = append(e.calls, "ResetError")
	e.lastErr = native.StatusOK
	e.lastDetail = native.StatusOK
}

func (e *fakeEngine) SaveToFile(_ native.DocHandle, name string) native.Status {
	return e.status("SaveToFile")
}

func (e *fakeEngine) SaveToWriter(_ native.DocHandle, w io.Writer) native.Status {
	s := e.status("SaveToWriter")
	if s == native.StatusOK {
		w.Write([]byte("%PDF-1.4\n%fake\n"))
	}
	return s
}

func (e *fakeEngine) SetPagesConfiguration(native.DocHandle, uint32) native.Status {
	return e.status("SetPagesConfiguration")
}

func (e *fakeEngine) PageLayout(native.DocHandle) int32 { return native.LayoutDefault }

func (e *fakeEngine) SetPageLayout(native.DocHandle, int32) native.Status {
	return e.status("SetPageLayout")
}

func (e *fakeEngine) SetCompressionMode(native.DocHandle, uint32) native.Status {
	return e.status("SetCompressionMode")
}

func (e *fakeEngine) AddPage(native.DocHandle) native.PageHandle {
	e.calls = append(e.calls, "AddPage")
	if s, ok := e.fail["AddPage"]; ok {
		e.lastErr = s
		e.lastDetail = e.detail
		return 0
	}
	return native.PageHandle(e.handle())
}

func (e *fakeEngine) InsertPage(native.DocHandle, native.PageHandle) native.PageHandle {
	e.calls = append(e.calls, "InsertPage")
	if s, ok := e.fail["InsertPage"]; ok {
		e.lastErr = s
		e.lastDetail = e.detail
		return 0
	}
	return native.PageHandle(e.handle())
}

func (e *fakeEngine) LoadTTFont(_ native.DocHandle, data []byte) (string, native.Status, error) {
	s := e.status("LoadTTFont")
	if e.ttfErr != nil {
		return "", native.StatusFileOpenError, e.ttfErr
	}
	if s != native.StatusOK {
		return "", s, nil
	}
	return "FakeFont", native.StatusOK, nil
}

func (e *fakeEngine) GetFont(native.DocHandle, string, string) native.FontHandle {
	e.calls = append(e.calls, "GetFont")
	if s, ok := e.fail["GetFont"]; ok {
		e.lastErr = s
		e.lastDetail = e.detail
		return 0
	}
	return native.FontHandle(e.handle())
}

func (e *fakeEngine) FontName(native.FontHandle) string { return "FakeFont" }

func (e *fakeEngine) LoadRawImage(_ native.DocHandle, data []byte, w, h uint32, cs int32) native.ImageHandle {
	e.calls = append(e.calls, "LoadRawImage")
	if s, ok := e.fail["LoadRawImage"]; ok {
		e.lastErr = s
		e.lastDetail = e.detail
		return 0
	}
	return native.ImageHandle(e.handle())
}

func (e *fakeEngine) PageWidth(native.PageHandle) float64 { return e.width }

func (e *fakeEngine) PageSetWidth(_ native.PageHandle, w float64) native.Status {
	s := e.status("PageSetWidth")
	if s == native.StatusOK {
		e.width = w
	}
	return s
}

func (e *fakeEngine) PageHeight(native.PageHandle) float64 { return e.height }

func (e *fakeEngine) PageSetHeight(_ native.PageHandle, h float64) native.Status {
	s := e.status("PageSetHeight")
	if s == native.StatusOK {
		e.height = h
	}
	return s
}

func (e *fakeEngine) PageLineWidth(native.PageHandle) float64 { return e.lineWidth }

func (e *fakeEngine) PageSetLineWidth(_ native.PageHandle, w float64) native.Status {
	s := e.status("PageSetLineWidth")
	if s == native.StatusOK {
		e.lineWidth = w
	}
	return s
}

func (e *fakeEngine) PageLineCap(native.PageHandle) int32 { return e.lineCap }

func (e *fakeEngine) PageSetLineCap(_ native.PageHandle, c int32) native.Status {
	s := e.status("PageSetLineCap")
	if s == native.StatusOK {
		e.lineCap = c
	}
	return s
}

func (e *fakeEngine) PageLineJoin(native.PageHandle) int32 { return e.lineJoin }

func (e *fakeEngine) PageSetLineJoin(_ native.PageHandle, j int32) native.Status {
	s := e.status("PageSetLineJoin")
	if s == native.StatusOK {
		e.lineJoin = j
	}
	return s
}

func (e *fakeEngine) PageMiterLimit(native.PageHandle) float64 { return e.miterLimit }

func (e *fakeEngine) PageSetMiterLimit(_ native.PageHandle, l float64) native.Status {
	s := e.status("PageSetMiterLimit")
	if s == native.StatusOK {
		e.miterLimit = l
	}
	return s
}

func (e *fakeEngine) PageDash(native.PageHandle) ([]uint16, uint32) {
	return e.dash, e.dashPhase
}

func (e *fakeEngine) PageSetDash(_ native.PageHandle, pattern []uint16, phase uint32) native.Status {
	s := e.status("PageSetDash")
	if s == native.StatusOK {
		e.dash = pattern
		e.dashPhase = phase
	}
	return s
}

func (e *fakeEngine) PageFlatness(native.PageHandle) float64 { return e.flatness }

func (e *fakeEngine) PageSetFlatness(_ native.PageHandle, f float64) native.Status {
	s := e.status("PageSetFlatness")
	if s == native.StatusOK {
		e.flatness = f
	}
	return s
}

func (e *fakeEngine) PageGrayStroke(native.PageHandle) float64 { return e.grayStroke }

func (e *fakeEngine) PageSetGrayStroke(_ native.PageHandle, g float64) native.Status {
	s := e.status("PageSetGrayStroke")
	if s == native.StatusOK {
		e.grayStroke = g
		e.strokeSpace = native.CSDeviceGray
	}
	return s
}

func (e *fakeEngine) PageGrayFill(native.PageHandle) float64 { return e.grayFill }

func (e *fakeEngine) PageSetGrayFill(_ native.PageHandle, g float64) native.Status {
	s := e.status("PageSetGrayFill")
	if s == native.StatusOK {
		e.grayFill = g
		e.fillSpace = native.CSDeviceGray
	}
	return s
}

func (e *fakeEngine) PageRGBStroke(native.PageHandle) (float64, float64, float64) {
	return e.rs, e.gs, e.bs
}

func (e *fakeEngine) PageSetRGBStroke(_ native.PageHandle, r, g, b float64) native.Status {
	s := e.status("PageSetRGBStroke")
	if s == native.StatusOK {
		e.rs, e.gs, e.bs = r, g, b
		e.strokeSpace = native.CSDeviceRGB
	}
	return s
}

func (e *fakeEngine) PageRGBFill(native.PageHandle) (float64, float64, float64) {
	return e.rf, e.gf, e.bf
}

func (e *fakeEngine) PageSetRGBFill(_ native.PageHandle, r, g, b float64) native.Status {
	s := e.status("PageSetRGBFill")
	if s == native.StatusOK {
		e.rf, e.gf, e.bf = r, g, b
		e.fillSpace = native.CSDeviceRGB
	}
	return s
}

func (e *fakeEngine) PageCMYKStroke(native.PageHandle) (float64, float64, float64, float64) {
	return e.cs, e.ms, e.ys, e.ks
}

func (e *fakeEngine) PageSetCMYKStroke(_ native.PageHandle, c, m, y, k float64) native.Status {
	s := e.status("PageSetCMYKStroke")
	if s == native.StatusOK {
		e.cs, e.ms, e.ys, e.ks = c, m, y, k
		e.strokeSpace = native.CSDeviceCMYK
	}
	return s
}

func (e *fakeEngine) PageCMYKFill(native.PageHandle) (float64, float64, float64, float64) {
	return e.cf, e.mf, e.yf, e.kf
}

func (e *fakeEngine) PageSetCMYKFill(_ native.PageHandle, c, m, y, k float64) native.Status {
	s := e.status("PageSetCMYKFill")
	if s == native.StatusOK {
		e.cf, e.mf, e.yf, e.kf = c, m, y, k
		e.fillSpace = native.CSDeviceCMYK
	}
	return s
}

func (e *fakeEngine) PageStrokingColorSpace(native.PageHandle) int32 { return e.strokeSpace }
func (e *fakeEngine) PageFillingColorSpace(native.PageHandle) int32  { return e.fillSpace }

func (e *fakeEngine) PageCurrentPos(native.PageHandle) (float64, float64) {
	return e.posX, e.posY
}

func (e *fakeEngine) PageMoveTo(_ native.PageHandle, x, y float64) native.Status {
	s := e.status("PageMoveTo")
	if s == native.StatusOK {
		e.posX, e.posY = x, y
	}
	return s
}

func (e *fakeEngine) PageLineTo(_ native.PageHandle, x, y float64) native.Status {
	s := e.status("PageLineTo")
	if s == native.StatusOK {
		e.posX, e.posY = x, y
	}
	return s
}

func (e *fakeEngine) PageCurveTo(_ native.PageHandle, x1, y1, x2, y2, x3, y3 float64) native.Status {
	s := e.status("PageCurveTo")
	if s == native.StatusOK {
		e.posX, e.posY = x3, y3
	}
	return s
}

func (e *fakeEngine) PageCurveTo2(_ native.PageHandle, x2, y2, x3, y3 float64) native.Status {
	s := e.status("PageCurveTo2")
	if s == native.StatusOK {
		e.posX, e.posY = x3, y3
	}
	return s
}

func (e *fakeEngine) PageCurveTo3(_ native.PageHandle, x1, y1, x3, y3 float64) native.Status {
	s := e.status("PageCurveTo3")
	if s == native.StatusOK {
		e.posX, e.posY = x3, y3
	}
	return s
}

func (e *fakeEngine) PageRectangle(_ native.PageHandle, x, y, w, h float64) native.Status {
	s := e.status("PageRectangle")
	if s == native.StatusOK {
		e.posX, e.posY = x, y
	}
	return s
}

func (e *fakeEngine) PageCircle(_ native.PageHandle, x, y, r float64) native.Status {
	return e.status("PageCircle")
}

func (e *fakeEngine) PageArc(_ native.PageHandle, x, y, r, a0, a1 float64) native.Status {
	return e.status("PageArc")
}

func (e *fakeEngine) PageClosePath(native.PageHandle) native.Status {
	return e.status("PageClosePath")
}

func (e *fakeEngine) PageEndPath(native.PageHandle) native.Status {
	return e.status("PageEndPath")
}

func (e *fakeEngine) PageStroke(native.PageHandle) native.Status {
	return e.status("PageStroke")
}

func (e *fakeEngine) PageFill(native.PageHandle) native.Status {
	return e.status("PageFill")
}

func (e *fakeEngine) PageEofill(native.PageHandle) native.Status {
	return e.status("PageEofill")
}

func (e *fakeEngine) PageFillStroke(native.PageHandle) native.Status {
	return e.status("PageFillStroke")
}

func (e *fakeEngine) PageEofillStroke(native.PageHandle) native.Status {
	return e.status("PageEofillStroke")
}

func (e *fakeEngine) PageClosePathStroke(native.PageHandle) native.Status {
	return e.status("PageClosePathStroke")
}

func (e *fakeEngine) PageClosePathFillStroke(native.PageHandle) native.Status {
	return e.status("PageClosePathFillStroke")
}

func (e *fakeEngine) PageClosePathEofillStroke(native.PageHandle) native.Status {
	return e.status("PageClosePathEofillStroke")
}

func (e *fakeEngine) PageConcat(_ native.PageHandle, a, b, c, d, x, y float64) native.Status {
	return e.status("PageConcat")
}

func (e *fakeEngine) PageBeginText(native.PageHandle) native.Status {
	return e.status("PageBeginText")
}

func (e *fakeEngine) PageEndText(native.PageHandle) native.Status {
	return e.status("PageEndText")
}

func (e *fakeEngine) PageSetFontAndSize(_ native.PageHandle, f native.FontHandle, size float64) native.Status {
	return e.status("PageSetFontAndSize")
}

func (e *fakeEngine) PageSetTextLeading(native.PageHandle, float64) native.Status {
	return e.status("PageSetTextLeading")
}

func (e *fakeEngine) PageMoveTextPos(_ native.PageHandle, dx, dy float64) native.Status {
	s := e.status("PageMoveTextPos")
	if s == native.StatusOK {
		e.textPosX += dx
		e.textPosY += dy
	}
	return s
}

func (e *fakeEngine) PageMoveToNextLine(native.PageHandle) native.Status {
	return e.status("PageMoveToNextLine")
}

func (e *fakeEngine) PageShowText(_ native.PageHandle, text string) native.Status {
	return e.status("PageShowText")
}

func (e *fakeEngine) PageTextOut(_ native.PageHandle, x, y float64, text string) native.Status {
	s := e.status("PageTextOut")
	if s == native.StatusOK {
		e.textPosX, e.textPosY = x, y
	}
	return s
}

func (e *fakeEngine) PageTextRect(_ native.PageHandle, left, top, right, bottom float64, text string, align int32) native.Status {
	return e.status("PageTextRect")
}

func (e *fakeEngine) PageCurrentTextPos(native.PageHandle) (float64, float64) {
	return e.textPosX, e.textPosY
}

func (e *fakeEngine) PageDrawImage(_ native.PageHandle, img native.ImageHandle, x, y, w, h float64) native.Status {
	return e.status("PageDrawImage")
}

// numCalls counts the recorded calls to the given method.
func (e *fakeEngine) numCalls(method string) int {
	n := 0
	for _, c := range e.calls {
		if c == method {
			n++
		}
	}
	return n
}
