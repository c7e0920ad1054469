//go:build !haru || !cgo

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

import "io"

// This file is compiled when the real engine is not linked in.  Build with
// "-tags haru" (and cgo enabled) to get the full implementation.  Allocation
// returns the zero handle and every other call reports
// [StatusUnsupportedFunc], so callers fail cleanly instead of crashing.

var (
	engine    Engine = stubEngine{}
	available        = false
)

type stubEngine struct{}

func (stubEngine) NewDoc() DocHandle { return 0 }
func (stubEngine) FreeDoc(DocHandle) {}
func (stubEngine) UseUTFEncodings(DocHandle) Status { return StatusUnsupportedFunc }
func (stubEngine) LastError(DocHandle) Status { return StatusUnsupportedFunc }
func (stubEngine) ErrorDetail(DocHandle) Status { return StatusOK }
func (stubEngine) ResetError(DocHandle) {}
func (stubEngine) SaveToFile(DocHandle, string) Status { return StatusUnsupportedFunc }
func (stubEngine) SaveToWriter(DocHandle, io.Writer) Status {
	return StatusUnsupportedFunc
}
func (stubEngine) SetPagesConfiguration(DocHandle, uint32) Status { return StatusUnsupportedFunc }
func (stubEngine) PageLayout(DocHandle) int32 { return LayoutDefault }
func (stubEngine) SetPageLayout(DocHandle, int32) Status { return StatusUnsupportedFunc }
func (stubEngine) SetCompressionMode(DocHandle, uint32) Status { return StatusUnsupportedFunc }
func (stubEngine) AddPage(DocHandle) PageHandle { return 0 }
func (stubEngine) InsertPage(DocHandle, PageHandle) PageHandle { return 0 }

func (stubEngine) LoadTTFont(DocHandle, []byte) (string, Status, error) {
	return "", StatusUnsupportedFunc, nil
}
func (stubEngine) GetFont(DocHandle, string, string) FontHandle { return 0 }
func (stubEngine) FontName(FontHandle) string { return "" }
func (stubEngine) LoadRawImage(DocHandle, []byte, uint32, uint32, int32) ImageHandle {
	return 0
}

func (stubEngine) PageWidth(PageHandle) float64 { return 0 }
func (stubEngine) PageSetWidth(PageHandle, float64) Status { return StatusUnsupportedFunc }
func (stubEngine) PageHeight(PageHandle) float64 { return 0 }
func (stubEngine) PageSetHeight(PageHandle, float64) Status { return StatusUnsupportedFunc }
func (stubEngine) PageLineWidth(PageHandle) float64 { return 0 }
func (stubEngine) PageSetLineWidth(PageHandle, float64) Status { return StatusUnsupportedFunc }
func (stubEngine) PageLineCap(PageHandle) int32 { return CapButt }
func (stubEngine) PageSetLineCap(PageHandle, int32) Status { return StatusUnsupportedFunc }
func (stubEngine) PageLineJoin(PageHandle) int32 { return JoinMiter }
func (stubEngine) PageSetLineJoin(PageHandle, int32) Status { return StatusUnsupportedFunc }
func (stubEngine) PageMiterLimit(PageHandle) float64 { return 0 }
func (stubEngine) PageSetMiterLimit(PageHandle, float64) Status { return StatusUnsupportedFunc }
func (stubEngine) PageDash(PageHandle) ([]uint16, uint32) { return nil, 0 }
func (stubEngine) PageSetDash(PageHandle, []uint16, uint32) Status {
	return StatusUnsupportedFunc
}
func (stubEngine) PageFlatness(PageHandle) float64 { return 0 }
func (stubEngine) PageSetFlatness(PageHandle, float64) Status { return StatusUnsupportedFunc }

func (stubEngine) PageGrayStroke(PageHandle) float64 { return 0 }
func (stubEngine) PageSetGrayStroke(PageHandle, float64) Status { return StatusUnsupportedFunc }
func (stubEngine) PageGrayFill(PageHandle) float64 { return 0 }
func (stubEngine) PageSetGrayFill(PageHandle, float64) Status { return StatusUnsupportedFunc }
func (stubEngine) PageRGBStroke(PageHandle) (r, g, b float64) { return 0, 0, 0 }
func (stubEngine) PageSetRGBStroke(PageHandle, float64, float64, float64) Status {
	return StatusUnsupportedFunc
}
func (stubEngine) PageRGBFill(PageHandle) (r, g, b float64) { return 0, 0, 0 }
func (stubEngine) PageSetRGBFill(PageHandle, float64, float64, float64) Status {
	return StatusUnsupportedFunc
}
func (stubEngine) PageCMYKStroke(PageHandle) (c, m, y, k float64) { return 0, 0, 0, 0 }
func (stubEngine) PageSetCMYKStroke(PageHandle, float64, float64, float64, float64) Status {
	return StatusUnsupportedFunc
}
func (stubEngine) PageCMYKFill(PageHandle) (c, m, y, k float64) { return 0, 0, 0, 0 }
func (stubEngine) PageSetCMYKFill(PageHandle, float64, float64, float64, float64) Status {
	return StatusUnsupportedFunc
}
func (stubEngine) PageStrokingColorSpace(PageHandle) int32 { return CSEOF }
func (stubEngine) PageFillingColorSpace(PageHandle) int32 { return CSEOF }

func (stubEngine) PageCurrentPos(PageHandle) (x, y float64) { return 0, 0 }
func (stubEngine) PageMoveTo(PageHandle, float64, float64) Status {
	return StatusUnsupportedFunc
}
func (stubEngine) PageLineTo(PageHandle, float64, float64) Status {
	return StatusUnsupportedFunc
}
func (stubEngine) PageCurveTo(PageHandle, float64, float64, float64, float64, float64, float64) Status {
	return StatusUnsupportedFunc
}
func (stubEngine) PageCurveTo2(PageHandle, float64, float64, float64, float64) Status {
	return StatusUnsupportedFunc
}
func (stubEngine) PageCurveTo3(PageHandle, float64, float64, float64, float64) Status {
	return StatusUnsupportedFunc
}
func (stubEngine) PageRectangle(PageHandle, float64, float64, float64, float64) Status {
	return StatusUnsupportedFunc
}
func (stubEngine) PageCircle(PageHandle, float64, float64, float64) Status {
	return StatusUnsupportedFunc
}
func (stubEngine) PageArc(PageHandle, float64, float64, float64, float64, float64) Status {
	return StatusUnsupportedFunc
}
func (stubEngine) PageClosePath(PageHandle) Status { return StatusUnsupportedFunc }
func (stubEngine) PageEndPath(PageHandle) Status { return StatusUnsupportedFunc }

func (stubEngine) PageStroke(PageHandle) Status { return StatusUnsupportedFunc }
func (stubEngine) PageFill(PageHandle) Status { return StatusUnsupportedFunc }
func (stubEngine) PageEofill(PageHandle) Status { return StatusUnsupportedFunc }
func (stubEngine) PageFillStroke(PageHandle) Status { return StatusUnsupportedFunc }
func (stubEngine) PageEofillStroke(PageHandle) Status { return StatusUnsupportedFunc }
func (stubEngine) PageClosePathStroke(PageHandle) Status { return StatusUnsupportedFunc }
func (stubEngine) PageClosePathFillStroke(PageHandle) Status { return StatusUnsupportedFunc }
func (stubEngine) PageClosePathEofillStroke(PageHandle) Status {
	return StatusUnsupportedFunc
}

func (stubEngine) PageConcat(PageHandle, float64, float64, float64, float64, float64, float64) Status {
	return StatusUnsupportedFunc
}

func (stubEngine) PageBeginText(PageHandle) Status { return StatusUnsupportedFunc }
func (stubEngine) PageEndText(PageHandle) Status { return StatusUnsupportedFunc }
func (stubEngine) PageSetFontAndSize(PageHandle, FontHandle, float64) Status {
	return StatusUnsupportedFunc
}
func (stubEngine) PageSetTextLeading(PageHandle, float64) Status { return StatusUnsupportedFunc }
func (stubEngine) PageMoveTextPos(PageHandle, float64, float64) Status {
	return StatusUnsupportedFunc
}
func (stubEngine) PageMoveToNextLine(PageHandle) Status { return StatusUnsupportedFunc }
func (stubEngine) PageShowText(PageHandle, string) Status {
	return StatusUnsupportedFunc
}
func (stubEngine) PageTextOut(PageHandle, float64, float64, string) Status {
	return StatusUnsupportedFunc
}
func (stubEngine) PageTextRect(PageHandle, float64, float64, float64, float64, string, int32) Status {
	return StatusUnsupportedFunc
}
func (stubEngine) PageCurrentTextPos(PageHandle) (x, y float64) { return 0, 0 }

func (stubEngine) PageDrawImage(PageHandle, ImageHandle, float64, float64, float64, float64) Status {
	return StatusUnsupportedFunc
}
