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

	"seehuhn.de/go/haru/native"
)

// Orientation selects how a page's width and height relate.
type Orientation int

const (
	// Portrait means the page is at least as tall as it is wide.
	Portrait Orientation = iota
	// Landscape means the page is wider than it is tall.
	Landscape
)

func (o Orientation) String() string {
	switch o {
	case Portrait:
		return "portrait"
	case Landscape:
		return "landscape"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// PageLayout describes how a viewer application should display the pages of
// a document.
type PageLayout int

const (
	// LayoutDefault lets the viewer application choose.
	LayoutDefault PageLayout = iota
	// LayoutSingle displays one page at a time.
	LayoutSingle
	// LayoutOneColumn displays the pages in one continuous column.
	LayoutOneColumn
	// LayoutTwoColumnLeft displays two columns, odd pages on the left.
	LayoutTwoColumnLeft
	// LayoutTwoColumnRight displays two columns, odd pages on the right.
	LayoutTwoColumnRight
)

func (l PageLayout) String() string {
	switch l {
	case LayoutDefault:
		return "default"
	case LayoutSingle:
		return "single"
	case LayoutOneColumn:
		return "one column"
	case LayoutTwoColumnLeft:
		return "two columns, odd pages left"
	case LayoutTwoColumnRight:
		return "two columns, odd pages right"
	default:
		return fmt.Sprintf("PageLayout(%d)", int(l))
	}
}

func (l PageLayout) toNative() (int32, bool) {
	switch l {
	case LayoutDefault:
		return native.LayoutDefault, true
	case LayoutSingle:
		return native.LayoutSingle, true
	case LayoutOneColumn:
		return native.LayoutOneColumn, true
	case LayoutTwoColumnLeft:
		return native.LayoutTwoColumnLeft, true
	case LayoutTwoColumnRight:
		return native.LayoutTwoColumnRight, true
	default:
		return 0, false
	}
}

func pageLayoutFromNative(code int32) PageLayout {
	switch code {
	case native.LayoutSingle:
		return LayoutSingle
	case native.LayoutOneColumn:
		return LayoutOneColumn
	case native.LayoutTwoColumnLeft:
		return LayoutTwoColumnLeft
	case native.LayoutTwoColumnRight:
		return LayoutTwoColumnRight
	default:
		return LayoutDefault
	}
}

// LineCap describes how the ends of stroked lines are drawn.
type LineCap int

const (
	// CapButt squares the line off at the endpoint.
	CapButt LineCap = iota
	// CapRound draws a semicircle centred on the endpoint.
	CapRound
	// CapProjectingSquare extends the line half a stroke width beyond the
	// endpoint.
	CapProjectingSquare
)

func (c LineCap) String() string {
	switch c {
	case CapButt:
		return "butt"
	case CapRound:
		return "round"
	case CapProjectingSquare:
		return "projecting square"
	default:
		return fmt.Sprintf("LineCap(%d)", int(c))
	}
}

func (c LineCap) toNative() (int32, bool) {
	switch c {
	case CapButt:
		return native.CapButt, true
	case CapRound:
		return native.CapRound, true
	case CapProjectingSquare:
		return native.CapProjectingSquare, true
	default:
		return 0, false
	}
}

func lineCapFromNative(code int32) LineCap {
	switch code {
	case native.CapRound:
		return CapRound
	case native.CapProjectingSquare:
		return CapProjectingSquare
	default:
		return CapButt
	}
}

// LineJoin describes how the corners of stroked paths are drawn.
type LineJoin int

const (
	// JoinMiter produces a sharp corner.
	JoinMiter LineJoin = iota
	// JoinRound produces a circular corner.
	JoinRound
	// JoinBevel produces a flattened corner.
	JoinBevel
)

func (j LineJoin) String() string {
	switch j {
	case JoinMiter:
		return "miter"
	case JoinRound:
		return "round"
	case JoinBevel:
		return "bevel"
	default:
		return fmt.Sprintf("LineJoin(%d)", int(j))
	}
}

func (j LineJoin) toNative() (int32, bool) {
	switch j {
	case JoinMiter:
		return native.JoinMiter, true
	case JoinRound:
		return native.JoinRound, true
	case JoinBevel:
		return native.JoinBevel, true
	default:
		return 0, false
	}
}

func lineJoinFromNative(code int32) LineJoin {
	switch code {
	case native.JoinRound:
		return JoinRound
	case native.JoinBevel:
		return JoinBevel
	default:
		return JoinMiter
	}
}

// ColorSpace identifies the color space active on a page.
type ColorSpace int

const (
	DeviceGray ColorSpace = iota
	DeviceRGB
	DeviceCMYK
	CalGray
	CalRGB
	Lab
	ICCBased
	Separation
	DeviceN
	Indexed
	Pattern
)

func (cs ColorSpace) String() string {
	switch cs {
	case DeviceGray:
		return "DeviceGray"
	case DeviceRGB:
		return "DeviceRGB"
	case DeviceCMYK:
		return "DeviceCMYK"
	case CalGray:
		return "CalGray"
	case CalRGB:
		return "CalRGB"
	case Lab:
		return "Lab"
	case ICCBased:
		return "ICCBased"
	case Separation:
		return "Separation"
	case DeviceN:
		return "DeviceN"
	case Indexed:
		return "Indexed"
	case Pattern:
		return "Pattern"
	default:
		return fmt.Sprintf("ColorSpace(%d)", int(cs))
	}
}

func colorSpaceFromNative(code int32) (ColorSpace, bool) {
	switch code {
	case native.CSDeviceGray:
		return DeviceGray, true
	case native.CSDeviceRGB:
		return DeviceRGB, true
	case native.CSDeviceCMYK:
		return DeviceCMYK, true
	case native.CSCalGray:
		return CalGray, true
	case native.CSCalRGB:
		return CalRGB, true
	case native.CSLab:
		return Lab, true
	case native.CSICCBased:
		return ICCBased, true
	case native.CSSeparation:
		return Separation, true
	case native.CSDeviceN:
		return DeviceN, true
	case native.CSIndexed:
		return Indexed, true
	case native.CSPattern:
		return Pattern, true
	default:
		return 0, false
	}
}

// TextAlignment describes how text is aligned inside a region.
type TextAlignment int

const (
	AlignLeft TextAlignment = iota
	AlignRight
	AlignCenter
	AlignJustify
)

func (a TextAlignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	case AlignJustify:
		return "justify"
	default:
		return fmt.Sprintf("TextAlignment(%d)", int(a))
	}
}

func (a TextAlignment) toNative() (int32, bool) {
	switch a {
	case AlignLeft:
		return native.AlignLeft, true
	case AlignRight:
		return native.AlignRight, true
	case AlignCenter:
		return native.AlignCenter, true
	case AlignJustify:
		return native.AlignJustify, true
	default:
		return 0, false
	}
}

// CompressionMode selects which parts of the document the engine
// compresses.  Values can be combined with bitwise or.
type CompressionMode uint32

const (
	CompressNone     = CompressionMode(native.CompNone)
	CompressText     = CompressionMode(native.CompText)
	CompressImage    = CompressionMode(native.CompImage)
	CompressMetadata = CompressionMode(native.CompMetadata)
	CompressAll      = CompressionMode(native.CompAll)
)
