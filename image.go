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
	"image"

	xdraw "golang.org/x/image/draw"

	"seehuhn.de/go/haru/native"
)

// An Image is an image loaded into a [Document].  Images are owned by the
// document and become unusable when it is closed.
type Image struct {
	doc    *Document
	handle native.ImageHandle

	// Width and Height are the image dimensions in pixels.
	Width  int
	Height int
}

// LoadImage registers img with the document as a DeviceRGB image, ready
// for use with [Page.DrawImage].  The alpha channel, if any, is discarded.
func (d *Document) LoadImage(img image.Image) (*Image, error) {
	if err := d.alive(); err != nil {
		return nil, err
	}
	if img == nil {
		return nil, &ArgumentError{Op: "LoadImage", Param: "img",
			Reason: "must not be nil"}
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, &ArgumentError{Op: "LoadImage", Param: "img",
			Reason: "must not be empty"}
	}

	nrgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.Copy(nrgba, image.Point{}, img, b, xdraw.Src, nil)

	data := make([]byte, w*h*3)
	for y := 0; y < h; y++ {
		src := nrgba.Pix[y*nrgba.Stride:]
		dst := data[y*w*3:]
		for x := 0; x < w; x++ {
			dst[3*x] = src[4*x]
			dst[3*x+1] = src[4*x+1]
			dst[3*x+2] = src[4*x+2]
		}
	}

	handle := d.eng.LoadRawImage(d.handle, data, uint32(w), uint32(h), native.CSDeviceRGB)
	if handle == 0 {
		return nil, d.nullHandle("LoadImage", classDraw)
	}
	return &Image{doc: d, handle: handle, Width: w, Height: h}, nil
}

// DrawImage paints img into the rectangle with lower-left corner (x, y)
// and the given extent.  The image must belong to the same document as the
// page.
func (p *Page) DrawImage(img *Image, x, y, width, height float64) error {
	if err := p.isValid("DrawImage", modePage); err != nil {
		return err
	}
	if img == nil || img.doc != p.doc {
		return &ArgumentError{Op: "DrawImage", Param: "img",
			Reason: "image does not belong to this document"}
	}
	if err := checkCoords("DrawImage", x, y); err != nil {
		return err
	}
	if err := checkPositive("DrawImage", "width", width); err != nil {
		return err
	}
	if err := checkPositive("DrawImage", "height", height); err != nil {
		return err
	}
	s := p.doc.eng.PageDrawImage(p.handle, img.handle, x, y, width, height)
	return p.check("DrawImage", s, classDraw)
}
