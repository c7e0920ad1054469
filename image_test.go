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
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestLoadImage(t *testing.T) {
	eng := newFakeEngine()
	doc, err := newDocument(eng)
	if err != nil {
		t.Fatal(err)
	}
	defer doc.Close()

	src := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			src.Set(x, y, color.RGBA{R: uint8(x * 60), G: uint8(y * 80), B: 128, A: 255})
		}
	}
	img, err := doc.LoadImage(src)
	if err != nil {
		t.Fatal(err)
	}
	if img.Width != 4 || img.Height != 3 {
		t.Errorf("got %d x %d, want 4 x 3", img.Width, img.Height)
	}

	_, err = doc.LoadImage(nil)
	var argErr *ArgumentError
	if !errors.As(err, &argErr) {
		t.Errorf("LoadImage(nil): got %v", err)
	}
	_, err = doc.LoadImage(image.NewRGBA(image.Rectangle{}))
	if !errors.As(err, &argErr) {
		t.Errorf("empty image: got %v", err)
	}
}

func TestDrawImage(t *testing.T) {
	eng := newFakeEngine()
	doc, err := newDocument(eng)
	if err != nil {
		t.Fatal(err)
	}
	defer doc.Close()
	page, err := doc.AddPage()
	if err != nil {
		t.Fatal(err)
	}
	img, err := doc.LoadImage(image.NewRGBA(image.Rect(0, 0, 2, 2)))
	if err != nil {
		t.Fatal(err)
	}

	if err := page.DrawImage(img, 100, 100, 200, 150); err != nil {
		t.Fatal(err)
	}
	if n := eng.numCalls("PageDrawImage"); n != 1 {
		t.Errorf("PageDrawImage called %d times", n)
	}

	// degenerate extents are rejected
	var argErr *ArgumentError
	for _, c := range []struct{ w, h float64 }{{0, 10}, {10, 0}, {-1, 10}} {
		err := page.DrawImage(img, 0, 0, c.w, c.h)
		if !errors.As(err, &argErr) {
			t.Errorf("DrawImage extent %g x %g: got %v", c.w, c.h, err)
		}
	}

	// images from another document are rejected
	other, err := newDocument(newFakeEngine())
	if err != nil {
		t.Fatal(err)
	}
	defer other.Close()
	otherImg, err := other.LoadImage(image.NewRGBA(image.Rect(0, 0, 2, 2)))
	if err != nil {
		t.Fatal(err)
	}
	err = page.DrawImage(otherImg, 0, 0, 10, 10)
	if !errors.As(err, &argErr) {
		t.Errorf("foreign image: got %v", err)
	}

	// not allowed while a path is under construction
	if err := page.MoveTo(0, 0); err != nil {
		t.Fatal(err)
	}
	err = page.DrawImage(img, 0, 0, 10, 10)
	var stateErr *PathStateError
	if !errors.As(err, &stateErr) {
		t.Errorf("DrawImage with open path: got %v", err)
	}
}
