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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestColorBounds(t *testing.T) {
	// the endpoints of [0, 1] are valid
	for _, v := range []float64{0, 0.5, 1} {
		_, _, page := makePage(t)
		if err := page.SetGrayStroke(v); err != nil {
			t.Errorf("SetGrayStroke(%g): %v", v, err)
		}
		if err := page.SetRGBFill(v, v, v); err != nil {
			t.Errorf("SetRGBFill(%g): %v", v, err)
		}
		if err := page.SetCMYKStroke(v, v, v, v); err != nil {
			t.Errorf("SetCMYKStroke(%g): %v", v, err)
		}
	}
}

func TestColorValidation(t *testing.T) {
	checks := []struct {
		name string
		f    func(p *Page, v float64) error
	}{
		{"SetGrayStroke", func(p *Page, v float64) error { return p.SetGrayStroke(v) }},
		{"SetGrayFill", func(p *Page, v float64) error { return p.SetGrayFill(v) }},
		{"SetRGBStroke", func(p *Page, v float64) error { return p.SetRGBStroke(0.5, v, 0.5) }},
		{"SetRGBFill", func(p *Page, v float64) error { return p.SetRGBFill(0.5, 0.5, v) }},
		{"SetCMYKStroke", func(p *Page, v float64) error { return p.SetCMYKStroke(v, 0, 0, 0) }},
		{"SetCMYKFill", func(p *Page, v float64) error { return p.SetCMYKFill(0, 0, 0, v) }},
	}
	for _, c := range checks {
		for _, v := range []float64{-0.1, 1.1, math.NaN(), math.Inf(1)} {
			eng, _, page := makePage(t)
			if err := page.SetRGBFill(0.25, 0.5, 0.75); err != nil {
				t.Fatal(err)
			}
			numNative := len(eng.calls)

			err := c.f(page, v)
			var argErr *ArgumentError
			if !errors.As(err, &argErr) {
				t.Errorf("%s(%g): got %v, want *ArgumentError", c.name, v, err)
			}
			if len(eng.calls) != numNative {
				t.Errorf("%s(%g) reached the engine", c.name, v)
			}

			// the previously set color is unchanged
			r, g, b, err := page.RGBFill()
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff([]float64{0.25, 0.5, 0.75}, []float64{r, g, b}); d != "" {
				t.Errorf("%s(%g) changed the fill color: %s", c.name, v, d)
			}
		}
	}
}

func TestColorSpaceTracking(t *testing.T) {
	_, _, page := makePage(t)

	cs, err := page.FillingColorSpace()
	if err != nil {
		t.Fatal(err)
	}
	if cs != DeviceGray {
		t.Errorf("initial color space is %s", cs)
	}

	if err := page.SetRGBFill(1, 0, 0); err != nil {
		t.Fatal(err)
	}
	cs, err = page.FillingColorSpace()
	if err != nil {
		t.Fatal(err)
	}
	if cs != DeviceRGB {
		t.Errorf("got %s, want DeviceRGB", cs)
	}

	// stroking and filling spaces are independent
	if err := page.SetCMYKStroke(0, 0, 0, 1); err != nil {
		t.Fatal(err)
	}
	strokeCS, err := page.StrokingColorSpace()
	if err != nil {
		t.Fatal(err)
	}
	if strokeCS != DeviceCMYK {
		t.Errorf("got %s, want DeviceCMYK", strokeCS)
	}
	fillCS, _ := page.FillingColorSpace()
	if fillCS != DeviceRGB {
		t.Errorf("stroke color changed the fill space to %s", fillCS)
	}
}

func TestStrokeStyle(t *testing.T) {
	_, _, page := makePage(t)

	if err := page.SetLineWidth(2.5); err != nil {
		t.Fatal(err)
	}
	w, err := page.LineWidth()
	if err != nil {
		t.Fatal(err)
	}
	if w != 2.5 {
		t.Errorf("got line width %g, want 2.5", w)
	}

	if err := page.SetLineCap(CapRound); err != nil {
		t.Fatal(err)
	}
	c, err := page.LineCapStyle()
	if err != nil {
		t.Fatal(err)
	}
	if c != CapRound {
		t.Errorf("got %s, want round", c)
	}

	if err := page.SetLineJoin(JoinBevel); err != nil {
		t.Fatal(err)
	}
	j, err := page.LineJoinStyle()
	if err != nil {
		t.Fatal(err)
	}
	if j != JoinBevel {
		t.Errorf("got %s, want bevel", j)
	}

	if err := page.SetMiterLimit(4); err != nil {
		t.Fatal(err)
	}
	err = page.SetMiterLimit(0.5)
	var argErr *ArgumentError
	if !errors.As(err, &argErr) {
		t.Errorf("SetMiterLimit(0.5): got %v, want *ArgumentError", err)
	}
}

func TestSetDash(t *testing.T) {
	type testCase struct {
		pattern []float64
		phase   float64
		ok      bool
	}
	cases := []testCase{
		{nil, 0, true},
		{[]float64{3}, 0, true},
		{[]float64{3, 7}, 2, true},
		{[]float64{1, 2, 3, 4, 5, 6, 7, 8}, 0, true},
		// odd length > 1
		{[]float64{1, 2, 3}, 0, false},
		// too long
		{[]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0, false},
		// zero or negative entries
		{[]float64{0, 2}, 0, false},
		{[]float64{-1, 2}, 0, false},
		// fractional entries would be truncated by the engine
		{[]float64{2.7, 0.5}, 0, false},
		{[]float64{0.5}, 0, false},
		{[]float64{math.NaN(), 2}, 0, false},
		{[]float64{3, math.Inf(1)}, 0, false},
		// negative or fractional phase
		{[]float64{3, 7}, -1, false},
		{[]float64{3, 7}, 1.9, false},
	}
	for _, c := range cases {
		_, _, page := makePage(t)
		err := page.SetDash(c.pattern, c.phase)
		if c.ok {
			if err != nil {
				t.Errorf("SetDash(%v, %g): %v", c.pattern, c.phase, err)
				continue
			}
			pattern, phase, err := page.Dash()
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(c.pattern, pattern); d != "" {
				t.Errorf("SetDash(%v, %g): %s", c.pattern, c.phase, d)
			}
			if phase != c.phase {
				t.Errorf("got phase %g, want %g", phase, c.phase)
			}
		} else {
			var argErr *ArgumentError
			if !errors.As(err, &argErr) {
				t.Errorf("SetDash(%v, %g): got %v, want *ArgumentError",
					c.pattern, c.phase, err)
			}
			// nothing reached the engine, lines are still solid
			pattern, _, err := page.Dash()
			if err != nil {
				t.Fatal(err)
			}
			if len(pattern) != 0 {
				t.Errorf("SetDash(%v, %g) changed the dash pattern to %v",
					c.pattern, c.phase, pattern)
			}
		}
	}
}
