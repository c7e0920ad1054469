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

// A Paper is a named paper size.  Width and Height are in PDF default user
// space units (1/72 inch) and describe the portrait orientation.
type Paper struct {
	Width  float64
	Height float64
}

// Default paper sizes.
var (
	A4     = Paper{Width: 595.276, Height: 841.890}
	A5     = Paper{Width: 420.945, Height: 595.276}
	Letter = Paper{Width: 612, Height: 792}
)
