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

// Package haru generates PDF files using the Haru PDF library.
//
// The package wraps the native library behind a small, safe API.  A
// [Document] owns the native document handle and releases it exactly once,
// in [Document.Close]; pages, fonts and images are references into the
// document and stop working once it is closed, instead of touching freed
// memory.  Arguments are validated in Go before they reach the native
// library, and native failures are reported as typed errors.
//
// The native library is only linked in when the package is built with the
// "haru" build tag and cgo enabled.  Without it, [New] fails with
// [AllocError] and other operations return [LayoutError], [DrawError] or
// [EncodingError] carrying an unsupported-function status.  Use the native
// subpackage's Available function to test for library support at run time.
package haru
