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
	"fmt"

	"seehuhn.de/go/haru/native"
)

// ErrClosed is returned when a [Document], or a page, font or image
// belonging to it, is used after the document has been closed.
var ErrClosed = errors.New("document is closed")

// AllocError indicates that the engine could not allocate memory for a new
// object.
type AllocError struct {
	Op string
}

func (e *AllocError) Error() string {
	return e.Op + ": allocation failed"
}

// ArgumentError indicates that an argument was rejected before any native
// call was made.
type ArgumentError struct {
	Op     string
	Param  string
	Reason string
}

func (e *ArgumentError) Error() string {
	return e.Op + ": " + e.Param + " " + e.Reason
}

// PathStateError indicates that an operation is not allowed in the page's
// current graphics mode, for example a path segment operator with no open
// path, or starting a text object while a path is under construction.
type PathStateError struct {
	Op    string
	State string
}

func (e *PathStateError) Error() string {
	return e.Op + ": not allowed in " + e.State + " mode"
}

// nativeMessage formats an engine status code, with the detail code
// appended when the engine recorded one.
func nativeMessage(op string, code, detail native.Status) string {
	msg := op + ": " + code.String()
	if detail != native.StatusOK {
		msg += fmt.Sprintf(" (detail 0x%04x)", uint32(detail))
	}
	return msg
}

// LayoutError indicates that the engine rejected a document or page
// structure operation.
type LayoutError struct {
	Op     string
	Code   native.Status
	Detail native.Status
}

func (e *LayoutError) Error() string {
	return nativeMessage(e.Op, e.Code, e.Detail)
}

// DrawError indicates that the engine rejected a content stream operation.
type DrawError struct {
	Op     string
	Code   native.Status
	Detail native.Status
}

func (e *DrawError) Error() string {
	return nativeMessage(e.Op, e.Code, e.Detail)
}

// EncodingError indicates that the engine failed to serialise the document.
type EncodingError struct {
	Op     string
	Code   native.Status
	Detail native.Status
}

func (e *EncodingError) Error() string {
	return nativeMessage(e.Op, e.Code, e.Detail)
}

// IOError indicates a failure to read or write data.  Either Code (for
// failures inside the engine) or Err (for failures in Go code) is set.
type IOError struct {
	Op     string
	Code   native.Status
	Detail native.Status
	Err    error
}

func (e *IOError) Error() string {
	if e.Err != nil {
		return e.Op + ": " + e.Err.Error()
	}
	return nativeMessage(e.Op, e.Code, e.Detail)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// FontError indicates that a font could not be parsed or registered.
// Either Code (for failures inside the engine) or Err (for failures in the
// font parser) is set.
type FontError struct {
	Op     string
	Code   native.Status
	Detail native.Status
	Err    error
}

func (e *FontError) Error() string {
	if e.Err != nil {
		return e.Op + ": " + e.Err.Error()
	}
	return nativeMessage(e.Op, e.Code, e.Detail)
}

func (e *FontError) Unwrap() error {
	return e.Err
}

// errClass selects which error type a native failure is reported as.
type errClass int

const (
	classLayout errClass = iota
	classDraw
	classSave
	classFont
)

// nativeError converts a non-OK engine status into a typed error.
func nativeError(class errClass, op string, code, detail native.Status) error {
	if code == native.StatusFailedToAllocMem {
		return &AllocError{Op: op}
	}
	switch class {
	case classDraw:
		return &DrawError{Op: op, Code: code, Detail: detail}
	case classSave:
		if code == native.StatusFileIOError || code == native.StatusFileOpenError {
			return &IOError{Op: op, Code: code, Detail: detail}
		}
		return &EncodingError{Op: op, Code: code, Detail: detail}
	case classFont:
		return &FontError{Op: op, Code: code, Detail: detail}
	default:
		return &LayoutError{Op: op, Code: code, Detail: detail}
	}
}
