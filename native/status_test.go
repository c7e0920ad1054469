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

import (
	"strings"
	"testing"
)

func TestStatusString(t *testing.T) {
	if got := StatusOK.String(); got != "OK" {
		t.Errorf("StatusOK.String() = %q", got)
	}
	if got := StatusFileOpenError.String(); !strings.Contains(got, "open") {
		t.Errorf("StatusFileOpenError.String() = %q", got)
	}

	// unknown codes still format usefully
	got := Status(0x9999).String()
	if !strings.Contains(got, "9999") {
		t.Errorf("unknown status formats as %q", got)
	}
}

func TestStatusIsKnown(t *testing.T) {
	for _, s := range []Status{StatusOK, StatusFailedToAllocMem,
		StatusPageInvalidGMode, StatusInvalidICCComponentNum} {
		if !s.IsKnown() {
			t.Errorf("%v not known", uint32(s))
		}
	}
	if Status(0x9999).IsKnown() {
		t.Error("Status(0x9999) reported as known")
	}
}

func TestStubEngine(t *testing.T) {
	if Available() {
		t.Skip("real engine linked in")
	}
	eng := Get()
	if h := eng.NewDoc(); h != 0 {
		t.Error("stub engine allocated a document")
	}
	if s := eng.SaveToFile(0, "out.pdf"); s != StatusUnsupportedFunc {
		t.Errorf("got status %v", s)
	}
}
