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

import "fmt"

// Status is a native engine status code.  Zero means success; the non-zero
// values form the closed set of error codes defined by the engine.  For some
// codes a second "detail" status carries extra information, for example the
// errno of a failed file operation.
type Status uint32

// StatusOK is the successful status.
const StatusOK Status = 0

// The native error codes.
const (
	StatusArrayCountErr             Status = 0x1001
	StatusArrayItemNotFound         Status = 0x1002
	StatusArrayItemUnexpectedType   Status = 0x1003
	StatusBinaryLengthErr           Status = 0x1004
	StatusDictCountErr              Status = 0x1007
	StatusDictItemNotFound          Status = 0x1008
	StatusDictItemUnexpectedType    Status = 0x1009
	StatusDictStreamLengthNotFound  Status = 0x100a
	StatusDocEncryptDictNotFound    Status = 0x100b
	StatusDocInvalidObject          Status = 0x100c
	StatusDuplicateRegistration     Status = 0x100e
	StatusExceedJWWCodeNumLimit     Status = 0x100f
	StatusEncryptInvalidPassword    Status = 0x1011
	StatusUnknownClass              Status = 0x1013
	StatusExceedGStateLimit         Status = 0x1014
	StatusFailedToAllocMem          Status = 0x1015
	StatusFileIOError               Status = 0x1016
	StatusFileOpenError             Status = 0x1017
	StatusFontExists                Status = 0x1019
	StatusFontInvalidWidthsTable    Status = 0x101a
	StatusInvalidAFMHeader          Status = 0x101b
	StatusInvalidAnnotation         Status = 0x101c
	StatusInvalidBitPerComponent    Status = 0x101e
	StatusInvalidCharMatricsData    Status = 0x101f
	StatusInvalidColorSpace         Status = 0x1020
	StatusInvalidCompressionMode    Status = 0x1021
	StatusInvalidDateTime           Status = 0x1022
	StatusInvalidDestination        Status = 0x1023
	StatusInvalidDocument           Status = 0x1025
	StatusInvalidDocumentState      Status = 0x1026
	StatusInvalidEncoder            Status = 0x1027
	StatusInvalidEncoderType        Status = 0x1028
	StatusInvalidEncodingName       Status = 0x102b
	StatusInvalidEncryptKeyLen      Status = 0x102c
	StatusInvalidFontDefData        Status = 0x102d
	StatusInvalidFontDefType        Status = 0x102e
	StatusInvalidFontName           Status = 0x102f
	StatusInvalidImage              Status = 0x1030
	StatusInvalidJPEGData           Status = 0x1031
	StatusInvalidNData              Status = 0x1032
	StatusInvalidObject             Status = 0x1033
	StatusInvalidObjID              Status = 0x1034
	StatusInvalidOperation          Status = 0x1035
	StatusInvalidOutline            Status = 0x1036
	StatusInvalidPage               Status = 0x1037
	StatusInvalidPages              Status = 0x1038
	StatusInvalidParameter          Status = 0x1039
	StatusInvalidPNGImage           Status = 0x103b
	StatusInvalidStream             Status = 0x103c
	StatusMissingFileNameEntry      Status = 0x103d
	StatusInvalidTTCFile            Status = 0x103f
	StatusInvalidTTCIndex           Status = 0x1040
	StatusInvalidWXData             Status = 0x1041
	StatusItemNotFound              Status = 0x1042
	StatusLibPNGError               Status = 0x1043
	StatusNameInvalidValue          Status = 0x1044
	StatusNameOutOfRange            Status = 0x1045
	StatusPageInvalidParamCount     Status = 0x1048
	StatusPagesMissingKidsEntry     Status = 0x1049
	StatusPageCannotFindObject      Status = 0x104a
	StatusPageCannotGetRootPages    Status = 0x104b
	StatusPageCannotRestoreGState   Status = 0x104c
	StatusPageCannotSetParent       Status = 0x104d
	StatusPageFontNotFound          Status = 0x104e
	StatusPageInvalidFont           Status = 0x104f
	StatusPageInvalidFontSize       Status = 0x1050
	StatusPageInvalidGMode          Status = 0x1051
	StatusPageInvalidIndex          Status = 0x1052
	StatusPageInvalidRotateValue    Status = 0x1053
	StatusPageInvalidSize           Status = 0x1054
	StatusPageInvalidXObject        Status = 0x1055
	StatusPageOutOfRange            Status = 0x1056
	StatusRealOutOfRange            Status = 0x1057
	StatusStreamEOF                 Status = 0x1058
	StatusStreamReadLnContinue      Status = 0x1059
	StatusStringOutOfRange          Status = 0x105b
	StatusThisFuncWasSkipped        Status = 0x105c
	StatusTTFCannotEmbeddingFont    Status = 0x105d
	StatusTTFInvalidCMap            Status = 0x105e
	StatusTTFInvalidFormat          Status = 0x105f
	StatusTTFMissingTable           Status = 0x1060
	StatusUnsupportedFontType       Status = 0x1061
	StatusUnsupportedFunc           Status = 0x1062
	StatusUnsupportedJPEGFormat     Status = 0x1063
	StatusUnsupportedType1Font      Status = 0x1064
	StatusXrefCountErr              Status = 0x1065
	StatusZlibError                 Status = 0x1066
	StatusInvalidPageIndex          Status = 0x1067
	StatusInvalidURI                Status = 0x1068
	StatusPageLayoutOutOfRange      Status = 0x1069
	StatusPageModeOutOfRange        Status = 0x1070
	StatusPageNumStyleOutOfRange    Status = 0x1071
	StatusAnnotInvalidIcon          Status = 0x1072
	StatusAnnotInvalidBorderStyle   Status = 0x1073
	StatusPageInvalidDirection      Status = 0x1074
	StatusInvalidFont               Status = 0x1075
	StatusPageInsufficientSpace     Status = 0x1076
	StatusPageInvalidDisplayTime    Status = 0x1077
	StatusPageInvalidTransitionTime Status = 0x1078
	StatusInvalidPageSlideshowType  Status = 0x1079
	StatusExtGStateOutOfRange       Status = 0x1080
	StatusExtGStateInvalid          Status = 0x1081
	StatusExtGStateReadOnly         Status = 0x1082
	StatusInvalidU3DData            Status = 0x1083
	StatusNameCannotGetNames        Status = 0x1084
	StatusInvalidICCComponentNum    Status = 0x1085
)

var statusNames = map[Status]string{
	StatusArrayCountErr:             "array count error",
	StatusArrayItemNotFound:         "array item not found",
	StatusArrayItemUnexpectedType:   "array item has unexpected type",
	StatusBinaryLengthErr:           "binary data too long",
	StatusDictCountErr:              "too many dictionary elements",
	StatusDictItemNotFound:          "dictionary item not found",
	StatusDictItemUnexpectedType:    "dictionary item has unexpected type",
	StatusDictStreamLengthNotFound:  "stream length entry not found",
	StatusDocEncryptDictNotFound:    "encryption dictionary not found",
	StatusDocInvalidObject:          "invalid document object",
	StatusDuplicateRegistration:     "duplicate registration",
	StatusExceedJWWCodeNumLimit:     "word wrap code number limit exceeded",
	StatusEncryptInvalidPassword:    "invalid encryption password",
	StatusUnknownClass:              "unknown object class",
	StatusExceedGStateLimit:         "graphics state stack depth exceeded",
	StatusFailedToAllocMem:          "memory allocation failed",
	StatusFileIOError:               "file I/O error",
	StatusFileOpenError:             "cannot open file",
	StatusFontExists:                "font already registered",
	StatusFontInvalidWidthsTable:    "invalid font widths table",
	StatusInvalidAFMHeader:          "invalid AFM header",
	StatusInvalidAnnotation:         "invalid annotation handle",
	StatusInvalidBitPerComponent:    "invalid bits per component",
	StatusInvalidCharMatricsData:    "invalid char metrics data",
	StatusInvalidColorSpace:         "invalid color space",
	StatusInvalidCompressionMode:    "invalid compression mode",
	StatusInvalidDateTime:           "invalid date/time value",
	StatusInvalidDestination:        "invalid destination handle",
	StatusInvalidDocument:           "invalid document handle",
	StatusInvalidDocumentState:      "invalid document state",
	StatusInvalidEncoder:            "invalid encoder handle",
	StatusInvalidEncoderType:        "invalid encoder type",
	StatusInvalidEncodingName:       "invalid encoding name",
	StatusInvalidEncryptKeyLen:      "invalid encryption key length",
	StatusInvalidFontDefData:        "invalid font definition data",
	StatusInvalidFontDefType:        "invalid font definition type",
	StatusInvalidFontName:           "font not found",
	StatusInvalidImage:              "unsupported image format",
	StatusInvalidJPEGData:           "invalid JPEG data",
	StatusInvalidNData:              "invalid AFM N data",
	StatusInvalidObject:             "invalid object",
	StatusInvalidObjID:              "invalid object ID",
	StatusInvalidOperation:          "invalid operation",
	StatusInvalidOutline:            "invalid outline handle",
	StatusInvalidPage:               "invalid page handle",
	StatusInvalidPages:              "invalid pages handle",
	StatusInvalidParameter:          "invalid parameter",
	StatusInvalidPNGImage:           "invalid PNG image",
	StatusInvalidStream:             "invalid stream",
	StatusMissingFileNameEntry:      "missing file name entry",
	StatusInvalidTTCFile:            "invalid TTC file",
	StatusInvalidTTCIndex:           "TTC index out of range",
	StatusInvalidWXData:             "invalid AFM width data",
	StatusItemNotFound:              "item not found",
	StatusLibPNGError:               "libpng error",
	StatusNameInvalidValue:          "invalid name value",
	StatusNameOutOfRange:            "name out of range",
	StatusPageInvalidParamCount:     "invalid parameter count for page operation",
	StatusPagesMissingKidsEntry:     "missing kids entry",
	StatusPageCannotFindObject:      "cannot find page object",
	StatusPageCannotGetRootPages:    "cannot get root pages object",
	StatusPageCannotRestoreGState:   "no graphics state to restore",
	StatusPageCannotSetParent:       "cannot set page parent",
	StatusPageFontNotFound:          "current font not set",
	StatusPageInvalidFont:           "invalid font handle",
	StatusPageInvalidFontSize:       "invalid font size",
	StatusPageInvalidGMode:          "operation invalid in current graphics mode",
	StatusPageInvalidIndex:          "invalid page index",
	StatusPageInvalidRotateValue:    "rotate value not a multiple of 90",
	StatusPageInvalidSize:           "invalid page size",
	StatusPageInvalidXObject:        "invalid XObject handle",
	StatusPageOutOfRange:            "page value out of range",
	StatusRealOutOfRange:            "real value out of range",
	StatusStreamEOF:                 "unexpected end of stream",
	StatusStreamReadLnContinue:      "stream line too long",
	StatusStringOutOfRange:          "string too long",
	StatusThisFuncWasSkipped:        "function skipped due to earlier error",
	StatusTTFCannotEmbeddingFont:    "font license does not permit embedding",
	StatusTTFInvalidCMap:            "TrueType font has no unicode cmap",
	StatusTTFInvalidFormat:          "unsupported TrueType format",
	StatusTTFMissingTable:           "TrueType font is missing a required table",
	StatusUnsupportedFontType:       "unsupported font type",
	StatusUnsupportedFunc:           "function not supported in this build",
	StatusUnsupportedJPEGFormat:     "unsupported JPEG format",
	StatusUnsupportedType1Font:      "cannot parse Type 1 font",
	StatusXrefCountErr:              "cross-reference count error",
	StatusZlibError:                 "zlib error",
	StatusInvalidPageIndex:          "invalid page index",
	StatusInvalidURI:                "invalid URI",
	StatusPageLayoutOutOfRange:      "page layout out of range",
	StatusPageModeOutOfRange:        "page mode out of range",
	StatusPageNumStyleOutOfRange:    "page number style out of range",
	StatusAnnotInvalidIcon:          "invalid annotation icon",
	StatusAnnotInvalidBorderStyle:   "invalid annotation border style",
	StatusPageInvalidDirection:      "invalid page direction",
	StatusInvalidFont:               "invalid font",
	StatusPageInsufficientSpace:     "insufficient space on page",
	StatusPageInvalidDisplayTime:    "invalid slideshow display time",
	StatusPageInvalidTransitionTime: "invalid slideshow transition time",
	StatusInvalidPageSlideshowType:  "invalid slideshow type",
	StatusExtGStateOutOfRange:       "graphics state parameter out of range",
	StatusExtGStateInvalid:          "invalid graphics state operation",
	StatusExtGStateReadOnly:         "graphics state is read-only",
	StatusInvalidU3DData:            "invalid U3D data",
	StatusNameCannotGetNames:        "cannot get item names",
	StatusInvalidICCComponentNum:    "invalid ICC component count",
}

func (s Status) String() string {
	if s == StatusOK {
		return "ok"
	}
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("unknown status 0x%04x", uint32(s))
}

// IsKnown reports whether s is the success status or one of the error codes
// defined by the engine.
func (s Status) IsKnown() bool {
	if s == StatusOK {
		return true
	}
	_, ok := statusNames[s]
	return ok
}
