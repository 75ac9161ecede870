// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

import (
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// decodeANSI converts a Windows ANSI (code page 1252) byte string —
// the encoding every font face name and TEXTOUT/EXTTEXTOUT body uses
// on the wire — into a UTF-8 Go string. If decoding fails, the raw
// bytes are returned unchanged as a Go string rather than failing the
// whole record, matching the teacher's
// best-effort-over-reject posture for untrusted text fields (helper.go
// decodes DLL import names the same way, via the UTF-16 sibling of
// this decoder).
func decodeANSI(b []byte) string {
	out, err := charmap.Windows1252.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(out)
}

// decodeUTF16LEGlyphs decodes an EXTTEXTOUT body recorded with
// ETO_GLYPH_INDEX set, where each character slot carries a 16-bit
// glyph/code unit rather than an 8-bit ANSI byte. Per SPEC_FULL.md's
// DOMAIN STACK table, this reuses golang.org/x/text/encoding/unicode,
// the same family helper.go's DecodeUTF16String draws on for UTF-16
// import names.
func decodeUTF16LEGlyphs(b []byte) string {
	out, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(out)
}
