// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

import (
	"fmt"
	"strconv"
	"strings"
)

// EXTTEXTOUT option flags (fwOpts), per spec SPEC_FULL.md §4.7/DOMAIN
// STACK.
const (
	etoOpaque     = 0x0002
	etoClipped    = 0x0004
	etoGlyphIndex = 0x0010
)

// textAnchorFor derives the SVG text-anchor value from the TA_* bits
// in a TextAlign bitfield, per spec §4.5.
func textAnchorFor(align uint16) string {
	switch align & TACenter {
	case TACenter:
		return "middle"
	}
	if align&TARight != 0 {
		return "end"
	}
	return "start"
}

// fontSizeFor derives the SVG font-size from the current font's
// height: its absolute value scaled to user space, floored at 1.0,
// falling back to 12.0 when the height itself is zero (no font
// explicitly selected), per spec §4.5.
func fontSizeFor(height int16, scaling float64) float64 {
	if height == 0 {
		return 12.0
	}
	h := float64(height)
	if h < 0 {
		h = -h
	}
	size := h * scaling
	if size < 1.0 {
		size = 1.0
	}
	return size
}

// writeTextElement emits a <text> element at (x, y) with body, using
// the current DC's text color, alignment, and font, per spec §4.5.
// extraAttrs, if nonempty, is appended verbatim before the closing
// '>' (a leading space included), for informational attributes that
// don't affect rendering.
func (s *state) writeTextElement(x, y float64, body, extraAttrs string) {
	fmt.Fprintf(&s.emitter.buf, `<%s x="%s" y="%s" fill="%s" font-size="%s" text-anchor="%s"`,
		s.emitter.tag("text"), formatNum(x), formatNum(y), s.dc.TextColor.hex(),
		formatNum(fontSizeFor(s.dc.Font.Height, s.engine.scaling)), textAnchorFor(s.dc.TextAlign))

	if s.dc.Font.Set && s.dc.Font.FaceName != "" {
		fmt.Fprintf(&s.emitter.buf, ` font-family="%s"`, xmlEscape(s.dc.Font.FaceName))
	}
	if s.dc.Font.Italic {
		s.emitter.buf.WriteString(` font-style="italic"`)
	}
	if s.dc.Font.Weight > 400 {
		s.emitter.buf.WriteString(` font-weight="bold"`)
	}
	s.emitter.buf.WriteString(extraAttrs)

	s.emitter.buf.WriteString(">")
	s.emitter.buf.WriteString(xmlEscape(body))
	fmt.Fprintf(&s.emitter.buf, "</%s>\n", s.emitter.tag("text"))
}

// handleTextOut decodes a TEXTOUT record (string, then a trailing
// (Y, X) anchor) and emits a <text> element.
func (s *state) handleTextOut(params []byte) error {
	count, err := readUint16(params, 0)
	if err != nil {
		return err
	}

	strBytes, err := readBytes(params, 2, uint32(count))
	if err != nil {
		return err
	}

	// The string is padded to a 16-bit boundary.
	coordOffset := 2 + uint32(count)
	if count%2 != 0 {
		coordOffset++
	}

	y, err := readInt16(params, coordOffset)
	if err != nil {
		return err
	}
	x, err := readInt16(params, coordOffset+2)
	if err != nil {
		return err
	}

	ex, ey := s.engine.scaleX(x), s.engine.scaleY(y)
	s.writeTextElement(ex, ey, decodeANSI(strBytes), "")
	return nil
}

// handleExtTextOut decodes an EXTTEXTOUT record: a leading (Y, X)
// anchor, a string length and option flags, an optional clip/opaque
// rectangle, the string body, and an optional per-character spacing
// (Dx) array, per spec §4.5 and SPEC_FULL.md §4.7.
func (s *state) handleExtTextOut(params []byte) error {
	y, err := readInt16(params, 0)
	if err != nil {
		return err
	}
	x, err := readInt16(params, 2)
	if err != nil {
		return err
	}
	count, err := readUint16(params, 4)
	if err != nil {
		return err
	}
	fwOpts, err := readUint16(params, 6)
	if err != nil {
		return err
	}

	offset := uint32(8)
	if fwOpts&(etoOpaque|etoClipped) != 0 {
		// Rectangle present but unused: clip/opaque rendering is out
		// of scope, per spec §1 Non-goals (region/ROP2 semantics).
		offset += 8
	}

	byteLen := uint32(count)
	if fwOpts&etoGlyphIndex != 0 {
		byteLen *= 2
	}

	strBytes, err := readBytes(params, offset, byteLen)
	if err != nil {
		return err
	}

	var body string
	if fwOpts&etoGlyphIndex != 0 {
		body = decodeUTF16LEGlyphs(strBytes)
	} else {
		body = decodeANSI(strBytes)
	}

	dxOffset := offset + byteLen
	if byteLen%2 != 0 {
		dxOffset++
	}
	dxAttr := dxArrayAttr(params, dxOffset, count)

	ex, ey := s.engine.scaleX(x), s.engine.scaleY(y)
	s.writeTextElement(ex, ey, body, dxAttr)
	return nil
}

// dxArrayAttr reads EXTTEXTOUT's optional per-character spacing (Dx)
// array — count signed 16-bit values immediately following the
// (word-padded) string — and returns it as an informational SVG
// attribute. It has no effect on layout: this interpreter emits a
// single flat <text> body, per spec §4.5. Absent (not enough
// remaining bytes) yields an empty string.
func dxArrayAttr(params []byte, offset uint32, count uint16) string {
	if count == 0 {
		return ""
	}
	values := make([]string, count)
	for i := uint16(0); i < count; i++ {
		v, err := readInt16(params, offset+uint32(i)*2)
		if err != nil {
			return ""
		}
		values[i] = strconv.Itoa(int(v))
	}
	return ` data-dx="` + strings.Join(values, ",") + `"`
}
