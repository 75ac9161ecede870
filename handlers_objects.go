// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

// logFontFixedSize is the size, in bytes, of the LOGFONT16 structure
// up to (but not including) the variable-length, NUL-terminated face
// name that follows it.
const logFontFixedSize = 18

// logFontMaxFaceName is LF_FACESIZE, the maximum declared length of a
// LOGFONT face name buffer.
const logFontMaxFaceName = 32

// handleCreatePenIndirect decodes a LOGPEN16 (style, width.x, width.y,
// color) and allocates it into the first empty object-table slot. A
// full table silently drops the record, per spec §4.4.
func (s *state) handleCreatePenIndirect(params []byte) error {
	style, err := readUint16(params, 0)
	if err != nil {
		return err
	}
	width, err := readInt16(params, 2)
	if err != nil {
		return err
	}
	color, err := readColorRef(params, 6)
	if err != nil {
		return err
	}

	p := Pen{Set: true, Style: PenStyle(style), Color: color, Width: float64(width)}
	if p.Width <= 0 {
		p.Width = 1
	}

	if _, ok := s.objects.createPen(p); !ok {
		s.logger.Debugf("CREATEPENINDIRECT: object table full, dropping record")
	}
	return nil
}

// handleCreateBrushIndirect decodes a LOGBRUSH16 (style, color, hatch)
// and allocates it into the first empty object-table slot.
func (s *state) handleCreateBrushIndirect(params []byte) error {
	style, err := readUint16(params, 0)
	if err != nil {
		return err
	}
	color, err := readColorRef(params, 2)
	if err != nil {
		return err
	}
	hatch, err := readUint16(params, 6)
	if err != nil {
		return err
	}

	b := Brush{Set: true, Style: BrushStyle(style), Color: color, Hatch: int16(hatch)}

	if _, ok := s.objects.createBrush(b); !ok {
		s.logger.Debugf("CREATEBRUSHINDIRECT: object table full, dropping record")
	}
	return nil
}

// handleCreateFontIndirect decodes a LOGFONT16 and allocates it into
// the first empty object-table slot. The face name is a variable
// length, NUL-terminated ANSI string following the fixed prefix.
func (s *state) handleCreateFontIndirect(params []byte) error {
	if len(params) < logFontFixedSize {
		return ErrOutsideBoundary
	}

	height, _ := readInt16(params, 0)
	width, _ := readInt16(params, 2)
	escapement, _ := readInt16(params, 4)
	orientation, _ := readInt16(params, 6)
	weight, _ := readInt16(params, 8)
	italic, _ := readUint8(params, 10)
	underline, _ := readUint8(params, 11)
	strikeOut, _ := readUint8(params, 12)
	charset, _ := readUint8(params, 13)

	name, err := readNullTerminatedANSI(params, logFontFixedSize, logFontMaxFaceName)
	if err != nil {
		name = ""
	}

	f := Font{
		Set:         true,
		FaceName:    name,
		Height:      height,
		Width:       width,
		Escapement:  escapement,
		Orientation: orientation,
		Weight:      weight,
		Italic:      italic != 0,
		Underline:   underline != 0,
		StrikeOut:   strikeOut != 0,
		Charset:     charset,
	}

	if _, ok := s.objects.createFont(f); !ok {
		s.logger.Debugf("CREATEFONTINDIRECT: object table full, dropping record")
	}
	return nil
}

// handleCreatePalette reserves a placeholder slot for a palette
// object. Palette contents are never consulted: region/palette
// semantics are out of scope per spec §1.
func (s *state) handleCreatePalette(params []byte) error {
	s.objects.createPlaceholder(ObjectPalette)
	return nil
}

// handleCreatePatternBrush reserves a placeholder brush slot standing
// in for a pattern/DIB-pattern brush. No pixel data is decoded; a
// plain, unset brush is stored so later SELECTOBJECTs against it
// behave like "no fill" rather than corrupting an unrelated slot.
func (s *state) handleCreatePatternBrush(params []byte) error {
	s.objects.createBrush(Brush{Style: BrushPattern})
	return nil
}

// handleCreateRegion reserves a placeholder region slot. Regions are
// out of scope per spec §1; the slot exists only so DELETEOBJECT
// bookkeeping stays consistent.
func (s *state) handleCreateRegion(params []byte) error {
	s.objects.createPlaceholder(ObjectRegion)
	return nil
}

// handleSelectObject applies the referenced pen/brush/font (or stock
// object) to the current DC, per spec §4.4.
func (s *state) handleSelectObject(params []byte) error {
	handle, err := readUint16(params, 0)
	if err != nil {
		return err
	}
	s.objects.selectObject(&s.dc, handle)
	return nil
}

// handleDeleteObject clears the referenced slot back to Invalid so it
// can be reused by a later CREATE*INDIRECT, per spec §8's invariant.
func (s *state) handleDeleteObject(params []byte) error {
	handle, err := readUint16(params, 0)
	if err != nil {
		return err
	}
	if handle&stockObjectBit != 0 {
		return nil
	}
	s.objects.delete(int(handle))
	return nil
}
