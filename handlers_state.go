// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

// handleSetBkColor sets the background color used for opaque text and
// hatch-brush gaps.
func (s *state) handleSetBkColor(params []byte) error {
	c, err := readColorRef(params, 0)
	if err != nil {
		return err
	}
	s.dc.BkColor = c
	return nil
}

// handleSetBkMode sets the background mode (opaque/transparent).
func (s *state) handleSetBkMode(params []byte) error {
	v, err := readUint16(params, 0)
	if err != nil {
		return err
	}
	s.dc.BkMode = BackgroundMode(v)
	return nil
}

// handleSetMapMode records the map mode. No axis flip or unit
// reinterpretation follows from it; it only decides whether later
// SETWINDOWEXT/SETVIEWPORTEXT records take effect.
func (s *state) handleSetMapMode(params []byte) error {
	v, err := readUint16(params, 0)
	if err != nil {
		return err
	}
	s.engine.mapMode = MapMode(v)
	return nil
}

// handleSetROP2 records the raster-op mode. Stored, never applied to
// rendering, per spec §9.
func (s *state) handleSetROP2(params []byte) error {
	v, err := readUint16(params, 0)
	if err != nil {
		return err
	}
	s.dc.ROP2 = int16(v)
	return nil
}

// handleSetPolyFillMode sets the fill rule used by POLYGON/POLYPOLYGON.
func (s *state) handleSetPolyFillMode(params []byte) error {
	v, err := readUint16(params, 0)
	if err != nil {
		return err
	}
	s.dc.PolyFillMode = PolyFillMode(v)
	return nil
}

// handleSetTextCharExtra sets the extra inter-character spacing.
// Stored for inspection only; see SPEC_FULL.md §4.7.
func (s *state) handleSetTextCharExtra(params []byte) error {
	v, err := readUint16(params, 0)
	if err != nil {
		return err
	}
	s.dc.TextCharExtra = int16(v)
	return nil
}

// handleSetTextColor sets the foreground color TEXTOUT/EXTTEXTOUT draw
// with.
func (s *state) handleSetTextColor(params []byte) error {
	c, err := readColorRef(params, 0)
	if err != nil {
		return err
	}
	s.dc.TextColor = c
	return nil
}

// handleSetTextJustification sets the break-count/extra-space pair
// used to justify a line of text. Stored only; see SPEC_FULL.md §4.7.
func (s *state) handleSetTextJustification(params []byte) error {
	extra, err := readUint16(params, 0)
	if err != nil {
		return err
	}
	count, err := readUint16(params, 2)
	if err != nil {
		return err
	}
	s.dc.TextJustification = int16(extra)
	s.dc.TextBreakCount = int16(count)
	return nil
}

// handleSetTextAlign sets the alignment bitfield TEXTOUT/EXTTEXTOUT
// derive their SVG text-anchor from.
func (s *state) handleSetTextAlign(params []byte) error {
	v, err := readUint16(params, 0)
	if err != nil {
		return err
	}
	s.dc.TextAlign = v
	return nil
}

// handleSetWindowOrg sets the window origin (wx, wy come as a
// (y, x)-ordered POINT16 on the wire, per the classic GDI record
// layout: the Y parameter precedes X for *ORG/*EXT records).
func (s *state) handleSetWindowOrg(params []byte) error {
	y, x, err := readYX(params, 0)
	if err != nil {
		return err
	}
	s.engine.windowOrgX = int32(x)
	s.engine.windowOrgY = int32(y)
	return nil
}

// handleSetWindowExt sets the window extent. Real GDI only lets
// SetWindowExtEx take effect in MM_ISOTROPIC/MM_ANISOTROPIC; the fixed
// map modes (MM_TEXT foremost) keep a 1:1 window/viewport ratio no
// matter what extent a caller requests, so this is a no-op outside
// those two modes.
func (s *state) handleSetWindowExt(params []byte) error {
	y, x, err := readYX(params, 0)
	if err != nil {
		return err
	}
	if !s.engine.mapMode.isVariable() {
		return nil
	}
	s.engine.windowExtX = int32(x)
	s.engine.windowExtY = int32(y)
	return nil
}

// handleSetViewportOrg sets the viewport origin.
func (s *state) handleSetViewportOrg(params []byte) error {
	y, x, err := readYX(params, 0)
	if err != nil {
		return err
	}
	s.engine.viewportOrgX = int32(x)
	s.engine.viewportOrgY = int32(y)
	return nil
}

// handleSetViewportExt sets the viewport extent, subject to the same
// fixed-map-mode restriction as handleSetWindowExt.
func (s *state) handleSetViewportExt(params []byte) error {
	y, x, err := readYX(params, 0)
	if err != nil {
		return err
	}
	if !s.engine.mapMode.isVariable() {
		return nil
	}
	s.engine.viewportExtX = int32(x)
	s.engine.viewportExtY = int32(y)
	return nil
}

// readYX reads the (Y, X) signed 16-bit pair that org/ext records (and
// the reference points of ARC/CHORD/PIE) use on the wire, starting at
// offset: the Y parameter word first, then X.
func readYX(params []byte, offset uint32) (y, x int16, err error) {
	y, err = readInt16(params, offset)
	if err != nil {
		return 0, 0, err
	}
	x, err = readInt16(params, offset+2)
	if err != nil {
		return 0, 0, err
	}
	return y, x, nil
}

// handleSaveDC pushes a copy of the current DC onto the save stack.
func (s *state) handleSaveDC(params []byte) error {
	s.stack.push(s.dc)
	return nil
}

// handleRestoreDC pops n frames (or |n| for a negative n; n == 0 is a
// no-op) and restores the current DC to the popped state, per spec
// §4.4.
func (s *state) handleRestoreDC(params []byte) error {
	v, err := readUint16(params, 0)
	if err != nil {
		return err
	}
	n := int(int16(v))
	if restored, ok := s.stack.restore(s.dc, n); ok {
		s.dc = restored
	}
	return nil
}
