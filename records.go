// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

// Record type codes (the "iType" dispatch key: the low byte of the
// record's 16-bit function number). WMF function numbers were defined
// so this low byte alone identifies the record; the high byte (xb,
// folded into funcNum for diagnostics only) does not participate in
// dispatch, per spec §4.2.
const (
	wmrEOF                    = 0x00
	wmrSetBkColor             = 0x01
	wmrSetBkMode              = 0x02
	wmrSetMapMode             = 0x03
	wmrSetROP2                = 0x04
	wmrSetRelabs              = 0x05
	wmrSetPolyFillMode        = 0x06
	wmrSetStretchBltMode      = 0x07
	wmrSetTextCharExtra       = 0x08
	wmrSetTextColor           = 0x09
	wmrSetTextJustification   = 0x0A
	wmrSetWindowOrg           = 0x0B
	wmrSetWindowExt           = 0x0C
	wmrSetViewportOrg         = 0x0D
	wmrSetViewportExt         = 0x0E
	wmrOffsetWindowOrg        = 0x0F
	wmrScaleWindowExt         = 0x10
	wmrOffsetViewportOrg      = 0x11
	wmrScaleViewportExt       = 0x12
	wmrLineTo                 = 0x13
	wmrMoveTo                 = 0x14
	wmrExcludeClipRect        = 0x15
	wmrIntersectClipRect      = 0x16
	wmrArc                    = 0x17
	wmrEllipse                = 0x18
	wmrFloodFill              = 0x19
	wmrPie                    = 0x1A
	wmrRectangle              = 0x1B
	wmrRoundRect              = 0x1C
	wmrPatBlt                 = 0x1D
	wmrSaveDC                 = 0x1E
	wmrSetPixel               = 0x1F
	wmrOffsetClipRgn          = 0x20
	wmrTextOut                = 0x21
	wmrBitBlt                 = 0x22
	wmrStretchBlt             = 0x23
	wmrPolygon                = 0x24
	wmrPolyline               = 0x25
	wmrEscape                 = 0x26
	wmrRestoreDC              = 0x27
	wmrFillRegion             = 0x28
	wmrFrameRegion            = 0x29
	wmrInvertRegion           = 0x2A
	wmrPaintRegion            = 0x2B
	wmrSelectClipRegion       = 0x2C
	wmrSelectObject           = 0x2D
	wmrSetTextAlign           = 0x2E
	wmrChord                  = 0x30
	wmrSetMapperFlags         = 0x31
	wmrExtTextOut             = 0x32
	wmrSetDIBToDev            = 0x33
	wmrSelectPalette          = 0x34
	wmrRealizePalette         = 0x35
	wmrAnimatePalette         = 0x36
	wmrSetPalEntries          = 0x37
	wmrPolyPolygon            = 0x38
	wmrResizePalette          = 0x39
	wmrDIBBitBlt              = 0x40
	wmrDIBStretchBlt          = 0x41
	wmrDIBCreatePatternBrush  = 0x42
	wmrStretchDIB             = 0x43
	wmrExtFloodFill           = 0x48
	wmrDeleteObject           = 0xF0
	wmrCreatePalette          = 0xF7
	wmrCreatePatternBrush     = 0xF9
	wmrCreatePenIndirect      = 0xFA
	wmrCreateFontIndirect     = 0xFB
	wmrCreateBrushIndirect    = 0xFC
	wmrCreateRegion           = 0xFF
)

// maxRecords caps the number of records a single Convert call will
// process, defending against zero-size records or cycles in a
// corrupt or adversarial input, per spec §4.2/§7.
const maxRecords = 100000

// recordHeaderSize is the 4-byte size field plus the 2-byte function
// code every record begins with.
const recordHeaderSize = 6

// handler is a per-record-type translator. params is the record body
// after the 6-byte header, bounds-checked to the record's declared
// size (a record whose declared size overruns the input stops the loop
// before any handler sees it).
type handler func(s *state, params []byte) error

// dispatch maps an iType to its handler. Types absent from this map
// fall through to a no-op, and the ignored types listed at the end of
// the map go to handleSkip: either way they are parsed for offset
// bookkeeping and never rendered, per spec §4.5 "Ignored records".
var dispatch = map[byte]handler{
	wmrSetBkColor:            (*state).handleSetBkColor,
	wmrSetBkMode:             (*state).handleSetBkMode,
	wmrSetMapMode:            (*state).handleSetMapMode,
	wmrSetROP2:               (*state).handleSetROP2,
	wmrSetPolyFillMode:       (*state).handleSetPolyFillMode,
	wmrSetTextCharExtra:      (*state).handleSetTextCharExtra,
	wmrSetTextColor:          (*state).handleSetTextColor,
	wmrSetTextJustification:  (*state).handleSetTextJustification,
	wmrSetWindowOrg:          (*state).handleSetWindowOrg,
	wmrSetWindowExt:          (*state).handleSetWindowExt,
	wmrSetViewportOrg:        (*state).handleSetViewportOrg,
	wmrSetViewportExt:        (*state).handleSetViewportExt,
	wmrLineTo:                (*state).handleLineTo,
	wmrMoveTo:                (*state).handleMoveTo,
	wmrArc:                   (*state).handleArc,
	wmrEllipse:               (*state).handleEllipse,
	wmrFloodFill:             (*state).handleSkip,
	wmrPie:                   (*state).handlePie,
	wmrRectangle:             (*state).handleRectangle,
	wmrRoundRect:             (*state).handleRoundRect,
	wmrSaveDC:                (*state).handleSaveDC,
	wmrTextOut:               (*state).handleTextOut,
	wmrPolygon:               (*state).handlePolygon,
	wmrPolyline:              (*state).handlePolyline,
	wmrRestoreDC:             (*state).handleRestoreDC,
	wmrSelectObject:          (*state).handleSelectObject,
	wmrSetTextAlign:          (*state).handleSetTextAlign,
	wmrChord:                 (*state).handleChord,
	wmrExtTextOut:            (*state).handleExtTextOut,
	wmrPolyPolygon:           (*state).handlePolyPolygon,
	wmrDIBBitBlt:             (*state).handleSkip,
	wmrDIBStretchBlt:         (*state).handleSkip,
	wmrDIBCreatePatternBrush: (*state).handleSkip,
	wmrStretchDIB:            (*state).handleSkip,
	wmrExtFloodFill:          (*state).handleSkip,
	wmrDeleteObject:          (*state).handleDeleteObject,
	wmrCreatePalette:         (*state).handleCreatePalette,
	wmrCreatePatternBrush:    (*state).handleCreatePatternBrush,
	wmrCreatePenIndirect:     (*state).handleCreatePenIndirect,
	wmrCreateFontIndirect:    (*state).handleCreateFontIndirect,
	wmrCreateBrushIndirect:   (*state).handleCreateBrushIndirect,
	wmrCreateRegion:          (*state).handleCreateRegion,

	// Ignored per spec §4.5: parsed implicitly by falling through (no
	// entry needed), but listed here so a reader can see the full set
	// of "acknowledged, intentionally inert" record types in one place.
	wmrSetRelabs:         (*state).handleSkip,
	wmrSetStretchBltMode: (*state).handleSkip,
	wmrSetMapperFlags:    (*state).handleSkip,
	wmrEscape:            (*state).handleSkip,
	wmrRealizePalette:    (*state).handleSkip,
	wmrSelectPalette:     (*state).handleSkip,
	wmrSetPalEntries:     (*state).handleSkip,
	wmrResizePalette:     (*state).handleSkip,
	wmrAnimatePalette:    (*state).handleSkip,
}

// run executes the record demultiplexer loop: decode the (size, type)
// pair, slice out the record body, dispatch, advance, repeat until
// EOF, a non-positive size, the record cap, or the buffer sentinel.
func (s *state) run() error {
	end := uint32(len(s.data))
	p := s.hdr.recordsOffset

	for count := 0; count < maxRecords; count++ {
		if p+recordHeaderSize > end {
			break
		}

		sizeWords, err := readUint32(s.data, p)
		if err != nil {
			break
		}
		sizeBytes := sizeWords * 2

		iType, err := readUint8(s.data, p+4)
		if err != nil {
			break
		}
		xb, err := readUint8(s.data, p+5)
		if err != nil {
			break
		}
		funcNum := (uint16(xb) << 8) | uint16(iType)

		if iType == wmrEOF {
			break
		}
		if sizeBytes < recordHeaderSize || p+sizeBytes > end {
			// Declared size doesn't fit the buffer: stop rather than
			// trust it, per spec §4.2/§7.
			break
		}

		params := s.data[p+recordHeaderSize : p+sizeBytes]

		if h, ok := dispatch[iType]; ok {
			if err := h(s, params); err != nil {
				// Malformed record: log and skip, per spec §7.
				s.logger.Debugf("record type 0x%02x (func 0x%04x) at offset %d: %v",
					iType, funcNum, p, err)
			}
		} else if s.opts.Verbose {
			s.logger.Debugf("unrecognized record type 0x%02x (func 0x%04x) at offset %d, skipping",
				iType, funcNum, p)
		}

		p += sizeBytes
	}

	return nil
}

// handleSkip is the explicit no-op handler for record types that are
// parsed (so offset bookkeeping never desyncs) but never rendered:
// palette/region management, raster ops, DIB primitives, and other
// records named as out of scope by spec §1/§4.5 and SPEC_FULL.md §4.7.
func (s *state) handleSkip(params []byte) error {
	return nil
}
