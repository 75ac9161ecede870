// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

import (
	"bytes"
	"encoding/binary"
	"regexp"
	"strconv"
	"strings"
	"testing"
)

// buildPlaceableWMF assembles a placeable-header WMF file: the 22-byte
// Aldus extension, the mandatory standard header, the given records,
// and a trailing EOF record.
func buildPlaceableWMF(dst Rect16, inch, nObjects uint16, records ...[]byte) []byte {
	ph := make([]byte, placeableHdrSize)
	binary.LittleEndian.PutUint32(ph[0:4], PlaceableMagic)
	binary.LittleEndian.PutUint16(ph[4:6], 0)
	binary.LittleEndian.PutUint16(ph[6:8], uint16(dst.Left))
	binary.LittleEndian.PutUint16(ph[8:10], uint16(dst.Top))
	binary.LittleEndian.PutUint16(ph[10:12], uint16(dst.Right))
	binary.LittleEndian.PutUint16(ph[12:14], uint16(dst.Bottom))
	binary.LittleEndian.PutUint16(ph[14:16], inch)
	binary.LittleEndian.PutUint32(ph[16:20], 0)
	binary.LittleEndian.PutUint16(ph[20:22], 0)

	std := make([]byte, standardHdrSize)
	binary.LittleEndian.PutUint16(std[0:2], wmfHeaderType)
	binary.LittleEndian.PutUint16(std[2:4], 9)
	binary.LittleEndian.PutUint16(std[4:6], wmfVersion3)
	binary.LittleEndian.PutUint16(std[10:12], nObjects)
	binary.LittleEndian.PutUint32(std[12:16], 0)
	binary.LittleEndian.PutUint16(std[16:18], 0)

	var body bytes.Buffer
	for _, r := range records {
		body.Write(r)
	}
	body.Write(buildRecord(wmrEOF, nil))

	total := uint32(len(ph)+len(std)+body.Len()) / 2
	binary.LittleEndian.PutUint32(std[6:10], total)

	out := append(ph, std...)
	out = append(out, body.Bytes()...)
	return out
}

func setWindowOrgRecord(x, y int16) []byte {
	var params []byte
	params = i16le(params, y)
	params = i16le(params, x)
	return buildRecord(wmrSetWindowOrg, params)
}

func setWindowExtRecord(x, y int16) []byte {
	var params []byte
	params = i16le(params, y)
	params = i16le(params, x)
	return buildRecord(wmrSetWindowExt, params)
}

func selectObjectRecord(handle uint16) []byte {
	return buildRecord(wmrSelectObject, u16le(nil, handle))
}

func createPenIndirectRecord(style PenStyle, width int16, c ColorRef) []byte {
	var params []byte
	params = u16le(params, uint16(style))
	params = i16le(params, width)
	params = i16le(params, 0)
	params = append(params, c.R, c.G, c.B, 0)
	return buildRecord(wmrCreatePenIndirect, params)
}

func moveToRecord(x, y int16) []byte {
	var params []byte
	params = i16le(params, y)
	params = i16le(params, x)
	return buildRecord(wmrMoveTo, params)
}

func lineToRecord(x, y int16) []byte {
	var params []byte
	params = i16le(params, y)
	params = i16le(params, x)
	return buildRecord(wmrLineTo, params)
}

func saveDCRecord() []byte {
	return buildRecord(wmrSaveDC, nil)
}

func restoreDCRecord(n int16) []byte {
	return buildRecord(wmrRestoreDC, i16le(nil, n))
}

func setPolyFillModeRecord(mode PolyFillMode) []byte {
	return buildRecord(wmrSetPolyFillMode, u16le(nil, uint16(mode)))
}

func polygonRecord(points []Point16) []byte {
	var params []byte
	params = u16le(params, uint16(len(points)))
	for _, p := range points {
		params = i16le(params, p.X)
		params = i16le(params, p.Y)
	}
	return buildRecord(wmrPolygon, params)
}

func setTextAlignRecord(mode uint16) []byte {
	return buildRecord(wmrSetTextAlign, u16le(nil, mode))
}

// attrValue extracts the value of the first attr="..." occurrence in s
// (callers slice s to start at the element they mean), for approximate
// numeric assertions against scaled coordinates.
func attrValue(t *testing.T, s, attr string) string {
	t.Helper()
	re := regexp.MustCompile(attr + `="([^"]*)"`)
	m := re.FindStringSubmatch(s)
	if m == nil {
		t.Fatalf("attribute %s not found in: %s", attr, s)
	}
	return m[1]
}

func approxEqual(t *testing.T, got string, want float64, tol float64) {
	t.Helper()
	v, err := strconv.ParseFloat(got, 64)
	if err != nil {
		t.Fatalf("not a float: %q", got)
	}
	if v < want-tol || v > want+tol {
		t.Fatalf("got %v, want %v +/- %v", v, want, tol)
	}
}

// Scenario 1: minimal placeable header with no drawing records produces
// an empty <svg> wrapper sized to the scaled placeable extent.
func TestScenarioMinimalPlaceable(t *testing.T) {
	data := buildPlaceableWMF(Rect16{Left: 0, Top: 0, Right: 1000, Bottom: 1000}, 1440, 0)

	out, status, err := Convert(data, &Options{SVGDelimiter: true})
	if err != nil || status != StatusOK {
		t.Fatalf("Convert() = (_, %v, %v)", status, err)
	}

	s := string(out)
	if !strings.Contains(s, "<svg") {
		t.Fatalf("missing <svg> wrapper: %s", s)
	}
	for _, tag := range []string{"<rect", "<line", "<text", "<polygon", "<path", "<ellipse", "<polyline"} {
		if strings.Contains(s, tag) {
			t.Errorf("unexpected child element %s in: %s", tag, s)
		}
	}

	width := attrValue(t, s, "width")
	height := attrValue(t, s, "height")
	approxEqual(t, width, 1000*96.0/1440.0, 0.01)
	approxEqual(t, height, 1000*96.0/1440.0, 0.01)
}

// Scenario 2: a black-stroked, unfilled rectangle scaled by the
// placeable header's DPI, with MM_TEXT's fixed 1:1 window/viewport
// ratio (SETWINDOWEXT has no effect).
func TestScenarioBlackRectangle(t *testing.T) {
	data := buildPlaceableWMF(Rect16{Left: 0, Top: 0, Right: 1000, Bottom: 1000}, 1440, 0,
		setWindowOrgRecord(0, 0),
		setWindowExtRecord(1000, 1000),
		selectObjectRecord(stockObjectBit|stockBlackPen),
		selectObjectRecord(stockObjectBit|stockNullBrush),
		rectangleRecord(100, 100, 900, 900),
	)

	out, status, err := Convert(data, &Options{SVGDelimiter: true})
	if err != nil || status != StatusOK {
		t.Fatalf("Convert() = (_, %v, %v)", status, err)
	}

	s := string(out)
	if strings.Count(s, "<rect") != 1 {
		t.Fatalf("expected exactly one <rect>, got: %s", s)
	}
	if !strings.Contains(s, `fill="none"`) || !strings.Contains(s, `stroke="#000000"`) {
		t.Fatalf("expected unfilled black-stroked rect: %s", s)
	}

	const scaling = 96.0 / 1440.0
	rect := s[strings.Index(s, "<rect"):]
	approxEqual(t, attrValue(t, rect, "x"), 100*scaling, 0.01)
	approxEqual(t, attrValue(t, rect, "y"), 100*scaling, 0.01)
	approxEqual(t, attrValue(t, rect, "width"), 800*scaling, 0.01)
	approxEqual(t, attrValue(t, rect, "height"), 800*scaling, 0.01)
}

// Scenario 3: a dashed red pen produces a matching stroke-dasharray.
func TestScenarioPenDashPattern(t *testing.T) {
	data := buildStandardWMF(
		createPenIndirectRecord(PenDash, 2, ColorRef{R: 255}),
		selectObjectRecord(0),
		moveToRecord(0, 0),
		lineToRecord(10, 10),
	)

	out, status, err := Convert(data, &Options{SVGDelimiter: true})
	if err != nil || status != StatusOK {
		t.Fatalf("Convert() = (_, %v, %v)", status, err)
	}

	s := string(out)
	if !strings.Contains(s, `stroke="#ff0000"`) {
		t.Errorf("expected red stroke: %s", s)
	}
	if !strings.Contains(s, `stroke-width="2.00"`) {
		t.Errorf("expected stroke-width 2.00: %s", s)
	}
	if !strings.Contains(s, `stroke-dasharray="6,2"`) {
		t.Errorf("expected dasharray 6,2: %s", s)
	}
}

// Scenario 4: RESTOREDC(-2) across two nested saves restores the
// oldest of the two saved pens.
func TestScenarioSaveRestoreNesting(t *testing.T) {
	data := buildStandardWMF(
		createPenIndirectRecord(PenSolid, 1, ColorRef{R: 255}),
		selectObjectRecord(0),
		saveDCRecord(),
		createPenIndirectRecord(PenSolid, 1, ColorRef{B: 255}),
		selectObjectRecord(1),
		saveDCRecord(),
		createPenIndirectRecord(PenSolid, 1, ColorRef{G: 255}),
		selectObjectRecord(2),
		restoreDCRecord(-2),
		moveToRecord(0, 0),
		lineToRecord(10, 10),
	)

	out, status, err := Convert(data, &Options{SVGDelimiter: true})
	if err != nil || status != StatusOK {
		t.Fatalf("Convert() = (_, %v, %v)", status, err)
	}

	s := string(out)
	if !strings.Contains(s, `stroke="#ff0000"`) {
		t.Errorf("expected restored red pen, got: %s", s)
	}
}

// Scenario 5: WINDING polygon fill produces fill-rule="nonzero".
func TestScenarioPolygonFillRule(t *testing.T) {
	star := []Point16{
		{X: 50, Y: 0}, {X: 21, Y: 90}, {X: 98, Y: 35},
		{X: 2, Y: 35}, {X: 79, Y: 90},
	}
	data := buildStandardWMF(
		setPolyFillModeRecord(Winding),
		polygonRecord(star),
	)

	out, status, err := Convert(data, &Options{SVGDelimiter: true})
	if err != nil || status != StatusOK {
		t.Fatalf("Convert() = (_, %v, %v)", status, err)
	}

	s := string(out)
	if !strings.Contains(s, `fill-rule="nonzero"`) {
		t.Errorf("expected nonzero fill rule: %s", s)
	}
}

// Scenario 6: TA_CENTER text alignment anchors the emitted <text> in
// the middle, and the ampersand in the body is XML-escaped.
func TestScenarioTextAlignment(t *testing.T) {
	data := buildStandardWMF(
		setTextAlignRecord(TACenter),
		textOutRecord("A&B", 500, 500),
	)

	out, status, err := Convert(data, &Options{SVGDelimiter: true})
	if err != nil || status != StatusOK {
		t.Fatalf("Convert() = (_, %v, %v)", status, err)
	}

	s := string(out)
	if !strings.Contains(s, `text-anchor="middle"`) {
		t.Errorf("expected middle anchor: %s", s)
	}
	if !strings.Contains(s, "A&amp;B") {
		t.Errorf("expected escaped body: %s", s)
	}
}
