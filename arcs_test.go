// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

import (
	"strings"
	"testing"
)

// arcFamilyRecord builds an ARC/CHORD/PIE-shaped record: end point, then
// start point (each wire-ordered Y before X), then the bounding
// rectangle in its (bottom, right, top, left) wire order.
func arcFamilyRecord(iType byte, endX, endY, startX, startY, left, top, right, bottom int16) []byte {
	var params []byte
	params = i16le(params, endY)
	params = i16le(params, endX)
	params = i16le(params, startY)
	params = i16le(params, startX)
	params = i16le(params, bottom)
	params = i16le(params, right)
	params = i16le(params, top)
	params = i16le(params, left)
	return buildRecord(iType, params)
}

// These three tests share an asymmetric ellipse (rx=100, ry=50) and
// reference points that only land on the ellipse boundary when the Y
// word is read before the X word, per the wire layout ARC/CHORD/PIE
// share with MOVETO/LINETO. A start/end swap (the previous bug) would
// move the computed start/end points off these expected values.
func TestHandleArcReferencePoints(t *testing.T) {
	data := buildStandardWMF(
		arcFamilyRecord(wmrArc, 200, 50, 100, -50, 0, 0, 200, 100),
	)

	out, status, err := Convert(data, &Options{SVGDelimiter: true})
	if err != nil || status != StatusOK {
		t.Fatalf("Convert() = (_, %v, %v)", status, err)
	}

	s := string(out)
	if !strings.Contains(s, `<path`) {
		t.Fatalf("missing <path> from ARC record: %s", s)
	}
	d := attrValue(t, s, "d")
	if !strings.HasPrefix(d, "M 100,0 A 100,50 0 0 1 200,50") {
		t.Fatalf("unexpected arc path: %q", d)
	}
	if !strings.Contains(s, `fill="none"`) {
		t.Errorf("expected unfilled arc: %s", s)
	}
}

func TestHandleChordReferencePoints(t *testing.T) {
	data := buildStandardWMF(
		arcFamilyRecord(wmrChord, 200, 50, 100, -50, 0, 0, 200, 100),
	)

	out, status, err := Convert(data, &Options{SVGDelimiter: true})
	if err != nil || status != StatusOK {
		t.Fatalf("Convert() = (_, %v, %v)", status, err)
	}

	s := string(out)
	d := attrValue(t, s, "d")
	if !strings.HasPrefix(d, "M 100,0 A 100,50 0 0 1 200,50") {
		t.Fatalf("unexpected chord path: %q", d)
	}
	if !strings.HasSuffix(d, "Z") {
		t.Errorf("expected closed chord path: %q", d)
	}
}

func TestHandlePieReferencePoints(t *testing.T) {
	data := buildStandardWMF(
		arcFamilyRecord(wmrPie, 200, 50, 100, -50, 0, 0, 200, 100),
	)

	out, status, err := Convert(data, &Options{SVGDelimiter: true})
	if err != nil || status != StatusOK {
		t.Fatalf("Convert() = (_, %v, %v)", status, err)
	}

	s := string(out)
	d := attrValue(t, s, "d")
	if !strings.HasPrefix(d, "M 100,50 L 100,0 A 100,50 0 0 1 200,50") {
		t.Fatalf("unexpected pie path: %q", d)
	}
	if !strings.HasSuffix(d, "Z") {
		t.Errorf("expected closed pie path: %q", d)
	}
}
