// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"
)

// buildRecord assembles a single WMF record: a 4-byte word-count size,
// a low/high function-number byte pair, and params (padded to an even
// length, matching the on-the-wire word alignment every real record
// observes).
func buildRecord(iType byte, params []byte) []byte {
	if len(params)%2 != 0 {
		params = append(params, 0)
	}
	sizeWords := uint32(recordHeaderSize+len(params)) / 2

	buf := make([]byte, 6, 6+len(params))
	binary.LittleEndian.PutUint32(buf[0:4], sizeWords)
	buf[4] = iType
	buf[5] = 0
	return append(buf, params...)
}

// buildStandardWMF assembles a minimal (non-placeable) WMF file out of
// already-encoded records, declaring an 8-slot object table and fixing
// up the header's Size32w field to the real total.
func buildStandardWMF(records ...[]byte) []byte {
	var body bytes.Buffer
	for _, r := range records {
		body.Write(r)
	}
	body.Write(buildRecord(wmrEOF, nil))

	hdr := make([]byte, standardHdrSize)
	binary.LittleEndian.PutUint16(hdr[0:2], wmfHeaderType)
	binary.LittleEndian.PutUint16(hdr[2:4], 9)
	binary.LittleEndian.PutUint16(hdr[4:6], wmfVersion3)
	binary.LittleEndian.PutUint16(hdr[10:12], 8)
	binary.LittleEndian.PutUint32(hdr[12:16], 0)
	binary.LittleEndian.PutUint16(hdr[16:18], 0)

	total := uint32(len(hdr)+body.Len()) / 2
	binary.LittleEndian.PutUint32(hdr[6:10], total)

	out := append(hdr, body.Bytes()...)
	return out
}

// u16le/i16le encode a little-endian field as two bytes, appended to
// dst.
func u16le(dst []byte, v uint16) []byte {
	return append(dst, byte(v), byte(v>>8))
}

func i16le(dst []byte, v int16) []byte {
	return u16le(dst, uint16(v))
}

// rectangleRecord builds a RECTANGLE record for the bounding box
// (left, top)-(right, bottom), in the bottom/right/top/left wire
// order real RECTANGLE records use.
func rectangleRecord(left, top, right, bottom int16) []byte {
	var params []byte
	params = i16le(params, bottom)
	params = i16le(params, right)
	params = i16le(params, top)
	params = i16le(params, left)
	return buildRecord(wmrRectangle, params)
}

// textOutRecord builds a TEXTOUT record for s at the given (x, y).
func textOutRecord(s string, x, y int16) []byte {
	b := []byte(s)
	var params []byte
	params = u16le(params, uint16(len(b)))
	params = append(params, b...)
	if len(b)%2 != 0 {
		params = append(params, 0)
	}
	params = i16le(params, y)
	params = i16le(params, x)
	return buildRecord(wmrTextOut, params)
}

func sampleWMF() []byte {
	return buildStandardWMF(
		rectangleRecord(10, 10, 100, 100),
		textOutRecord("hi", 5, 5),
	)
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{"standard header", sampleWMF(), true},
		{"nil", nil, false},
		{"too short", []byte{1, 2, 3}, false},
		{"garbage", bytes.Repeat([]byte{0xAB}, 32), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Detect(tt.data)
			if tt.data == nil || len(tt.data) < standardHdrSize {
				if err == nil {
					t.Fatalf("expected error for %s", tt.name)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Detect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConvertEndToEnd(t *testing.T) {
	out, status, err := Convert(sampleWMF(), &Options{SVGDelimiter: true})
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}
	if status != StatusOK {
		t.Fatalf("status = %v, want StatusOK", status)
	}

	s := string(out)
	if !strings.Contains(s, "<svg") {
		t.Errorf("missing <svg> wrapper: %s", s)
	}
	if !strings.Contains(s, "<rect") {
		t.Errorf("missing <rect> from RECTANGLE record: %s", s)
	}
	if !strings.Contains(s, "<text") {
		t.Errorf("missing <text> from TEXTOUT record: %s", s)
	}
	if !strings.Contains(s, "hi") {
		t.Errorf("missing text body: %s", s)
	}
}

func TestConvertNamespace(t *testing.T) {
	out, status, err := Convert(sampleWMF(), &Options{SVGDelimiter: true, NameSpace: "svg"})
	if err != nil || status != StatusOK {
		t.Fatalf("Convert() = (_, %v, %v)", status, err)
	}
	if !strings.Contains(string(out), "<svg:svg") {
		t.Errorf("expected namespaced root element, got: %s", out)
	}
	if !strings.Contains(string(out), "<svg:rect") {
		t.Errorf("expected namespaced rect element, got: %s", out)
	}
}

func TestConvertNotAWmf(t *testing.T) {
	_, status, err := Convert(bytes.Repeat([]byte{0}, 32), nil)
	if status != StatusNotAWmf {
		t.Fatalf("status = %v, want StatusNotAWmf", status)
	}
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestConvertNilData(t *testing.T) {
	_, status, err := Convert(nil, nil)
	if status != StatusInvalidArgument || err == nil {
		t.Fatalf("Convert(nil) = (_, %v, %v)", status, err)
	}
}

func TestConvertFragmentOnly(t *testing.T) {
	out, status, err := Convert(sampleWMF(), &Options{SVGDelimiter: false})
	if err != nil || status != StatusOK {
		t.Fatalf("Convert() = (_, %v, %v)", status, err)
	}
	if strings.Contains(string(out), "<svg") {
		t.Errorf("expected bare fragment without SVGDelimiter, got: %s", out)
	}
}
