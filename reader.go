// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

import (
	"bytes"
	"encoding/binary"
)

// readUint8 reads a single byte at offset from b, bounds-checked
// against len(b) (the end-of-buffer sentinel).
func readUint8(b []byte, offset uint32) (uint8, error) {
	if offset+1 > uint32(len(b)) {
		return 0, ErrOutsideBoundary
	}
	return b[offset], nil
}

// readUint16 reads a little-endian uint16 at offset.
func readUint16(b []byte, offset uint32) (uint16, error) {
	if offset+2 > uint32(len(b)) {
		return 0, ErrOutsideBoundary
	}
	return binary.LittleEndian.Uint16(b[offset:]), nil
}

// readInt16 reads a little-endian signed 16-bit device coordinate.
func readInt16(b []byte, offset uint32) (int16, error) {
	v, err := readUint16(b, offset)
	if err != nil {
		return 0, err
	}
	return int16(v), nil
}

// readUint32 reads a little-endian uint32 at offset.
func readUint32(b []byte, offset uint32) (uint32, error) {
	if offset+4 > uint32(len(b)) {
		return 0, ErrOutsideBoundary
	}
	return binary.LittleEndian.Uint32(b[offset:]), nil
}

// readBytes returns a borrowed, bounds-checked sub-slice of b, copied
// into a fresh, owned byte slice so handlers never retain a pointer
// into the caller's input.
func readBytes(b []byte, offset, size uint32) ([]byte, error) {
	total := offset + size
	// Integer overflow guard, mirrors the teacher's structUnpack.
	if (total > offset) != (size > 0) {
		return nil, ErrOutsideBoundary
	}
	if offset > uint32(len(b)) || total > uint32(len(b)) {
		return nil, ErrOutsideBoundary
	}
	out := make([]byte, size)
	copy(out, b[offset:total])
	return out, nil
}

// readPoint16 reads an (x, y) pair of signed 16-bit device coordinates.
func readPoint16(b []byte, offset uint32) (Point16, error) {
	x, err := readInt16(b, offset)
	if err != nil {
		return Point16{}, err
	}
	y, err := readInt16(b, offset+2)
	if err != nil {
		return Point16{}, err
	}
	return Point16{X: x, Y: y}, nil
}

// readRect16 reads a (left, top, right, bottom) rectangle of signed
// 16-bit device coordinates.
func readRect16(b []byte, offset uint32) (Rect16, error) {
	left, err := readInt16(b, offset)
	if err != nil {
		return Rect16{}, err
	}
	top, err := readInt16(b, offset+2)
	if err != nil {
		return Rect16{}, err
	}
	right, err := readInt16(b, offset+4)
	if err != nil {
		return Rect16{}, err
	}
	bottom, err := readInt16(b, offset+6)
	if err != nil {
		return Rect16{}, err
	}
	return Rect16{Left: left, Top: top, Right: right, Bottom: bottom}, nil
}

// readColorRef reads a COLORREF (0x00BBGGRR on the wire) at offset.
func readColorRef(b []byte, offset uint32) (ColorRef, error) {
	v, err := readUint32(b, offset)
	if err != nil {
		return ColorRef{}, err
	}
	return ColorRef{
		R: byte(v),
		G: byte(v >> 8),
		B: byte(v >> 16),
	}, nil
}

// readNullTerminatedANSI reads bytes from offset up to the next NUL
// byte, maxLen bytes, or the end of b, whichever comes first, without
// requiring a
// terminator to be present (used for font face names, which are
// fixed-size buffers that may or may not be fully populated).
func readNullTerminatedANSI(b []byte, offset uint32, maxLen uint32) (string, error) {
	if offset > uint32(len(b)) {
		return "", ErrOutsideBoundary
	}
	end := offset + maxLen
	if end > uint32(len(b)) {
		end = uint32(len(b))
	}
	raw := b[offset:end]
	if n := bytes.IndexByte(raw, 0); n >= 0 {
		raw = raw[:n]
	}
	return decodeANSI(raw), nil
}
