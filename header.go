// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

// PlaceableMagic is the little-endian u32 magic ('Aldus Placeable
// Metafile' extension) that, when present, precedes the standard WMF
// header with 22 extra bytes of target bounds and DPI.
const PlaceableMagic uint32 = 0x9AC6CDD7

// Standard header field values.
const (
	wmfHeaderType    = 0x01
	wmfVersion1      = 0x0100
	wmfVersion3      = 0x0300
	placeableHdrSize = 22
	standardHdrSize  = 18
)

// PlaceableHeader is the optional 22-byte Aldus extension.
type PlaceableHeader struct {
	Handle   uint16 `json:"handle"`
	Dst      Rect16 `json:"dst"`
	Inch     uint16 `json:"inch"`
	Reserved uint32 `json:"reserved"`
	Checksum uint16 `json:"checksum"`
}

// StandardHeader is the mandatory WMF header that follows the
// placeable header (or starts the file, if there is none).
type StandardHeader struct {
	Type            uint16 `json:"type"`
	HeaderSize16w   uint16 `json:"header_size_16w"`
	Version         uint16 `json:"version"`
	Size32w         uint32 `json:"size_32w"`
	NumberOfObjects uint16 `json:"number_of_objects"`
	MaxRecord       uint32 `json:"max_record"`
	NumberOfMembers uint16 `json:"number_of_members"`
}

// parsedHeader is everything the record demultiplexer needs to start
// its loop: where records begin, how many object-table slots to
// allocate, and (when present) the placeable bounds used to derive
// the initial coordinate scaling.
type parsedHeader struct {
	placeable     *PlaceableHeader
	standard      StandardHeader
	recordsOffset uint32
	nObjects      uint16
}

// Detect reports whether data begins with a recognizable WMF
// discriminant: the placeable magic, or a standard header with
// Type==1 and a valid version. It never returns an error for a
// structurally valid-but-not-WMF buffer; it only errors (via the
// second value) on a nil/too-short buffer, matching the "Detect"
// external-interface contract in §6.
func Detect(data []byte) (bool, error) {
	if data == nil || len(data) < standardHdrSize {
		return false, ErrInvalidArgument
	}

	magic, err := readUint32(data, 0)
	if err != nil {
		return false, ErrInvalidArgument
	}
	if magic == PlaceableMagic {
		return true, nil
	}

	typ, err := readUint16(data, 0)
	if err != nil {
		return false, ErrInvalidArgument
	}
	version, err := readUint16(data, 4)
	if err != nil {
		return false, ErrInvalidArgument
	}
	ok := typ == wmfHeaderType && (version == wmfVersion1 || version == wmfVersion3)
	return ok, nil
}

// parseHeader validates and decodes the placeable/standard header
// pair and returns where records begin.
func parseHeader(data []byte) (parsedHeader, error) {
	var hdr parsedHeader

	magic, err := readUint32(data, 0)
	if err != nil {
		return hdr, ErrInvalidHeader
	}

	if magic == PlaceableMagic {
		if len(data) < placeableHdrSize+standardHdrSize {
			return hdr, ErrInvalidHeader
		}

		ph := PlaceableHeader{}
		handle, err := readUint16(data, 4)
		if err != nil {
			return hdr, ErrInvalidHeader
		}
		ph.Handle = handle
		dst, err := readRect16(data, 6)
		if err != nil {
			return hdr, ErrInvalidHeader
		}
		ph.Dst = dst
		inch, err := readUint16(data, 14)
		if err != nil {
			return hdr, ErrInvalidHeader
		}
		ph.Inch = inch
		ph.Reserved, _ = readUint32(data, 16)
		ph.Checksum, _ = readUint16(data, 20)

		std, err := parseStandardHeader(data, placeableHdrSize)
		if err != nil {
			return hdr, err
		}

		hdr.placeable = &ph
		hdr.standard = std
		hdr.nObjects = std.NumberOfObjects
		hdr.recordsOffset = placeableHdrSize + uint32(std.HeaderSize16w)*2
		return hdr, nil
	}

	std, err := parseStandardHeader(data, 0)
	if err != nil {
		return hdr, err
	}
	hdr.standard = std
	hdr.nObjects = std.NumberOfObjects
	hdr.recordsOffset = uint32(std.HeaderSize16w) * 2
	return hdr, nil
}

// parseStandardHeader validates and decodes the mandatory WMF header
// located at offset.
func parseStandardHeader(data []byte, offset uint32) (StandardHeader, error) {
	var std StandardHeader

	if uint32(len(data)) < offset+standardHdrSize {
		return std, ErrInvalidHeader
	}

	typ, err := readUint16(data, offset)
	if err != nil || typ != wmfHeaderType {
		return std, ErrInvalidHeader
	}

	headerSize16w, err := readUint16(data, offset+2)
	if err != nil {
		return std, ErrInvalidHeader
	}

	version, err := readUint16(data, offset+4)
	if err != nil || (version != wmfVersion1 && version != wmfVersion3) {
		return std, ErrInvalidHeader
	}

	size32w, err := readUint32(data, offset+6)
	if err != nil {
		return std, ErrInvalidHeader
	}

	nObjects, err := readUint16(data, offset+10)
	if err != nil {
		return std, ErrInvalidHeader
	}

	maxRecord, err := readUint32(data, offset+12)
	if err != nil {
		return std, ErrInvalidHeader
	}

	nMembers, err := readUint16(data, offset+16)
	if err != nil {
		return std, ErrInvalidHeader
	}

	std.Type = typ
	std.HeaderSize16w = headerSize16w
	std.Version = version
	std.Size32w = size32w
	std.NumberOfObjects = nObjects
	std.MaxRecord = maxRecord
	std.NumberOfMembers = nMembers
	return std, nil
}
