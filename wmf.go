// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package wmf converts Windows Metafile (WMF) records into SVG. It is
// a single-pass interpreter: it reads the whole input into memory,
// replays the GDI-like drawing state machine the records describe,
// and emits an equivalent SVG fragment.
package wmf

import (
	"os"
	"strings"

	mmap "github.com/edsrzf/mmap-go"

	"github.com/saferwall/wmf2svg/log"
)

// Options configures a Convert call, mirroring the external-interface
// contract in spec §6.
type Options struct {
	// NameSpace, when nonempty, prefixes every emitted SVG element
	// with "NameSpace:".
	NameSpace string

	// Verbose enables human-readable per-record diagnostics.
	Verbose bool

	// SVGDelimiter emits the XML prolog and <svg> wrapper. When false,
	// only the bare element fragment is produced, suitable for
	// embedding into an existing document.
	SVGDelimiter bool

	// ImgWidth and ImgHeight request a target pixel size; 0 means
	// auto (derive scaling from the placeable header, or default to
	// 1000x1000 at 1:1 scaling when there is none).
	ImgWidth  int
	ImgHeight int

	// Logger, when nil, defaults to a stderr logger at error level, or
	// at debug level when Verbose is set.
	Logger log.Logger
}

// normalizeNamespace returns ns with a trailing colon, or "" if ns is
// empty.
func normalizeNamespace(ns string) string {
	if ns == "" {
		return ""
	}
	return strings.TrimSuffix(ns, ":") + ":"
}

// Reader holds a borrowed input buffer (and, when created by Open, the
// file mapping behind it); options are passed to each Convert call
// separately. It exists so a caller
// that mmaps a file (via Open) can reuse the same backing buffer for
// Detect and Convert without re-reading the file.
type Reader struct {
	data []byte
	f    *os.File
	m    mmap.MMap
}

// Open memory-maps name and returns a Reader over its contents. The
// caller must Close the Reader when done. This is sugar around
// Convert for the common "have a path on disk" case; it changes
// nothing about the Convert/Detect contract in spec §6.
func Open(name string) (*Reader, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &Reader{data: data, f: f, m: data}, nil
}

// NewBytes wraps an in-memory buffer in a Reader, for callers that
// already have the file contents loaded.
func NewBytes(data []byte) *Reader {
	return &Reader{data: data}
}

// Close releases the memory mapping opened by Open. It is a no-op for
// a Reader created with NewBytes.
func (r *Reader) Close() error {
	if r.m != nil {
		_ = r.m.Unmap()
	}
	if r.f != nil {
		return r.f.Close()
	}
	return nil
}

// Detect reports whether the Reader's contents look like a WMF file.
func (r *Reader) Detect() (bool, error) {
	return Detect(r.data)
}

// Convert runs the interpreter over the Reader's contents.
func (r *Reader) Convert(opts *Options) ([]byte, Status, error) {
	return Convert(r.data, opts)
}

// state is the per-call bundle the whole interpreter operates on:
// the current DC, the save/restore stack, the object table, the
// coordinate engine, the output emitter, and bookkeeping. It is
// created fresh for every Convert call and never escapes it, per
// spec §5's concurrency model.
type state struct {
	data []byte
	hdr  parsedHeader

	dc      DeviceContext
	stack   dcStack
	objects *objectTable
	engine  coordinateEngine

	curX, curY float64

	emitter *svgEmitter
	opts    *Options
	logger  *log.Helper

	width, height float64
}

// Convert is the single entry point described in spec §6: given the
// raw bytes of a WMF file and a set of options, it returns the
// rendered SVG fragment, a status code, and (redundantly, for Go
// callers that prefer errors.Is) an error.
func Convert(data []byte, opts *Options) ([]byte, Status, error) {
	if data == nil {
		return nil, StatusInvalidArgument, ErrInvalidArgument
	}
	if opts == nil {
		opts = &Options{}
	}

	isWmf, err := Detect(data)
	if err != nil {
		return nil, statusFor(err), err
	}
	if !isWmf {
		return nil, StatusNotAWmf, ErrNotAWmf
	}

	hdr, err := parseHeader(data)
	if err != nil {
		return nil, statusFor(err), err
	}

	logger := opts.Logger
	var helper *log.Helper
	if logger == nil {
		level := log.LevelError
		if opts.Verbose {
			level = log.LevelDebug
		}
		helper = log.NewHelper(log.NewFilter(log.NewStdLogger(os.Stderr), log.FilterLevel(level)))
	} else {
		helper = log.NewHelper(logger)
	}

	width, height, scaling := dimensionsFor(hdr, opts)

	s := &state{
		data:    data,
		hdr:     hdr,
		dc:      newDefaultDC(),
		objects: newObjectTable(hdr.nObjects),
		engine:  newCoordinateEngine(scaling),
		emitter: newSVGEmitter(normalizeNamespace(opts.NameSpace)),
		opts:    opts,
		logger:  helper,
		width:   width,
		height:  height,
	}

	if opts.SVGDelimiter {
		s.emitter.writeHeader(width, height)
	}

	if err := s.run(); err != nil {
		return nil, StatusHeaderParseFailed, err
	}

	if opts.SVGDelimiter {
		s.emitter.writeFooter()
	}

	out := s.emitter.bytes()
	if out == nil {
		return nil, StatusFinalCopyFailed, ErrResourceExhaustion
	}
	return out, StatusOK, nil
}

// dimensionsFor derives the document's (width, height, scaling) triple
// from the header and caller-supplied options, per spec §4.3: a
// placeable header without explicit dimensions scales metafile units
// to CSS pixels at 96 DPI; without a placeable header the default
// canvas is 1000x1000 at 1:1 scaling.
func dimensionsFor(hdr parsedHeader, opts *Options) (width, height, scaling float64) {
	if hdr.placeable == nil {
		w, h := 1000.0, 1000.0
		if opts.ImgWidth > 0 {
			w = float64(opts.ImgWidth)
		}
		if opts.ImgHeight > 0 {
			h = float64(opts.ImgHeight)
		}
		return w, h, 1
	}

	dst := hdr.placeable.Dst
	scaling = scalingForPlaceable(hdr.placeable.Inch, dst, opts.ImgWidth, opts.ImgHeight)
	width = float64(dst.Right-dst.Left) * scaling
	height = float64(dst.Bottom-dst.Top) * scaling
	if opts.ImgWidth > 0 {
		width = float64(opts.ImgWidth)
	}
	if opts.ImgHeight > 0 {
		height = float64(opts.ImgHeight)
	}
	return width, height, scaling
}
