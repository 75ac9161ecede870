// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

import "errors"

// Errors returned by the header parser and the record demultiplexer.
// Record-level failures never surface as one of these: they are
// logged and the offending record is skipped (see Options and the
// Convert status codes below).
var (
	// ErrInvalidArgument is returned when the input buffer is nil or too
	// short to hold any header. A nil *Options is not an error: Convert
	// substitutes default options for it.
	ErrInvalidArgument = errors.New("wmf: invalid argument")

	// ErrNotAWmf is returned when neither the placeable magic nor a
	// valid standard header discriminant is found.
	ErrNotAWmf = errors.New("wmf: not a WMF file")

	// ErrInvalidHeader is returned when the placeable or standard
	// header fails a structural check (bad type byte, bad version,
	// truncated buffer).
	ErrInvalidHeader = errors.New("wmf: invalid header")

	// ErrOutsideBoundary is returned by the byte reader when a read
	// would cross the end-of-buffer sentinel.
	ErrOutsideBoundary = errors.New("wmf: reading data outside boundary")

	// ErrResourceExhaustion is returned when the final copy of the
	// output buffer into the caller's []byte fails.
	ErrResourceExhaustion = errors.New("wmf: output buffer allocation failure")
)

// Status mirrors the external-interface status codes from the spec:
// 0 success, negative values name a specific failure class. Convert
// returns both an error and a Status so callers that only speak in
// integer codes (the CLI, FFI-style wrappers) don't need to string-match
// errors.Is.
type Status int

// Status codes, per the external-interface contract.
const (
	StatusOK                Status = 0
	StatusInvalidArgument   Status = -1
	StatusNotAWmf           Status = -2
	StatusHeaderParseFailed Status = -3
	StatusAllocFailed       Status = -4
	StatusFinalCopyFailed   Status = -5
)

// statusFor maps a sentinel error to its external status code.
func statusFor(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrInvalidArgument):
		return StatusInvalidArgument
	case errors.Is(err, ErrNotAWmf):
		return StatusNotAWmf
	case errors.Is(err, ErrInvalidHeader):
		return StatusHeaderParseFailed
	case errors.Is(err, ErrResourceExhaustion):
		return StatusAllocFailed
	default:
		return StatusHeaderParseFailed
	}
}
