// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

// Fuzz is a go-fuzz entry point: it runs the full Detect+Convert path
// over arbitrary bytes and reports whether they parsed as a usable
// WMF file.
func Fuzz(data []byte) int {
	_, status, err := Convert(data, &Options{SVGDelimiter: true})
	if err != nil || status != StatusOK {
		return 0
	}
	return 1
}
