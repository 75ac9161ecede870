// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

import "testing"

func FuzzConvert(f *testing.F) {
	f.Add(sampleWMF())
	f.Add([]byte{})
	f.Add([]byte{0xd7, 0xcd, 0xc6, 0x9a})

	f.Fuzz(func(t *testing.T, data []byte) {
		Fuzz(data)
	})
}
