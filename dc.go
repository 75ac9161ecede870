// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

// dcStack is the SaveDC/RestoreDC LIFO: a linked list of DC snapshots
// headed by top. Go's value-semantics DeviceContext makes the "deep
// copy, duplicating the font name" requirement from spec §4.4
// automatic — copying a DeviceContext by value already copies its
// Font.FaceName string header, and strings are immutable, so no
// separate ownership bookkeeping is needed here.
type dcStack struct {
	top *dcStackFrame
}

// push saves a copy of dc onto the stack.
func (s *dcStack) push(dc DeviceContext) {
	s.top = &dcStackFrame{dc: dc, next: s.top}
}

// depth returns how many frames are currently saved.
func (s *dcStack) depth() int {
	n := 0
	for f := s.top; f != nil; f = f.next {
		n++
	}
	return n
}

// restore pops frames off the stack and returns the DC to restore to.
// n follows SaveDC/RestoreDC semantics: a positive n restores n saved
// levels back (popping n frames); a negative n restores the nth most
// recent save counting backward (popping |n| frames); n == 0 is a
// no-op. ok is false when there are fewer saved frames than requested,
// in which case the stack and dc are left untouched.
func (s *dcStack) restore(dc DeviceContext, n int) (DeviceContext, bool) {
	if n == 0 {
		return dc, true
	}

	count := n
	if count < 0 {
		count = -count
	}
	if s.depth() < count {
		return dc, false
	}

	var restored DeviceContext
	for i := 0; i < count; i++ {
		restored = s.top.dc
		s.top = s.top.next
	}
	return restored, true
}
