// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

// Stock object handle bit and well-known codes. A handle with the
// high bit set never indexes the object table; its low bits name one
// of these built-in GDI defaults instead. The handle stays a 16-bit
// quantity throughout (per spec DESIGN NOTES §9: never silently widen
// to a 32-bit handle), so the discriminant bit is 0x8000, not the
// 0x80000000 used by 32-bit HGDIOBJ values.
const stockObjectBit uint16 = 0x8000

// Stock object codes, as carried in the low bits of a stock handle.
const (
	stockWhiteBrush  = 0
	stockLtGrayBrush = 1
	stockGrayBrush   = 2
	stockDkGrayBrush = 3
	stockBlackBrush  = 4
	stockNullBrush   = 5
	stockWhitePen    = 6
	stockBlackPen    = 7
	stockNullPen     = 8
)

// objectTable is a fixed-size slot array sized by the header's
// declared object count. A CREATE*INDIRECT record allocates into the
// first Invalid slot; if none is free the record is dropped (and, in
// verbose mode, logged) rather than growing the table, matching the
// spec's "fixed-size" object table.
type objectTable struct {
	slots []objectSlot
}

// newObjectTable allocates n Invalid slots. A zero-sized table is
// legal; every CREATE*INDIRECT record against it is simply dropped.
func newObjectTable(n uint16) *objectTable {
	return &objectTable{slots: make([]objectSlot, n)}
}

// firstEmptySlot returns the index of the first Invalid slot, or -1
// if the table is full.
func (t *objectTable) firstEmptySlot() int {
	for i := range t.slots {
		if t.slots[i].Kind == ObjectInvalid {
			return i
		}
	}
	return -1
}

// createPen allocates a pen into the first empty slot. ok is false
// when the table is full; the caller logs and drops the record.
func (t *objectTable) createPen(p Pen) (index int, ok bool) {
	i := t.firstEmptySlot()
	if i < 0 {
		return 0, false
	}
	t.slots[i] = objectSlot{Kind: ObjectPen, Pen: p}
	return i, true
}

// createBrush allocates a brush into the first empty slot.
func (t *objectTable) createBrush(b Brush) (index int, ok bool) {
	i := t.firstEmptySlot()
	if i < 0 {
		return 0, false
	}
	t.slots[i] = objectSlot{Kind: ObjectBrush, Brush: b}
	return i, true
}

// createFont allocates a font into the first empty slot.
func (t *objectTable) createFont(f Font) (index int, ok bool) {
	i := t.firstEmptySlot()
	if i < 0 {
		return 0, false
	}
	t.slots[i] = objectSlot{Kind: ObjectFont, Font: f}
	return i, true
}

// createPlaceholder reserves a slot for an object kind this
// interpreter never renders (palette, region) so later selects/deletes
// against the same handle don't corrupt an unrelated slot.
func (t *objectTable) createPlaceholder(kind ObjectKind) (index int, ok bool) {
	i := t.firstEmptySlot()
	if i < 0 {
		return 0, false
	}
	t.slots[i] = objectSlot{Kind: kind}
	return i, true
}

// delete clears a slot back to Invalid. Deleting an out-of-range
// index is a no-op, mirroring how the object handlers silently skip
// any reference outside the table.
func (t *objectTable) delete(index int) {
	if index < 0 || index >= len(t.slots) {
		return
	}
	t.slots[index] = objectSlot{}
}

// slot returns the slot at index and whether the index was in range
// and currently populated.
func (t *objectTable) slot(index int) (objectSlot, bool) {
	if index < 0 || index >= len(t.slots) {
		return objectSlot{}, false
	}
	s := t.slots[index]
	return s, s.Kind != ObjectInvalid
}

// selectObject applies handle's referenced object to dc: a stock
// handle (high bit set) short-circuits to a built-in default; a slot
// handle copies that slot's fields into dc; an Invalid slot, or an
// out-of-range index, is a no-op, per spec §4.4.
func (t *objectTable) selectObject(dc *DeviceContext, handle uint16) {
	if handle&stockObjectBit != 0 {
		selectStock(dc, handle&^stockObjectBit)
		return
	}

	s, ok := t.slot(int(handle))
	if !ok {
		return
	}

	switch s.Kind {
	case ObjectPen:
		dc.Pen = s.Pen
	case ObjectBrush:
		dc.Brush = s.Brush
	case ObjectFont:
		dc.Font = s.Font
	}
}

// selectStock resolves a stock object code to its built-in default
// and applies it to dc. Codes this interpreter doesn't special-case
// (stock fonts, stock palettes) silently leave dc untouched, per spec
// §4.4 ("Other stock handles: silently use current defaults.").
func selectStock(dc *DeviceContext, code uint16) {
	switch code {
	case stockWhiteBrush:
		dc.Brush = Brush{Set: true, Style: BrushSolid, Color: ColorRef{255, 255, 255}}
	case stockLtGrayBrush:
		dc.Brush = Brush{Set: true, Style: BrushSolid, Color: ColorRef{192, 192, 192}}
	case stockGrayBrush:
		dc.Brush = Brush{Set: true, Style: BrushSolid, Color: ColorRef{128, 128, 128}}
	case stockDkGrayBrush:
		dc.Brush = Brush{Set: true, Style: BrushSolid, Color: ColorRef{64, 64, 64}}
	case stockBlackBrush:
		dc.Brush = Brush{Set: true, Style: BrushSolid, Color: ColorRef{0, 0, 0}}
	case stockNullBrush:
		dc.Brush = Brush{Set: false, Style: BrushNull}
	case stockWhitePen:
		dc.Pen = Pen{Set: true, Style: PenSolid, Color: ColorRef{255, 255, 255}, Width: 1}
	case stockBlackPen:
		dc.Pen = Pen{Set: true, Style: PenSolid, Color: ColorRef{0, 0, 0}, Width: 1}
	case stockNullPen:
		dc.Pen = Pen{Set: false, Style: PenNull}
	}
}
