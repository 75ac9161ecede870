// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

import (
	"fmt"
	"math"
)

// handleMoveTo updates the current position to the scaled endpoint.
// It emits nothing: MOVETO only sets up the next LINETO.
func (s *state) handleMoveTo(params []byte) error {
	y, x, err := readYX(params, 0)
	if err != nil {
		return err
	}
	s.curX, s.curY = s.engine.scaleX(x), s.engine.scaleY(y)
	return nil
}

// handleLineTo emits a <line> from the current position to the scaled
// endpoint, then updates the current position to it.
func (s *state) handleLineTo(params []byte) error {
	y, x, err := readYX(params, 0)
	if err != nil {
		return err
	}
	ex, ey := s.engine.scaleX(x), s.engine.scaleY(y)

	tag := s.emitter.tag("line")
	fmt.Fprintf(&s.emitter.buf, `<%s x1="%s" y1="%s" x2="%s" y2="%s"%s/>`+"\n",
		tag, formatNum(s.curX), formatNum(s.curY), formatNum(ex), formatNum(ey),
		strokeStyle(s.dc.Pen, s.engine.scaling))

	s.curX, s.curY = ex, ey
	return nil
}

// readRectReversed reads a (bottom, right, top, left) quadruple — the
// on-the-wire parameter order RECTANGLE, ELLIPSE, ROUNDRECT, ARC,
// CHORD and PIE all share, a consequence of GDI call arguments being
// recorded in reverse declaration order.
func readRectReversed(params []byte, offset uint32) (Rect16, error) {
	bottom, err := readInt16(params, offset)
	if err != nil {
		return Rect16{}, err
	}
	right, err := readInt16(params, offset+2)
	if err != nil {
		return Rect16{}, err
	}
	top, err := readInt16(params, offset+4)
	if err != nil {
		return Rect16{}, err
	}
	left, err := readInt16(params, offset+6)
	if err != nil {
		return Rect16{}, err
	}
	return Rect16{Left: left, Top: top, Right: right, Bottom: bottom}, nil
}

// scaledRect scales a device-space rectangle's four edges into SVG
// user space.
func (s *state) scaledRect(r Rect16) (x, y, w, h float64) {
	x0, y0 := s.engine.scaleX(r.Left), s.engine.scaleY(r.Top)
	x1, y1 := s.engine.scaleX(r.Right), s.engine.scaleY(r.Bottom)
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return x0, y0, x1 - x0, y1 - y0
}

// handleRectangle emits a <rect> for the declared bounding box.
func (s *state) handleRectangle(params []byte) error {
	r, err := readRectReversed(params, 0)
	if err != nil {
		return err
	}
	x, y, w, h := s.scaledRect(r)

	fmt.Fprintf(&s.emitter.buf, `<%s x="%s" y="%s" width="%s" height="%s"%s%s/>`+"\n",
		s.emitter.tag("rect"), formatNum(x), formatNum(y), formatNum(w), formatNum(h),
		fillStyle(s.dc.Brush, s.dc.PolyFillMode), strokeStyle(s.dc.Pen, s.engine.scaling))
	return nil
}

// handleRoundRect emits a <rect> with rx/ry rounded corners, derived
// from half the scaled corner width/height.
func (s *state) handleRoundRect(params []byte) error {
	height, err := readInt16(params, 0)
	if err != nil {
		return err
	}
	width, err := readInt16(params, 2)
	if err != nil {
		return err
	}
	r, err := readRectReversed(params, 4)
	if err != nil {
		return err
	}
	x, y, w, h := s.scaledRect(r)

	rx := math.Abs(float64(width)) * s.engine.scaling / 2
	ry := math.Abs(float64(height)) * s.engine.scaling / 2

	fmt.Fprintf(&s.emitter.buf, `<%s x="%s" y="%s" width="%s" height="%s" rx="%s" ry="%s"%s%s/>`+"\n",
		s.emitter.tag("rect"), formatNum(x), formatNum(y), formatNum(w), formatNum(h),
		formatNum(rx), formatNum(ry),
		fillStyle(s.dc.Brush, s.dc.PolyFillMode), strokeStyle(s.dc.Pen, s.engine.scaling))
	return nil
}

// handleEllipse emits an <ellipse> centered on the bounding rect.
func (s *state) handleEllipse(params []byte) error {
	r, err := readRectReversed(params, 0)
	if err != nil {
		return err
	}
	x, y, w, h := s.scaledRect(r)
	cx, cy := x+w/2, y+h/2
	rx, ry := w/2, h/2

	fmt.Fprintf(&s.emitter.buf, `<%s cx="%s" cy="%s" rx="%s" ry="%s"%s%s/>`+"\n",
		s.emitter.tag("ellipse"), formatNum(cx), formatNum(cy), formatNum(rx), formatNum(ry),
		fillStyle(s.dc.Brush, s.dc.PolyFillMode), strokeStyle(s.dc.Pen, s.engine.scaling))
	return nil
}

// readPolyPoints reads count POINT16 (x, y) pairs starting at offset,
// scaling each into SVG user space and returning them as an
// SVG "points" attribute value.
func (s *state) readPolyPoints(params []byte, offset uint32, count uint16) (string, uint32, error) {
	var b []byte
	for i := uint16(0); i < count; i++ {
		pt, err := readPoint16(params, offset)
		if err != nil {
			return "", offset, err
		}
		offset += 4
		x, y := s.engine.scaleX(pt.X), s.engine.scaleY(pt.Y)
		if i > 0 {
			b = append(b, ' ')
		}
		b = append(b, []byte(formatNum(x))...)
		b = append(b, ',')
		b = append(b, []byte(formatNum(y))...)
	}
	return string(b), offset, nil
}

// handlePolygon emits a <polygon> with N scaled points.
func (s *state) handlePolygon(params []byte) error {
	n, err := readUint16(params, 0)
	if err != nil {
		return err
	}
	points, _, err := s.readPolyPoints(params, 2, n)
	if err != nil {
		return err
	}

	fmt.Fprintf(&s.emitter.buf, `<%s points="%s"%s%s/>`+"\n",
		s.emitter.tag("polygon"), points,
		fillStyle(s.dc.Brush, s.dc.PolyFillMode), strokeStyle(s.dc.Pen, s.engine.scaling))
	return nil
}

// handlePolyline emits a <polyline> with N scaled points and forces
// fill="none", per spec §4.5.
func (s *state) handlePolyline(params []byte) error {
	n, err := readUint16(params, 0)
	if err != nil {
		return err
	}
	points, _, err := s.readPolyPoints(params, 2, n)
	if err != nil {
		return err
	}

	fmt.Fprintf(&s.emitter.buf, `<%s points="%s" fill="none"%s/>`+"\n",
		s.emitter.tag("polyline"), points, strokeStyle(s.dc.Pen, s.engine.scaling))
	return nil
}

// handlePolyPolygon emits one <polygon> per sub-polygon, each with its
// own point count from the leading count array.
func (s *state) handlePolyPolygon(params []byte) error {
	nPolys, err := readUint16(params, 0)
	if err != nil {
		return err
	}

	counts := make([]uint16, nPolys)
	offset := uint32(2)
	for i := range counts {
		c, err := readUint16(params, offset)
		if err != nil {
			return err
		}
		counts[i] = c
		offset += 2
	}

	for _, c := range counts {
		points, next, err := s.readPolyPoints(params, offset, c)
		if err != nil {
			return err
		}
		offset = next

		fmt.Fprintf(&s.emitter.buf, `<%s points="%s"%s%s/>`+"\n",
			s.emitter.tag("polygon"), points,
			fillStyle(s.dc.Brush, s.dc.PolyFillMode), strokeStyle(s.dc.Pen, s.engine.scaling))
	}
	return nil
}

// arcGeometry is the scaled ellipse and reference-angle geometry
// shared by ARC, CHORD and PIE, per spec §4.5.
type arcGeometry struct {
	cx, cy       float64
	rx, ry       float64
	sx, sy       float64
	ex, ey       float64
	startA, endA float64
	largeArcFlag int
}

// readArcGeometry reads the shared ARC/CHORD/PIE parameter layout
// (end point, start point, bounding rect — in that on-the-wire order,
// each point itself wire-ordered Y before X like MOVETO/LINETO and
// the window/viewport org records) and derives the ellipse center,
// half-extents, and start/end points and angles described in spec
// §4.5.
func (s *state) readArcGeometry(params []byte) (arcGeometry, error) {
	endY, endX, err := readYX(params, 0)
	if err != nil {
		return arcGeometry{}, err
	}
	startY, startX, err := readYX(params, 4)
	if err != nil {
		return arcGeometry{}, err
	}
	rect, err := readRectReversed(params, 8)
	if err != nil {
		return arcGeometry{}, err
	}

	x, y, w, h := s.scaledRect(rect)
	var g arcGeometry
	g.cx, g.cy = x+w/2, y+h/2
	g.rx, g.ry = w/2, h/2

	refStartX, refStartY := s.engine.scaleX(startX), s.engine.scaleY(startY)
	refEndX, refEndY := s.engine.scaleX(endX), s.engine.scaleY(endY)

	g.startA = math.Atan2(refStartY-g.cy, refStartX-g.cx)
	g.endA = math.Atan2(refEndY-g.cy, refEndX-g.cx)

	g.sx = g.cx + g.rx*math.Cos(g.startA)
	g.sy = g.cy + g.ry*math.Sin(g.startA)
	g.ex = g.cx + g.rx*math.Cos(g.endA)
	g.ey = g.cy + g.ry*math.Sin(g.endA)

	delta := g.endA - g.startA
	if delta < 0 {
		delta += 2 * math.Pi
	}
	if delta > math.Pi {
		g.largeArcFlag = 1
	}
	return g, nil
}

// handleArc emits an open elliptical arc path, unfilled.
func (s *state) handleArc(params []byte) error {
	g, err := s.readArcGeometry(params)
	if err != nil {
		return err
	}

	fmt.Fprintf(&s.emitter.buf, `<%s d="M %s,%s A %s,%s 0 %d 1 %s,%s" fill="none"%s/>`+"\n",
		s.emitter.tag("path"), formatNum(g.sx), formatNum(g.sy),
		formatNum(g.rx), formatNum(g.ry), g.largeArcFlag, formatNum(g.ex), formatNum(g.ey),
		strokeStyle(s.dc.Pen, s.engine.scaling))
	return nil
}

// handleChord emits a closed chord (arc plus the straight segment
// joining its endpoints).
func (s *state) handleChord(params []byte) error {
	g, err := s.readArcGeometry(params)
	if err != nil {
		return err
	}

	fmt.Fprintf(&s.emitter.buf, `<%s d="M %s,%s A %s,%s 0 %d 1 %s,%s Z"%s%s/>`+"\n",
		s.emitter.tag("path"), formatNum(g.sx), formatNum(g.sy),
		formatNum(g.rx), formatNum(g.ry), g.largeArcFlag, formatNum(g.ex), formatNum(g.ey),
		fillStyle(s.dc.Brush, s.dc.PolyFillMode), strokeStyle(s.dc.Pen, s.engine.scaling))
	return nil
}

// handlePie emits a pie slice: the arc closed back through the
// ellipse center.
func (s *state) handlePie(params []byte) error {
	g, err := s.readArcGeometry(params)
	if err != nil {
		return err
	}

	fmt.Fprintf(&s.emitter.buf, `<%s d="M %s,%s L %s,%s A %s,%s 0 %d 1 %s,%s Z"%s%s/>`+"\n",
		s.emitter.tag("path"), formatNum(g.cx), formatNum(g.cy), formatNum(g.sx), formatNum(g.sy),
		formatNum(g.rx), formatNum(g.ry), g.largeArcFlag, formatNum(g.ex), formatNum(g.ey),
		fillStyle(s.dc.Brush, s.dc.PolyFillMode), strokeStyle(s.dc.Pen, s.engine.scaling))
	return nil
}
