// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package wmf

// MapMode is the WMF unit system governing window/viewport
// interpretation. It does not drive any axis flipping or unit
// conversion here; its only effect is deciding whether
// SETWINDOWEXT/SETVIEWPORTEXT change the extents (see isVariable).
type MapMode int16

// Map modes, as carried by SETMAPMODE.
const (
	MMText        MapMode = 1
	MMLoMetric    MapMode = 2
	MMHiMetric    MapMode = 3
	MMLoEnglish   MapMode = 4
	MMHiEnglish   MapMode = 5
	MMTwips       MapMode = 6
	MMIsotropic   MapMode = 7
	MMAnisotropic MapMode = 8
)

// isVariable reports whether m is one of the two map modes
// (MM_ISOTROPIC, MM_ANISOTROPIC) whose window/viewport extents are
// caller-controlled. Every other mode, MM_TEXT foremost, keeps a fixed
// 1:1 extent ratio that SetWindowExtEx/SetViewportExtEx cannot change.
func (m MapMode) isVariable() bool {
	return m == MMIsotropic || m == MMAnisotropic
}

// coordinateEngine holds the window/viewport transform and the global
// scaling factor derived from the placeable header (or defaults) used
// to turn metafile units into CSS pixels.
type coordinateEngine struct {
	windowOrgX, windowOrgY     int32
	windowExtX, windowExtY     int32
	viewportOrgX, viewportOrgY int32
	viewportExtX, viewportExtY int32
	mapMode                    MapMode
	scaling                    float64
}

// newCoordinateEngine returns a coordinate engine with 1:1 identity
// window/viewport extents and the given global scaling factor.
func newCoordinateEngine(scaling float64) coordinateEngine {
	return coordinateEngine{
		windowExtX:   1,
		windowExtY:   1,
		viewportExtX: 1,
		viewportExtY: 1,
		mapMode:      MMText,
		scaling:      scaling,
	}
}

// scaleX maps a raw device X coordinate to SVG user space.
//
//	scaleX(x) = ((x - windowOrgX) * viewportExtX / windowExtX + viewportOrgX) * scaling
//
// When windowExtX is zero the division is skipped and the raw
// coordinate is emitted, scaled only.
func (c *coordinateEngine) scaleX(x int16) float64 {
	if c.windowExtX == 0 {
		return float64(x) * c.scaling
	}
	v := float64(int32(x)-c.windowOrgX)*float64(c.viewportExtX)/float64(c.windowExtX) + float64(c.viewportOrgX)
	return v * c.scaling
}

// scaleY maps a raw device Y coordinate to SVG user space, symmetric
// to scaleX.
func (c *coordinateEngine) scaleY(y int16) float64 {
	if c.windowExtY == 0 {
		return float64(y) * c.scaling
	}
	v := float64(int32(y)-c.windowOrgY)*float64(c.viewportExtY)/float64(c.windowExtY) + float64(c.viewportOrgY)
	return v * c.scaling
}

// scalingForPlaceable derives the initial global scaling factor for a
// placeable-header input: 96 CSS px/inch divided by metafile units
// per inch, unless the caller supplied target pixel dimensions, in
// which case the ratio of requested to declared size is used (the
// smaller of the two ratios when both width and height are given, to
// preserve aspect ratio).
func scalingForPlaceable(inch uint16, dst Rect16, imgWidth, imgHeight int) float64 {
	declaredW := float64(dst.Right - dst.Left)
	declaredH := float64(dst.Bottom - dst.Top)

	if imgWidth <= 0 && imgHeight <= 0 {
		if inch == 0 {
			return 1
		}
		return 96.0 / float64(inch)
	}

	var ratioW, ratioH float64
	if imgWidth > 0 && declaredW != 0 {
		ratioW = float64(imgWidth) / declaredW
	}
	if imgHeight > 0 && declaredH != 0 {
		ratioH = float64(imgHeight) / declaredH
	}

	switch {
	case ratioW != 0 && ratioH != 0:
		if ratioW < ratioH {
			return ratioW
		}
		return ratioH
	case ratioW != 0:
		return ratioW
	case ratioH != 0:
		return ratioH
	default:
		if inch == 0 {
			return 1
		}
		return 96.0 / float64(inch)
	}
}
