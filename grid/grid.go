// Package grid models the drawing surface the polygons are built on: an
// integer grid with zoom-adaptive spacing, point snapping, an interactive
// polygon builder, and a set of completed polygons that can be intersected
// and saved to disk. The rendering itself belongs to whatever UI sits on top;
// this package only owns the state with invariants.
package grid

import (
	"math"

	"github.com/osuushi/intersect/intersect"
)

// Scene coordinates are floats (they come from a mouse position under an
// arbitrary zoom), but the core works on exact integers. One scene unit is
// Scale core units, so the finest grid spacing of 0.1 scene units still lands
// on exact coordinates.
const Scale = 100

// How close to an axis (in scene units, at zoom 1) a coordinate must be to
// snap onto it.
const AxisSnapThreshold = 0.1

// SpacingForZoom picks the grid spacing, in scene units, appropriate for a
// zoom level, so the visible grid stays usable from a 1000-unit overview down
// to tenth-of-a-unit detail.
func SpacingForZoom(zoom float64) float64 {
	switch {
	case zoom <= 0.01:
		return 1000
	case zoom <= 0.1:
		return 100
	case zoom <= 1:
		return 50
	case zoom <= 10:
		return 10
	case zoom <= 100:
		return 1
	default:
		return 0.1
	}
}

// Snap returns the grid point nearest to the scene position (x, y) at the
// given spacing. The result is exact: the spacing in core units is an
// integer, so multiplying the rounded step count never reintroduces float
// error.
func Snap(x, y, spacing float64) *intersect.Point {
	unitSpacing := int64(math.Round(spacing * Scale))
	return &intersect.Point{
		X: int64(math.Round(x/spacing)) * unitSpacing,
		Y: int64(math.Round(y/spacing)) * unitSpacing,
	}
}

// SnapToAxis pulls a scene coordinate onto zero when it is within the snap
// threshold, scaled by zoom so the feel is constant on screen.
func SnapToAxis(v, zoom float64) float64 {
	if math.Abs(v) < AxisSnapThreshold/zoom {
		return 0
	}
	return v
}

// ToScene converts a core point back to scene coordinates for display.
func ToScene(p *intersect.Point) (x, y float64) {
	return float64(p.X) / Scale, float64(p.Y) / Scale
}

// FromScene converts a scene position to the nearest exact core point.
func FromScene(x, y float64) *intersect.Point {
	return &intersect.Point{
		X: int64(math.Round(x * Scale)),
		Y: int64(math.Round(y * Scale)),
	}
}
