package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osuushi/intersect/intersect"
)

func TestSpacingForZoom(t *testing.T) {
	cases := []struct {
		zoom    float64
		spacing float64
	}{
		{0.001, 1000},
		{0.01, 1000},
		{0.05, 100},
		{0.1, 100},
		{0.5, 50},
		{1, 50},
		{5, 10},
		{10, 10},
		{50, 1},
		{100, 1},
		{500, 0.1},
	}
	for _, c := range cases {
		assert.Equal(t, c.spacing, SpacingForZoom(c.zoom), "zoom %v", c.zoom)
	}
}

func TestSnap(t *testing.T) {
	// Spacing 10 scene units = 1000 core units
	assert.Equal(t, &intersect.Point{X: 1000, Y: 2000}, Snap(12.3, 17.5, 10))
	assert.Equal(t, &intersect.Point{X: -1000, Y: 0}, Snap(-12.3, 2.4, 10))

	// Spacing 1
	assert.Equal(t, &intersect.Point{X: 1200, Y: 1800}, Snap(12.3, 17.5, 1))

	// The finest spacing still lands on exact core coordinates, even though
	// 0.1 is not a representable float
	assert.Equal(t, &intersect.Point{X: 1230, Y: 1750}, Snap(12.3, 17.5, 0.1))
	assert.Equal(t, &intersect.Point{X: 10, Y: -10}, Snap(0.1, -0.1, 0.1))
	assert.Equal(t, &intersect.Point{X: 30, Y: 70}, Snap(0.3, 0.7, 0.1))
}

func TestSnapIsExactAcrossTheGrid(t *testing.T) {
	// Every snapped coordinate must be a multiple of the spacing in core
	// units. Sweep a range of awkward positions at the finest spacing.
	for i := -500; i <= 500; i++ {
		v := float64(i) * 0.07
		p := Snap(v, v, 0.1)
		assert.Zero(t, p.X%10, "x at %v", v)
		assert.Zero(t, p.Y%10, "y at %v", v)
	}
}

func TestSnapToAxis(t *testing.T) {
	assert.Zero(t, SnapToAxis(0.05, 1))
	assert.Zero(t, SnapToAxis(-0.05, 1))
	assert.Equal(t, 0.5, SnapToAxis(0.5, 1))

	// Higher zoom shrinks the capture range
	assert.Equal(t, 0.05, SnapToAxis(0.05, 10))
	assert.Zero(t, SnapToAxis(0.005, 10))

	// Lower zoom widens it
	assert.Zero(t, SnapToAxis(0.5, 0.1))
}

func TestSceneConversionRoundTrip(t *testing.T) {
	p := &intersect.Point{X: 1234, Y: -567}
	x, y := ToScene(p)
	assert.Equal(t, 12.34, x)
	assert.Equal(t, -5.67, y)
	assert.Equal(t, p, FromScene(x, y))
}
