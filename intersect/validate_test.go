package intersect

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsSimplePolygons(t *testing.T) {
	t.Run("rectangle", func(t *testing.T) {
		poly, err := Validate(pts(0, 0, 4, 0, 4, 4, 0, 4))
		require.NoError(t, err)
		assert.True(t, poly.Validated())
		assert.True(t, poly.IsCCW())
		assert.EqualValues(t, 32, poly.DoubleArea())
	})

	t.Run("L shape", func(t *testing.T) {
		poly, err := Validate(pts(0, 0, 6, 0, 6, 2, 2, 2, 2, 6, 0, 6))
		require.NoError(t, err)
		assert.EqualValues(t, 2*(6*2+2*4), poly.DoubleArea())
	})

	t.Run("collinear continuation vertex", func(t *testing.T) {
		// A vertex in the middle of a straight run is redundant but legal
		_, err := Validate(pts(0, 0, 2, 0, 4, 0, 4, 4, 0, 4))
		assert.NoError(t, err)
	})
}

func TestValidateNormalizesWinding(t *testing.T) {
	ccw, err := Validate(pts(0, 0, 4, 0, 4, 4, 0, 4))
	require.NoError(t, err)
	cw, err := Validate(pts(0, 4, 4, 4, 4, 0, 0, 0))
	require.NoError(t, err)

	assert.True(t, ccw.IsCCW())
	assert.True(t, cw.IsCCW(), "clockwise input should be stored counterclockwise")
	assert.Equal(t, ccw.DoubleArea(), cw.DoubleArea())
}

func TestValidateRejections(t *testing.T) {
	t.Run("too few points", func(t *testing.T) {
		_, err := Validate(pts(0, 0, 4, 0, 4, 4))
		assert.Error(t, err)
	})

	t.Run("diagonal edge", func(t *testing.T) {
		_, err := Validate(pts(0, 0, 4, 0, 4, 4, 1, 3))
		assert.ErrorIs(t, err, ErrNotIsothetic)
	})

	t.Run("diagonal closing edge", func(t *testing.T) {
		// The implicit edge from the last point back to the first counts too
		_, err := Validate(pts(0, 0, 4, 0, 4, 4, 2, 4, 2, 2))
		assert.ErrorIs(t, err, ErrNotIsothetic)
	})

	t.Run("repeated consecutive point", func(t *testing.T) {
		_, err := Validate(pts(0, 0, 4, 0, 4, 0, 4, 4, 0, 4))
		assert.ErrorIs(t, err, ErrDegenerateEdge)
	})

	t.Run("crossing edges", func(t *testing.T) {
		// Figure-eight-ish: the top edge crosses a vertical
		_, err := Validate(pts(0, 0, 6, 0, 6, 4, 2, 4, 2, -2, 0, -2))
		assert.ErrorIs(t, err, ErrSelfIntersecting)
	})

	t.Run("repeated vertex", func(t *testing.T) {
		// Two rectangles joined at one shared corner, traced as one boundary
		_, err := Validate(pts(0, 0, 2, 0, 2, 2, 4, 2, 4, 4, 2, 4, 2, 2, 0, 2))
		assert.ErrorIs(t, err, ErrSelfIntersecting)
	})

	t.Run("edge doubling back over its neighbor", func(t *testing.T) {
		_, err := Validate(pts(0, 0, 6, 0, 4, 0, 4, 4, 0, 4))
		assert.ErrorIs(t, err, ErrSelfIntersecting)
	})

	t.Run("non-adjacent edges touching at a point", func(t *testing.T) {
		// The boundary comes back to graze the bottom edge
		_, err := Validate(pts(0, 0, 6, 0, 6, 4, 3, 4, 3, 0, 2, 0, 2, 4, 0, 4))
		assert.ErrorIs(t, err, ErrSelfIntersecting)
	})
}

func TestValidateErrorsMatchWithCause(t *testing.T) {
	// The wrapped sentinels survive both errors.Is and pkg/errors.Cause
	_, err := Validate(pts(0, 0, 4, 0, 4, 4, 1, 3))
	require.Error(t, err)
	assert.Equal(t, ErrNotIsothetic, errors.Cause(err))
}

func TestValidateDoesNotRetainInput(t *testing.T) {
	input := pts(0, 4, 4, 4, 4, 0, 0, 0) // clockwise, so Validate reverses
	poly, err := Validate(input)
	require.NoError(t, err)

	// Mutating the input slice must not affect the polygon
	input[0] = &Point{99, 99}
	assert.Equal(t, &Point{0, 4}, poly.Points[len(poly.Points)-1])
}
