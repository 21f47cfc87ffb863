package grid

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/intersect/intersect"
)

func mustPolygon(t *testing.T, points ...*intersect.Point) *intersect.Polygon {
	t.Helper()
	poly, err := intersect.Validate(points)
	require.NoError(t, err)
	return poly
}

func square(t *testing.T, x, y, side int64) *intersect.Polygon {
	t.Helper()
	return mustPolygon(t,
		pt(x, y), pt(x+side, y), pt(x+side, y+side), pt(x, y+side),
	)
}

func TestSetAddRemove(t *testing.T) {
	var s Set
	a := square(t, 0, 0, 10)
	b := square(t, 5, 5, 10)

	assert.Nil(t, s.RemoveLast())

	s.Add(a)
	s.Add(b)
	assert.Equal(t, 2, s.Len())

	assert.Same(t, b, s.RemoveLast())
	assert.Same(t, a, s.RemoveLast())
	assert.Zero(t, s.Len())
}

func TestSetIntersection(t *testing.T) {
	var s Set
	s.Add(square(t, 0, 0, 10))
	s.Add(square(t, 5, 5, 10))

	result := s.Intersection()
	require.Len(t, result, 1)
	assert.Equal(t, int64(50), result[0].DoubleArea())
}

func TestSetIntersectionIsCachedUntilChanged(t *testing.T) {
	var s Set
	s.Add(square(t, 0, 0, 10))
	s.Add(square(t, 5, 5, 10))

	first := s.Intersection()
	require.Len(t, first, 1)
	assert.Same(t, first[0], s.Intersection()[0])

	// Any edit drops the cache
	s.Add(square(t, 0, 0, 20))
	second := s.Intersection()
	require.Len(t, second, 1)
	assert.NotSame(t, first[0], second[0])
	assert.Equal(t, first[0].DoubleArea(), second[0].DoubleArea())

	s.RemoveLast()
	assert.NotSame(t, second[0], s.Intersection()[0])
}

func TestSetExportImportRoundTrip(t *testing.T) {
	var s Set
	s.Add(square(t, 0, 0, 1000))
	s.Add(square(t, 500, 500, 1000))

	var buf bytes.Buffer
	require.NoError(t, s.Export(&buf))

	imported, err := Import(&buf)
	require.NoError(t, err)
	require.Equal(t, 2, imported.Len())
	for i, poly := range imported.Polygons() {
		assert.Equal(t, s.Polygons()[i].Points, poly.Points)
	}

	result := imported.Intersection()
	require.Len(t, result, 1)
	assert.Equal(t, s.Intersection()[0].DoubleArea(), result[0].DoubleArea())
}

func TestSetExportWritesSceneUnits(t *testing.T) {
	var s Set
	s.Add(square(t, 0, 0, 150))

	var buf bytes.Buffer
	require.NoError(t, s.Export(&buf))

	// 150 core units is 1.5 scene units
	assert.Contains(t, buf.String(), `"x": 1.5`)
	assert.NotContains(t, buf.String(), "150")
}

func TestSetExportEmpty(t *testing.T) {
	var s Set
	var buf bytes.Buffer
	require.NoError(t, s.Export(&buf))
	assert.Contains(t, buf.String(), `"polygons": []`)
}

func TestImportRejectsInvalidPolygon(t *testing.T) {
	in := `{"polygons": [[{"x": 0, "y": 0}, {"x": 1, "y": 1}, {"x": 0, "y": 1}, {"x": 1, "y": 0}]]}`
	_, err := Import(strings.NewReader(in))
	assert.Equal(t, intersect.ErrNotIsothetic, errors.Cause(err))
}

func TestImportRejectsMalformedIntersectionRing(t *testing.T) {
	in := `{
		"polygons": [],
		"intersection": [[{"x": 0, "y": 0}, {"x": 1, "y": 1}, {"x": 1, "y": 0}, {"x": 0, "y": 1}]]
	}`
	_, err := Import(strings.NewReader(in))
	assert.Equal(t, intersect.ErrNotIsothetic, errors.Cause(err))
}

func TestImportRejectsGarbage(t *testing.T) {
	_, err := Import(strings.NewReader("not json"))
	assert.Error(t, err)
}

func TestImportDiscardsIntersectionRings(t *testing.T) {
	// The file's intersection is advisory; the polygons are the source of
	// truth and the intersection is recomputed from them.
	in := `{
		"polygons": [
			[{"x": 0, "y": 0}, {"x": 10, "y": 0}, {"x": 10, "y": 10}, {"x": 0, "y": 10}]
		],
		"intersection": [
			[{"x": 0, "y": 0}, {"x": 1, "y": 0}, {"x": 1, "y": 1}, {"x": 0, "y": 1}]
		]
	}`
	set, err := Import(strings.NewReader(in))
	require.NoError(t, err)

	result := set.Intersection()
	require.Len(t, result, 1)
	// Full square, not the stale ring from the file
	assert.Equal(t, int64(2*1000*1000), result[0].DoubleArea())
}
