package intersect

import "github.com/pkg/errors"

// Validate checks that points describe a simple isothetic polygon and returns
// it with winding normalized to counterclockwise. The closing edge from the
// last point back to the first is implicit; don't repeat the first point.
//
// Checks, in order: at least 4 points; no two consecutive points equal
// (ErrDegenerateEdge); every edge, including the closing edge, strictly
// horizontal or vertical (ErrNotIsothetic); no repeated vertex and no contact
// between non-adjacent edges (ErrSelfIntersecting). Adjacent collinear edges
// that continue in the same direction are allowed; a collinear reversal
// retraces part of an edge and is rejected as self-intersecting.
//
// Validation is pure: the input slice is not retained or modified. The
// returned polygon is the only thing the sweep engine accepts.
func Validate(points []*Point) (*Polygon, error) {
	if len(points) < 4 {
		return nil, errors.Errorf("polygon needs at least 4 points, got %d", len(points))
	}

	n := len(points)
	for i, p := range points {
		q := points[CircularIndex(i+1, n)]
		if p.X == q.X && p.Y == q.Y {
			return nil, errors.Wrapf(ErrDegenerateEdge, "points %d and %d are both (%d, %d)", i, CircularIndex(i+1, n), p.X, p.Y)
		}
		if p.X != q.X && p.Y != q.Y {
			return nil, errors.Wrapf(ErrNotIsothetic, "edge from (%d, %d) to (%d, %d)", p.X, p.Y, q.X, q.Y)
		}
	}

	// Repeated vertices make the boundary touch itself even when no edge pair
	// crosses outright.
	seen := make(map[Point]int, n)
	for i, p := range points {
		if j, ok := seen[*p]; ok {
			return nil, errors.Wrapf(ErrSelfIntersecting, "vertex (%d, %d) appears at positions %d and %d", p.X, p.Y, j, i)
		}
		seen[*p] = i
	}

	// Edge counts are small (user-drawn shapes), so the quadratic pair scan is
	// fine and much easier to trust than an indexed one.
	for i := 0; i < n; i++ {
		a1 := points[i]
		a2 := points[CircularIndex(i+1, n)]
		for j := i + 1; j < n; j++ {
			b1 := points[j]
			b2 := points[CircularIndex(j+1, n)]
			adjacent := j == i+1 || (i == 0 && j == n-1)
			if adjacent {
				// Adjacent edges share a vertex. They must not overlap beyond it.
				if SegmentsOverlap(a1, a2, b1, b2) {
					return nil, errors.Wrapf(ErrSelfIntersecting, "edge %d doubles back over edge %d", j, i)
				}
				continue
			}
			if SegmentsTouch(a1, a2, b1, b2) {
				return nil, errors.Wrapf(ErrSelfIntersecting, "edge %d touches edge %d", i, j)
			}
		}
	}

	poly := &Polygon{Points: make([]*Point, n), validated: true}
	copy(poly.Points, points)
	if poly.IsCW() {
		poly = poly.Reverse()
	}
	return poly, nil
}

// Validated reports whether the polygon came through Validate (or was built
// by reconstruction, which only produces valid polygons).
func (poly *Polygon) Validated() bool {
	return poly.validated
}
