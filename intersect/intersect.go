// Package intersect computes the common area of isothetic polygons.
//
// An isothetic (rectilinear) polygon is one whose every edge is horizontal or
// vertical. Given any number of such polygons on an integer grid, this
// package computes the polygon(s) forming their geometric intersection,
// handling coincident edges, shared corners, and disjoint results exactly;
// coordinates are integers, so there is no epsilon anywhere.
//
// The one operation most callers need is Intersect. Everything it composes —
// Validate, Classify, Sweep, Reconstruct — is exported too, for callers that
// want to reuse validated polygons across calls or inspect the sweep output.
package intersect

// Intersect validates each point list as an isothetic polygon and returns the
// polygons covering the area common to all of them. An empty result means the
// inputs share no area, which is not an error. Inputs that merely touch along
// an edge or at a corner share no area.
//
// The computation is pure and retains no references to its input, so
// concurrent calls are safe.
func Intersect(polygonPoints ...[]*Point) (result []*ResultPolygon, err error) {
	defer func() {
		recoveredErr := HandleIntersectPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	polygons := make(PolygonList, len(polygonPoints))
	for i, points := range polygonPoints {
		poly, err := Validate(points)
		if err != nil {
			return nil, err
		}
		polygons[i] = poly
	}
	return polygons.Intersect(), nil
}

// Intersect computes the common area of an already-validated polygon list. It
// panics with an IntersectError on contract violations; use the package-level
// Intersect if you want errors instead.
func (pl PolygonList) Intersect() []*ResultPolygon {
	return Reconstruct(Sweep(pl))
}
