package intersect

// All coordinates are integers on the drawing grid. Grid-snapped input means
// exact comparison is always valid, so unlike most computational geometry
// there is no tolerance anywhere in this package. Points are pointers so they
// can be used as map keys, and a point value is never modified once created.
type Point struct {
	X int64
	Y int64
}

type Polygon struct {
	Points []*Point

	// Set by Validate. The sweep refuses polygons that didn't come through
	// Validate, since its invariants only hold for simple isothetic input.
	validated bool
}

type PolygonList []*Polygon

// A result area: one counterclockwise outer boundary, plus any clockwise
// holes nested inside it. This matches the winding convention most consumers
// (e.g. triangulators) want solids and holes in.
type ResultPolygon struct {
	Outer *Polygon
	Holes []*Polygon
}

// A directed vertical boundary edge of polygon Poly at x = X, covering the
// half-open span [Lo, Hi). Opens means the polygon interior lies to the east
// of the edge, i.e. a left-to-right sweep enters the polygon here.
type VerticalEdge struct {
	X      int64
	Lo, Hi int64
	Poly   int
	Opens  bool
}

// A horizontal boundary edge of polygon Poly at y = Y, covering the half-open
// span [Lo, Hi) in x. InsideBelow means the polygon interior lies to the
// south of the edge.
type HorizontalEdge struct {
	Y           int64
	Lo, Hi      int64
	Poly        int
	InsideBelow bool
}

// A vertical edge of the composite intersection boundary, emitted by the
// sweep at x = X over the half-open span [Lo, Hi). Up edges travel from Lo to
// Hi and have the intersection interior to their west; down edges travel from
// Hi to Lo with the interior to their east. Either way the interior is on the
// left of travel, so reconstructed loops come out counterclockwise around
// solids and clockwise around holes.
type OutputEdge struct {
	X      int64
	Lo, Hi int64
	Up     bool
}

// Half open interval [Lo, Hi). Zero length intervals are never stored.
type Interval struct {
	Lo, Hi int64
}

// Sorted, pairwise disjoint, non-touching intervals. The zero value is the
// empty set.
type IntervalSet []Interval

type BoundingBox struct {
	MinX, MinY int64
	MaxX, MaxY int64
}
