package intersect

import "sort"

// Reconstruction stitches the sweep's unordered vertical edges back into
// closed polygons. The horizontal parts of the boundary were never emitted,
// but they are fully determined: at any given y, the endpoints of vertical
// edges at that y alternate between "boundary continues right" and "boundary
// continues left" as you scan across, so sorting the endpoints by x and
// pairing them off two at a time recovers every horizontal connector. The
// pairing links concrete endpoint objects rather than coordinates, so results
// that touch at a single corner still resolve into separate simple loops.

// One endpoint of an output edge.
type loopEnd struct {
	x, y int64
	edge *loopEdge
	// Whether the edge's travel ends here. A loop runs ... tail -> head along
	// a vertical, then along a horizontal connector to the next vertical's
	// tail.
	head bool
	// The endpoint at the other side of the horizontal connector.
	partner *loopEnd
}

type loopEdge struct {
	up         bool
	tail, head *loopEnd
	visited    bool
}

// Reconstruct assembles the sweep's output edges into zero or more closed
// result polygons, holes nested. It throws ErrMalformedSweepOutput if the
// edges do not form closed loops; that is an internal invariant violation and
// never expected from a sweep over validated polygons, but it must be caught,
// not silently dropped.
func Reconstruct(outputEdges []*OutputEdge) []*ResultPolygon {
	edges := make([]*loopEdge, len(outputEdges))
	byY := make(map[int64][]*loopEnd)
	for i, oe := range outputEdges {
		e := &loopEdge{up: oe.Up}
		loEnd := &loopEnd{x: oe.X, y: oe.Lo, edge: e}
		hiEnd := &loopEnd{x: oe.X, y: oe.Hi, edge: e}
		if oe.Up {
			e.tail, e.head = loEnd, hiEnd
		} else {
			e.tail, e.head = hiEnd, loEnd
		}
		e.head.head = true
		edges[i] = e
		byY[oe.Lo] = append(byY[oe.Lo], loEnd)
		byY[oe.Hi] = append(byY[oe.Hi], hiEnd)
	}

	// Synthesize the horizontal connectors. Where two endpoints coincide (two
	// result pieces meeting at a corner), the upward edge's endpoint sorts
	// first; that pairs each piece's own corners together and keeps the
	// pieces separate instead of fusing them into one self-touching loop.
	for y, ends := range byY {
		if len(ends)%2 != 0 {
			throw(ErrMalformedSweepOutput, "odd number of edge endpoints at y = %d", y)
		}
		sort.Slice(ends, func(i, j int) bool {
			if ends[i].x != ends[j].x {
				return ends[i].x < ends[j].x
			}
			return ends[i].edge.up && !ends[j].edge.up
		})
		for i := 0; i < len(ends); i += 2 {
			a, b := ends[i], ends[i+1]
			if a.head == b.head {
				throw(ErrMalformedSweepOutput, "mismatched connector between %s and %s", a.edge, b.edge)
			}
			a.partner = b
			b.partner = a
		}
	}

	var loops []*Polygon
	for _, start := range edges {
		if start.visited {
			continue
		}
		var points []*Point
		cur := start
		for {
			cur.visited = true
			points = append(points,
				&Point{cur.tail.x, cur.tail.y},
				&Point{cur.head.x, cur.head.y})
			next := cur.head.partner.edge
			if next == start {
				break
			}
			if next.visited {
				throw(ErrMalformedSweepOutput, "loop through %s revisits %s before closing", start, next)
			}
			cur = next
		}
		loops = append(loops, canonicalLoop(points))
	}

	return nestLoops(loops)
}

// Clean up a walked loop into a canonical polygon: no repeated or collinear
// vertices, starting from the lexicographically smallest point. Dropping a
// collinear vertex can make its neighbors collinear in turn, so scan until
// settled.
func canonicalLoop(points []*Point) *Polygon {
	for changed := true; changed; {
		changed = false
		for i := 0; i < len(points) && len(points) > 2; i++ {
			a := points[CircularIndex(i-1, len(points))]
			b := points[i]
			c := points[CircularIndex(i+1, len(points))]
			duplicate := b.X == c.X && b.Y == c.Y
			collinear := (a.X == b.X && b.X == c.X) || (a.Y == b.Y && b.Y == c.Y)
			if duplicate || collinear {
				points = append(points[:i], points[i+1:]...)
				changed = true
				i--
			}
		}
	}
	if len(points) < 4 {
		throw(ErrMalformedSweepOutput, "loop degenerated to %d points", len(points))
	}

	minIndex := 0
	for i, p := range points {
		m := points[minIndex]
		if p.X < m.X || (p.X == m.X && p.Y < m.Y) {
			minIndex = i
		}
	}
	rotated := make([]*Point, 0, len(points))
	rotated = append(rotated, points[minIndex:]...)
	rotated = append(rotated, points[:minIndex]...)
	return &Polygon{Points: rotated, validated: true}
}

// Split loops into counterclockwise outer boundaries and clockwise holes, and
// nest each hole inside the smallest outer whose bounding box contains it.
// Results are ordered by bounding box so that the same area always comes back
// the same way regardless of input order.
func nestLoops(loops []*Polygon) []*ResultPolygon {
	var results []*ResultPolygon
	var holes []*Polygon
	for _, loop := range loops {
		if loop.IsCCW() {
			results = append(results, &ResultPolygon{Outer: loop})
		} else {
			holes = append(holes, loop)
		}
	}

	for _, hole := range holes {
		box := hole.BoundingBox()
		var enclosing *ResultPolygon
		for _, r := range results {
			if !r.Outer.BoundingBox().Contains(box) {
				continue
			}
			if enclosing == nil || r.Outer.DoubleArea() < enclosing.Outer.DoubleArea() {
				enclosing = r
			}
		}
		if enclosing == nil {
			throw(ErrMalformedSweepOutput, "hole at %v has no enclosing boundary", box)
		}
		enclosing.Holes = append(enclosing.Holes, hole)
	}

	sort.Slice(results, func(i, j int) bool {
		a := results[i].Outer.Points[0]
		b := results[j].Outer.Points[0]
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	})
	for _, r := range results {
		holes := r.Holes
		sort.Slice(holes, func(i, j int) bool {
			a, b := holes[i].Points[0], holes[j].Points[0]
			if a.X != b.X {
				return a.X < b.X
			}
			return a.Y < b.Y
		})
	}
	return results
}
