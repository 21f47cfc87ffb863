package intersect

// Classify decomposes the polygon boundary into its vertical and horizontal
// edges, tagged with the owning polygon's id and which side the interior is
// on. The polygon must already have canonical (counterclockwise) winding, so
// the interior is always on the left of travel: a vertical edge traversed
// downward has the interior to its east (it opens a span as the sweep passes)
// and a horizontal edge traversed westward has the interior below it.
//
// Spans are stored low-to-high regardless of travel direction; direction
// survives only as the Opens / InsideBelow tags.
func (poly *Polygon) Classify(id int) ([]VerticalEdge, []HorizontalEdge) {
	var verticals []VerticalEdge
	var horizontals []HorizontalEdge
	n := len(poly.Points)
	for i, p := range poly.Points {
		q := poly.Points[CircularIndex(i+1, n)]
		if p.X == q.X {
			verticals = append(verticals, VerticalEdge{
				X:     p.X,
				Lo:    minInt64(p.Y, q.Y),
				Hi:    maxInt64(p.Y, q.Y),
				Poly:  id,
				Opens: q.Y < p.Y,
			})
		} else {
			horizontals = append(horizontals, HorizontalEdge{
				Y:           p.Y,
				Lo:          minInt64(p.X, q.X),
				Hi:          maxInt64(p.X, q.X),
				Poly:        id,
				InsideBelow: q.X < p.X,
			})
		}
	}
	return verticals, horizontals
}
