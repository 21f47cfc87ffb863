package intersect

// Twice the signed area of the polygon by the shoelace formula. Positive for
// counterclockwise boundaries, negative for clockwise. Exact under integer
// arithmetic, which is why we return the doubled value instead of dividing.
func (poly *Polygon) SignedDoubleArea() int64 {
	var sum int64
	for i, p := range poly.Points {
		q := poly.Points[CircularIndex(i+1, len(poly.Points))]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum
}

// Twice the absolute area.
func (poly *Polygon) DoubleArea() int64 {
	area := poly.SignedDoubleArea()
	if area < 0 {
		return -area
	}
	return area
}

func (poly *Polygon) IsCCW() bool {
	return poly.SignedDoubleArea() > 0
}

func (poly *Polygon) IsCW() bool {
	return poly.SignedDoubleArea() < 0
}

func (poly *Polygon) Reverse() *Polygon {
	newPoly := &Polygon{validated: poly.validated}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

func (poly *Polygon) BoundingBox() BoundingBox {
	return BoundingBoxOf(poly.Points)
}

// Even-odd point containment by casting a ray straight down from p and
// counting crossings of the polygon's horizontal edges. The half-open [Lo,
// Hi) span of each edge, and counting the edge through p itself, give exactly
// the half-open semantics the sweep uses: a point on a south or west boundary
// is inside, a point on a north or east boundary is not. This keeps
// containment queries consistent with which boundary-touching regions the
// intersection keeps.
func (poly *Polygon) ContainsPoint(p *Point) bool {
	_, horizontals := poly.Classify(0)
	crossings := 0
	for _, h := range horizontals {
		if h.Y <= p.Y && h.Lo <= p.X && p.X < h.Hi {
			crossings++
		}
	}
	return crossings%2 == 1
}

// Whether any result polygon contains p, honoring holes. Holes wind opposite
// to their outer boundary, but even-odd counting doesn't care: a point inside
// a hole crosses both boundaries and cancels out.
func ResultContainsPoint(results []*ResultPolygon, p *Point) bool {
	for _, r := range results {
		if !r.Outer.ContainsPoint(p) {
			continue
		}
		inHole := false
		for _, hole := range r.Holes {
			if hole.ContainsPoint(p) {
				inHole = true
				break
			}
		}
		if !inHole {
			return true
		}
	}
	return false
}

// Twice the net area of the result: outer area minus hole areas.
func (r *ResultPolygon) DoubleArea() int64 {
	area := r.Outer.DoubleArea()
	for _, hole := range r.Holes {
		area -= hole.DoubleArea()
	}
	return area
}
