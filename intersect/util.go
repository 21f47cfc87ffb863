package intersect

// A segment between consecutive polygon points is horizontal when only the X
// coordinate changes. A zero-length segment is neither horizontal nor
// vertical.
func IsHorizontal(p1, p2 *Point) bool {
	return p1.Y == p2.Y && p1.X != p2.X
}

func IsVertical(p1, p2 *Point) bool {
	return p1.X == p2.X && p1.Y != p2.Y
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives
// positive values.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// Whether the closed 1-D ranges [a1, a2] and [b1, b2] share any point. The
// arguments may be given in either order.
func rangesTouch(a1, a2, b1, b2 int64) bool {
	if a1 > a2 {
		a1, a2 = a2, a1
	}
	if b1 > b2 {
		b1, b2 = b2, b1
	}
	return a1 <= b2 && b1 <= a2
}

// Whether the closed ranges overlap in more than a single point.
func rangesOverlap(a1, a2, b1, b2 int64) bool {
	if a1 > a2 {
		a1, a2 = a2, a1
	}
	if b1 > b2 {
		b1, b2 = b2, b1
	}
	return a1 < b2 && b1 < a2
}

// Whether two axis-aligned segments share at least one point. Both crossing
// and collinear overlap count; exact coincidence of collinear edges is a
// first-class case for isothetic polygons, not an error.
func SegmentsTouch(a1, a2, b1, b2 *Point) bool {
	aHoriz := a1.Y == a2.Y
	bHoriz := b1.Y == b2.Y
	switch {
	case aHoriz && bHoriz:
		return a1.Y == b1.Y && rangesTouch(a1.X, a2.X, b1.X, b2.X)
	case !aHoriz && !bHoriz:
		return a1.X == b1.X && rangesTouch(a1.Y, a2.Y, b1.Y, b2.Y)
	case aHoriz: // a horizontal, b vertical
		return rangesTouch(a1.X, a2.X, b1.X, b1.X) && rangesTouch(b1.Y, b2.Y, a1.Y, a1.Y)
	default: // a vertical, b horizontal
		return SegmentsTouch(b1, b2, a1, a2)
	}
}

// Whether two collinear axis-aligned segments overlap in more than a point.
func SegmentsOverlap(a1, a2, b1, b2 *Point) bool {
	if a1.Y == a2.Y && b1.Y == b2.Y && a1.Y == b1.Y {
		return rangesOverlap(a1.X, a2.X, b1.X, b2.X)
	}
	if a1.X == a2.X && b1.X == b2.X && a1.X == b1.X {
		return rangesOverlap(a1.Y, a2.Y, b1.Y, b2.Y)
	}
	return false
}

func BoundingBoxOf(points []*Point) BoundingBox {
	if len(points) == 0 {
		return BoundingBox{}
	}
	box := BoundingBox{points[0].X, points[0].Y, points[0].X, points[0].Y}
	for _, p := range points[1:] {
		box.MinX = minInt64(box.MinX, p.X)
		box.MinY = minInt64(box.MinY, p.Y)
		box.MaxX = maxInt64(box.MaxX, p.X)
		box.MaxY = maxInt64(box.MaxY, p.Y)
	}
	return box
}

func (b BoundingBox) Contains(other BoundingBox) bool {
	return b.MinX <= other.MinX && b.MinY <= other.MinY &&
		b.MaxX >= other.MaxX && b.MaxY >= other.MaxY
}

func (b BoundingBox) Overlaps(other BoundingBox) bool {
	return b.MinX <= other.MaxX && other.MinX <= b.MaxX &&
		b.MinY <= other.MaxY && other.MinY <= b.MaxY
}
