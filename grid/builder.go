package grid

import (
	"github.com/pkg/errors"

	"github.com/osuushi/intersect/intersect"
)

// Builder is one polygon-drawing session. Points are added one at a time as
// the user picks grid points; each must continue horizontally or vertically
// from the previous one, so the shape can never leave the isothetic world.
// The polygon is closed by picking the starting point again and calling
// Close, which runs full validation. An invalid shape is rejected while the
// user is still drawing, never after.
type Builder struct {
	points []*intersect.Point
}

// Add appends the next vertex. It fails with ErrDegenerateEdge when p repeats
// the previous vertex and ErrNotIsothetic when p is diagonal from it; in both
// cases the session is unchanged and the user can pick again.
func (b *Builder) Add(p *intersect.Point) error {
	if len(b.points) > 0 {
		last := b.points[len(b.points)-1]
		if last.X == p.X && last.Y == p.Y {
			return errors.Wrapf(intersect.ErrDegenerateEdge, "point (%d, %d) repeats the previous point", p.X, p.Y)
		}
		if last.X != p.X && last.Y != p.Y {
			return errors.Wrapf(intersect.ErrNotIsothetic, "point (%d, %d) is diagonal from (%d, %d)", p.X, p.Y, last.X, last.Y)
		}
	}
	b.points = append(b.points, p)
	return nil
}

// Undo removes and returns the most recently added point, or nil if the
// session is empty.
func (b *Builder) Undo() *intersect.Point {
	if len(b.points) == 0 {
		return nil
	}
	p := b.points[len(b.points)-1]
	b.points = b.points[:len(b.points)-1]
	return p
}

// Close finishes the session. The last added point must be the starting point
// again; the repeated point is dropped and the rest validated as a polygon.
// On success the session resets for the next shape. On failure the session is
// left as-is so the user can keep editing.
func (b *Builder) Close() (*intersect.Polygon, error) {
	if len(b.points) < 4 {
		return nil, errors.Errorf("polygon needs at least 3 distinct points before closing, got %d", len(b.points)-1)
	}
	first := b.points[0]
	last := b.points[len(b.points)-1]
	if first.X != last.X || first.Y != last.Y {
		return nil, errors.New("polygon must be closed by picking the starting point again")
	}
	poly, err := intersect.Validate(b.points[:len(b.points)-1])
	if err != nil {
		return nil, err
	}
	b.points = nil
	return poly, nil
}

// Points returns a copy of the session's points so far, for display.
func (b *Builder) Points() []*intersect.Point {
	out := make([]*intersect.Point, len(b.points))
	copy(out, b.points)
	return out
}

func (b *Builder) Len() int {
	return len(b.points)
}

// Reset abandons the current session.
func (b *Builder) Reset() {
	b.points = nil
}
