package grid

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"

	"github.com/osuushi/intersect/intersect"
)

// Set is the collection of completed polygons. The caller owns it; the
// intersection core never sees it across calls. The most recent intersection
// is cached so exporting doesn't recompute, and anything that changes the set
// drops the cache.
type Set struct {
	polygons     intersect.PolygonList
	intersection []*intersect.ResultPolygon
	computed     bool
}

func (s *Set) Add(poly *intersect.Polygon) {
	s.polygons = append(s.polygons, poly)
	s.invalidate()
}

// RemoveLast undoes the most recently completed polygon, returning it, or nil
// if there are none.
func (s *Set) RemoveLast() *intersect.Polygon {
	if len(s.polygons) == 0 {
		return nil
	}
	poly := s.polygons[len(s.polygons)-1]
	s.polygons = s.polygons[:len(s.polygons)-1]
	s.invalidate()
	return poly
}

func (s *Set) Len() int {
	return len(s.polygons)
}

func (s *Set) Polygons() intersect.PolygonList {
	out := make(intersect.PolygonList, len(s.polygons))
	copy(out, s.polygons)
	return out
}

// Intersection computes (or returns the cached) common area of all completed
// polygons. An empty result means they share no area.
func (s *Set) Intersection() []*intersect.ResultPolygon {
	if !s.computed {
		s.intersection = s.polygons.Intersect()
		s.computed = true
	}
	return s.intersection
}

func (s *Set) invalidate() {
	s.intersection = nil
	s.computed = false
}

// The file format: polygons and intersection rings as lists of scene-unit
// float points. Hole rings of the intersection are written alongside the
// outer rings; their winding tells them apart on re-import.
type filePoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type fileFormat struct {
	Polygons     [][]filePoint `json:"polygons"`
	Intersection [][]filePoint `json:"intersection,omitempty"`
}

// Export writes the polygon set and its intersection as JSON.
func (s *Set) Export(w io.Writer) error {
	data := fileFormat{Polygons: [][]filePoint{}}
	for _, poly := range s.polygons {
		data.Polygons = append(data.Polygons, toFileRing(poly.Points))
	}
	for _, r := range s.Intersection() {
		data.Intersection = append(data.Intersection, toFileRing(r.Outer.Points))
		for _, hole := range r.Holes {
			data.Intersection = append(data.Intersection, toFileRing(hole.Points))
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return errors.Wrap(enc.Encode(data), "exporting polygons")
}

// Import reads a polygon set from JSON, validating every polygon. Any
// intersection rings in the file are checked for well-formedness but not kept;
// the intersection is recomputed on demand, since the polygons are the source
// of truth.
func Import(r io.Reader) (*Set, error) {
	var data fileFormat
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(err, "importing polygons")
	}

	set := &Set{}
	for i, ring := range data.Polygons {
		poly, err := intersect.Validate(fromFileRing(ring))
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i)
		}
		set.Add(poly)
	}
	for i, ring := range data.Intersection {
		points := fromFileRing(ring)
		if len(points) < 4 {
			return nil, errors.Errorf("intersection ring %d has only %d points", i, len(points))
		}
		for j, p := range points {
			q := points[intersect.CircularIndex(j+1, len(points))]
			if p.X != q.X && p.Y != q.Y {
				return nil, errors.Wrapf(intersect.ErrNotIsothetic, "intersection ring %d, edge %d", i, j)
			}
		}
	}
	return set, nil
}

func toFileRing(points []*intersect.Point) []filePoint {
	ring := make([]filePoint, len(points))
	for i, p := range points {
		x, y := ToScene(p)
		ring[i] = filePoint{X: x, Y: y}
	}
	return ring
}

func fromFileRing(ring []filePoint) []*intersect.Point {
	points := make([]*intersect.Point, len(ring))
	for i, fp := range ring {
		points[i] = FromScene(fp.X, fp.Y)
	}
	return points
}
