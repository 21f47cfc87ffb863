package intersect

import "sort"

// The sweep-line intersection engine. A vertical line moves left to right
// across every polygon's vertical edges. Between two consecutive event x
// positions the picture cannot change, so the composite inside spans computed
// after one event are final for the whole open slab up to the next one.
// Whenever the composite spans change at an event x, the boundary of the
// intersection has vertical edges there, and those are the entire output;
// the horizontal parts of the boundary are implied and get synthesized during
// reconstruction.

// Sweep computes the unordered set of vertical boundary edges of the common
// intersection of all polygons. It never fails on validated input; feeding it
// a polygon that didn't come through Validate throws
// ErrPrecursorNotValidated, which is a programming error in the caller, not a
// user-facing condition.
func Sweep(polygons PolygonList) []*OutputEdge {
	for i, poly := range polygons {
		if !poly.validated {
			throw(ErrPrecursorNotValidated, "polygon %d", i)
		}
	}
	if len(polygons) == 0 {
		return nil
	}

	var events []VerticalEdge
	for i, poly := range polygons {
		verticals, _ := poly.Classify(i)
		events = append(events, verticals...)
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].X < events[j].X
	})

	perPoly := make([]IntervalSet, len(polygons))
	var prev IntervalSet
	var out []*OutputEdge

	for start := 0; start < len(events); {
		x := events[start].X
		end := start
		for end < len(events) && events[end].X == x {
			end++
		}

		// Apply closing edges before opening edges. At a single x one polygon
		// can close a span and open an overlapping one (think of a notch), and
		// removing from the merged set after inserting would eat part of the
		// new span.
		for _, e := range events[start:end] {
			if !e.Opens {
				perPoly[e.Poly] = perPoly[e.Poly].Remove(e.Lo, e.Hi)
			}
		}
		for _, e := range events[start:end] {
			if e.Opens {
				perPoly[e.Poly] = perPoly[e.Poly].Insert(e.Lo, e.Hi)
			}
		}

		cur := perPoly[0]
		for _, s := range perPoly[1:] {
			if cur.Empty() {
				break
			}
			cur = cur.Intersect(s)
		}

		removed, added := prev.Diff(cur)
		for _, iv := range removed {
			out = append(out, &OutputEdge{X: x, Lo: iv.Lo, Hi: iv.Hi, Up: true})
		}
		for _, iv := range added {
			out = append(out, &OutputEdge{X: x, Lo: iv.Lo, Hi: iv.Hi, Up: false})
		}

		prev = cur
		start = end
	}

	// Every polygon's last event closes its last span, so the composite must
	// come back to empty.
	if !prev.Empty() {
		fatalf("composite spans still open after final event: %v", prev)
	}
	return out
}
