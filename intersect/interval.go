package intersect

// Maintenance of the "currently inside" y-spans for one polygon, and the
// composite intersection across polygons. All intervals are half-open [Lo,
// Hi), which is the design choice that makes boundary-touching input behave:
// two polygons that merely share an edge produce spans that intersect in
// nothing, not in a zero-height sliver getting double counted.
//
// Sets are treated as immutable values; operations return a new set. The
// slices are tiny (bounded by a user-drawn polygon's notch count), so we
// don't bother reusing storage.

// Insert adds [lo, hi) to the set, merging any intervals it overlaps or
// touches. Touching intervals merge because [0, 2) followed by [2, 5) really
// is the single inside span [0, 5).
func (s IntervalSet) Insert(lo, hi int64) IntervalSet {
	if lo >= hi {
		fatalf("inserting empty interval [%d, %d)", lo, hi)
	}
	out := make(IntervalSet, 0, len(s)+1)
	i := 0
	for i < len(s) && s[i].Hi < lo {
		out = append(out, s[i])
		i++
	}
	for i < len(s) && s[i].Lo <= hi {
		lo = minInt64(lo, s[i].Lo)
		hi = maxInt64(hi, s[i].Hi)
		i++
	}
	out = append(out, Interval{lo, hi})
	out = append(out, s[i:]...)
	return out
}

// Remove subtracts [lo, hi) from the set.
func (s IntervalSet) Remove(lo, hi int64) IntervalSet {
	if lo >= hi {
		fatalf("removing empty interval [%d, %d)", lo, hi)
	}
	out := make(IntervalSet, 0, len(s)+1)
	for _, iv := range s {
		if iv.Hi <= lo || iv.Lo >= hi {
			out = append(out, iv)
			continue
		}
		if iv.Lo < lo {
			out = append(out, Interval{iv.Lo, lo})
		}
		if iv.Hi > hi {
			out = append(out, Interval{hi, iv.Hi})
		}
	}
	return out
}

// Intersect computes the common spans of two sets by a linear merge.
func (s IntervalSet) Intersect(other IntervalSet) IntervalSet {
	var out IntervalSet
	i, j := 0, 0
	for i < len(s) && j < len(other) {
		lo := maxInt64(s[i].Lo, other[j].Lo)
		hi := minInt64(s[i].Hi, other[j].Hi)
		if lo < hi {
			out = append(out, Interval{lo, hi})
		}
		if s[i].Hi < other[j].Hi {
			i++
		} else {
			j++
		}
	}
	return out
}

// Subtract computes s minus other.
func (s IntervalSet) Subtract(other IntervalSet) IntervalSet {
	var out IntervalSet
	j := 0
	for _, iv := range s {
		lo := iv.Lo
		for j < len(other) && other[j].Hi <= lo {
			j++
		}
		k := j
		for k < len(other) && other[k].Lo < iv.Hi {
			if other[k].Lo > lo {
				out = append(out, Interval{lo, other[k].Lo})
			}
			lo = maxInt64(lo, other[k].Hi)
			k++
		}
		if lo < iv.Hi {
			out = append(out, Interval{lo, iv.Hi})
		}
	}
	return out
}

// Diff splits the change between two composite states into the spans that
// were inside only before (removed) and only after (added). The sweep turns
// removed spans into upward output edges and added spans into downward ones.
func (s IntervalSet) Diff(next IntervalSet) (removed, added IntervalSet) {
	return s.Subtract(next), next.Subtract(s)
}

func (s IntervalSet) Empty() bool {
	return len(s) == 0
}
