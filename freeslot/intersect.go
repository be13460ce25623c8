package freeslot

// Intersect computes the spans present in both sorted disjoint interval
// sequences via a two-pointer sweep. Overlaps of zero length are
// dropped: intervals that only touch are not a usable free slot.
func Intersect(a, b []Interval) []Interval {
	var out []Interval
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		start := a[i].Start
		if b[j].Start > start {
			start = b[j].Start
		}
		end := a[i].End
		if b[j].End < end {
			end = b[j].End
		}
		if start < end {
			out = append(out, Interval{Start: start, End: end})
		}
		// Advance whichever interval ends first.
		if a[i].End <= b[j].End {
			i++
		} else {
			j++
		}
	}
	return out
}

// intersectAll reduces the per-user free sequences for one day down to
// the spans free for everyone, short-circuiting once nothing remains.
func intersectAll(sets [][]Interval) []Interval {
	if len(sets) == 0 {
		return nil
	}
	common := sets[0]
	for _, s := range sets[1:] {
		if len(common) == 0 {
			return nil
		}
		common = Intersect(common, s)
	}
	return common
}
