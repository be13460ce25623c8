package freeslot

import (
	"sort"

	"campusconnect/schedule"
)

// mergeBusy collapses one user's blocks for a single day into a sorted
// sequence of non-overlapping busy spans. Touching blocks merge too:
// back-to-back classes count as continuously busy.
func mergeBusy(blocks []schedule.Block) []Interval {
	if len(blocks) == 0 {
		return nil
	}

	spans := make([]Interval, len(blocks))
	for i, b := range blocks {
		spans[i] = Interval{Start: b.Start, End: b.End}
	}
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].End < spans[j].End
	})

	merged := spans[:1]
	for _, s := range spans[1:] {
		last := &merged[len(merged)-1]
		if s.Start <= last.End {
			if s.End > last.End {
				last.End = s.End
			}
			continue
		}
		merged = append(merged, s)
	}
	return merged
}

// FreeWithin derives one user's free intervals for a single day inside
// the operating window w. The result is sorted, disjoint, and together
// with the merged busy spans covers the window exactly. A user with no
// blocks is free for the whole window.
func FreeWithin(blocks []schedule.Block, w Window) []Interval {
	var free []Interval
	cursor := w.Start

	for _, busy := range mergeBusy(blocks) {
		if busy.End <= w.Start || busy.Start >= w.End {
			continue
		}
		if busy.Start > cursor {
			free = append(free, Interval{Start: cursor, End: busy.Start})
		}
		if busy.End > cursor {
			cursor = busy.End
		}
	}
	if cursor < w.End {
		free = append(free, Interval{Start: cursor, End: w.End})
	}
	return free
}
