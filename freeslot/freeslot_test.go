package freeslot_test

import (
	"testing"

	"campusconnect/freeslot"
	"campusconnect/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clock(t *testing.T, s string) schedule.ClockTime {
	t.Helper()
	c, err := schedule.ParseClock(s)
	require.NoError(t, err)
	return c
}

func block(t *testing.T, day int, start, end string) schedule.Block {
	t.Helper()
	return schedule.Block{
		DayOfWeek: day,
		Start:     clock(t, start),
		End:       clock(t, end),
		Title:     "class",
	}
}

func window(t *testing.T, start, end string) freeslot.Window {
	t.Helper()
	return freeslot.Window{Start: clock(t, start), End: clock(t, end)}
}

func interval(t *testing.T, start, end string) freeslot.Interval {
	t.Helper()
	return freeslot.Interval{Start: clock(t, start), End: clock(t, end)}
}

func TestFreeWithin(t *testing.T) {
	t.Parallel()

	t.Run("no blocks yields whole window", func(t *testing.T) {
		t.Parallel()
		free := freeslot.FreeWithin(nil, window(t, "08:00", "18:00"))
		assert.Equal(t, []freeslot.Interval{interval(t, "08:00", "18:00")}, free)
	})

	t.Run("gaps before between and after", func(t *testing.T) {
		t.Parallel()
		blocks := []schedule.Block{
			block(t, 1, "09:00", "10:00"),
			block(t, 1, "12:00", "13:00"),
		}
		free := freeslot.FreeWithin(blocks, window(t, "08:00", "18:00"))
		assert.Equal(t, []freeslot.Interval{
			interval(t, "08:00", "09:00"),
			interval(t, "10:00", "12:00"),
			interval(t, "13:00", "18:00"),
		}, free)
	})

	t.Run("touching blocks merge into one busy span", func(t *testing.T) {
		t.Parallel()
		blocks := []schedule.Block{
			block(t, 1, "09:00", "10:00"),
			block(t, 1, "10:00", "11:00"),
		}
		free := freeslot.FreeWithin(blocks, window(t, "08:00", "12:00"))
		assert.Equal(t, []freeslot.Interval{
			interval(t, "08:00", "09:00"),
			interval(t, "11:00", "12:00"),
		}, free)
	})

	t.Run("overlapping unsorted blocks merge", func(t *testing.T) {
		t.Parallel()
		blocks := []schedule.Block{
			block(t, 1, "10:30", "12:00"),
			block(t, 1, "09:00", "11:00"),
		}
		free := freeslot.FreeWithin(blocks, window(t, "08:00", "14:00"))
		assert.Equal(t, []freeslot.Interval{
			interval(t, "08:00", "09:00"),
			interval(t, "12:00", "14:00"),
		}, free)
	})

	t.Run("blocks outside the window are ignored", func(t *testing.T) {
		t.Parallel()
		blocks := []schedule.Block{
			block(t, 1, "06:00", "07:00"),
			block(t, 1, "22:30", "23:00"),
		}
		free := freeslot.FreeWithin(blocks, window(t, "08:00", "18:00"))
		assert.Equal(t, []freeslot.Interval{interval(t, "08:00", "18:00")}, free)
	})

	t.Run("block straddling the window edge is clamped", func(t *testing.T) {
		t.Parallel()
		blocks := []schedule.Block{block(t, 1, "07:00", "09:00")}
		free := freeslot.FreeWithin(blocks, window(t, "08:00", "12:00"))
		assert.Equal(t, []freeslot.Interval{interval(t, "09:00", "12:00")}, free)
	})

	t.Run("fully busy day yields no free intervals", func(t *testing.T) {
		t.Parallel()
		blocks := []schedule.Block{block(t, 1, "08:00", "18:00")}
		free := freeslot.FreeWithin(blocks, window(t, "08:00", "18:00"))
		assert.Empty(t, free)
	})

	t.Run("complementarity over the window", func(t *testing.T) {
		t.Parallel()
		// Whatever the blocks, free minutes + busy minutes must tile
		// the window exactly, with no overlap and no gap.
		blocks := []schedule.Block{
			block(t, 1, "09:15", "10:45"),
			block(t, 1, "10:00", "11:30"),
			block(t, 1, "13:00", "13:30"),
			block(t, 1, "17:00", "19:00"),
		}
		w := window(t, "08:00", "18:00")
		free := freeslot.FreeWithin(blocks, w)

		covered := make(map[schedule.ClockTime]int)
		for _, iv := range free {
			for m := iv.Start; m < iv.End; m++ {
				covered[m]++
			}
		}
		busy := []freeslot.Interval{
			interval(t, "09:15", "11:30"),
			interval(t, "13:00", "13:30"),
			interval(t, "17:00", "18:00"),
		}
		for _, iv := range busy {
			for m := iv.Start; m < iv.End; m++ {
				covered[m]++
			}
		}
		for m := w.Start; m < w.End; m++ {
			assert.Equal(t, 1, covered[m], "minute %s", m)
		}
		assert.Len(t, covered, int(w.End-w.Start))
	})

	t.Run("idempotence on an already free day", func(t *testing.T) {
		t.Parallel()
		// Feeding the derived free intervals back in as busy blocks of
		// a second user and intersecting must return them unchanged.
		w := window(t, "08:00", "18:00")
		blocks := []schedule.Block{
			block(t, 1, "09:00", "10:00"),
			block(t, 1, "14:00", "15:30"),
		}
		free := freeslot.FreeWithin(blocks, w)
		again := freeslot.Intersect(free, free)
		assert.Equal(t, free, again)
	})
}

func TestIntersect(t *testing.T) {
	t.Parallel()

	a := []freeslot.Interval{}
	b := []freeslot.Interval{}

	t.Run("empty inputs", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, freeslot.Intersect(a, b))
	})

	t.Run("partial overlaps", func(t *testing.T) {
		t.Parallel()
		x := []freeslot.Interval{interval(t, "08:00", "10:00"), interval(t, "12:00", "14:00")}
		y := []freeslot.Interval{interval(t, "09:00", "13:00")}
		assert.Equal(t, []freeslot.Interval{
			interval(t, "09:00", "10:00"),
			interval(t, "12:00", "13:00"),
		}, freeslot.Intersect(x, y))
	})

	t.Run("boundary exclusion: touching intervals produce nothing", func(t *testing.T) {
		t.Parallel()
		x := []freeslot.Interval{interval(t, "08:00", "10:00")}
		y := []freeslot.Interval{interval(t, "10:00", "12:00")}
		assert.Empty(t, freeslot.Intersect(x, y))
	})

	t.Run("commutativity", func(t *testing.T) {
		t.Parallel()
		x := []freeslot.Interval{interval(t, "08:00", "09:30"), interval(t, "11:00", "15:00")}
		y := []freeslot.Interval{interval(t, "09:00", "12:00"), interval(t, "14:00", "16:00")}
		assert.Equal(t, freeslot.Intersect(x, y), freeslot.Intersect(y, x))
	})

	t.Run("associativity", func(t *testing.T) {
		t.Parallel()
		x := []freeslot.Interval{interval(t, "08:00", "12:00")}
		y := []freeslot.Interval{interval(t, "09:00", "14:00")}
		z := []freeslot.Interval{interval(t, "10:00", "11:00"), interval(t, "11:30", "16:00")}
		left := freeslot.Intersect(freeslot.Intersect(x, y), z)
		right := freeslot.Intersect(x, freeslot.Intersect(y, z))
		assert.Equal(t, left, right)
	})

	t.Run("monotonic shrinkage", func(t *testing.T) {
		t.Parallel()
		x := []freeslot.Interval{interval(t, "08:00", "12:00"), interval(t, "13:00", "18:00")}
		y := []freeslot.Interval{interval(t, "09:00", "14:00")}
		z := []freeslot.Interval{interval(t, "10:00", "13:30")}

		two := freeslot.Intersect(x, y)
		three := freeslot.Intersect(two, z)

		// Every minute free for three users must be free for two.
		freeForTwo := make(map[schedule.ClockTime]bool)
		for _, iv := range two {
			for m := iv.Start; m < iv.End; m++ {
				freeForTwo[m] = true
			}
		}
		for _, iv := range three {
			for m := iv.Start; m < iv.End; m++ {
				assert.True(t, freeForTwo[m], "minute %s free for three but not two", m)
			}
		}
	})

	t.Run("result stays sorted", func(t *testing.T) {
		t.Parallel()
		x := []freeslot.Interval{
			interval(t, "08:00", "09:00"),
			interval(t, "10:00", "11:00"),
			interval(t, "12:00", "13:00"),
		}
		y := []freeslot.Interval{interval(t, "08:30", "12:30")}
		got := freeslot.Intersect(x, y)
		for i := 1; i < len(got); i++ {
			assert.Less(t, got[i-1].End, got[i].Start)
		}
	})
}
