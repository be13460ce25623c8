package freeslot

import (
	"context"

	"campusconnect/schedule"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// BlockSource provides each queried user's schedule blocks. It must
// fail for a user that does not exist rather than return nothing;
// silently dropping a participant would compute free slots for a
// different group than requested.
type BlockSource interface {
	BlocksByUser(ctx context.Context, userID uuid.UUID) ([]schedule.Block, error)
}

// Finder answers free-slot queries. It holds no per-query state and is
// safe for concurrent use.
type Finder struct {
	source BlockSource
	window Window
}

func NewFinder(source BlockSource, window Window) *Finder {
	return &Finder{source: source, window: window}
}

// Find computes the time windows during which all queried users are
// simultaneously free, ordered by day of week then start time. An
// empty result means no common slot exists; it is not an error.
func (f *Finder) Find(ctx context.Context, query Query) ([]Slot, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	// Fetch every user's blocks up front. The reads are independent,
	// but all of them must complete before any day is intersected: a
	// partial read set would produce answers for the wrong group.
	perUser := make([][]schedule.Block, len(query.UserIDs))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range query.UserIDs {
		i, id := i, id
		g.Go(func() error {
			blocks, err := f.source.BlocksByUser(gctx, id)
			if err != nil {
				return err
			}
			perUser[i] = blocks
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	days := []int{0, 1, 2, 3, 4, 5, 6}
	if query.DayOfWeek != nil {
		days = []int{*query.DayOfWeek}
	}

	slots := []Slot{}
	for _, day := range days {
		sets := make([][]Interval, len(perUser))
		for i, blocks := range perUser {
			sets[i] = FreeWithin(blocksForDay(blocks, day), f.window)
		}
		for _, iv := range intersectAll(sets) {
			slots = append(slots, Slot{DayOfWeek: day, Start: iv.Start, End: iv.End})
		}
	}
	return slots, nil
}

func blocksForDay(blocks []schedule.Block, day int) []schedule.Block {
	var out []schedule.Block
	for _, b := range blocks {
		if b.DayOfWeek == day {
			out = append(out, b)
		}
	}
	return out
}
