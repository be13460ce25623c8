package freeslot

import (
	"errors"
	"fmt"

	"campusconnect/schedule"

	"github.com/google/uuid"
)

var (
	// ErrEmptyQuery is returned when a free-slot query names no users.
	ErrEmptyQuery = errors.New("free-slot query needs at least one user")
	// ErrInvalidDay is returned for a day-of-week filter outside 0-6.
	ErrInvalidDay = errors.New("day of week out of range")
)

// Interval is a half-open span of time [Start, End) within a single day.
type Interval struct {
	Start schedule.ClockTime
	End   schedule.ClockTime
}

// Window is the bounded portion of a day considered for free-slot
// computation, e.g. campus hours 07:00-22:00.
type Window Interval

// FullDay spans midnight to midnight.
var FullDay = Window{Start: 0, End: schedule.EndOfDay}

func (w Window) Validate() error {
	if w.Start < 0 || w.End > schedule.EndOfDay || w.Start >= w.End {
		return fmt.Errorf("invalid operating window %s-%s", w.Start, w.End)
	}
	return nil
}

// Slot is a span of time, on one day of week, that is free for every
// queried user simultaneously. Derived on every query, never persisted.
type Slot struct {
	DayOfWeek int                `json:"day_of_week"`
	Start     schedule.ClockTime `json:"start_time"`
	End       schedule.ClockTime `json:"end_time"`
}

// Query asks for the common free slots of a group of users, optionally
// restricted to a single day of week.
type Query struct {
	UserIDs   []uuid.UUID `json:"user_ids"`
	DayOfWeek *int        `json:"day_of_week"`
}

func (q *Query) Validate() error {
	if len(q.UserIDs) == 0 {
		return ErrEmptyQuery
	}
	if q.DayOfWeek != nil && (*q.DayOfWeek < 0 || *q.DayOfWeek > 6) {
		return fmt.Errorf("%w: %d", ErrInvalidDay, *q.DayOfWeek)
	}
	return nil
}
