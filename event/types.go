package event

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("event not found")
	ErrEventFull = errors.New("event is at capacity")
	ErrNotOwner  = errors.New("only the organizer can modify this event")
)

type TagsColumn []string

// Value implements driver.Valuer for INSERT/UPDATE.
func (t TagsColumn) Value() (driver.Value, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(t)
}

// Scan implements sql.Scanner for SELECT.
func (t *TagsColumn) Scan(value any) error {
	if value == nil {
		*t = nil
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("not a []byte: %T", value)
	}
	return json.Unmarshal(b, t)
}

type Event struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	StartTime     time.Time  `json:"start_time"`
	EndTime       *time.Time `json:"end_time,omitempty"`
	Venue         string     `json:"venue,omitempty"`
	OrganizerID   uuid.UUID  `json:"organizer_id"`
	Tags          []string   `json:"tags,omitempty"`
	MaxAttendees  int        `json:"max_attendees,omitempty"`
	AttendeeCount int        `json:"attendee_count"`
	CreatedAt     time.Time  `json:"created_at"`
}

func (e *Event) Validate() error {
	if e.Title == "" {
		return errors.New("title is required")
	}
	if e.StartTime.IsZero() {
		return errors.New("start time is required")
	}
	if e.EndTime != nil && !e.EndTime.After(e.StartTime) {
		return errors.New("end time must be after start time")
	}
	if e.OrganizerID == uuid.Nil {
		return errors.New("organizer ID is required")
	}
	if e.MaxAttendees < 0 {
		return errors.New("max attendees must not be negative")
	}
	return nil
}

// Filter narrows an event listing.
type Filter struct {
	Upcoming bool
	Search   string
	Tag      string
	Limit    int
	Offset   int
}
