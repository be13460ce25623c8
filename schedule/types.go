package schedule

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrInvalidBlock wraps every block validation failure.
	ErrInvalidBlock = errors.New("invalid schedule block")
	// ErrBlockNotFound is returned when a block does not exist or is
	// owned by a different user.
	ErrBlockNotFound = errors.New("schedule block not found")
)

// ClockTime is a time of day with minute resolution, stored as minutes
// since midnight. The valid range is 00:00 through 24:00 inclusive, so
// an interval end may land exactly on midnight.
type ClockTime int

const EndOfDay ClockTime = 24 * 60

// ParseClock parses a 24-hour "HH:MM" string.
func ParseClock(s string) (ClockTime, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%02d:%02d", &h, &m); err != nil {
		return 0, fmt.Errorf("parse clock time %q: %w", s, err)
	}
	c := ClockTime(h*60 + m)
	if h < 0 || m < 0 || m > 59 || c > EndOfDay {
		return 0, fmt.Errorf("clock time %q out of range", s)
	}
	return c, nil
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

func (c ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *ClockTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseClock(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Value implements driver.Valuer for INSERT/UPDATE.
func (c ClockTime) Value() (driver.Value, error) {
	return int64(c), nil
}

// Scan implements sql.Scanner for SELECT.
func (c *ClockTime) Scan(value any) error {
	n, ok := value.(int64)
	if !ok {
		return fmt.Errorf("not an int64: %T", value)
	}
	*c = ClockTime(n)
	return nil
}

// Block is a single recurring weekly commitment (class, meeting) for
// one user on one day of week. Blocks never span midnight.
type Block struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	DayOfWeek int       `json:"day_of_week"` // 0 = Sunday, 6 = Saturday
	Start     ClockTime `json:"start_time"`
	End       ClockTime `json:"end_time"`
	Title     string    `json:"title"`
	Venue     string    `json:"venue,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (b *Block) Validate() error {
	if b.DayOfWeek < 0 || b.DayOfWeek > 6 {
		return fmt.Errorf("%w: day of week %d out of range", ErrInvalidBlock, b.DayOfWeek)
	}
	if b.Start < 0 || b.End > EndOfDay {
		return fmt.Errorf("%w: times must lie within a single day", ErrInvalidBlock)
	}
	if b.Start >= b.End {
		return fmt.Errorf("%w: start %s must be before end %s", ErrInvalidBlock, b.Start, b.End)
	}
	if b.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidBlock)
	}
	return nil
}
