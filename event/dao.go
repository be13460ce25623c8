package event

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

func (a *Accessor) CreateEvent(ctx context.Context, event Event, now time.Time) (*Event, error) {
	if err := event.Validate(); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	id := uuid.New()

	query := `INSERT INTO events (id, title, description, start_time, end_time, venue, organizer_id, tags, max_attendees, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	if _, err := a.db.ExecContext(ctx, query, id, event.Title, event.Description, event.StartTime, event.EndTime, event.Venue, event.OrganizerID, TagsColumn(event.Tags), event.MaxAttendees, now); err != nil {
		return nil, fmt.Errorf("exec context: %w", err)
	}

	event.ID = id
	event.CreatedAt = now
	return &event, nil
}

const eventColumns = `e.id, e.title, e.description, e.start_time, e.end_time, e.venue, e.organizer_id, e.tags, e.max_attendees, e.created_at, (SELECT COUNT(*) FROM event_rsvps r WHERE r.event_id = e.id) AS attendee_count`

func scanEvent(row interface{ Scan(...any) error }) (*Event, error) {
	var event Event
	var tags TagsColumn
	if err := row.Scan(&event.ID, &event.Title, &event.Description, &event.StartTime, &event.EndTime, &event.Venue, &event.OrganizerID, &tags, &event.MaxAttendees, &event.CreatedAt, &event.AttendeeCount); err != nil {
		return nil, err
	}
	event.Tags = []string(tags)
	return &event, nil
}

func (a *Accessor) GetEvent(ctx context.Context, id uuid.UUID) (*Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events e WHERE e.id = $1`
	event, err := scanEvent(a.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan: %w", err)
	}
	return event, nil
}

func (a *Accessor) ListEvents(ctx context.Context, filter Filter, now time.Time) ([]Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events e WHERE 1=1`
	var args []any

	if filter.Upcoming {
		args = append(args, now)
		query += fmt.Sprintf(" AND e.start_time >= $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND (e.title ILIKE $%d OR e.description ILIKE $%d)", len(args), len(args))
	}
	if filter.Tag != "" {
		args = append(args, fmt.Sprintf(`[%q]`, filter.Tag))
		query += fmt.Sprintf(" AND e.tags @> $%d::jsonb", len(args))
	}

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY e.start_time ASC LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := a.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query context: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		events = append(events, *event)
	}
	return events, rows.Err()
}

// UpdateEvent rewrites the mutable fields. Only the organizer may edit;
// organizer_id and created_at never change.
func (a *Accessor) UpdateEvent(ctx context.Context, event Event, editorID uuid.UUID) (*Event, error) {
	current, err := a.GetEvent(ctx, event.ID)
	if err != nil {
		return nil, err
	}
	if current.OrganizerID != editorID {
		return nil, ErrNotOwner
	}

	event.OrganizerID = current.OrganizerID
	if err := event.Validate(); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	query := `UPDATE events SET title = $1, description = $2, start_time = $3, end_time = $4, venue = $5, tags = $6, max_attendees = $7 WHERE id = $8`
	if _, err := a.db.ExecContext(ctx, query, event.Title, event.Description, event.StartTime, event.EndTime, event.Venue, TagsColumn(event.Tags), event.MaxAttendees, event.ID); err != nil {
		return nil, fmt.Errorf("exec context: %w", err)
	}

	return a.GetEvent(ctx, event.ID)
}

func (a *Accessor) DeleteEvent(ctx context.Context, id, editorID uuid.UUID) error {
	current, err := a.GetEvent(ctx, id)
	if err != nil {
		return err
	}
	if current.OrganizerID != editorID {
		return ErrNotOwner
	}

	if _, err := a.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id); err != nil {
		return fmt.Errorf("exec context: %w", err)
	}
	return nil
}

// RSVP registers a user for an event, enforcing capacity when the
// event has one. Re-registering is a no-op.
func (a *Accessor) RSVP(ctx context.Context, eventID, userID uuid.UUID, now time.Time) error {
	event, err := a.GetEvent(ctx, eventID)
	if err != nil {
		return err
	}
	if event.MaxAttendees > 0 && event.AttendeeCount >= event.MaxAttendees {
		return ErrEventFull
	}

	query := `INSERT INTO event_rsvps (event_id, user_id, created_at) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`
	if _, err := a.db.ExecContext(ctx, query, eventID, userID, now); err != nil {
		return fmt.Errorf("exec context: %w", err)
	}
	return nil
}

func (a *Accessor) CancelRSVP(ctx context.Context, eventID, userID uuid.UUID) error {
	if _, err := a.db.ExecContext(ctx, `DELETE FROM event_rsvps WHERE event_id = $1 AND user_id = $2`, eventID, userID); err != nil {
		return fmt.Errorf("exec context: %w", err)
	}
	return nil
}
