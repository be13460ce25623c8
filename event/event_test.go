package event_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"campusconnect/event"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "description", "start_time", "end_time", "venue",
		"organizer_id", "tags", "max_attendees", "created_at", "attendee_count",
	})
}

func TestEvent(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	a := event.NewAccessor(db)

	organizerID := uuid.New()
	now := time.Now().UTC()
	start := now.Add(48 * time.Hour)
	end := start.Add(2 * time.Hour)

	eventData := event.Event{
		Title:        "Tech Fest Kickoff",
		Description:  "Opening ceremony",
		StartTime:    start,
		EndTime:      &end,
		Venue:        "Auditorium",
		OrganizerID:  organizerID,
		Tags:         []string{"tech", "fest"},
		MaxAttendees: 2,
	}

	t.Run("create event", func(t *testing.T) {
		insertQuery := `INSERT INTO events (id, title, description, start_time, end_time, venue, organizer_id, tags, max_attendees, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
		dbMock.ExpectExec(regexp.QuoteMeta(insertQuery)).
			WithArgs(sqlmock.AnyArg(), eventData.Title, eventData.Description, eventData.StartTime, eventData.EndTime, eventData.Venue, organizerID, event.TagsColumn(eventData.Tags), eventData.MaxAttendees, now).
			WillReturnResult(sqlmock.NewResult(1, 1))

		created, err := a.CreateEvent(context.Background(), eventData, now)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, created.ID)
		assert.Equal(t, now, created.CreatedAt)

		require.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("create event without a title", func(t *testing.T) {
		bad := eventData
		bad.Title = ""
		_, err := a.CreateEvent(context.Background(), bad, now)
		require.Error(t, err)
	})

	t.Run("get event", func(t *testing.T) {
		eventID := uuid.New()
		dbMock.ExpectQuery(`SELECT (.+) FROM events e WHERE e\.id = \$1`).
			WithArgs(eventID).
			WillReturnRows(eventRows().AddRow(
				eventID, eventData.Title, eventData.Description, start, end, eventData.Venue,
				organizerID, []byte(`["tech","fest"]`), 2, now, 1,
			))

		got, err := a.GetEvent(context.Background(), eventID)
		require.NoError(t, err)
		assert.Equal(t, eventData.Title, got.Title)
		assert.Equal(t, []string{"tech", "fest"}, got.Tags)
		assert.Equal(t, 1, got.AttendeeCount)

		require.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("get missing event", func(t *testing.T) {
		dbMock.ExpectQuery(`SELECT (.+) FROM events e WHERE e\.id = \$1`).
			WillReturnRows(eventRows())

		_, err := a.GetEvent(context.Background(), uuid.New())
		require.ErrorIs(t, err, event.ErrNotFound)
	})

	t.Run("rsvp at capacity", func(t *testing.T) {
		eventID := uuid.New()
		dbMock.ExpectQuery(`SELECT (.+) FROM events e WHERE e\.id = \$1`).
			WithArgs(eventID).
			WillReturnRows(eventRows().AddRow(
				eventID, eventData.Title, eventData.Description, start, end, eventData.Venue,
				organizerID, []byte(`[]`), 2, now, 2,
			))

		err := a.RSVP(context.Background(), eventID, uuid.New(), now)
		require.ErrorIs(t, err, event.ErrEventFull)
	})

	t.Run("rsvp with room to spare", func(t *testing.T) {
		eventID := uuid.New()
		attendee := uuid.New()
		dbMock.ExpectQuery(`SELECT (.+) FROM events e WHERE e\.id = \$1`).
			WithArgs(eventID).
			WillReturnRows(eventRows().AddRow(
				eventID, eventData.Title, eventData.Description, start, end, eventData.Venue,
				organizerID, []byte(`[]`), 2, now, 1,
			))
		dbMock.ExpectExec(regexp.QuoteMeta(`INSERT INTO event_rsvps (event_id, user_id, created_at) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`)).
			WithArgs(eventID, attendee, now).
			WillReturnResult(sqlmock.NewResult(1, 1))

		require.NoError(t, a.RSVP(context.Background(), eventID, attendee, now))
		require.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("update by a different user is forbidden", func(t *testing.T) {
		eventID := uuid.New()
		dbMock.ExpectQuery(`SELECT (.+) FROM events e WHERE e\.id = \$1`).
			WithArgs(eventID).
			WillReturnRows(eventRows().AddRow(
				eventID, eventData.Title, eventData.Description, start, end, eventData.Venue,
				organizerID, []byte(`[]`), 2, now, 0,
			))

		edited := eventData
		edited.ID = eventID
		_, err := a.UpdateEvent(context.Background(), edited, uuid.New())
		require.ErrorIs(t, err, event.ErrNotOwner)
	})
}
