package event

import "database/sql"

// Accessor is the DB layer entrypoint for event and RSVP queries.
type Accessor struct {
	db *sql.DB
}

func NewAccessor(db *sql.DB) *Accessor {
	return &Accessor{db: db}
}
