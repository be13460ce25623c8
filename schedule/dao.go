package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"campusconnect/user"

	"github.com/google/uuid"
)

func (a *Accessor) CreateBlock(ctx context.Context, block Block, now time.Time) (Block, error) {
	if err := block.Validate(); err != nil {
		return Block{}, err
	}
	if err := a.ownerExists(ctx, block.UserID); err != nil {
		return Block{}, err
	}

	id := uuid.New()

	query := `INSERT INTO schedule_blocks (id, user_id, day_of_week, start_minutes, end_minutes, title, venue, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err := a.db.ExecContext(ctx, query, id, block.UserID, block.DayOfWeek, block.Start, block.End, block.Title, block.Venue, now); err != nil {
		return Block{}, fmt.Errorf("exec context: %w", err)
	}

	block.ID = id
	block.CreatedAt = now
	return block, nil
}

// BlocksByUser returns every schedule block owned by the given user,
// ordered by day of week then start time. A user with no blocks yields
// an empty result, not an error; a nonexistent user is an error.
func (a *Accessor) BlocksByUser(ctx context.Context, userID uuid.UUID) ([]Block, error) {
	if err := a.ownerExists(ctx, userID); err != nil {
		return nil, err
	}

	query := `SELECT id, user_id, day_of_week, start_minutes, end_minutes, title, venue, created_at FROM schedule_blocks WHERE user_id = $1 ORDER BY day_of_week, start_minutes`
	rows, err := a.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query context: %w", err)
	}
	defer rows.Close()

	var blocks []Block
	for rows.Next() {
		var b Block
		if err := rows.Scan(&b.ID, &b.UserID, &b.DayOfWeek, &b.Start, &b.End, &b.Title, &b.Venue, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		blocks = append(blocks, b)
	}

	return blocks, rows.Err()
}

// UpdateBlock rewrites a block in place. The user ID scopes the update
// so one user can never touch another's schedule.
func (a *Accessor) UpdateBlock(ctx context.Context, block Block) (Block, error) {
	if err := block.Validate(); err != nil {
		return Block{}, err
	}

	query := `UPDATE schedule_blocks SET day_of_week = $1, start_minutes = $2, end_minutes = $3, title = $4, venue = $5 WHERE id = $6 AND user_id = $7`
	res, err := a.db.ExecContext(ctx, query, block.DayOfWeek, block.Start, block.End, block.Title, block.Venue, block.ID, block.UserID)
	if err != nil {
		return Block{}, fmt.Errorf("exec context: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return Block{}, fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return Block{}, ErrBlockNotFound
	}

	return block, nil
}

func (a *Accessor) DeleteBlock(ctx context.Context, blockID, userID uuid.UUID) error {
	query := `DELETE FROM schedule_blocks WHERE id = $1 AND user_id = $2`
	res, err := a.db.ExecContext(ctx, query, blockID, userID)
	if err != nil {
		return fmt.Errorf("exec context: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrBlockNotFound
	}
	return nil
}

func (a *Accessor) ownerExists(ctx context.Context, userID uuid.UUID) error {
	var one int
	row := a.db.QueryRowContext(ctx, `SELECT 1 FROM users WHERE id = $1`, userID)
	if err := row.Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user.ErrNotFound
		}
		return fmt.Errorf("scan: %w", err)
	}
	return nil
}
