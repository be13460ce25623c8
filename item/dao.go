package item

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

func (a *Accessor) CreateItem(ctx context.Context, item Item, now time.Time) (Item, error) {
	item.Status = StatusActive
	if err := item.Validate(); err != nil {
		return Item{}, fmt.Errorf("validate: %w", err)
	}

	id := uuid.New()

	query := `INSERT INTO items (id, title, description, category, location, status, finder_id, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err := a.db.ExecContext(ctx, query, id, item.Title, item.Description, item.Category, item.Location, item.Status, item.FinderID, now); err != nil {
		return Item{}, fmt.Errorf("exec context: %w", err)
	}

	item.ID = id
	item.CreatedAt = now
	return item, nil
}

func (a *Accessor) GetItem(ctx context.Context, id uuid.UUID) (Item, error) {
	query := `SELECT id, title, description, category, location, status, finder_id, claimant_id, created_at FROM items WHERE id = $1`
	row := a.db.QueryRowContext(ctx, query, id)

	var item Item
	if err := row.Scan(&item.ID, &item.Title, &item.Description, &item.Category, &item.Location, &item.Status, &item.FinderID, &item.ClaimantID, &item.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Item{}, ErrNotFound
		}
		return Item{}, fmt.Errorf("scan: %w", err)
	}
	return item, nil
}

func (a *Accessor) ListItems(ctx context.Context, filter Filter) ([]Item, error) {
	query := `SELECT id, title, description, category, location, status, finder_id, claimant_id, created_at FROM items WHERE 1=1`
	var args []any

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND (title ILIKE $%d OR description ILIKE $%d)", len(args), len(args))
	}

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := a.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query context: %w", err)
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var item Item
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.Category, &item.Location, &item.Status, &item.FinderID, &item.ClaimantID, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// UpdateItem lets the finder edit the posting.
func (a *Accessor) UpdateItem(ctx context.Context, item Item, editorID uuid.UUID) (Item, error) {
	current, err := a.GetItem(ctx, item.ID)
	if err != nil {
		return Item{}, err
	}
	if current.FinderID != editorID {
		return Item{}, ErrNotOwner
	}

	if item.Title != "" {
		current.Title = item.Title
	}
	if item.Description != "" {
		current.Description = item.Description
	}
	if item.Category != "" {
		current.Category = item.Category
	}
	if item.Location != "" {
		current.Location = item.Location
	}
	if item.Status != "" {
		current.Status = item.Status
	}
	if err := current.Validate(); err != nil {
		return Item{}, fmt.Errorf("validate: %w", err)
	}

	query := `UPDATE items SET title = $1, description = $2, category = $3, location = $4, status = $5 WHERE id = $6`
	if _, err := a.db.ExecContext(ctx, query, current.Title, current.Description, current.Category, current.Location, current.Status, current.ID); err != nil {
		return Item{}, fmt.Errorf("exec context: %w", err)
	}
	return current, nil
}

func (a *Accessor) DeleteItem(ctx context.Context, id, editorID uuid.UUID) error {
	current, err := a.GetItem(ctx, id)
	if err != nil {
		return err
	}
	if current.FinderID != editorID {
		return ErrNotOwner
	}

	if _, err := a.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id); err != nil {
		return fmt.Errorf("exec context: %w", err)
	}
	return nil
}

// ClaimItem records a pending ownership claim against an active item.
func (a *Accessor) ClaimItem(ctx context.Context, itemID, userID uuid.UUID, message string, now time.Time) (Claim, error) {
	current, err := a.GetItem(ctx, itemID)
	if err != nil {
		return Claim{}, err
	}
	if current.Status != StatusActive {
		return Claim{}, fmt.Errorf("item is %s, not claimable", current.Status)
	}

	claim := Claim{
		ID:        uuid.New(),
		ItemID:    itemID,
		UserID:    userID,
		Message:   message,
		Status:    ClaimPending,
		CreatedAt: now,
	}

	query := `INSERT INTO item_claims (id, item_id, user_id, message, status, created_at) VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := a.db.ExecContext(ctx, query, claim.ID, claim.ItemID, claim.UserID, claim.Message, claim.Status, now); err != nil {
		return Claim{}, fmt.Errorf("exec context: %w", err)
	}
	return claim, nil
}

// ResolveClaim approves or rejects a pending claim. Only the finder may
// resolve; approval marks the item claimed by the claimant.
func (a *Accessor) ResolveClaim(ctx context.Context, itemID, claimID, resolverID uuid.UUID, approve bool) (Claim, error) {
	current, err := a.GetItem(ctx, itemID)
	if err != nil {
		return Claim{}, err
	}
	if current.FinderID != resolverID {
		return Claim{}, ErrNotOwner
	}

	var claim Claim
	row := a.db.QueryRowContext(ctx, `SELECT id, item_id, user_id, message, status, created_at FROM item_claims WHERE id = $1 AND item_id = $2`, claimID, itemID)
	if err := row.Scan(&claim.ID, &claim.ItemID, &claim.UserID, &claim.Message, &claim.Status, &claim.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Claim{}, ErrClaimNotFound
		}
		return Claim{}, fmt.Errorf("scan: %w", err)
	}

	claim.Status = ClaimRejected
	if approve {
		claim.Status = ClaimApproved
	}

	if _, err := a.db.ExecContext(ctx, `UPDATE item_claims SET status = $1 WHERE id = $2`, claim.Status, claim.ID); err != nil {
		return Claim{}, fmt.Errorf("exec context: %w", err)
	}

	if approve {
		if _, err := a.db.ExecContext(ctx, `UPDATE items SET status = $1, claimant_id = $2 WHERE id = $3`, StatusClaimed, claim.UserID, itemID); err != nil {
			return Claim{}, fmt.Errorf("exec context: %w", err)
		}
	}
	return claim, nil
}
