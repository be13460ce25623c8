package item

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive   = "active"
	StatusClaimed  = "claimed"
	StatusResolved = "resolved"
)

const (
	ClaimPending  = "pending"
	ClaimApproved = "approved"
	ClaimRejected = "rejected"
)

var (
	ErrNotFound      = errors.New("item not found")
	ErrClaimNotFound = errors.New("claim not found")
	ErrNotOwner      = errors.New("only the finder can modify this item")
)

// Item is a lost-and-found posting.
type Item struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category,omitempty"`
	Location    string     `json:"location,omitempty"`
	Status      string     `json:"status"`
	FinderID    uuid.UUID  `json:"finder_id"`
	ClaimantID  *uuid.UUID `json:"claimant_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (i *Item) Validate() error {
	if i.Title == "" {
		return errors.New("title is required")
	}
	if i.FinderID == uuid.Nil {
		return errors.New("finder ID is required")
	}
	switch i.Status {
	case "", StatusActive, StatusClaimed, StatusResolved:
	default:
		return fmt.Errorf("unknown status %q", i.Status)
	}
	return nil
}

// Claim is one user's request to be recognized as an item's owner.
type Claim struct {
	ID        uuid.UUID `json:"id"`
	ItemID    uuid.UUID `json:"item_id"`
	UserID    uuid.UUID `json:"user_id"`
	Message   string    `json:"message,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Filter narrows an item listing.
type Filter struct {
	Status   string
	Category string
	Search   string
	Limit    int
	Offset   int
}
