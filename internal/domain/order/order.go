// Package order provides the checkpoint order entity and its lifecycle rules.
package order

import (
	"context"
	"time"
)

// Status is the lifecycle state of an order. Any status may transition to any
// other; the lifecycle imposes no forward-only ordering.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// Valid reports whether the status is one of the known lifecycle states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Active reports whether the order still sits in an operator's working queue.
func (s Status) Active() bool {
	return s == StatusPending || s == StatusInProgress
}

// Glyph returns the status indicator used in rendered reports.
func (s Status) Glyph() string {
	switch s {
	case StatusCompleted:
		return "✅"
	case StatusCancelled:
		return "❌"
	case StatusInProgress:
		return "🔄"
	default:
		return "⏳"
	}
}

// Order is the finalized, persisted checkpoint record.
// After creation only Status, Operator and ExternalRefID may change.
type Order struct {
	ID             uint
	PublicID       string
	Site           string
	DU             string
	Projeto        string
	Motivo         string
	Status         Status
	RequesterID    uint
	RequesterName  string
	RequesterLogin string
	OperatorID     *uint
	OperatorLogin  *string
	ExternalRefID  *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// UpdatePatch is a field-scoped partial update. Nil fields are left untouched;
// concurrent patches to different fields do not clobber each other.
type UpdatePatch struct {
	Status        *Status
	OperatorID    *uint
	OperatorLogin *string
	ExternalRefID *string
}

// Empty reports whether the patch changes nothing.
func (p UpdatePatch) Empty() bool {
	return p.Status == nil && p.OperatorID == nil &&
		p.OperatorLogin == nil && p.ExternalRefID == nil
}

// Repository defines storage operations for orders. Writes are last-write-wins
// with no version check.
type Repository interface {
	Create(ctx context.Context, order *Order) (*Order, error)
	FindByPublicID(ctx context.Context, publicID string) (*Order, error)
	ListByRequester(ctx context.Context, requesterID uint) ([]*Order, error)
	ListActive(ctx context.Context) ([]*Order, error)
	ListBySite(ctx context.Context, site string) ([]*Order, error)
	Update(ctx context.Context, id uint, patch UpdatePatch) (*Order, error)
}
