package history

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no record matches the given id.
var ErrNotFound = errors.New("history record not found")

// Record is one stored enhancement exchange.
type Record struct {
	ID         uuid.UUID `json:"id"`
	Provider   string    `json:"provider"`
	Model      string    `json:"model"`
	Tone       string    `json:"tone"`
	Prompt     string    `json:"prompt"`
	Enhanced   string    `json:"enhanced"`
	Fallback   bool      `json:"fallback"`
	DurationMs int64     `json:"durationMs"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Repository persists enhancement records.
type Repository interface {
	Create(ctx context.Context, r Record) error
	List(ctx context.Context, limit, offset int) ([]Record, error)
	GetByID(ctx context.Context, id uuid.UUID) (Record, error)
}
