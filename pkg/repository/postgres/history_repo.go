package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"promptenhancer/pkg/history"
)

// HistoryRepository stores enhancement exchanges.
type HistoryRepository struct {
	pool *pgxpool.Pool
}

func NewHistoryRepository(pool *pgxpool.Pool) (*HistoryRepository, error) {
	r := &HistoryRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *HistoryRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS enhancements (
	id UUID PRIMARY KEY,
	provider TEXT NOT NULL,
	model TEXT NOT NULL,
	tone TEXT NOT NULL,
	prompt TEXT NOT NULL,
	enhanced TEXT NOT NULL,
	fallback BOOLEAN NOT NULL DEFAULT FALSE,
	duration_ms BIGINT NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS enhancements_created_at_idx ON enhancements (created_at DESC);
`)
	return err
}

func (r *HistoryRepository) Create(ctx context.Context, rec history.Record) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO enhancements (id, provider, model, tone, prompt, enhanced, fallback, duration_ms, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`, rec.ID, rec.Provider, rec.Model, rec.Tone, rec.Prompt, rec.Enhanced, rec.Fallback, rec.DurationMs, rec.CreatedAt)
	return err
}

func (r *HistoryRepository) List(ctx context.Context, limit, offset int) ([]history.Record, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, provider, model, tone, prompt, enhanced, fallback, duration_ms, created_at
FROM enhancements
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]history.Record, 0, limit)
	for rows.Next() {
		var rec history.Record
		var created time.Time
		if err := rows.Scan(&rec.ID, &rec.Provider, &rec.Model, &rec.Tone, &rec.Prompt, &rec.Enhanced, &rec.Fallback, &rec.DurationMs, &created); err != nil {
			return nil, err
		}
		rec.CreatedAt = created.UTC()
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *HistoryRepository) GetByID(ctx context.Context, id uuid.UUID) (history.Record, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, provider, model, tone, prompt, enhanced, fallback, duration_ms, created_at
FROM enhancements WHERE id = $1
`, id)
	var rec history.Record
	var created time.Time
	if err := row.Scan(&rec.ID, &rec.Provider, &rec.Model, &rec.Tone, &rec.Prompt, &rec.Enhanced, &rec.Fallback, &rec.DurationMs, &created); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return history.Record{}, history.ErrNotFound
		}
		return history.Record{}, err
	}
	rec.CreatedAt = created.UTC()
	return rec, nil
}
