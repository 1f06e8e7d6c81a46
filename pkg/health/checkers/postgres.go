package checkers

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// probeTimeout bounds a single dependency ping so a slow dependency
// cannot stall the readiness endpoint.
const probeTimeout = time.Second

// PostgresChecker reports whether the history database answers a ping.
type PostgresChecker struct {
	pool *pgxpool.Pool
}

func NewPostgresChecker(pool *pgxpool.Pool) *PostgresChecker {
	return &PostgresChecker{pool: pool}
}

func (c *PostgresChecker) Name() string { return "postgres" }

func (c *PostgresChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	return c.pool.Ping(ctx)
}
