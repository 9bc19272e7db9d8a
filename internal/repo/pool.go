package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Conn is a connection checked out of a Pool. Release must be called exactly
// once when the caller is done with it.
type Conn interface {
	Querier
	Release()
}

// Pool hands out connections. The handler executor depends on this interface
// so its connection lifecycle can be tested without a database.
type Pool interface {
	Acquire(ctx context.Context) (Conn, error)
}

// pgPool adapts *pgxpool.Pool to Pool.
type pgPool struct {
	pool *pgxpool.Pool
}

// NewPool wraps a pgx pool. The caller keeps ownership of p: create it once at
// startup and Close it once at shutdown.
func NewPool(p *pgxpool.Pool) Pool {
	return &pgPool{pool: p}
}

// Acquire checks out a connection, blocking until one is free or ctx is done.
func (p *pgPool) Acquire(ctx context.Context) (Conn, error) {
	c, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.Pool.Acquire: %w", err)
	}
	return c, nil
}
