package handler_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ishichanpen/plane-spotting-log/internal/handler"
	"github.com/ishichanpen/plane-spotting-log/internal/repo"
)

// mockConn is a hand-written test double for repo.Conn.
// It records every statement in order. exec and query are optional hooks;
// when nil, Exec succeeds and Query fails the test.
type mockConn struct {
	t     *testing.T
	exec  func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	query func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)

	mu         sync.Mutex
	statements []string
	released   int
}

func (c *mockConn) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	c.record(sql)
	if c.exec == nil {
		return pgconn.NewCommandTag(sql), nil
	}
	return c.exec(ctx, sql, args...)
}

func (c *mockConn) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	c.record(sql)
	if c.query == nil {
		c.t.Fatalf("unexpected Query: %s", sql)
	}
	return c.query(ctx, sql, args...)
}

func (c *mockConn) Release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.released++
}

func (c *mockConn) record(sql string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.statements = append(c.statements, sql)
}

func (c *mockConn) Statements() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.statements...)
}

func (c *mockConn) Released() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.released
}

// mockPool hands out the same mockConn on every Acquire unless acquire is set.
type mockPool struct {
	conn    *mockConn
	acquire func(ctx context.Context) (repo.Conn, error)

	mu       sync.Mutex
	acquired int
}

func (p *mockPool) Acquire(ctx context.Context) (repo.Conn, error) {
	p.mu.Lock()
	p.acquired++
	p.mu.Unlock()
	if p.acquire != nil {
		return p.acquire(ctx)
	}
	return p.conn, nil
}

// compile-time checks: the mocks must satisfy the repo interfaces.
var (
	_ repo.Conn = (*mockConn)(nil)
	_ repo.Pool = (*mockPool)(nil)
)

// newExecutor returns an executor over a fresh mockConn and a buffer that
// captures its JSON log output at debug level.
func newExecutor(t *testing.T) (*handler.Executor, *mockPool, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	pool := &mockPool{conn: &mockConn{t: t}}
	return handler.NewExecutor(pool, logger), pool, &logs
}
