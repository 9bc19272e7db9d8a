// Package repo contains all database access logic for the plane spotting log.
// Each resource has its own file with the SQL statements it runs.
// No business logic lives here, only SQL, row mapping and query tracing.
package repo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ishichanpen/plane-spotting-log/internal/domain"
)

// Querier is the minimal interface satisfied by *pgxpool.Conn, *pgxpool.Pool
// and pgx.Tx. Accepting it instead of a concrete connection lets integration
// tests run statements inside a transaction that is rolled back after each
// test, and lets unit tests supply a hand-written fake.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Session runs statements on one checked-out connection and traces each of
// them. A Session is owned by a single request and must not be shared.
type Session struct {
	q   Querier
	log *slog.Logger
}

// NewSession wraps q. If log is nil the default slog logger is used.
func NewSession(q Querier, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	return &Session{q: q, log: log}
}

// Result is the outcome of a row-returning statement.
type Result[T any] struct {
	// Rows is never nil, so an empty result encodes as [] in JSON.
	Rows []T
	// RowCount is the number of rows the statement returned or affected.
	RowCount int64
}

// First returns the first row, or an absent Nullable when there are none.
func (r Result[T]) First() domain.Nullable[T] {
	if len(r.Rows) == 0 {
		return domain.Nullable[T]{}
	}
	return domain.Of(r.Rows[0])
}

// Exec runs a statement that returns no rows, such as BEGIN, COMMIT or DELETE.
// Errors from the driver are returned, never swallowed.
func (s *Session) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	start := time.Now()
	tag, err := s.q.Exec(ctx, sql, args...)
	s.trace(ctx, sql, args, start, err)
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("repo.Session.Exec: %w", err)
	}
	return tag, nil
}

// Query runs a row-returning statement and maps every row into T by column
// name (see pgx.RowToStructByName). T's db tags must cover the selected columns.
func Query[T any](ctx context.Context, s *Session, sql string, args ...any) (Result[T], error) {
	start := time.Now()
	rows, err := s.q.Query(ctx, sql, args...)
	if err != nil {
		s.trace(ctx, sql, args, start, err)
		return Result[T]{}, fmt.Errorf("repo.Query: %w", err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	s.trace(ctx, sql, args, start, err)
	if err != nil {
		return Result[T]{}, fmt.Errorf("repo.Query: %w", err)
	}
	if items == nil {
		items = []T{}
	}

	return Result[T]{Rows: items, RowCount: rows.CommandTag().RowsAffected()}, nil
}

// trace writes one debug record per statement and records query metrics.
func (s *Session) trace(ctx context.Context, sql string, args []any, start time.Time, err error) {
	elapsed := time.Since(start)
	op := operation(sql)
	recordQuery(op, elapsed, err)

	attrs := []any{
		"sql", sql,
		"args", args,
		"duration_ms", elapsed.Milliseconds(),
	}
	if err != nil {
		attrs = append(attrs, "error", err)
	}
	s.log.DebugContext(ctx, "query", attrs...)
}
