// Package service contains the per-resource logic of the plane spotting log.
// Services validate inputs and orchestrate statements on a repo.Session that
// the handler executor has already checked out; they never open connections
// or transactions themselves.
package service

import (
	"context"
	"fmt"

	"github.com/ishichanpen/plane-spotting-log/internal/domain"
	"github.com/ishichanpen/plane-spotting-log/internal/repo"
)

// Body is a decoded request body. Required lists the fields that must be
// present; Args lists the statement parameters in the order the resource's
// Insert and Update statements expect them.
type Body interface {
	Required() []domain.Presence
	Args() []any
}

// Resource implements get-by-id, get-all, add, modify and delete for one table.
// V is the row type returned by reads (a plain row or a joined view), R the row
// type returned by writes, and B the request body.
type Resource[V, R any, B Body] struct {
	name  string
	stmts repo.Statements
}

// NewResource constructs a Resource named name (used in error context)
// running stmts.
func NewResource[V, R any, B Body](name string, stmts repo.Statements) *Resource[V, R, B] {
	return &Resource[V, R, B]{name: name, stmts: stmts}
}

// Name returns the resource name, e.g. "airlines".
func (r *Resource[V, R, B]) Name() string {
	return r.name
}

// Get returns the row with the given ID.
// Returns domain.ErrNotFound if there is none.
func (r *Resource[V, R, B]) Get(ctx context.Context, s *repo.Session, id int64) (V, error) {
	var zero V
	res, err := repo.Query[V](ctx, s, r.stmts.Get, id)
	if err != nil {
		return zero, fmt.Errorf("service.%s.Get: %w", r.name, err)
	}
	row := res.First()
	if err := domain.CheckPresence(domain.NotFound, row); err != nil {
		return zero, err
	}
	return row.Value, nil
}

// List returns every row ordered by ID.
// Always returns a non-nil slice so an empty table encodes as [].
func (r *Resource[V, R, B]) List(ctx context.Context, s *repo.Session) ([]V, error) {
	res, err := repo.Query[V](ctx, s, r.stmts.List)
	if err != nil {
		return nil, fmt.Errorf("service.%s.List: %w", r.name, err)
	}
	return res.Rows, nil
}

// Add validates body and inserts it, returning the created row.
// Returns domain.ErrInvalidRequest before touching the database if any
// required field is absent.
func (r *Resource[V, R, B]) Add(ctx context.Context, s *repo.Session, body B) (R, error) {
	var zero R
	if err := domain.CheckPresence(domain.InvalidRequest, body.Required()...); err != nil {
		return zero, err
	}
	res, err := repo.Query[R](ctx, s, r.stmts.Insert, body.Args()...)
	if err != nil {
		return zero, fmt.Errorf("service.%s.Add: %w", r.name, err)
	}
	row := res.First()
	if !row.Present() {
		return zero, fmt.Errorf("service.%s.Add: insert returned no row", r.name)
	}
	return row.Value, nil
}

// Modify validates body and overwrites the row with the given ID, returning
// the updated row. Returns domain.ErrInvalidRequest if a required field is
// absent, domain.ErrNotFound if no row has that ID.
func (r *Resource[V, R, B]) Modify(ctx context.Context, s *repo.Session, id int64, body B) (R, error) {
	var zero R
	if err := domain.CheckPresence(domain.InvalidRequest, body.Required()...); err != nil {
		return zero, err
	}
	args := append(body.Args(), id)
	res, err := repo.Query[R](ctx, s, r.stmts.Update, args...)
	if err != nil {
		return zero, fmt.Errorf("service.%s.Modify: %w", r.name, err)
	}
	row := res.First()
	if err := domain.CheckPresence(domain.NotFound, row); err != nil {
		return zero, err
	}
	return row.Value, nil
}

// Delete removes the row with the given ID. Deleting an ID that does not
// exist succeeds with the same result.
func (r *Resource[V, R, B]) Delete(ctx context.Context, s *repo.Session, id int64) (domain.DeleteResult, error) {
	if _, err := s.Exec(ctx, r.stmts.Delete, id); err != nil {
		return domain.DeleteResult{}, fmt.Errorf("service.%s.Delete: %w", r.name, err)
	}
	return domain.DeleteResult{Result: domain.DeleteSucceeded}, nil
}
