package testutil

import (
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// FakeRows is an in-memory pgx.Rows for unit tests that need a Query result
// without a database. Values are assigned to scan targets by column position;
// a nil value leaves the target at its zero value (nil for pointer fields).
type FakeRows struct {
	columns []string
	data    [][]any
	pos     int
	closed  bool
	err     error
}

// NewRows returns FakeRows with the given column names and rows.
// Each row must have one value per column.
func NewRows(columns []string, rows ...[]any) *FakeRows {
	return &FakeRows{columns: columns, data: rows}
}

// WithErr makes Err report err once iteration is done.
func (r *FakeRows) WithErr(err error) *FakeRows {
	r.err = err
	return r
}

// Closed reports whether Close was called.
func (r *FakeRows) Closed() bool { return r.closed }

func (r *FakeRows) Close() { r.closed = true }

func (r *FakeRows) Err() error { return r.err }

func (r *FakeRows) CommandTag() pgconn.CommandTag {
	return pgconn.NewCommandTag(fmt.Sprintf("SELECT %d", len(r.data)))
}

func (r *FakeRows) FieldDescriptions() []pgconn.FieldDescription {
	fds := make([]pgconn.FieldDescription, len(r.columns))
	for i, c := range r.columns {
		fds[i] = pgconn.FieldDescription{Name: c}
	}
	return fds
}

func (r *FakeRows) Next() bool {
	if r.closed || r.pos >= len(r.data) {
		return false
	}
	r.pos++
	return true
}

func (r *FakeRows) Scan(dest ...any) error {
	row := r.data[r.pos-1]
	if len(dest) != len(row) {
		return fmt.Errorf("testutil.FakeRows.Scan: %d targets for %d values", len(dest), len(row))
	}
	for i, d := range dest {
		if err := assign(d, row[i]); err != nil {
			return fmt.Errorf("testutil.FakeRows.Scan: column %q: %w", r.columns[i], err)
		}
	}
	return nil
}

func (r *FakeRows) Values() ([]any, error) {
	return r.data[r.pos-1], nil
}

func (r *FakeRows) RawValues() [][]byte { return nil }

func (r *FakeRows) Conn() *pgx.Conn { return nil }

// compile-time check: FakeRows must satisfy pgx.Rows.
var _ pgx.Rows = (*FakeRows)(nil)

// assign stores v into the pointer dest, allocating when dest points to a pointer.
func assign(dest, v any) error {
	dv := reflect.ValueOf(dest)
	if dv.Kind() != reflect.Pointer || dv.IsNil() {
		return fmt.Errorf("destination %T is not a non-nil pointer", dest)
	}
	target := dv.Elem()
	if v == nil {
		target.Set(reflect.Zero(target.Type()))
		return nil
	}

	sv := reflect.ValueOf(v)
	switch {
	case sv.Type().AssignableTo(target.Type()):
		target.Set(sv)
	case target.Kind() == reflect.Pointer && sv.Type().AssignableTo(target.Type().Elem()):
		p := reflect.New(target.Type().Elem())
		p.Elem().Set(sv)
		target.Set(p)
	default:
		return fmt.Errorf("cannot assign %T to %s", v, target.Type())
	}
	return nil
}
