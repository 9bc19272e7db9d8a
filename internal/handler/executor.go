package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/ishichanpen/plane-spotting-log/internal/repo"
)

// HandlerFunc is the work done for one request on a checked-out connection.
// It returns the value to send back, or an error. Errors wrapping
// domain.ErrNotFound or domain.ErrInvalidRequest select 404 and 400; anything
// else is reported as 500.
type HandlerFunc func(ctx context.Context, s *repo.Session) (any, error)

// Executor runs a HandlerFunc with a pooled connection and turns its outcome
// into exactly one HTTP response.
//
// For every call Run:
//  1. acquires a connection and releases it exactly once on every path,
//  2. wraps the handler in BEGIN/COMMIT when useTx is set,
//  3. rolls back on any failure, logging (never returning) rollback errors,
//  4. writes the result with 200, or {"error": msg} with the mapped status.
//
// A connection is held for the whole call and never shared between calls.
type Executor struct {
	pool repo.Pool
	log  *slog.Logger
}

// NewExecutor constructs an Executor drawing connections from pool.
// If log is nil the default slog logger is used.
func NewExecutor(pool repo.Pool, log *slog.Logger) *Executor {
	if log == nil {
		log = slog.Default()
	}
	return &Executor{pool: pool, log: log}
}

// Run executes fn for the request r and writes the response to w.
// It never panics and never returns an error: every outcome becomes a response.
func (e *Executor) Run(w http.ResponseWriter, r *http.Request, fn HandlerFunc, useTx bool) {
	ctx := r.Context()
	log := e.log.With("exec_id", uuid.NewString())
	if reqID := chimiddleware.GetReqID(ctx); reqID != "" {
		log = log.With("request_id", reqID)
	}

	out, err := e.execute(ctx, log, fn, useTx)
	if err != nil {
		status, message := classify(err)
		if status == http.StatusInternalServerError {
			log.ErrorContext(ctx, "request failed", "status", status, "error", err)
		} else {
			log.InfoContext(ctx, "request rejected", "status", status, "error", err)
		}
		writeJSON(w, status, ErrorResponse{Error: message})
		return
	}

	out.write(w, http.StatusOK)
}

// execute owns the connection lifecycle. The result is encoded before COMMIT
// so an encoding failure still rolls the transaction back.
func (e *Executor) execute(ctx context.Context, log *slog.Logger, fn HandlerFunc, useTx bool) (out payload, err error) {
	conn, err := e.pool.Acquire(ctx)
	if err != nil {
		return payload{}, fmt.Errorf("handler.Executor: %w", err)
	}
	defer conn.Release()

	s := repo.NewSession(conn, log)

	// Runs before Release: defers execute last-in first-out.
	defer func() {
		if p := recover(); p != nil {
			out, err = payload{}, fmt.Errorf("handler.Executor: panic: %v", p)
		}
		if err != nil && useTx {
			rollback(ctx, log, s)
		}
	}()

	if useTx {
		if _, err := s.Exec(ctx, "BEGIN"); err != nil {
			return payload{}, err
		}
	}

	result, err := fn(ctx, s)
	if err != nil {
		return payload{}, err
	}

	out, err = encode(result)
	if err != nil {
		return payload{}, fmt.Errorf("handler.Executor: encode result: %w", err)
	}

	if useTx {
		if _, err := s.Exec(ctx, "COMMIT"); err != nil {
			return payload{}, err
		}
	}
	return out, nil
}

// rollback aborts the open transaction. It runs on a context detached from the
// request so a client disconnect cannot skip it. A failure here is logged and
// dropped: the caller reports the error that caused the rollback.
func rollback(ctx context.Context, log *slog.Logger, s *repo.Session) {
	if _, err := s.Exec(context.WithoutCancel(ctx), "ROLLBACK"); err != nil {
		log.WarnContext(ctx, "rollback failed", "error", err)
	}
}
