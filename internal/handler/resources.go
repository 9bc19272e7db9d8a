package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ishichanpen/plane-spotting-log/internal/repo"
	"github.com/ishichanpen/plane-spotting-log/internal/service"
)

// resourceRoutes mounts the five operations of res:
//
//	GET    /get/{id}     read one row           (no transaction)
//	GET    /get_all      read all rows          (no transaction)
//	POST   /add          insert from JSON body  (transaction)
//	PUT    /mod/{id}     update from JSON body  (transaction)
//	DELETE /delete/{id}  delete, idempotent     (transaction)
func resourceRoutes[V, R any, B service.Body](e *Executor, res *service.Resource[V, R, B]) func(chi.Router) {
	return func(r chi.Router) {
		r.Get("/get/{id}", func(w http.ResponseWriter, req *http.Request) {
			e.Run(w, req, func(ctx context.Context, s *repo.Session) (any, error) {
				id, err := pathID(req)
				if err != nil {
					return nil, err
				}
				return res.Get(ctx, s, id)
			}, false)
		})

		r.Get("/get_all", func(w http.ResponseWriter, req *http.Request) {
			e.Run(w, req, func(ctx context.Context, s *repo.Session) (any, error) {
				return res.List(ctx, s)
			}, false)
		})

		r.Post("/add", func(w http.ResponseWriter, req *http.Request) {
			e.Run(w, req, func(ctx context.Context, s *repo.Session) (any, error) {
				body, err := decodeBody[B](req)
				if err != nil {
					return nil, err
				}
				return res.Add(ctx, s, body)
			}, true)
		})

		r.Put("/mod/{id}", func(w http.ResponseWriter, req *http.Request) {
			e.Run(w, req, func(ctx context.Context, s *repo.Session) (any, error) {
				id, err := pathID(req)
				if err != nil {
					return nil, err
				}
				body, err := decodeBody[B](req)
				if err != nil {
					return nil, err
				}
				return res.Modify(ctx, s, id, body)
			}, true)
		})

		r.Delete("/delete/{id}", func(w http.ResponseWriter, req *http.Request) {
			e.Run(w, req, func(ctx context.Context, s *repo.Session) (any, error) {
				id, err := pathID(req)
				if err != nil {
					return nil, err
				}
				return res.Delete(ctx, s, id)
			}, true)
		})
	}
}
