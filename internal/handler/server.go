// Package handler implements the HTTP surface of the plane spotting log API.
// Every database-backed route goes through Executor, which owns connection
// checkout, transactions and the mapping of errors to status codes.
package handler

import (
	"github.com/go-chi/chi/v5"

	"github.com/ishichanpen/plane-spotting-log/internal/domain"
	"github.com/ishichanpen/plane-spotting-log/internal/repo"
	"github.com/ishichanpen/plane-spotting-log/internal/service"
)

// Server holds the executor and the six resources it serves.
// Methods are split into files by concern (health.go, export.go, ...) but all
// share this struct.
type Server struct {
	exec *Executor

	airlines      *service.Resource[domain.Airline, domain.Airline, domain.AirlineInput]
	manufacturers *service.Resource[domain.Manufacturer, domain.Manufacturer, domain.ManufacturerInput]
	fleet         *service.Resource[domain.Fleet, domain.Fleet, domain.FleetInput]
	airlinesFleet *service.Resource[domain.AirlineFleetView, domain.AirlineFleet, domain.AirlineFleetInput]
	locations     *service.Resource[domain.Location, domain.Location, domain.LocationInput]
	spottingLogs  *service.SpottingLogs
	export        *service.ExportService
}

// NewServer constructs the Server. exec may be nil for health-check-only use;
// database-backed routes then must not be called.
func NewServer(exec *Executor) *Server {
	logs := service.NewResource[domain.SpottingLogView, domain.SpottingLog, domain.SpottingLogInput]("spotting_log", repo.SpottingLogs)
	return &Server{
		exec:          exec,
		airlines:      service.NewResource[domain.Airline, domain.Airline, domain.AirlineInput]("airlines", repo.Airlines),
		manufacturers: service.NewResource[domain.Manufacturer, domain.Manufacturer, domain.ManufacturerInput]("manufacturers", repo.Manufacturers),
		fleet:         service.NewResource[domain.Fleet, domain.Fleet, domain.FleetInput]("fleet", repo.Fleet),
		airlinesFleet: service.NewResource[domain.AirlineFleetView, domain.AirlineFleet, domain.AirlineFleetInput]("airlines_fleet", repo.AirlinesFleet),
		locations:     service.NewResource[domain.Location, domain.Location, domain.LocationInput]("location", repo.Locations),
		spottingLogs:  logs,
		export:        service.NewExportService(logs),
	}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil)
}

// Routes returns the router for every endpoint. Resource prefixes match the
// table names.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/airlines", resourceRoutes(s.exec, s.airlines))
	r.Route("/manufacturers", resourceRoutes(s.exec, s.manufacturers))
	r.Route("/fleet", resourceRoutes(s.exec, s.fleet))
	r.Route("/airlines_fleet", resourceRoutes(s.exec, s.airlinesFleet))
	r.Route("/location", resourceRoutes(s.exec, s.locations))
	r.Route("/spotting_log", func(r chi.Router) {
		resourceRoutes(s.exec, s.spottingLogs)(r)
		r.Get("/export", s.GetExport)
	})

	return r
}
