package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/ishichanpen/plane-spotting-log/internal/domain"
	"github.com/ishichanpen/plane-spotting-log/internal/repo"
)

// SpottingLogs is the resource type backing the spotting log routes.
type SpottingLogs = Resource[domain.SpottingLogView, domain.SpottingLog, domain.SpottingLogInput]

// ExportHeader names the columns of a CSV export, in record order.
var ExportHeader = []string{
	"id", "spotted_time", "airline_name", "color_code", "manufacturer_name",
	"fleet_name", "variant", "registration", "livery", "latitude", "longitude",
	"comment",
}

// ExportService assembles a flat export of the whole spotting log.
type ExportService struct {
	logs *SpottingLogs
}

// NewExportService constructs an ExportService reading through logs.
func NewExportService(logs *SpottingLogs) *ExportService {
	return &ExportService{logs: logs}
}

// Export returns every spotting log entry as a joined view, ordered by ID.
func (e *ExportService) Export(ctx context.Context, s *repo.Session) ([]domain.SpottingLogView, error) {
	rows, err := e.logs.List(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}
	return rows, nil
}

// ExportRecords encodes rows as CSV records matching ExportHeader.
// Unresolved references are encoded as empty strings.
func ExportRecords(rows []domain.SpottingLogView) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			strconv.FormatInt(r.ID, 10),
			r.SpottedTime.UTC().Format(time.RFC3339),
			deref(r.AirlineName),
			deref(r.ColorCode),
			deref(r.ManufacturerName),
			deref(r.FleetName),
			deref(r.Variant),
			deref(r.Registration),
			deref(r.Livery),
			formatCoord(r.Latitude),
			formatCoord(r.Longitude),
			r.Comment,
		})
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatCoord(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
