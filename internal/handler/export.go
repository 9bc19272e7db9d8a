package handler

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"net/http"

	"github.com/ishichanpen/plane-spotting-log/internal/domain"
	"github.com/ishichanpen/plane-spotting-log/internal/repo"
	"github.com/ishichanpen/plane-spotting-log/internal/service"
)

// GetExport handles GET /spotting_log/export.
// It returns every spotting log entry as a joined view.
// Use ?format=csv to receive CSV; default is JSON. Any other format is an
// invalid request.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	s.exec.Run(w, r, func(ctx context.Context, sess *repo.Session) (any, error) {
		if format != "" && format != "json" && format != "csv" {
			return nil, fmt.Errorf("%w: unknown export format %q", domain.ErrInvalidRequest, format)
		}
		rows, err := s.export.Export(ctx, sess)
		if err != nil {
			return nil, err
		}
		if format == "csv" {
			return csvExport(rows), nil
		}
		return rows, nil
	}, false)
}

// csvExport encodes a spotting log export as CSV with a header row.
type csvExport []domain.SpottingLogView

func (c csvExport) ContentType() string { return "text/csv" }

func (c csvExport) Encode() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never fails; csv errors surface via w.Error.
	w.Write(service.ExportHeader)
	//nolint:errcheck
	w.WriteAll(service.ExportRecords(c))

	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
