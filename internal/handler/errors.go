package handler

import (
	"errors"
	"net/http"

	"github.com/ishichanpen/plane-spotting-log/internal/domain"
)

// Messages sent in error responses. Internal details never reach the client.
const (
	msgNotFound       = "Not Found"
	msgInvalidRequest = "Invalid Request"
	msgInternal       = "Database Error Occurred"
)

// ErrorResponse is the body of every non-200 response written by the executor.
type ErrorResponse struct {
	Error string `json:"error"`
}

// classify maps an error to its HTTP status and client-facing message.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, msgNotFound
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest, msgInvalidRequest
	default:
		return http.StatusInternalServerError, msgInternal
	}
}
