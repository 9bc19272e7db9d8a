package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/ishichanpen/plane-spotting-log/internal/domain"
)

// pathID binds the {id} path parameter as an int64.
// A missing or malformed ID is an invalid request.
func pathID(r *http.Request) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return 0, fmt.Errorf("%w: id: %v", domain.ErrInvalidRequest, err)
	}
	return id, nil
}

// decodeBody decodes the JSON request body into B.
// An empty body decodes as B's zero value, where every field is absent, so the
// presence check reports it. Malformed JSON, or anything but whitespace after
// the first JSON value, is an invalid request.
func decodeBody[B any](r *http.Request) (B, error) {
	var body B
	if r.Body == nil {
		return body, nil
	}
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return body, nil
		}
		return body, fmt.Errorf("%w: decode body: %v", domain.ErrInvalidRequest, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return body, fmt.Errorf("%w: decode body: trailing data after JSON value", domain.ErrInvalidRequest)
	}
	return body, nil
}
