package handler

import (
	"encoding/json"
	"net/http"
)

const contentTypeJSON = "application/json"

// Encoder is implemented by results that are not sent as JSON, such as the
// CSV export.
type Encoder interface {
	ContentType() string
	Encode() ([]byte, error)
}

// payload is an encoded response body.
type payload struct {
	contentType string
	body        []byte
}

// encode turns a handler result into a payload: Encoder results encode
// themselves, everything else is marshalled as JSON.
func encode(result any) (payload, error) {
	if enc, ok := result.(Encoder); ok {
		b, err := enc.Encode()
		if err != nil {
			return payload{}, err
		}
		return payload{contentType: enc.ContentType(), body: b}, nil
	}

	b, err := json.Marshal(result)
	if err != nil {
		return payload{}, err
	}
	return payload{contentType: contentTypeJSON, body: b}, nil
}

func (p payload) write(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", p.contentType)
	w.WriteHeader(status)
	//nolint:errcheck // the client is gone if this fails; nothing is left to report to.
	w.Write(p.body)
}

// writeJSON writes v as JSON with status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	p, err := encode(v)
	if err != nil {
		status = http.StatusInternalServerError
		p = payload{contentType: contentTypeJSON, body: []byte(`{"error":"` + msgInternal + `"}`)}
	}
	p.write(w, status)
}
