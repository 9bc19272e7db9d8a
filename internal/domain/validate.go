package domain

import "fmt"

// Mode selects which error CheckPresence returns when a value is absent.
type Mode int

const (
	// InvalidRequest reports absent request fields as ErrInvalidRequest.
	InvalidRequest Mode = iota
	// NotFound reports an absent row as ErrNotFound.
	NotFound
)

// CheckPresence returns nil when every value is present. Otherwise it returns
// the sentinel error for mode: ErrInvalidRequest or ErrNotFound.
// The returned error is not wrapped so callers can pass it straight up.
func CheckPresence(mode Mode, values ...Presence) error {
	for _, v := range values {
		if v == nil || !v.Present() {
			return absent(mode)
		}
	}
	return nil
}

func absent(mode Mode) error {
	switch mode {
	case InvalidRequest:
		return ErrInvalidRequest
	case NotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("domain.CheckPresence: unknown mode %d", mode)
	}
}
