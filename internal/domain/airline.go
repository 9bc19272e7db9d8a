// Package domain contains the core data types for the plane spotting log.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler).
package domain

// Airline is an operator whose aircraft can be spotted.
type Airline struct {
	ID        int64  `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	ColorCode string `json:"color_code" db:"color_code"`
}

// AirlineInput is the request body for adding or modifying an airline.
type AirlineInput struct {
	Name      Nullable[string] `json:"name"`
	ColorCode Nullable[string] `json:"color_code"`
}

// Required returns the fields that must be present.
func (in AirlineInput) Required() []Presence {
	return []Presence{in.Name, in.ColorCode}
}

// Args returns the statement parameters in column order.
func (in AirlineInput) Args() []any {
	return []any{in.Name.Value, in.ColorCode.Value}
}
