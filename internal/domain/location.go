package domain

// Location is a spotting position.
type Location struct {
	ID        int64   `json:"id" db:"id"`
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}

// LocationInput is the request body for adding or modifying a location.
type LocationInput struct {
	Latitude  Nullable[float64] `json:"latitude"`
	Longitude Nullable[float64] `json:"longitude"`
}

func (in LocationInput) Required() []Presence {
	return []Presence{in.Latitude, in.Longitude}
}

func (in LocationInput) Args() []any {
	return []any{in.Latitude.Value, in.Longitude.Value}
}
