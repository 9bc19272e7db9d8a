package domain

// Manufacturer builds aircraft types.
type Manufacturer struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// ManufacturerInput is the request body for adding or modifying a manufacturer.
type ManufacturerInput struct {
	Name Nullable[string] `json:"name"`
}

func (in ManufacturerInput) Required() []Presence {
	return []Presence{in.Name}
}

func (in ManufacturerInput) Args() []any {
	return []any{in.Name.Value}
}
