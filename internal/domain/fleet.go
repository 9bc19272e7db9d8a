package domain

// Fleet is an aircraft type, e.g. manufacturer "Boeing", name "777",
// variant "300ER". Variant is optional and nil when not recorded.
type Fleet struct {
	ID             int64   `json:"id" db:"id"`
	ManufacturerID int64   `json:"manufacturer_id" db:"manufacturer_id"`
	Name           string  `json:"name" db:"name"`
	Variant        *string `json:"variant" db:"variant"`
}

// FleetInput is the request body for adding or modifying a fleet entry.
type FleetInput struct {
	ManufacturerID Nullable[int64]  `json:"manufacturer_id"`
	Name           Nullable[string] `json:"name"`
	Variant        Nullable[string] `json:"variant"`
}

func (in FleetInput) Required() []Presence {
	return []Presence{in.ManufacturerID, in.Name}
}

func (in FleetInput) Args() []any {
	return []any{in.ManufacturerID.Value, in.Name.Value, in.Variant.Ptr()}
}
