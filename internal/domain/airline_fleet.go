package domain

// AirlineFleet is one aircraft operated by an airline: a fleet type flown
// under a registration and livery.
type AirlineFleet struct {
	ID           int64  `json:"id" db:"id"`
	AirlineID    int64  `json:"airline_id" db:"airline_id"`
	FleetID      int64  `json:"fleet_id" db:"fleet_id"`
	Registration string `json:"registration" db:"registration"`
	Livery       string `json:"livery" db:"livery"`
}

// AirlineFleetView is an AirlineFleet joined with its airline, fleet type and
// manufacturer. Joined columns are nil when the reference does not resolve.
type AirlineFleetView struct {
	ID               int64   `json:"id" db:"id"`
	AirlineID        int64   `json:"airline_id" db:"airline_id"`
	FleetID          int64   `json:"fleet_id" db:"fleet_id"`
	Registration     string  `json:"registration" db:"registration"`
	Livery           string  `json:"livery" db:"livery"`
	AirlineName      *string `json:"airline_name" db:"airline_name"`
	ColorCode        *string `json:"color_code" db:"color_code"`
	ManufacturerName *string `json:"manufacturer_name" db:"manufacturer_name"`
	FleetName        *string `json:"fleet_name" db:"fleet_name"`
	Variant          *string `json:"variant" db:"variant"`
}

// AirlineFleetInput is the request body for adding or modifying an
// airline-operated aircraft.
type AirlineFleetInput struct {
	AirlineID    Nullable[int64]  `json:"airline_id"`
	FleetID      Nullable[int64]  `json:"fleet_id"`
	Registration Nullable[string] `json:"registration"`
	Livery       Nullable[string] `json:"livery"`
}

func (in AirlineFleetInput) Required() []Presence {
	return []Presence{in.AirlineID, in.FleetID, in.Registration, in.Livery}
}

func (in AirlineFleetInput) Args() []any {
	return []any{in.AirlineID.Value, in.FleetID.Value, in.Registration.Value, in.Livery.Value}
}
