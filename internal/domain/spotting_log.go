package domain

import "time"

// SpottingLog records one sighting of an airline-operated aircraft at a location.
type SpottingLog struct {
	ID              int64     `json:"id" db:"id"`
	AirlinesFleetID int64     `json:"airlines_fleet_id" db:"airlines_fleet_id"`
	LocationID      int64     `json:"location_id" db:"location_id"`
	SpottedTime     time.Time `json:"spotted_time" db:"spotted_time"`
	Comment         string    `json:"comment" db:"comment"`
}

// SpottingLogView is a SpottingLog joined with everything it references:
// aircraft, airline, fleet type, manufacturer and location.
// Joined columns are nil when a reference does not resolve.
type SpottingLogView struct {
	ID               int64     `json:"id" db:"id"`
	AirlinesFleetID  int64     `json:"airlines_fleet_id" db:"airlines_fleet_id"`
	LocationID       int64     `json:"location_id" db:"location_id"`
	SpottedTime      time.Time `json:"spotted_time" db:"spotted_time"`
	Comment          string    `json:"comment" db:"comment"`
	AirlineName      *string   `json:"airline_name" db:"airline_name"`
	ColorCode        *string   `json:"color_code" db:"color_code"`
	ManufacturerName *string   `json:"manufacturer_name" db:"manufacturer_name"`
	FleetName        *string   `json:"fleet_name" db:"fleet_name"`
	Variant          *string   `json:"variant" db:"variant"`
	Registration     *string   `json:"registration" db:"registration"`
	Livery           *string   `json:"livery" db:"livery"`
	Latitude         *float64  `json:"latitude" db:"latitude"`
	Longitude        *float64  `json:"longitude" db:"longitude"`
}

// SpottingLogInput is the request body for adding or modifying a spotting log entry.
// SpottedTime is passed to Postgres as text, so any timestamp literal it
// accepts ("2024-05-01 09:30:00", RFC 3339, ...) is valid. One it rejects
// fails the statement.
type SpottingLogInput struct {
	AirlinesFleetID Nullable[int64]  `json:"airlines_fleet_id"`
	LocationID      Nullable[int64]  `json:"location_id"`
	SpottedTime     Nullable[string] `json:"spotted_time"`
	Comment         Nullable[string] `json:"comment"`
}

func (in SpottingLogInput) Required() []Presence {
	return []Presence{in.AirlinesFleetID, in.LocationID, in.SpottedTime, in.Comment}
}

func (in SpottingLogInput) Args() []any {
	return []any{in.AirlinesFleetID.Value, in.LocationID.Value, in.SpottedTime.Value, in.Comment.Value}
}
