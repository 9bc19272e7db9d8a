package repo

// airlineFleetView selects an aircraft with its airline, fleet type and
// manufacturer. Outer joins keep aircraft whose references do not resolve;
// the joined columns come back NULL.
const airlineFleetView = `
		SELECT airlines_fleet.id,
		       airlines_fleet.airline_id,
		       airlines_fleet.fleet_id,
		       airlines_fleet.registration,
		       airlines_fleet.livery,
		       airlines.name      AS airline_name,
		       airlines.color_code,
		       manufacturers.name AS manufacturer_name,
		       fleet.name         AS fleet_name,
		       fleet.variant
		FROM airlines_fleet
		LEFT OUTER JOIN airlines      ON airlines_fleet.airline_id = airlines.id
		LEFT OUTER JOIN fleet         ON airlines_fleet.fleet_id = fleet.id
		LEFT OUTER JOIN manufacturers ON fleet.manufacturer_id = manufacturers.id`

// AirlinesFleet reads through airlineFleetView and writes the plain row.
var AirlinesFleet = Statements{
	Get: airlineFleetView + `
		WHERE airlines_fleet.id = $1`,
	List: airlineFleetView + `
		ORDER BY airlines_fleet.id`,
	Insert: `
		INSERT INTO airlines_fleet (airline_id, fleet_id, registration, livery)
		VALUES ($1, $2, $3, $4)
		RETURNING id, airline_id, fleet_id, registration, livery`,
	Update: `
		UPDATE airlines_fleet
		SET airline_id   = $1,
		    fleet_id     = $2,
		    registration = $3,
		    livery       = $4
		WHERE id = $5
		RETURNING id, airline_id, fleet_id, registration, livery`,
	Delete: `DELETE FROM airlines_fleet WHERE id = $1`,
}
