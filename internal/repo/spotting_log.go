package repo

// spottingLogView selects a log entry with the aircraft, airline, fleet type,
// manufacturer and location it references.
const spottingLogView = `
		SELECT spotting_log.id,
		       spotting_log.airlines_fleet_id,
		       spotting_log.location_id,
		       spotting_log.spotted_time,
		       spotting_log.comment,
		       airlines.name      AS airline_name,
		       airlines.color_code,
		       manufacturers.name AS manufacturer_name,
		       fleet.name         AS fleet_name,
		       fleet.variant,
		       airlines_fleet.registration,
		       airlines_fleet.livery,
		       location.latitude,
		       location.longitude
		FROM spotting_log
		LEFT OUTER JOIN airlines_fleet ON spotting_log.airlines_fleet_id = airlines_fleet.id
		LEFT OUTER JOIN airlines       ON airlines_fleet.airline_id = airlines.id
		LEFT OUTER JOIN fleet          ON airlines_fleet.fleet_id = fleet.id
		LEFT OUTER JOIN manufacturers  ON fleet.manufacturer_id = manufacturers.id
		LEFT OUTER JOIN location       ON spotting_log.location_id = location.id`

// SpottingLogs reads through spottingLogView and writes the plain row.
// List doubles as the export query.
var SpottingLogs = Statements{
	Get: spottingLogView + `
		WHERE spotting_log.id = $1`,
	List: spottingLogView + `
		ORDER BY spotting_log.id`,
	Insert: `
		INSERT INTO spotting_log (airlines_fleet_id, location_id, spotted_time, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, airlines_fleet_id, location_id, spotted_time, comment`,
	Update: `
		UPDATE spotting_log
		SET airlines_fleet_id = $1,
		    location_id       = $2,
		    spotted_time      = $3,
		    comment           = $4
		WHERE id = $5
		RETURNING id, airlines_fleet_id, location_id, spotted_time, comment`,
	Delete: `DELETE FROM spotting_log WHERE id = $1`,
}
