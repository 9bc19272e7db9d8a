package repo

var Locations = Statements{
	Get: `
		SELECT id, latitude, longitude
		FROM location
		WHERE id = $1`,
	List: `
		SELECT id, latitude, longitude
		FROM location
		ORDER BY id`,
	Insert: `
		INSERT INTO location (latitude, longitude)
		VALUES ($1, $2)
		RETURNING id, latitude, longitude`,
	Update: `
		UPDATE location
		SET latitude  = $1,
		    longitude = $2
		WHERE id = $3
		RETURNING id, latitude, longitude`,
	Delete: `DELETE FROM location WHERE id = $1`,
}
