package repo

// Fleet holds aircraft types.
var Fleet = Statements{
	Get: `
		SELECT id, manufacturer_id, name, variant
		FROM fleet
		WHERE id = $1`,
	List: `
		SELECT id, manufacturer_id, name, variant
		FROM fleet
		ORDER BY id`,
	Insert: `
		INSERT INTO fleet (manufacturer_id, name, variant)
		VALUES ($1, $2, $3)
		RETURNING id, manufacturer_id, name, variant`,
	Update: `
		UPDATE fleet
		SET manufacturer_id = $1,
		    name            = $2,
		    variant         = $3
		WHERE id = $4
		RETURNING id, manufacturer_id, name, variant`,
	Delete: `DELETE FROM fleet WHERE id = $1`,
}
