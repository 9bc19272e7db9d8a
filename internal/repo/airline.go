package repo

// Airlines are stored in the airlines table.
var Airlines = Statements{
	Get: `
		SELECT id, name, color_code
		FROM airlines
		WHERE id = $1`,
	List: `
		SELECT id, name, color_code
		FROM airlines
		ORDER BY id`,
	Insert: `
		INSERT INTO airlines (name, color_code)
		VALUES ($1, $2)
		RETURNING id, name, color_code`,
	Update: `
		UPDATE airlines
		SET name       = $1,
		    color_code = $2
		WHERE id = $3
		RETURNING id, name, color_code`,
	Delete: `DELETE FROM airlines WHERE id = $1`,
}
