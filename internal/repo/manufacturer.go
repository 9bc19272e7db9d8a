package repo

var Manufacturers = Statements{
	Get: `
		SELECT id, name
		FROM manufacturers
		WHERE id = $1`,
	List: `
		SELECT id, name
		FROM manufacturers
		ORDER BY id`,
	Insert: `
		INSERT INTO manufacturers (name)
		VALUES ($1)
		RETURNING id, name`,
	Update: `
		UPDATE manufacturers
		SET name = $1
		WHERE id = $2
		RETURNING id, name`,
	Delete: `DELETE FROM manufacturers WHERE id = $1`,
}
