package repo

// Statements holds the SQL a resource runs for its five operations.
// Placeholders are positional ($1, $2, ...):
//   - Get and Delete take the row ID as $1.
//   - Insert takes the body fields in the order the resource's input lists them.
//   - Update takes the same fields followed by the row ID.
//
// Insert and Update must use RETURNING so the written row comes back.
type Statements struct {
	Get    string
	List   string
	Insert string
	Update string
	Delete string
}
