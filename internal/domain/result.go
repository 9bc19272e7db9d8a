package domain

// DeleteSucceeded is the message returned by every delete, whether or not a
// row matched.
const DeleteSucceeded = "Delete succeeded"

// DeleteResult is the response body of a delete.
type DeleteResult struct {
	Result string `json:"result"`
}
