package todo

import "errors"

var (
	ErrItemNotFound = errors.New("item not found")
	ErrItemRemoving = errors.New("item is being removed")
)

// RejectedError is returned when a filter would leave nothing visible.
// Notice is the message shown to the user; the state is left untouched.
type RejectedError struct {
	Filter Filter
	Notice string
}

func (e *RejectedError) Error() string {
	return "filter " + e.Filter.String() + " rejected: " + e.Notice
}
