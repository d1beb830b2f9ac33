package errors

import "fmt"

var (
	ErrInvalidMessage   = fmt.Errorf("invalid chat message")
	ErrMessageTooLong   = fmt.Errorf("chat message too long")
	ErrNotAllowed       = fmt.Errorf("not allowed")
	ErrFanoutIncomplete = fmt.Errorf("fan-out incomplete")
)

// MessageTooLongError carries the configured maximum so callers can
// render it. Matches ErrMessageTooLong through errors.Is.
type MessageTooLongError struct {
	Limit int
}

func (e *MessageTooLongError) Error() string {
	return fmt.Sprintf("chat message too long (maximum %d characters)", e.Limit)
}

func (e *MessageTooLongError) Unwrap() error {
	return ErrMessageTooLong
}
