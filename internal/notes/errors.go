package notes

import (
	"errors"
	"fmt"
)

// ErrEmptyResponse is returned when the model answers with no usable text
var ErrEmptyResponse = errors.New("empty response from model")

// Error reports a failed note generation step
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("notes %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
