package blob

import "fmt"

// Error reports a failed storage operation
type Error struct {
	Op     string
	Bucket string
	Object string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("storage %s gs://%s/%s: %v", e.Op, e.Bucket, e.Object, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
