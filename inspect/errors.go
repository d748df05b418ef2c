package inspect

import (
	"errors"
	"fmt"
)

// ErrInternal marks defects in the traversal engine itself, such as
// classification driven with no remaining depth.  Errors wrapping it
// abort the whole inspection; they never describe a problem with the
// inspected value.
var ErrInternal = errors.New("internal inspect error")

// InspectError carries the location of a failure within the value
// being inspected.
type InspectError struct {
	FieldPath string // path within the root value (e.g. "part.category.name")
	Message   string
	Err       error
}

func (e *InspectError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("inspect error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("inspect error: %s", e.Message)
}

func (e *InspectError) Unwrap() error {
	return e.Err
}
