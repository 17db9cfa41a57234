package snapshots

import (
	"errors"
	"fmt"
)

// OutputWriteError reports a filesystem failure while writing a league's output.
type OutputWriteError struct {
	League string
	Path   string
	Err    error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("write %s output %s: %v", e.League, e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() error {
	return e.Err
}

// AsWriteError attempts to unwrap an error into an OutputWriteError.
func AsWriteError(err error) (*OutputWriteError, bool) {
	var writeErr *OutputWriteError
	if errors.As(err, &writeErr) {
		return writeErr, true
	}
	return nil, false
}
