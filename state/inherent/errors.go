package inherent

import (
	"errors"
	"fmt"
)

// ErrAlreadyAdmitted is a sentinel error returned when a second inherent
// bundle is submitted within the same block.
var ErrAlreadyAdmitted = errors.New("already admitted")

// InvalidParentHeaderError indicates a bundle whose parent header hash does
// not match the chain's recorded parent hash.
type InvalidParentHeaderError struct {
	err error
}

func NewInvalidParentHeaderErrorf(msg string, args ...interface{}) error {
	return InvalidParentHeaderError{err: fmt.Errorf(msg, args...)}
}

func (e InvalidParentHeaderError) Unwrap() error { return e.err }

func (e InvalidParentHeaderError) Error() string { return e.err.Error() }

// IsInvalidParentHeaderError returns whether the given error is an
// InvalidParentHeaderError.
func IsInvalidParentHeaderError(err error) bool {
	var target InvalidParentHeaderError
	return errors.As(err, &target)
}
