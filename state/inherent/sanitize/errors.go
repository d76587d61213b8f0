package sanitize

import (
	"errors"
	"fmt"
)

var (
	// ErrWrongBitfieldSize indicates a bitfield whose length does not match
	// the active-core count.
	ErrWrongBitfieldSize = errors.New("bitfield length does not match active core count")

	// ErrBitfieldDuplicateOrUnordered indicates bitfields that are not
	// strictly increasing by validator index.
	ErrBitfieldDuplicateOrUnordered = errors.New("bitfields are duplicate or unordered by validator index")

	// ErrValidatorIndexOutOfBounds indicates a bitfield signed by a
	// validator index outside the active set.
	ErrValidatorIndexOutOfBounds = errors.New("validator index out of bounds")
)

// InvalidBitfieldSignatureError indicates a bitfield whose signature does not
// verify under the current signing context.
type InvalidBitfieldSignatureError struct {
	err error
}

func NewInvalidBitfieldSignatureErrorf(msg string, args ...interface{}) error {
	return InvalidBitfieldSignatureError{err: fmt.Errorf(msg, args...)}
}

func (e InvalidBitfieldSignatureError) Unwrap() error { return e.err }

func (e InvalidBitfieldSignatureError) Error() string { return e.err.Error() }

// IsInvalidBitfieldSignatureError returns whether the given error is an
// InvalidBitfieldSignatureError.
func IsInvalidBitfieldSignatureError(err error) bool {
	var target InvalidBitfieldSignatureError
	return errors.As(err, &target)
}

// CandidateConcludedInvalidError indicates a backed candidate that is
// disputed, or whose dispute has concluded against it, or that does not fit
// the current scheduling.
type CandidateConcludedInvalidError struct {
	err error
}

func NewCandidateConcludedInvalidErrorf(msg string, args ...interface{}) error {
	return CandidateConcludedInvalidError{err: fmt.Errorf(msg, args...)}
}

func (e CandidateConcludedInvalidError) Unwrap() error { return e.err }

func (e CandidateConcludedInvalidError) Error() string { return e.err.Error() }

// IsCandidateConcludedInvalidError returns whether the given error is a
// CandidateConcludedInvalidError.
func IsCandidateConcludedInvalidError(err error) bool {
	var target CandidateConcludedInvalidError
	return errors.As(err, &target)
}
