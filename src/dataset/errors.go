package dataset

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrMissingInput matches any MissingInputError via errors.Is.
var ErrMissingInput = errors.New("input tables not found")

// MissingInputError lists every required table that could not be located.
type MissingInputError struct {
	Paths []string
}

func (e *MissingInputError) Error() string {
	return ErrMissingInput.Error() + ": " + strings.Join(e.Paths, ", ")
}

func (e *MissingInputError) Is(target error) bool { return target == ErrMissingInput }
