// Package kindgenerrors provides the errors returned by code generated by
// kindgen.
package kindgenerrors

import (
	"errors"
	"strconv"
)

// ErrInvalidKind is matched by every [InvalidKindError].
var ErrInvalidKind = errors.New("invalid kind")

// InvalidKindError is returned when a text does not name a variant of a kind
// type.
type InvalidKindError struct {
	// Kind is the name of the kind type.
	Kind string

	// Text is the text failed to parse.
	Text string
}

func (e *InvalidKindError) Error() string {
	return "invalid " + e.Kind + ": " + strconv.Quote(e.Text)
}

// Is makes errors.Is(err, ErrInvalidKind) true.
func (e *InvalidKindError) Is(target error) bool {
	return target == ErrInvalidKind
}
