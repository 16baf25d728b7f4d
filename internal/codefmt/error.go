package codefmt

import (
	"errors"
	"fmt"
	"go/token"
)

var (
	// ErrConfig classifies errors in kindgen directives: a missing or
	// malformed kind name, unknown specifiers, or misplaced directives.
	ErrConfig = errors.New("configuration error")

	// ErrShape classifies errors in the annotated declarations: a non-interface
	// type, an interface which cannot hold values, or a name collision.
	ErrShape = errors.New("shape error")
)

// CodeError indicates where the error occurred in user's source code.
type CodeError struct {
	err   error
	class error
	pos   token.Pos
	end   token.Pos
	fset  *token.FileSet
}

// Unwrap returns the underlying error.
func (e CodeError) Unwrap() error { return e.err }

// Is reports whether the error belongs to the class target. It makes
// errors.Is(err, ErrConfig) and errors.Is(err, ErrShape) work.
func (e CodeError) Is(target error) bool { return e.class != nil && e.class == target }

// Pos returns the position where the error occurred. It may be invalid.
func (e CodeError) Pos() token.Pos { return e.pos }

// End returns the end position of the error. It may be invalid.
func (e CodeError) End() token.Pos { return e.end }

// Error implements the error interface. If pos is valid, the position is
// prepended to the error message.
func (e CodeError) Error() string {
	if e.err == nil {
		return ""
	}

	if !e.pos.IsValid() || e.fset == nil {
		return e.err.Error()
	}

	return fmt.Sprintf("%s: %s", FormatPosition(e.fset.Position(e.pos)), e.err.Error())
}

// Errorf formats an error message. The error will indicate the position in the
// source code if the position is valid.
func (f Formatter) Errorf(poser Poser, format string, args ...any) error {
	return f.errorf(nil, poser, format, args...)
}

// ConfigErrorf is [Formatter.Errorf] for errors classified as [ErrConfig].
func (f Formatter) ConfigErrorf(poser Poser, format string, args ...any) error {
	return f.errorf(ErrConfig, poser, format, args...)
}

// ShapeErrorf is [Formatter.Errorf] for errors classified as [ErrShape].
func (f Formatter) ShapeErrorf(poser Poser, format string, args ...any) error {
	return f.errorf(ErrShape, poser, format, args...)
}

func (f Formatter) errorf(class error, poser Poser, format string, args ...any) error {
	// Prevent wrapping error in args
	for _, arg := range args {
		if _, ok := arg.(error); ok {
			panic("CodeError cannot wrap error")
		}
	}

	var pos, end token.Pos
	if poser != nil {
		pos = poser.Pos()
		if ender, ok := poser.(Ender); ok {
			end = ender.End()
		}
	}

	args = f.wrapPrintfArgs(args)
	err := fmt.Errorf(format, args...)
	return &CodeError{err, class, pos, end, f.Fset}
}
