package parse

import (
	"fmt"
	"strings"
)

// FinishError is returned by Finish and Run when the input wasn't
// parsed completely.  Err is nil when the parser succeeded but left
// input behind.
type FinishError struct {
	Err       error
	Remainder []byte

	// Location and Unparsed are only filled in by Run, which knows
	// the whole input
	Location *Location
	Unparsed Range
}

func (e *FinishError) Error() string {
	var s strings.Builder
	if e.Err != nil {
		s.WriteString(e.Err.Error())
	} else {
		s.WriteString("incomplete")
	}
	if e.Location != nil {
		fmt.Fprintf(&s, " @ %s", e.Location)
	}
	fmt.Fprintf(&s, ", remainder: \"%s\"", strings.ToValidUTF8(string(e.Remainder), "�"))
	return s.String()
}

func (e *FinishError) Unwrap() error { return e.Err }

// Finish turns the output of a parser into a value or an error.  The
// parse is considered complete when nothing but an optional single
// newline is left.
func Finish[T any](value T, rest []byte, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, &FinishError{Err: err, Remainder: rest}
	}
	if len(rest) == 0 || (len(rest) == 1 && rest[0] == '\n') {
		return value, nil
	}
	return zero, &FinishError{Remainder: rest}
}

// Run parses the whole `input` with `p`.  Errors are *FinishError
// values that also carry the location of the failure.
func Run[T any](p Parser[T], input []byte) (T, error) {
	value, rest, err := p.Parse(input)
	value, err = Finish(value, rest, err)
	if ferr, ok := err.(*FinishError); ok {
		loc := LocationOf(input, rest)
		ferr.Location = &loc
		ferr.Unparsed = NewRange(loc.Cursor, len(input))
	}
	return value, err
}
