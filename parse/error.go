package parse

import (
	"errors"
	"fmt"
)

// ErrorKind enumerates the ways a parser can fail
type ErrorKind uint8

const (
	EmptyInput ErrorKind = iota
	ExpectedDigit
	Overflow
	TokenDoesNotMatch
	UnexpectedChar
	GridCellOutOfRange
	ExpectedGridCell
	Custom
)

var kindNames = [...]string{
	EmptyInput:         "EmptyInput",
	ExpectedDigit:      "ExpectedDigit",
	Overflow:           "Overflow",
	TokenDoesNotMatch:  "TokenDoesNotMatch",
	UnexpectedChar:     "UnexpectedChar",
	GridCellOutOfRange: "GridCellOutOfRange",
	ExpectedGridCell:   "ExpectedGridCell",
	Custom:             "Custom",
}

func (k ErrorKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is the error returned by every parser in this package.  It's
// a plain comparable value: only the custom kind carries a message,
// and only the grid range kind carries coordinates.
type Error struct {
	Kind    ErrorKind
	X, Y    int
	Message string
}

var (
	ErrEmptyInput        = Error{Kind: EmptyInput}
	ErrExpectedDigit     = Error{Kind: ExpectedDigit}
	ErrOverflow          = Error{Kind: Overflow}
	ErrTokenDoesNotMatch = Error{Kind: TokenDoesNotMatch}
	ErrUnexpectedChar    = Error{Kind: UnexpectedChar}
	ErrExpectedGridCell  = Error{Kind: ExpectedGridCell}
)

// ErrGridCellOutOfRange reports a grid write outside of the storage
// bounds at `x`, `y`
func ErrGridCellOutOfRange(x, y int) Error {
	return Error{Kind: GridCellOutOfRange, X: x, Y: y}
}

// CustomError creates an error with a caller supplied message, for
// invariants that don't fit any of the other kinds
func CustomError(message string) Error {
	return Error{Kind: Custom, Message: message}
}

// Error returns the human readable representation of a parsing error
func (e Error) Error() string {
	switch e.Kind {
	case EmptyInput:
		return "empty input"
	case ExpectedDigit:
		return "expected a digit"
	case Overflow:
		return "overflow"
	case TokenDoesNotMatch:
		return "token does not match"
	case UnexpectedChar:
		return "unexpected char"
	case GridCellOutOfRange:
		return fmt.Sprintf("grid cell out of range, x: %d, y: %d", e.X, e.Y)
	case ExpectedGridCell:
		return "expected a grid cell"
	case Custom:
		return e.Message
	default:
		return fmt.Sprintf("unknown parse error kind: %d", e.Kind)
	}
}

// Is matches any other Error of the same kind, so the sentinels above
// work with errors.Is regardless of coordinates or messages
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t.Kind == e.Kind
}

// IsRecoverable returns true for the structural errors, the ones that
// just mean "the grammar doesn't match here" and that alternatives
// are expected to recover from.  Overflow and custom errors mean the
// input had the right shape but a wrong value.  Wrapped errors, like
// the ones returned by Run, are looked through.
func IsRecoverable(err error) bool {
	var e Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind != Overflow && e.Kind != Custom
}

// asError converts any error returned by user callbacks into an
// Error.  Parse errors are kept as they are, even when wrapped.
func asError(err error) Error {
	var e Error
	if errors.As(err, &e) {
		return e
	}
	return CustomError(err.Error())
}
