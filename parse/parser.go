// Package parse is a small parser combinator library working on byte
// slices.  Parsers never copy their input: every value they return
// that refers to the input, and every remainder, is a sub-slice of
// the input they were given.
//
// Grammars are built by composing the primitives of this package
// (numbers, tokens, Any, TakeWhile, ...) with combinator functions
// (And, Or, Map, SepBy, Grid, ...):
//
//	pair := parse.And(parse.Uint32, parse.Then(parse.Token(','), parse.Uint32))
//	lines := parse.SepBy(pair, parse.Token('\n'), parse.SliceOf[parse.Pair[uint32, uint32]]())
//	value, err := parse.Run(lines, input)
//
// A parser that fails returns the remainder at the point where it
// failed, which is only meant for diagnostics.  Parsers never consume
// input when they fail, which is what allows Or and Opt to retry from
// the same offset without any backtracking machinery.
package parse

// Parser is the one capability every primitive and combinator
// provides.  On success, `rest` is the suffix of `input` that wasn't
// consumed.  On failure, `err` is an Error and `rest` is the suffix
// of `input` where matching failed.
type Parser[T any] interface {
	Parse(input []byte) (value T, rest []byte, err error)
}

// ParserFn is the signature of a parser function.  All combinators
// return closures of this type, and since it implements Parser they
// can be fed right back into other combinators.
type ParserFn[T any] func(input []byte) (T, []byte, error)

// Parse calls the function itself
func (fn ParserFn[T]) Parse(input []byte) (T, []byte, error) {
	return fn(input)
}

// Pair is the output of And
type Pair[A, B any] struct {
	First  A
	Second B
}

// Option is the output of Opt.  Present is false when the wrapped
// parser failed, in which case Value is the zero value of T.
type Option[T any] struct {
	Value   T
	Present bool
}

// Get returns the value and whether it's present
func (o Option[T]) Get() (T, bool) {
	return o.Value, o.Present
}

// Or returns the value if it's present, or `fallback` otherwise
func (o Option[T]) Or(fallback T) T {
	if o.Present {
		return o.Value
	}
	return fallback
}

// Releaser is implemented by values that own something that should
// be given back when a parse that produced them is abandoned halfway.
// See ManyN.
type Releaser interface {
	Release()
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
