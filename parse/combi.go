package parse

// And runs `p1` and then `p2` on the remainder, and returns both
// outputs
func And[A, B any](p1 Parser[A], p2 Parser[B]) ParserFn[Pair[A, B]] {
	return func(input []byte) (Pair[A, B], []byte, error) {
		var zero Pair[A, B]
		first, rest, err := p1.Parse(input)
		if err != nil {
			return zero, rest, err
		}
		second, rest, err := p2.Parse(rest)
		if err != nil {
			return zero, rest, err
		}
		return Pair[A, B]{First: first, Second: second}, rest, nil
	}
}

// Then runs `p1` and `p2` sequentially and returns the output of `p2`
func Then[A, B any](p1 Parser[A], p2 Parser[B]) ParserFn[B] {
	return func(input []byte) (B, []byte, error) {
		_, rest, err := p1.Parse(input)
		if err != nil {
			var zero B
			return zero, rest, err
		}
		return p2.Parse(rest)
	}
}

// Trailed runs `p1` and `p2` sequentially and returns the output of
// `p1`
func Trailed[A, B any](p1 Parser[A], p2 Parser[B]) ParserFn[A] {
	return func(input []byte) (A, []byte, error) {
		var zero A
		value, rest, err := p1.Parse(input)
		if err != nil {
			return zero, rest, err
		}
		_, rest, err = p2.Parse(rest)
		if err != nil {
			return zero, rest, err
		}
		return value, rest, nil
	}
}

// Or attempts `p1`, and upon failure attempts `p2` on the same input.
// When both fail, the error of `p2` is returned.
func Or[T any](p1, p2 Parser[T]) ParserFn[T] {
	return func(input []byte) (T, []byte, error) {
		if value, rest, err := p1.Parse(input); err == nil {
			return value, rest, nil
		}
		return p2.Parse(input)
	}
}

// Choice walks through `ps` and returns the output of the first one
// to succeed.  It fails with the error of the last alternative if no
// alternatives match, or with TokenDoesNotMatch if there are none.
func Choice[T any](ps ...Parser[T]) ParserFn[T] {
	return func(input []byte) (T, []byte, error) {
		var (
			zero T
			rest = input
			err  error = ErrTokenDoesNotMatch
		)
		for _, p := range ps {
			var value T
			value, rest, err = p.Parse(input)
			if err == nil {
				return value, rest, nil
			}
		}
		return zero, rest, err
	}
}

// Map transforms the output of `p` with `fn`
func Map[A, B any](p Parser[A], fn func(A) B) ParserFn[B] {
	return func(input []byte) (B, []byte, error) {
		value, rest, err := p.Parse(input)
		if err != nil {
			var zero B
			return zero, rest, err
		}
		return fn(value), rest, nil
	}
}

// MapRes transforms the output of `p` with `fn`, which may fail.  An
// error returned by `fn` fails the parser at the original input.
// Errors that aren't an Error become a custom Error with the same
// message.
func MapRes[A, B any](p Parser[A], fn func(A) (B, error)) ParserFn[B] {
	return func(input []byte) (B, []byte, error) {
		var zero B
		value, rest, err := p.Parse(input)
		if err != nil {
			return zero, rest, err
		}
		output, err := fn(value)
		if err != nil {
			return zero, input, asError(err)
		}
		return output, rest, nil
	}
}

// Opt never fails.  It wraps the output of `p` in a present Option
// when `p` succeeds, and returns an absent Option without consuming
// anything when `p` fails.
func Opt[T any](p Parser[T]) ParserFn[Option[T]] {
	return func(input []byte) (Option[T], []byte, error) {
		value, rest, err := p.Parse(input)
		if err != nil {
			return Option[T]{}, input, nil
		}
		return Option[T]{Value: value, Present: true}, rest, nil
	}
}

// Value replaces the output of `p` with `value`
func Value[A, B any](p Parser[A], value B) ParserFn[B] {
	return Map(p, func(A) B { return value })
}
