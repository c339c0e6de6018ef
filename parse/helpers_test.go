package parse

// outcome flattens the three values returned by a parser so test
// tables can compare them in one go.  Remainders are kept as strings
// so nil and empty slices compare equal.
type outcome[T any] struct {
	Value T
	Rest  string
	Err   error
}

func ok[T any](value T, rest string) outcome[T] {
	return outcome[T]{Value: value, Rest: rest}
}

func fail[T any](err error, rest string) outcome[T] {
	return outcome[T]{Err: err, Rest: rest}
}

func run[T any](p Parser[T], input string) outcome[T] {
	value, rest, err := p.Parse([]byte(input))
	return outcome[T]{Value: value, Rest: string(rest), Err: err}
}

// letter matches any byte but a newline, and is used as grid cell
var letter = MapRes(Any, func(c byte) (byte, error) {
	if c == '\n' {
		return 0, ErrUnexpectedChar
	}
	return c, nil
})
