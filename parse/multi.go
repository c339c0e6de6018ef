package parse

// Collector describes a container that repeated parsers accumulate
// their outputs into.  New creates an empty container and Push adds
// one item to it, returning the updated container.
type Collector[T, C any] struct {
	New  func() C
	Push func(C, T) C
}

// SliceOf collects items into a slice in parse order
func SliceOf[T any]() Collector[T, []T] {
	return Collector[T, []T]{
		New:  func() []T { return nil },
		Push: func(s []T, item T) []T { return append(s, item) },
	}
}

// SetOf collects the distinct items into a set
func SetOf[T comparable]() Collector[T, map[T]struct{}] {
	return Collector[T, map[T]struct{}]{
		New: func() map[T]struct{} { return map[T]struct{}{} },
		Push: func(m map[T]struct{}, item T) map[T]struct{} {
			m[item] = struct{}{}
			return m
		},
	}
}

// CountOf collects how many times each item was seen
func CountOf[T comparable]() Collector[T, map[T]int] {
	return Collector[T, map[T]int]{
		New: func() map[T]int { return map[T]int{} },
		Push: func(m map[T]int, item T) map[T]int {
			m[item]++
			return m
		},
	}
}

// Repeat applies `p` until it fails and returns the last successful
// output.  It fails if `p` can't be applied at least once.  The loop
// also stops when `p` succeeds without consuming anything.
func Repeat[T any](p Parser[T]) ParserFn[T] {
	return func(input []byte) (T, []byte, error) {
		last, rest, err := p.Parse(input)
		if err != nil {
			return last, rest, err
		}
		for {
			value, next, err := p.Parse(rest)
			if err != nil || len(next) == len(rest) {
				return last, rest, nil
			}
			last, rest = value, next
		}
	}
}

// RepeatInto applies `p` until it fails, collecting every output with
// `c`.  It fails if `p` can't be applied at least once.
func RepeatInto[T, C any](p Parser[T], c Collector[T, C]) ParserFn[C] {
	return func(input []byte) (C, []byte, error) {
		first, rest, err := p.Parse(input)
		if err != nil {
			var zero C
			return zero, rest, err
		}
		output := c.Push(c.New(), first)
		for {
			value, next, err := p.Parse(rest)
			if err != nil || len(next) == len(rest) {
				return output, rest, nil
			}
			output, rest = c.Push(output, value), next
		}
	}
}

// Fold applies `p` until it fails, combining each output into an
// accumulator.  `initial` is called once per parse to create the
// starting accumulator, so slices and maps built by one parse are
// never touched by the next.  It never fails: when `p` can't be
// applied at all, the fresh accumulator is returned and nothing is
// consumed.
func Fold[T, A any](p Parser[T], initial func() A, fn func(A, T) A) ParserFn[A] {
	return func(input []byte) (A, []byte, error) {
		acc, rest := initial(), input
		for {
			value, next, err := p.Parse(rest)
			if err != nil || len(next) == len(rest) {
				return acc, rest, nil
			}
			acc, rest = fn(acc, value), next
		}
	}
}

// FoldMut is like Fold, but `fn` updates the accumulator in place
func FoldMut[T, A any](p Parser[T], initial func() A, fn func(*A, T)) ParserFn[A] {
	return func(input []byte) (A, []byte, error) {
		acc, rest := initial(), input
		for {
			value, next, err := p.Parse(rest)
			if err != nil || len(next) == len(rest) {
				return acc, rest, nil
			}
			fn(&acc, value)
			rest = next
		}
	}
}

// Constant makes an `initial` function for Fold out of a plain value.
// Only use it with values that don't share memory, like numbers.
func Constant[A any](value A) func() A {
	return func() A { return value }
}

// SepBy applies `p`, then `sep` and `p` alternately until either of
// them fails, collecting the outputs of `p` with `c`.  A trailing
// separator is left unconsumed, and so is a separator and element
// pair that consumes nothing.  It fails if the first application of
// `p` fails.
func SepBy[T, S, C any](p Parser[T], sep Parser[S], c Collector[T, C]) ParserFn[C] {
	return func(input []byte) (C, []byte, error) {
		first, rest, err := p.Parse(input)
		if err != nil {
			var zero C
			return zero, rest, err
		}
		output := c.Push(c.New(), first)
		for {
			_, afterSep, err := sep.Parse(rest)
			if err != nil {
				return output, rest, nil
			}
			value, next, err := p.Parse(afterSep)
			if err != nil || len(next) == len(rest) {
				return output, rest, nil
			}
			output, rest = c.Push(output, value), next
		}
	}
}

// ManyN applies `p` exactly `n` times and returns the `n` outputs.
//
// Outputs are built one at a time and counted.  If application `k`
// fails, the `k` outputs built so far are released in reverse order
// (when they implement Releaser) and dropped, each exactly once, and
// nothing is returned.
func ManyN[T any](p Parser[T], n int) ParserFn[[]T] {
	if n < 0 {
		panic("parse: ManyN needs a non-negative count")
	}
	return func(input []byte) ([]T, []byte, error) {
		staged := partial[T]{items: make([]T, n)}
		rest := input
		for staged.count < n {
			value, next, err := p.Parse(rest)
			if err != nil {
				staged.release()
				return nil, next, err
			}
			staged.push(value)
			rest = next
		}
		return staged.items, rest, nil
	}
}

// partial tracks how many items of a fixed size slice hold outputs
type partial[T any] struct {
	items []T
	count int
}

func (p *partial[T]) push(item T) {
	p.items[p.count] = item
	p.count++
}

func (p *partial[T]) release() {
	var zero T
	for i := p.count - 1; i >= 0; i-- {
		if r, ok := any(p.items[i]).(Releaser); ok {
			r.Release()
		}
		p.items[i] = zero
	}
	p.count = 0
}
