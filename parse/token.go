package parse

import "bytes"

// Token matches the single byte `b`
func Token(b byte) ParserFn[struct{}] {
	return TokenValue(b, struct{}{})
}

// TokenValue matches the single byte `b` and outputs `value`
func TokenValue[T any](b byte, value T) ParserFn[T] {
	return func(input []byte) (T, []byte, error) {
		if len(input) > 0 && input[0] == b {
			return value, input[1:], nil
		}
		var zero T
		return zero, input, ErrTokenDoesNotMatch
	}
}

// Tag matches the literal `literal`
func Tag(literal string) ParserFn[struct{}] {
	return TagValue(literal, struct{}{})
}

// TagValue matches the literal `literal` and outputs `value`
func TagValue[T any](literal string, value T) ParserFn[T] {
	lit := []byte(literal)
	return func(input []byte) (T, []byte, error) {
		if bytes.HasPrefix(input, lit) {
			return value, input[len(lit):], nil
		}
		var zero T
		return zero, input, ErrTokenDoesNotMatch
	}
}
