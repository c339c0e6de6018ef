package parse

// Any matches any byte, and fails on empty input
var Any ParserFn[byte] = func(input []byte) (byte, []byte, error) {
	if len(input) == 0 {
		return 0, input, ErrEmptyInput
	}
	return input[0], input[1:], nil
}

// Digit matches a single ASCII digit and outputs its value
var Digit ParserFn[uint8] = func(input []byte) (uint8, []byte, error) {
	if len(input) == 0 {
		return 0, input, ErrEmptyInput
	}
	if !isDigit(input[0]) {
		return 0, input, ErrExpectedDigit
	}
	return input[0] - '0', input[1:], nil
}

// TakeWhile matches the longest prefix of the input in which every
// byte satisfies `pred`.  The prefix can't be empty.
func TakeWhile(pred func(byte) bool) ParserFn[[]byte] {
	return func(input []byte) ([]byte, []byte, error) {
		i := 0
		for i < len(input) && pred(input[i]) {
			i++
		}
		if i == 0 {
			return nil, input, ErrUnexpectedChar
		}
		return input[:i:i], input[i:], nil
	}
}

// Byte classes commonly passed to TakeWhile
func IsDigit(c byte) bool      { return isDigit(c) }
func IsAlpha(c byte) bool      { return (c|0x20) >= 'a' && (c|0x20) <= 'z' }
func IsSpace(c byte) bool      { return c == ' ' || c == '\t' }
func IsAlphaNum(c byte) bool   { return IsAlpha(c) || isDigit(c) }
func IsNotNewline(c byte) bool { return c != '\n' }
