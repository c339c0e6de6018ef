package parse

import (
	"golang.org/x/exp/constraints"
	"lukechampine.com/uint128"
)

// Unsigned returns a parser for a run of ASCII digits.  It fails with
// Overflow as soon as the accumulated value doesn't fit in T, and it
// doesn't accept a sign.
func Unsigned[T constraints.Unsigned]() ParserFn[T] {
	maxValue := ^T(0)
	return func(input []byte) (T, []byte, error) {
		if len(input) == 0 {
			return 0, input, ErrEmptyInput
		}
		if !isDigit(input[0]) {
			return 0, input, ErrExpectedDigit
		}
		var (
			value T
			i     int
		)
		for ; i < len(input) && isDigit(input[i]); i++ {
			digit := T(input[i] - '0')
			// value*10 + digit <= maxValue
			if value > (maxValue-digit)/10 {
				return 0, input, ErrOverflow
			}
			value = value*10 + digit
		}
		return value, input[i:], nil
	}
}

// Signed returns a parser for an integer with an optional leading `+`
// or `-`.  The magnitude may be one larger than the maximum of T when
// the sign is negative, which yields the minimum of T.
func Signed[T constraints.Signed]() ParserFn[T] {
	maxValue := signedMax[T]()
	return func(input []byte) (T, []byte, error) {
		negative, digits := false, input
		if len(input) > 0 && (input[0] == '-' || input[0] == '+') {
			negative, digits = input[0] == '-', input[1:]
		}
		magnitude, rest, err := Uint64.Parse(digits)
		if err != nil {
			if err == ErrOverflow {
				return 0, input, err
			}
			return 0, rest, err
		}
		switch {
		case magnitude <= uint64(maxValue) && negative:
			return -T(magnitude), rest, nil
		case magnitude <= uint64(maxValue):
			return T(magnitude), rest, nil
		case magnitude == uint64(maxValue)+1 && negative:
			return -maxValue - 1, rest, nil
		default:
			return 0, input, ErrOverflow
		}
	}
}

// signedMax finds the largest value of T without knowing its width
func signedMax[T constraints.Signed]() T {
	var half T = 1
	for half<<1 > half {
		half <<= 1
	}
	// half is now 1 << (bits-2)
	return half + (half - 1)
}

var (
	Uint8  = Unsigned[uint8]()
	Uint16 = Unsigned[uint16]()
	Uint32 = Unsigned[uint32]()
	Uint64 = Unsigned[uint64]()
	Uint   = Unsigned[uint]()

	Int8  = Signed[int8]()
	Int16 = Signed[int16]()
	Int32 = Signed[int32]()
	Int64 = Signed[int64]()
	Int   = Signed[int]()
)

// Uint128 parses unsigned numbers up to 128 bits wide
var Uint128 ParserFn[uint128.Uint128] = func(input []byte) (uint128.Uint128, []byte, error) {
	if len(input) == 0 {
		return uint128.Zero, input, ErrEmptyInput
	}
	if !isDigit(input[0]) {
		return uint128.Zero, input, ErrExpectedDigit
	}
	var (
		value = uint128.Zero
		limit = uint128.Max.Div64(10)
		i     int
	)
	for ; i < len(input) && isDigit(input[i]); i++ {
		digit := uint64(input[i] - '0')
		if value.Cmp(limit) > 0 {
			return uint128.Zero, input, ErrOverflow
		}
		value = value.Mul64(10)
		if value.Cmp(uint128.Max.Sub64(digit)) > 0 {
			return uint128.Zero, input, ErrOverflow
		}
		value = value.Add64(digit)
	}
	return value, input[i:], nil
}
