package parse

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

func TestUnsigned(t *testing.T) {
	tests := []struct {
		input    string
		expected outcome[uint8]
	}{
		{"0", ok[uint8](0, "")},
		{"128", ok[uint8](128, "")},
		{"255", ok[uint8](255, "")},
		{"007", ok[uint8](7, "")},
		{"10abc", ok[uint8](10, "abc")},
		{"300", fail[uint8](ErrOverflow, "300")},
		{"256", fail[uint8](ErrOverflow, "256")},
		{"256a", fail[uint8](ErrOverflow, "256a")},
		{"", fail[uint8](ErrEmptyInput, "")},
		{"-1", fail[uint8](ErrExpectedDigit, "-1")},
		{"+1", fail[uint8](ErrExpectedDigit, "+1")},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			assert.Equal(t, test.expected, run(Uint8, test.input))
		})
	}
}

func TestUnsigned_EveryUint8(t *testing.T) {
	for i := 0; i <= math.MaxUint8; i++ {
		assert.Equal(t, ok(uint8(i), ""), run(Uint8, strconv.Itoa(i)))
	}
}

func TestUnsigned_Widths(t *testing.T) {
	assert.Equal(t, ok[uint16](math.MaxUint16, ""), run(Uint16, "65535"))
	assert.Equal(t, fail[uint16](ErrOverflow, "65536"), run(Uint16, "65536"))

	assert.Equal(t, ok[uint32](math.MaxUint32, " "), run(Uint32, "4294967295 "))
	assert.Equal(t, fail[uint32](ErrOverflow, "4294967296"), run(Uint32, "4294967296"))

	assert.Equal(t, ok[uint64](math.MaxUint64, ""), run(Uint64, "18446744073709551615"))
	assert.Equal(t, fail[uint64](ErrOverflow, "18446744073709551616"), run(Uint64, "18446744073709551616"))
	assert.Equal(t, fail[uint64](ErrOverflow, "99999999999999999999"), run(Uint64, "99999999999999999999"))

	assert.Equal(t, ok[uint](42, ","), run(Uint, "42,"))
}

func TestUint128(t *testing.T) {
	maxText := uint128.Max.String()

	value, rest, err := Uint128.Parse([]byte(maxText + "x"))
	require.NoError(t, err)
	assert.Equal(t, "x", string(rest))
	assert.True(t, value.Equals(uint128.Max))

	value, _, err = Uint128.Parse([]byte("18446744073709551616"))
	require.NoError(t, err)
	assert.True(t, value.Equals(uint128.New(0, 1)))

	// one past the maximum
	over := []byte("340282366920938463463374607431768211456")
	_, rest, err = Uint128.Parse(over)
	assert.ErrorIs(t, err, ErrOverflow)
	assert.Equal(t, over, rest)

	_, _, err = Uint128.Parse(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
	_, _, err = Uint128.Parse([]byte("x"))
	assert.ErrorIs(t, err, ErrExpectedDigit)
}

func TestSigned(t *testing.T) {
	tests := []struct {
		input    string
		expected outcome[int8]
	}{
		{"0", ok[int8](0, "")},
		{"127", ok[int8](127, "")},
		{"+127", ok[int8](127, "")},
		{"-127", ok[int8](-127, "")},
		{"-128", ok[int8](-128, "")},
		{"-0", ok[int8](0, "")},
		{"10abc", ok[int8](10, "abc")},
		{"128", fail[int8](ErrOverflow, "128")},
		{"+128", fail[int8](ErrOverflow, "+128")},
		{"-129", fail[int8](ErrOverflow, "-129")},
		{"-300", fail[int8](ErrOverflow, "-300")},
		{"", fail[int8](ErrEmptyInput, "")},
		{"-", fail[int8](ErrEmptyInput, "")},
		{"-x", fail[int8](ErrExpectedDigit, "x")},
		{"--1", fail[int8](ErrExpectedDigit, "-1")},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			assert.Equal(t, test.expected, run(Int8, test.input))
		})
	}
}

func TestSigned_Widths(t *testing.T) {
	assert.Equal(t, ok[int16](math.MinInt16, ""), run(Int16, "-32768"))
	assert.Equal(t, fail[int16](ErrOverflow, "32768"), run(Int16, "32768"))

	assert.Equal(t, ok[int32](math.MinInt32, ""), run(Int32, "-2147483648"))
	assert.Equal(t, ok[int32](math.MaxInt32, ""), run(Int32, "+2147483647"))

	assert.Equal(t, ok[int64](math.MinInt64, ""), run(Int64, "-9223372036854775808"))
	assert.Equal(t, ok[int64](math.MaxInt64, ""), run(Int64, "9223372036854775807"))
	assert.Equal(t, fail[int64](ErrOverflow, "9223372036854775808"), run(Int64, "9223372036854775808"))
	assert.Equal(t, fail[int64](ErrOverflow, "-18446744073709551616"), run(Int64, "-18446744073709551616"))

	assert.Equal(t, ok(-42, " apples"), run(Int, "-42 apples"))
}

func TestDigit(t *testing.T) {
	assert.Equal(t, ok[uint8](7, "3"), run(Digit, "73"))
	assert.Equal(t, fail[uint8](ErrExpectedDigit, "a"), run(Digit, "a"))
	assert.Equal(t, fail[uint8](ErrEmptyInput, ""), run(Digit, ""))
}
