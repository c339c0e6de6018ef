package parse

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinish(t *testing.T) {
	tests := []struct {
		name     string
		rest     string
		err      error
		expected string
	}{
		{name: "complete", rest: ""},
		{name: "final newline", rest: "\n"},
		{name: "leftovers", rest: "x", expected: `incomplete, remainder: "x"`},
		{name: "two newlines", rest: "\n\n", expected: "incomplete, remainder: \"\n\n\""},
		{name: "failure", rest: "ab", err: ErrExpectedDigit, expected: `expected a digit, remainder: "ab"`},
		{name: "failure at the end", rest: "", err: ErrEmptyInput, expected: `empty input, remainder: ""`},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			value, err := Finish(42, []byte(test.rest), test.err)
			if test.expected == "" {
				require.NoError(t, err)
				assert.Equal(t, 42, value)
				return
			}
			assert.EqualError(t, err, test.expected)
			assert.Equal(t, 0, value)
		})
	}
}

func TestFinish_Unwrap(t *testing.T) {
	_, err := Finish(0, []byte("-"), CustomError("no negative depths"))
	assert.ErrorIs(t, err, CustomError(""))
	assert.False(t, errors.Is(err, ErrOverflow))

	var ferr *FinishError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, "-", string(ferr.Remainder))
	assert.Nil(t, ferr.Location)

	_, err = Finish(0, []byte("-"), nil)
	require.ErrorAs(t, err, &ferr)
	assert.NoError(t, ferr.Err)
}

func TestRun(t *testing.T) {
	numbers := SepBy(Uint8, Token('\n'), SliceOf[uint8]())

	got, err := Run(numbers, []byte("1\n2\n3\n"))
	require.NoError(t, err)
	assert.Equal(t, []uint8{1, 2, 3}, got)

	input := []byte("1\n2\n3x\n")
	_, err = Run(numbers, input)
	assert.EqualError(t, err, "incomplete @ 3:2, remainder: \"x\n\"")

	var ferr *FinishError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, Location{Line: 3, Column: 2, Cursor: 5}, *ferr.Location)
	assert.Equal(t, NewRange(5, 7), ferr.Unparsed)
	assert.Equal(t, "x\n", ferr.Unparsed.Str(input))
}

func TestRun_Failure(t *testing.T) {
	p := Then(Token('\n'), Uint8)

	_, err := Run(p, []byte("\n999"))
	assert.EqualError(t, err, `overflow @ 2:1, remainder: "999"`)
	assert.ErrorIs(t, err, ErrOverflow)

	wrapped := fmt.Errorf("reading depths: %w", err)
	assert.ErrorIs(t, wrapped, ErrOverflow)
}
