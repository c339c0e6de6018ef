package parse

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

// Range is a pair of byte offsets within the input
type Range struct{ Start, End int }

func NewRange(start, end int) Range {
	return Range{Start: start, End: end}
}

func (r Range) String() string {
	if r.Start == r.End {
		return fmt.Sprintf("%d", r.Start)
	}
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}

// Str returns the part of `input` the range covers
func (r Range) Str(input []byte) string {
	return string(input[r.Start:r.End])
}

// Location is a human friendly position within the input.  Lines and
// columns start at 1, columns count runes, and Cursor is the byte
// offset.
type Location struct {
	Line   int
	Column int
	Cursor int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Offset returns at which byte of `input` the remainder `rest`
// starts.  `rest` must be a suffix of `input`, as returned by any
// parser of this package.
func Offset(input, rest []byte) int {
	return len(input) - len(rest)
}

// LocationOf returns the location where `rest` starts within `input`
func LocationOf(input, rest []byte) Location {
	return newPosIndex(input).LocationAt(Offset(input, rest))
}

// posIndex keeps the offset of each line start so locations can be
// found with a binary search
type posIndex struct {
	input     []byte
	lineStart []int
}

func newPosIndex(input []byte) *posIndex {
	// Always include line 1 starting at offset 0.
	lineStart := make([]int, 1, 64)
	for i, b := range input {
		if b == '\n' {
			lineStart = append(lineStart, i+1)
		}
	}
	return &posIndex{input: input, lineStart: lineStart}
}

func (pi *posIndex) LocationAt(cursor int) Location {
	cursor = min(max(cursor, 0), len(pi.input))

	// Find first lineStart > cursor, then step back one.
	line := sort.Search(len(pi.lineStart), func(i int) bool {
		return pi.lineStart[i] > cursor
	}) - 1
	line = max(line, 0)

	start := pi.lineStart[line]
	return Location{
		Line:   line + 1,
		Column: utf8.RuneCount(pi.input[start:cursor]) + 1,
		Cursor: cursor,
	}
}
