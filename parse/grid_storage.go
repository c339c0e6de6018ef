package parse

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// FixedGrid is a grid whose dimensions are known before parsing.
// Cells live in a flat row major slice.
type FixedGrid[T any] struct {
	width, height int
	cells         []T
}

// NewFixedGrid allocates a `width` x `height` grid of zero values
func NewFixedGrid[T any](width, height int) *FixedGrid[T] {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("parse: invalid fixed grid size %dx%d", width, height))
	}
	return &FixedGrid[T]{
		width:  width,
		height: height,
		cells:  make([]T, width*height),
	}
}

// Fixed stores grid cells in a FixedGrid of the given size
func Fixed[T any](width, height int) Storage[T, *FixedGrid[T]] {
	return func() GridBuilder[T, *FixedGrid[T]] {
		return NewFixedGrid[T](width, height)
	}
}

func (g *FixedGrid[T]) Width() int  { return g.width }
func (g *FixedGrid[T]) Height() int { return g.height }

// Cells returns the row major backing slice
func (g *FixedGrid[T]) Cells() []T { return g.cells }

func (g *FixedGrid[T]) contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// Set writes `value` at (x, y) and returns false if it's out of range
func (g *FixedGrid[T]) Set(x, y int, value T) bool {
	if !g.contains(x, y) {
		return false
	}
	g.cells[y*g.width+x] = value
	return true
}

// Get returns the cell at (x, y) and whether it's within the grid
func (g *FixedGrid[T]) Get(x, y int) (T, bool) {
	if !g.contains(x, y) {
		var zero T
		return zero, false
	}
	return g.cells[y*g.width+x], true
}

// At returns the cell at (x, y), and panics if it's out of range
func (g *FixedGrid[T]) At(x, y int) T {
	if !g.contains(x, y) {
		panic(fmt.Sprintf("parse: cell (%d, %d) out of %dx%d grid", x, y, g.width, g.height))
	}
	return g.cells[y*g.width+x]
}

// Row returns the cells of row `y`, sharing memory with the grid
func (g *FixedGrid[T]) Row(y int) []T {
	return g.cells[y*g.width : (y+1)*g.width]
}

func (g *FixedGrid[T]) Finalize() *FixedGrid[T] { return g }

func (g *FixedGrid[T]) String() string { return renderRows(g.width, g.cells) }

// DynGrid is a grid whose dimensions come from the input: the width
// is the length of the first row and the height grows with every
// row.
type DynGrid[T any] struct {
	Cells []T
	Width int
}

// Dynamic stores grid cells in a DynGrid
func Dynamic[T any]() Storage[T, *DynGrid[T]] {
	return func() GridBuilder[T, *DynGrid[T]] {
		return &dynBuilder[T]{}
	}
}

func (g *DynGrid[T]) Height() int {
	if g.Width == 0 {
		return 0
	}
	return len(g.Cells) / g.Width
}

func (g *DynGrid[T]) contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height()
}

// Get returns the cell at (x, y) and whether it's within the grid
func (g *DynGrid[T]) Get(x, y int) (T, bool) {
	if !g.contains(x, y) {
		var zero T
		return zero, false
	}
	return g.Cells[y*g.Width+x], true
}

// At returns the cell at (x, y), and panics if it's out of range
func (g *DynGrid[T]) At(x, y int) T {
	if !g.contains(x, y) {
		panic(fmt.Sprintf("parse: cell (%d, %d) out of %dx%d grid", x, y, g.Width, g.Height()))
	}
	return g.Cells[y*g.Width+x]
}

// Set overwrites an existing cell and returns false if it's out of
// range.  It never grows the grid.
func (g *DynGrid[T]) Set(x, y int, value T) bool {
	if !g.contains(x, y) {
		return false
	}
	g.Cells[y*g.Width+x] = value
	return true
}

// Row returns the cells of row `y`, sharing memory with the grid
func (g *DynGrid[T]) Row(y int) []T {
	return g.Cells[y*g.Width : (y+1)*g.Width]
}

func (g *DynGrid[T]) String() string { return renderRows(g.Width, g.Cells) }

// widthLock implements the sizing rule shared by the growable
// builders: row 0 widens the grid until a cell from another row is
// written, after which the width is fixed.
type widthLock struct {
	width  int
	locked bool
}

func (w *widthLock) accept(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	switch {
	case w.locked:
	case y == 0:
		if x >= w.width {
			w.width = x + 1
		}
		return true
	default:
		w.locked = true
	}
	return x < w.width
}

type dynBuilder[T any] struct {
	widthLock
	cells []T
}

func (b *dynBuilder[T]) Set(x, y int, value T) bool {
	oldWidth := b.width
	if !b.accept(x, y) {
		return false
	}
	if b.width != oldWidth && len(b.cells) > 0 {
		// only row 0 exists while the width can still change
		b.cells = append(b.cells, make([]T, b.width-oldWidth)...)
	}
	if need := b.width * (y + 1); len(b.cells) < need {
		b.cells = append(b.cells, make([]T, need-len(b.cells))...)
	}
	b.cells[y*b.width+x] = value
	return true
}

func (b *dynBuilder[T]) Finalize() *DynGrid[T] {
	return &DynGrid[T]{Cells: b.cells, Width: b.width}
}

// BitGrid is a grid of booleans packed one bit per cell
type BitGrid struct {
	bits          *bitset.BitSet
	width, height int
}

// Bits stores boolean grid cells in a BitGrid
func Bits() Storage[bool, *BitGrid] {
	return func() GridBuilder[bool, *BitGrid] {
		return &bitBuilder{bits: bitset.New(0)}
	}
}

func (g *BitGrid) Width() int  { return g.width }
func (g *BitGrid) Height() int { return g.height }

// Get returns the cell at (x, y).  Cells out of range are false.
func (g *BitGrid) Get(x, y int) bool {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return false
	}
	return g.bits.Test(uint(y*g.width + x))
}

// Set changes an existing cell and returns false if it's out of range
func (g *BitGrid) Set(x, y int, value bool) bool {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return false
	}
	g.bits.SetTo(uint(y*g.width+x), value)
	return true
}

// Count returns how many cells are true
func (g *BitGrid) Count() int { return int(g.bits.Count()) }

func (g *BitGrid) String() string {
	var s strings.Builder
	for y := 0; y < g.height; y++ {
		if y > 0 {
			s.WriteByte('\n')
		}
		for x := 0; x < g.width; x++ {
			if g.Get(x, y) {
				s.WriteByte('#')
			} else {
				s.WriteByte('.')
			}
		}
	}
	return s.String()
}

type bitBuilder struct {
	widthLock
	bits   *bitset.BitSet
	height int
}

func (b *bitBuilder) Set(x, y int, value bool) bool {
	// row 0 is the only one written while the width can change,
	// so its bits keep their positions as it widens
	if !b.accept(x, y) {
		return false
	}
	b.height = max(b.height, y+1)
	b.bits.SetTo(uint(y*b.width+x), value)
	return true
}

func (b *bitBuilder) Finalize() *BitGrid {
	return &BitGrid{bits: b.bits, width: b.width, height: b.height}
}

func renderRows[T any](width int, cells []T) string {
	if width == 0 {
		return ""
	}
	var s strings.Builder
	for i, cell := range cells {
		if i > 0 && i%width == 0 {
			s.WriteByte('\n')
		}
		fmt.Fprint(&s, cell)
	}
	return s.String()
}
