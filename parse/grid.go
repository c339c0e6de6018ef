package parse

// GridBuilder receives the cells of a grid while it's being parsed.
// Set returns false when (x, y) is outside of what the storage can
// hold.  Finalize is called once, after the last Set, to produce the
// grid value handed to the caller.
type GridBuilder[T, G any] interface {
	Set(x, y int, value T) bool
	Finalize() G
}

// Storage creates an empty GridBuilder.  It's called once per parse.
type Storage[T, G any] func() GridBuilder[T, G]

// Transform receives the raw coordinates of each parsed cell and
// returns where (and what) to store.  Returning false skips the
// cell.
type Transform[I, T any] func(x, y int, cell I) (int, int, T, bool)

// Identity stores every cell where it was found
func Identity[T any](x, y int, cell T) (int, int, T, bool) {
	return x, y, cell, true
}

// SubRegion keeps the `width` x `height` cells whose top left corner
// is at (`left`, `top`), moved to the origin.  It's handy to drop the
// border of a map.
func SubRegion[T any](left, top, width, height int) Transform[T, T] {
	return func(x, y int, cell T) (int, int, T, bool) {
		if x < left || y < top || x >= left+width || y >= top+height {
			return 0, 0, cell, false
		}
		return x - left, y - top, cell, true
	}
}

// Grid parses rows of cells separated by `rowSep`.  The number of
// cells in the first row fixes the width, and every following row
// must have exactly that many cells.
//
// The grid ends without an error when the separator doesn't match or
// when the first cell after a separator doesn't match.  In both cases
// the separator is left unconsumed.  A row that stops matching after
// its first cell fails the whole grid with the error of the cell
// parser.
//
// Cells go through `transform` before being written into the builder
// created by `storage`; writes the builder rejects fail with
// GridCellOutOfRange.  ExpectedGridCell is returned when the first
// row is empty.
func Grid[S, I, T, G any](rowSep Parser[S], cell Parser[I], transform Transform[I, T], storage Storage[T, G]) ParserFn[G] {
	return func(input []byte) (G, []byte, error) {
		var (
			zero    G
			builder = storage()
			rest    = input
			width   = 0
		)
		set := func(x, y int, value I) error {
			x, y, v, ok := transform(x, y, value)
			if !ok {
				return nil
			}
			if !builder.Set(x, y, v) {
				return ErrGridCellOutOfRange(x, y)
			}
			return nil
		}

		for {
			value, next, err := cell.Parse(rest)
			// cells that don't consume anything would never end the row
			if err != nil || len(next) == len(rest) {
				break
			}
			if err := set(width, 0, value); err != nil {
				return zero, input, err
			}
			rest = next
			width++
		}
		if width == 0 {
			return zero, input, ErrExpectedGridCell
		}

	rows:
		for y := 1; ; y++ {
			_, row, err := rowSep.Parse(rest)
			if err != nil {
				break
			}
			for x := 0; x < width; x++ {
				value, next, err := cell.Parse(row)
				if err != nil {
					if x == 0 {
						break rows
					}
					return zero, next, err
				}
				if err := set(x, y, value); err != nil {
					return zero, input, err
				}
				row = next
			}
			rest = row
		}
		return builder.Finalize(), rest, nil
	}
}
