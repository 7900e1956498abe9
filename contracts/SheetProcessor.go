package contracts

type SheetProcessor interface {
	// ProcessSheet evaluates every formula cell against the input grid and
	// returns a new grid of the same shape. The input grid is never modified.
	ProcessSheet(grid Grid) Grid

	// ProcessCell evaluates a single addressed cell the same way. An
	// out-of-range address yields an empty result.
	ProcessCell(row int, col int, grid Grid) string
}
