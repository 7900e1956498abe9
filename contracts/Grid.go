package contracts

import (
	"fmt"
	"strconv"
)

// Grid is a row-major sheet snapshot. Rows may have different lengths, so
// readers must go through the safe accessors. A Grid handed to a processing
// pass is never mutated; new values are produced by building a new Grid.
type Grid [][]string

const DefaultRowCount = 10
const DefaultColCount = 10

func (g Grid) RowCount() int {
	return len(g)
}

func (g Grid) ColCount(row int) int {
	if row < 0 || row >= len(g) {
		return 0
	}

	return len(g[row])
}

// At reads a cell by zero-based address. The second return reports whether
// the address is inside the grid's ragged bounds.
func (g Grid) At(row int, col int) (string, bool) {
	if row < 0 || row >= len(g) {
		return "", false
	}

	if col < 0 || col >= len(g[row]) {
		return "", false
	}

	return g[row][col], true
}

// NewGrid converts decoded JSON rows into a Grid, stringifying every cell.
func NewGrid(rows [][]any) Grid {
	grid := make(Grid, len(rows))

	for rowIndex, row := range rows {
		grid[rowIndex] = make([]string, len(row))
		for colIndex, value := range row {
			grid[rowIndex][colIndex] = CellText(value)
		}
	}

	return grid
}

func NewEmptyGrid(rowCount int, colCount int) Grid {
	grid := make(Grid, rowCount)

	for rowIndex := range grid {
		grid[rowIndex] = make([]string, colCount)
	}

	return grid
}

// CellText renders a decoded JSON value the way the sheet stores it.
func CellText(value any) string {
	switch typedValue := value.(type) {
	case nil:
		return ""
	case string:
		return typedValue
	case bool:
		return strconv.FormatBool(typedValue)
	case float64:
		return strconv.FormatFloat(typedValue, 'f', -1, 64)
	case int:
		return strconv.Itoa(typedValue)
	case int64:
		return strconv.FormatInt(typedValue, 10)
	default:
		return fmt.Sprint(typedValue)
	}
}
