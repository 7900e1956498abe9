package contracts

import "errors"

type SheetRepository interface {
	SaveSheet(sheetId string, grid Grid) error
	GetSheet(sheetId string) (Grid, error)

	// SetCell writes one cell, creating the sheet and growing it as needed,
	// and returns the resulting grid.
	SetCell(sheetId string, row int, col int, value string) (Grid, error)
}

var SheetNotFoundError = errors.New("sheet not found")

var CellAddressError = errors.New("invalid cell address")
