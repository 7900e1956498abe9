package main

import (
	"errors"
	"fmt"

	"github.com/tristan-mcinnis/AI-Spreadsheets/contracts"
	"go.etcd.io/bbolt"
)

var sheetsBucket = []byte("sheets")

// SheetRepository stores whole grids keyed by sheet id in a single bbolt
// bucket. The repository owns persistence only; evaluation happens in the
// processor against grids read from here.
type SheetRepository struct {
	db         *bbolt.DB
	serializer contracts.GridSerializer
}

func NewSheetRepository(db *bbolt.DB, serializer contracts.GridSerializer) *SheetRepository {
	return &SheetRepository{
		db:         db,
		serializer: serializer,
	}
}

func (s *SheetRepository) SaveSheet(sheetId string, grid contracts.Grid) error {
	data, err := s.serializer.Marshal(grid)
	if err != nil {
		return err
	}

	return s.db.Batch(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(sheetsBucket)
		if err != nil {
			return err
		}

		return bucket.Put([]byte(sheetId), data)
	})
}

func (s *SheetRepository) GetSheet(sheetId string) (grid contracts.Grid, err error) {
	err = s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(sheetsBucket)
		if bucket == nil {
			return fmt.Errorf("%s: %w", sheetId, contracts.SheetNotFoundError)
		}

		data := bucket.Get([]byte(sheetId))
		if data == nil {
			return fmt.Errorf("%s: %w", sheetId, contracts.SheetNotFoundError)
		}

		grid, err = s.serializer.Unmarshal(data)
		return err
	})

	return
}

// SetCell writes one cell, creating the sheet and growing rows and columns as
// needed. Appended rows take the width of the first row; only the target row
// is extended column-wise, so rows may stay ragged.
func (s *SheetRepository) SetCell(sheetId string, row int, col int, value string) (contracts.Grid, error) {
	if row < 0 || col < 0 {
		return nil, fmt.Errorf("(%d, %d): %w", row, col, contracts.CellAddressError)
	}

	grid, err := s.GetSheet(sheetId)
	if errors.Is(err, contracts.SheetNotFoundError) {
		grid = contracts.NewEmptyGrid(contracts.DefaultRowCount, contracts.DefaultColCount)
	} else if err != nil {
		return nil, err
	}

	rowWidth := contracts.DefaultColCount
	if len(grid) > 0 {
		rowWidth = len(grid[0])
	}

	for len(grid) <= row {
		grid = append(grid, make([]string, rowWidth))
	}
	for len(grid[row]) <= col {
		grid[row] = append(grid[row], "")
	}
	grid[row][col] = value

	return grid, s.SaveSheet(sheetId, grid)
}
