package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tristan-mcinnis/AI-Spreadsheets/contracts"
	"go.etcd.io/bbolt"
)

func _makeSheetRepository(t *testing.T) (*SheetRepository, *bbolt.DB) {
	db, err := bbolt.Open(filepath.Join(t.TempDir(), "sheets.db"), 0600, nil)
	assert.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewSheetRepository(db, NewGridJsonSerializer()), db
}

func TestSheetRepository_SaveAndGetSheet(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		repository, _ := _makeSheetRepository(t)

		grid := contracts.Grid{
			{"hello", "world"},
			{"ragged"},
			{"", `=HF(A1,"gpt-4o","Summarize")`},
		}

		assert.NoError(t, repository.SaveSheet("sheet1", grid))

		stored, err := repository.GetSheet("sheet1")

		assert.NoError(t, err)
		assert.Equal(t, grid, stored)
	})

	t.Run("overwrite", func(t *testing.T) {
		repository, _ := _makeSheetRepository(t)

		assert.NoError(t, repository.SaveSheet("sheet1", contracts.Grid{{"old"}}))
		assert.NoError(t, repository.SaveSheet("sheet1", contracts.Grid{{"new"}}))

		stored, err := repository.GetSheet("sheet1")

		assert.NoError(t, err)
		assert.Equal(t, contracts.Grid{{"new"}}, stored)
	})

	t.Run("sheet not found", func(t *testing.T) {
		repository, _ := _makeSheetRepository(t)

		_, err := repository.GetSheet("missing")

		assert.Error(t, err)
		assert.ErrorIs(t, err, contracts.SheetNotFoundError)
	})

	t.Run("sheet ids are independent", func(t *testing.T) {
		repository, _ := _makeSheetRepository(t)

		assert.NoError(t, repository.SaveSheet("sheet1", contracts.Grid{{"one"}}))
		assert.NoError(t, repository.SaveSheet("sheet2", contracts.Grid{{"two"}}))

		stored, err := repository.GetSheet("sheet2")

		assert.NoError(t, err)
		assert.Equal(t, contracts.Grid{{"two"}}, stored)
	})

	t.Run("corrupted stored data", func(t *testing.T) {
		repository, db := _makeSheetRepository(t)

		err := db.Update(func(tx *bbolt.Tx) error {
			bucket, err := tx.CreateBucketIfNotExists(sheetsBucket)
			if err != nil {
				return err
			}
			return bucket.Put([]byte("broken"), []byte("not json"))
		})
		assert.NoError(t, err)

		_, err = repository.GetSheet("broken")

		assert.Error(t, err)
		assert.ErrorIs(t, err, SerializerError)
	})
}

func TestSheetRepository_SetCell(t *testing.T) {
	t.Run("creates default sized sheet when absent", func(t *testing.T) {
		repository, _ := _makeSheetRepository(t)

		grid, err := repository.SetCell("sheet1", 2, 3, "value")

		assert.NoError(t, err)
		assert.Len(t, grid, contracts.DefaultRowCount)
		assert.Len(t, grid[0], contracts.DefaultColCount)
		assert.Equal(t, "value", grid[2][3])

		stored, err := repository.GetSheet("sheet1")
		assert.NoError(t, err)
		assert.Equal(t, grid, stored)
	})

	t.Run("updates existing cell in place", func(t *testing.T) {
		repository, _ := _makeSheetRepository(t)

		assert.NoError(t, repository.SaveSheet("sheet1", contracts.Grid{{"a", "b"}}))

		grid, err := repository.SetCell("sheet1", 0, 1, "updated")

		assert.NoError(t, err)
		assert.Equal(t, contracts.Grid{{"a", "updated"}}, grid)
	})

	t.Run("appends rows with the first row's width", func(t *testing.T) {
		repository, _ := _makeSheetRepository(t)

		assert.NoError(t, repository.SaveSheet("sheet1", contracts.Grid{{"a", "b", "c"}}))

		grid, err := repository.SetCell("sheet1", 2, 0, "value")

		assert.NoError(t, err)
		assert.Len(t, grid, 3)
		assert.Len(t, grid[1], 3)
		assert.Len(t, grid[2], 3)
		assert.Equal(t, "value", grid[2][0])
	})

	t.Run("extends only the target row column-wise", func(t *testing.T) {
		repository, _ := _makeSheetRepository(t)

		assert.NoError(t, repository.SaveSheet("sheet1", contracts.Grid{
			{"a"},
			{"b"},
		}))

		grid, err := repository.SetCell("sheet1", 1, 2, "value")

		assert.NoError(t, err)
		assert.Len(t, grid[0], 1)
		assert.Len(t, grid[1], 3)
		assert.Equal(t, "value", grid[1][2])
	})

	t.Run("negative address rejected", func(t *testing.T) {
		repository, _ := _makeSheetRepository(t)

		_, err := repository.SetCell("sheet1", -1, 0, "value")
		assert.ErrorIs(t, err, contracts.CellAddressError)

		_, err = repository.SetCell("sheet1", 0, -1, "value")
		assert.ErrorIs(t, err, contracts.CellAddressError)
	})
}
