package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tristan-mcinnis/AI-Spreadsheets/contracts"
)

func TestXlsxCodec(t *testing.T) {
	codec := NewXlsxCodec()

	t.Run("round trip", func(t *testing.T) {
		grid := contracts.Grid{
			{"hello", "world"},
			{"1", "2"},
		}

		data, err := codec.Export(grid)
		assert.NoError(t, err)
		assert.NotEmpty(t, data)

		actual, err := codec.Import(bytes.NewReader(data))
		assert.NoError(t, err)
		assert.Equal(t, grid, actual)
	})

	t.Run("ragged rows survive the round trip", func(t *testing.T) {
		grid := contracts.Grid{
			{"a", "b", "c"},
			{"d"},
		}

		data, err := codec.Export(grid)
		assert.NoError(t, err)

		actual, err := codec.Import(bytes.NewReader(data))
		assert.NoError(t, err)
		assert.Equal(t, grid, actual)
	})

	t.Run("formula text exported as plain text", func(t *testing.T) {
		grid := contracts.Grid{
			{`=HF(A1,"gpt-4o","Summarize")`},
		}

		data, err := codec.Export(grid)
		assert.NoError(t, err)

		actual, err := codec.Import(bytes.NewReader(data))
		assert.NoError(t, err)
		assert.Equal(t, grid, actual)
	})

	t.Run("invalid workbook data", func(t *testing.T) {
		_, err := codec.Import(bytes.NewReader([]byte("not a workbook")))

		assert.Error(t, err)
	})
}
