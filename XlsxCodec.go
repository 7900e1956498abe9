package main

import (
	"io"

	"github.com/tristan-mcinnis/AI-Spreadsheets/contracts"
	"github.com/xuri/excelize/v2"
)

const xlsxSheetName = "Sheet1"

// XlsxCodec converts grids to and from .xlsx workbooks for the import/export
// endpoints. Only cell text survives the round trip; formatting does not.
type XlsxCodec struct{}

func NewXlsxCodec() *XlsxCodec {
	return &XlsxCodec{}
}

func (x *XlsxCodec) Export(grid contracts.Grid) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	for rowIndex, row := range grid {
		for colIndex, cell := range row {
			cellName, err := excelize.CoordinatesToCellName(colIndex+1, rowIndex+1)
			if err != nil {
				return nil, err
			}

			if err = file.SetCellStr(xlsxSheetName, cellName, cell); err != nil {
				return nil, err
			}
		}
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}

func (x *XlsxCodec) Import(reader io.Reader) (contracts.Grid, error) {
	file, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	rows, err := file.GetRows(file.GetSheetName(0))
	if err != nil {
		return nil, err
	}

	return contracts.Grid(rows), nil
}
