package main

import (
	"errors"
	"fmt"

	json "github.com/bytedance/sonic"
	"github.com/tristan-mcinnis/AI-Spreadsheets/contracts"
)

var SerializerError = errors.New("invalid serialized grid")

type GridJsonSerializer struct{}

func NewGridJsonSerializer() *GridJsonSerializer {
	return &GridJsonSerializer{}
}

func (s *GridJsonSerializer) Marshal(grid contracts.Grid) ([]byte, error) {
	return json.Marshal(grid)
}

func (s *GridJsonSerializer) Unmarshal(data []byte) (contracts.Grid, error) {
	grid := contracts.Grid{}

	if err := json.Unmarshal(data, &grid); err != nil {
		return nil, fmt.Errorf("%w: %s", SerializerError, err)
	}

	return grid, nil
}
