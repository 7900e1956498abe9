package main

import (
	"sync"

	"github.com/tristan-mcinnis/AI-Spreadsheets/contracts"
)

const ProcessWorkersCount = 5

const MalformedFormulaDiagnostic = "Error: Invalid HF function format"

const EmptyReferenceDiagnostic = "Error: Referenced cell is empty"

const diagnosticPrefix = "Error: "

type SheetProcessor struct {
	parser   *FormulaParser
	resolver *ReferenceResolver
	backend  contracts.ExecutionBackend
}

type cellAddress struct {
	row int
	col int
}

func NewSheetProcessor(parser *FormulaParser, resolver *ReferenceResolver, backend contracts.ExecutionBackend) *SheetProcessor {
	return &SheetProcessor{
		parser:   parser,
		resolver: resolver,
		backend:  backend,
	}
}

// ProcessSheet builds a new grid of the same shape as the input. Every
// formula cell resolves its reference against the input snapshot, never the
// partially built output, so evaluation order cannot change the result and
// formula cells can be fanned out to a bounded worker pool. A formula
// referencing another formula cell therefore sees raw formula text.
func (s *SheetProcessor) ProcessSheet(grid contracts.Grid) contracts.Grid {
	output := make(contracts.Grid, len(grid))
	formulaCells := make([]cellAddress, 0)

	for rowIndex, row := range grid {
		output[rowIndex] = make([]string, len(row))
		copy(output[rowIndex], row)

		for colIndex, cell := range row {
			if s.parser.IsFormula(cell) {
				formulaCells = append(formulaCells, cellAddress{row: rowIndex, col: colIndex})
			}
		}
	}

	if len(formulaCells) == 0 {
		return output
	}

	jobs := make(chan cellAddress, len(formulaCells))
	for _, address := range formulaCells {
		jobs <- address
	}
	close(jobs)

	workers := ProcessWorkersCount
	if workers > len(formulaCells) {
		workers = len(formulaCells)
	}

	var waitGroup sync.WaitGroup
	waitGroup.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer waitGroup.Done()
			// workers never write to the same cell, so no locking is needed
			for address := range jobs {
				output[address.row][address.col] = s.evaluate(grid[address.row][address.col], grid)
			}
		}()
	}
	waitGroup.Wait()

	return output
}

// ProcessCell evaluates a single addressed cell against the grid snapshot.
// Out-of-range addresses yield an empty result rather than an error.
func (s *SheetProcessor) ProcessCell(row int, col int, grid contracts.Grid) string {
	cell, ok := grid.At(row, col)
	if !ok {
		return ""
	}

	if !s.parser.IsFormula(cell) {
		return cell
	}

	return s.evaluate(cell, grid)
}

// evaluate contains any failure at the cell: the diagnostic becomes the
// cell's value and never aborts the rest of the pass.
func (s *SheetProcessor) evaluate(cellText string, grid contracts.Grid) string {
	call := s.parser.Parse(cellText)
	if call == nil {
		return MalformedFormulaDiagnostic
	}

	text := s.resolver.Resolve(call.ReferenceToken, grid)
	if text == "" {
		return EmptyReferenceDiagnostic
	}

	result, err := s.backend.Generate(text, call.PromptText)
	if err != nil {
		return diagnosticPrefix + err.Error()
	}

	return result
}
