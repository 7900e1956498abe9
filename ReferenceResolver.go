package main

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tristan-mcinnis/AI-Spreadsheets/contracts"
)

// ReferenceResolver reads the cell addressed by an A1-style token out of a
// grid snapshot. References are case-sensitive: lowercase tokens are not
// addresses.
type ReferenceResolver struct {
	codec      *ColumnCodec
	refPattern *regexp.Regexp
}

func NewReferenceResolver(codec *ColumnCodec) *ReferenceResolver {
	return &ReferenceResolver{
		codec:      codec,
		refPattern: regexp.MustCompile(`^([A-Z]+)(\d+)$`),
	}
}

// Resolve returns the referenced cell's text. A token that does not look like
// a cell reference is returned as-is: the first argument of HF() may be an
// inline literal instead of a reference. An address outside the grid's ragged
// bounds resolves to the empty string.
func (r *ReferenceResolver) Resolve(token string, grid contracts.Grid) string {
	token = strings.TrimSpace(token)

	match := r.refPattern.FindStringSubmatch(token)
	if match == nil {
		return token
	}

	col, err := r.codec.LetterToIndex(match[1])
	if err != nil {
		return ""
	}

	row, err := strconv.Atoi(match[2])
	if err != nil {
		return ""
	}
	// rows are 1-based in the textual form
	row--

	value, ok := grid.At(row, col)
	if !ok {
		return ""
	}

	return value
}
