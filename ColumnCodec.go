package main

import (
	"errors"
	"fmt"
)

// ColumnCodec converts between spreadsheet column letters and zero-based
// column indices. The encoding is base-26 with A=1..Z=26 and no digit for
// zero, matching spreadsheet column numbering: A=0, Z=25, AA=26.
type ColumnCodec struct{}

var InvalidColumnError = errors.New("invalid column letters")

func NewColumnCodec() *ColumnCodec {
	return &ColumnCodec{}
}

func (c *ColumnCodec) LetterToIndex(letters string) (int, error) {
	if letters == "" {
		return 0, fmt.Errorf("%w: empty input", InvalidColumnError)
	}

	index := 0
	for _, letter := range letters {
		if letter < 'A' || letter > 'Z' {
			return 0, fmt.Errorf("%w: %q", InvalidColumnError, letters)
		}
		index = index*26 + int(letter-'A') + 1
	}

	return index - 1, nil
}

// IndexToLetter is the inverse of LetterToIndex. Negative indices map to the
// empty string.
func (c *ColumnCodec) IndexToLetter(index int) string {
	if index < 0 {
		return ""
	}

	letters := make([]byte, 0, 3)
	for index >= 0 {
		letters = append(letters, byte('A'+index%26))
		index = index/26 - 1
	}

	for i, j := 0, len(letters)-1; i < j; i, j = i+1, j-1 {
		letters[i], letters[j] = letters[j], letters[i]
	}

	return string(letters)
}
