package main

import (
	"regexp"
	"strings"

	"github.com/tristan-mcinnis/AI-Spreadsheets/contracts"
)

const FormulaPrefix = "=HF("

// hfCallPattern accepts =HF(<ref-or-literal>, "<model>", "<prompt>"). The
// first argument runs to the first comma, so it cannot itself contain one.
var hfCallPattern = regexp.MustCompile(`^=HF\(([^,]+),\s*"([^"]+)",\s*"([^"]+)"\)`)

type FormulaParser struct {
	pattern *regexp.Regexp
}

func NewFormulaParser() *FormulaParser {
	return &FormulaParser{pattern: hfCallPattern}
}

// IsFormula reports whether the cell text attempts an HF() call. Formula-ness
// is a property of the raw text, tested on demand; cells carry no type tag.
// A cell that starts the call form but fails the full grammar is still a
// formula, so its evaluation can report a malformed-formula diagnostic.
func (p *FormulaParser) IsFormula(cellText string) bool {
	return strings.HasPrefix(strings.TrimSpace(cellText), FormulaPrefix)
}

// Parse extracts the call arguments, or returns nil when the text does not
// match the grammar. Content after the closing paren is ignored.
func (p *FormulaParser) Parse(cellText string) *contracts.ParsedCall {
	match := p.pattern.FindStringSubmatch(strings.TrimSpace(cellText))
	if match == nil {
		return nil
	}

	return &contracts.ParsedCall{
		ReferenceToken: strings.TrimSpace(match[1]),
		ModelId:        strings.TrimSpace(match[2]),
		PromptText:     strings.TrimSpace(match[3]),
	}
}
