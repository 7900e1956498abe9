package contracts

// ParsedCall is the decoded argument list of an HF() formula cell. ModelId is
// carried through as written in the cell; backends may substitute their own.
type ParsedCall struct {
	ReferenceToken string
	ModelId        string
	PromptText     string
}
