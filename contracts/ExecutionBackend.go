package contracts

import "errors"

// ExecutionBackend is the text-generation capability the sheet processor
// depends on. Generate may block on the network; it is the only side-effecting
// step in a processing pass.
type ExecutionBackend interface {
	Generate(text string, prompt string) (string, error)
}

var BackendRateLimitedError = errors.New("rate limit exceeded")

var BackendUnavailableError = errors.New("service unavailable")

var BackendProtocolError = errors.New("unexpected provider response")

var BackendUnexpectedError = errors.New("unexpected error")
