package llm

import "errors"

// The client maps every failure onto one of these sentinels so callers can
// decide between falling back and surfacing the error without inspecting
// transport details.
var (
	// ErrOllamaUnavailable indicates the Ollama server is unreachable.
	ErrOllamaUnavailable = errors.New("ollama server unavailable")

	// ErrTimeout indicates the request exceeded the task's configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrRetryExhausted wraps the last underlying error after all attempts
	// failed for a reason other than timeout or connectivity.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")
)
