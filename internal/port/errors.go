package port

import "errors"

// Sentinel errors used across ports. Handlers translate these into HTTP
// status codes; everything else is treated as an internal error.
var (
	// ErrEmptyLogFile means an upload contained zero lines.
	ErrEmptyLogFile = errors.New("log file is empty")

	// ErrNotReady means no log file has been analyzed in this session yet.
	ErrNotReady = errors.New("no log file has been analyzed yet")

	// ErrProviderUnavailable marks failures of the embedding or chat
	// provider, including unparseable responses. Callers may retry.
	ErrProviderUnavailable = errors.New("ai provider unavailable")
)
