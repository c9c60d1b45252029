package circulation

import (
	"time"

	"github.com/AntonStoeckl/library-bookrecord-go/bookstore"
	"github.com/AntonStoeckl/library-bookrecord-go/shell"
)

// HandlerResult represents the outcome of a command handler execution.
type HandlerResult struct {
	// Version is the stored version after the command, 0 if nothing was written.
	Version bookstore.VersionUint

	// RetryAttempts is the total number of attempts made (1 for no retries, 2+ for retries).
	RetryAttempts int

	// TotalRetryDelay is the cumulative time spent in retry backoff delays.
	TotalRetryDelay time.Duration

	// LastErrorType describes the type of the final error encountered during retries.
	LastErrorType string
}

// ReturnResult is the HandlerResult of RemoveBorrower together with who returned the book and who holds it now.
type ReturnResult struct {
	HandlerResult
	ReturnOutcome
}

func newHandlerResult(version bookstore.VersionUint, meta shell.RetryMetadata) HandlerResult {
	return HandlerResult{
		Version:         version,
		RetryAttempts:   meta.Attempts,
		TotalRetryDelay: meta.TotalDelay,
		LastErrorType:   meta.LastErrorType,
	}
}
