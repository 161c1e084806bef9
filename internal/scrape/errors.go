package scrape

import (
	"errors"
	"fmt"

	"github.com/FredrickOdondi/recruitscout-scraper/internal/domain"
)

// ErrEmptyRequest is fatal to an aggregation call: nothing was requested.
var ErrEmptyRequest = errors.New("no sources requested")

// ErrNoValidSources is fatal too: every requested identifier was unknown.
var ErrNoValidSources = errors.New("no recognized sources requested")

// UnknownSourceError marks one requested identifier that is not in the
// enumerated source set. Recorded per source, never fatal on its own.
type UnknownSourceError struct {
	Requested string
}

func (e *UnknownSourceError) Error() string {
	return fmt.Sprintf("unknown source %q", e.Requested)
}

// ExtractionError wraps whatever took one source down: network failure,
// timeout, bad markup. Recorded per source; siblings keep running.
type ExtractionError struct {
	Source domain.Source
	Cause  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s: extraction failed: %v", e.Source, e.Cause)
}

func (e *ExtractionError) Unwrap() error { return e.Cause }
