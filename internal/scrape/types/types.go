package types

import (
	"context"

	"github.com/FredrickOdondi/recruitscout-scraper/internal/domain"
)

// ScrapeResult is one source's full output for one extraction pass.
type ScrapeResult struct {
	Source  domain.Source
	Records []domain.RawRecord
}

// Fetcher is implemented once per job board. Name() must return the
// source identifier the engine resolves the fetcher by.
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context) (ScrapeResult, error)
}
