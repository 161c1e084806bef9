package httpapi

import (
	"context"
	"sync/atomic"

	"github.com/FredrickOdondi/recruitscout-scraper/internal/config"
	"github.com/FredrickOdondi/recruitscout-scraper/internal/events"
	"github.com/FredrickOdondi/recruitscout-scraper/internal/scrape"
)

type Deps struct {
	Hub *events.Hub

	// Atomic stores
	CfgVal     *atomic.Value // stores config.Config
	LastReport *atomic.Value // stores *scrape.Report

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	// Aggregation entrypoint (inject for testability). Receives the
	// config snapshot current at call time so a saved config applies
	// to the next run.
	Aggregate func(ctx context.Context, cfg config.Config, requested []string) (*scrape.Report, error)
}
