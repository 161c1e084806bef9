package scrape

import (
	"time"

	"github.com/FredrickOdondi/recruitscout-scraper/internal/config"
	"github.com/FredrickOdondi/recruitscout-scraper/internal/domain"
	"github.com/FredrickOdondi/recruitscout-scraper/internal/scrape/arbeitnow"
	"github.com/FredrickOdondi/recruitscout-scraper/internal/scrape/markup"
	"github.com/FredrickOdondi/recruitscout-scraper/internal/scrape/types"
	"github.com/FredrickOdondi/recruitscout-scraper/internal/scrape/util"
)

// BuildFetchers assembles one fetcher per recognized source from config,
// sharing one per-host limiter across all of them.
func BuildFetchers(cfg config.Config, limiter *util.HostLimiter) []types.Fetcher {
	fetchers := []types.Fetcher{
		arbeitnow.New(arbeitnow.Config{
			URL:   cfg.Sources.Arbeitnow.URL,
			Pages: cfg.Sources.Arbeitnow.Pages,
		}, limiter),
	}

	markupURL := func(src domain.Source) string {
		switch src {
		case domain.SourceManfred:
			return cfg.Sources.Manfred.URL
		case domain.SourceBerlinStartup:
			return cfg.Sources.BerlinStartup.URL
		case domain.SourceJob4Good:
			return cfg.Sources.Job4Good.URL
		case domain.SourceTurijobs:
			return cfg.Sources.Turijobs.URL
		}
		return ""
	}

	for _, src := range domain.AllSources() {
		mc, ok := markup.SiteConfig(src)
		if !ok {
			continue
		}
		if u := markupURL(src); u != "" {
			mc.URL = u
		}
		fetchers = append(fetchers, markup.New(mc, limiter))
	}

	return fetchers
}

// EngineFromConfig builds an engine for one config snapshot. Callers
// rebuild per aggregation run, so a saved config governs the next scrape
// without a restart.
func EngineFromConfig(cfg config.Config, limiter *util.HostLimiter) *Engine {
	return NewEngine(
		time.Duration(cfg.Scrape.SourceTimeoutSeconds)*time.Second,
		BuildFetchers(cfg, limiter)...,
	)
}
