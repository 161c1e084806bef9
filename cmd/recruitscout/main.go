package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"github.com/joho/godotenv"

	"github.com/FredrickOdondi/recruitscout-scraper/internal/config"
	"github.com/FredrickOdondi/recruitscout-scraper/internal/events"
	"github.com/FredrickOdondi/recruitscout-scraper/internal/httpapi"
	"github.com/FredrickOdondi/recruitscout-scraper/internal/scrape"
	"github.com/FredrickOdondi/recruitscout-scraper/internal/scrape/util"
)

func main() {
	_ = godotenv.Load()

	dataDir := os.Getenv("RECRUITSCOUT_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	userCfgPath, err := config.EnsureUserConfig(dataDir)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	// Load config and keep it reloadable
	var cfgVal atomic.Value // stores config.Config
	loadCfg := func() (config.Config, error) {
		cfg, err := config.Load(userCfgPath)
		if err != nil {
			return cfg, err
		}
		if err := config.ApplyEnv(&cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}
	cfg, err := loadCfg()
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	vr := config.Validate(cfg)
	if !vr.OK() {
		log.Fatalf("config invalid (%s): %v", userCfgPath, vr.Errors)
	}
	for _, warn := range vr.Warnings {
		log.Printf("level=warn msg=%q", warn)
	}
	cfgVal.Store(cfg)

	hub := events.NewHub()
	var lastReport atomic.Value // stores *scrape.Report

	// The engine is rebuilt from the config snapshot on every run, so
	// a PUT /config takes effect on the next scrape without a restart.
	aggregate := func(ctx context.Context, cfg config.Config, requested []string) (*scrape.Report, error) {
		limiter := util.NewHostLimiter(cfg.Scrape.HostReqPerSec, cfg.Scrape.HostBurst)
		return scrape.EngineFromConfig(cfg, limiter).Aggregate(ctx, requested)
	}

	mux := httpapi.NewMux(httpapi.Deps{
		Hub:         hub,
		CfgVal:      &cfgVal,
		LastReport:  &lastReport,
		UserCfgPath: userCfgPath,
		LoadCfg:     loadCfg,
		Aggregate:   aggregate,
	})
	handler := httpapi.Chain(mux,
		httpapi.RequestID,
		httpapi.Recover,
		httpapi.AccessLog,
		httpapi.Cors,
	)

	addr := fmt.Sprintf("%s:%d", cfg.App.Addr, cfg.App.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("recruitscout listening on http://%s (config=%s sources=%v)",
		ln.Addr(), userCfgPath, scrape.EngineFromConfig(cfg, nil).Sources())

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Fatal(srv.Serve(ln))
}
