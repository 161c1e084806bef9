package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/FredrickOdondi/recruitscout-scraper/internal/config"
	"github.com/FredrickOdondi/recruitscout-scraper/internal/domain"
	"github.com/FredrickOdondi/recruitscout-scraper/internal/events"
	"github.com/FredrickOdondi/recruitscout-scraper/internal/scrape"
)

type ScrapeHandler struct {
	Hub        *events.Hub
	CfgVal     *atomic.Value // stores config.Config
	LastReport *atomic.Value // stores *scrape.Report
	Aggregate  func(ctx context.Context, cfg config.Config, requested []string) (*scrape.Report, error)
}

type scrapeRequest struct {
	Websites []string `json:"websites"`
}

type scrapeResponse struct {
	Success   bool                           `json:"success"`
	Count     int                            `json:"count"`
	Data      []domain.JobPosting            `json:"data"`
	Sources   map[string]scrape.SourceStatus `json:"sources"`
	ScrapedAt string                         `json:"scraped_at"`
}

// Run triggers one aggregation call. An absent or empty websites list
// means "all recognized sources", matching the board-picker default.
func (h ScrapeHandler) Run(w http.ResponseWriter, r *http.Request) {
	var req scrapeRequest
	if r.Body != nil && r.ContentLength != 0 {
		// Unknown keys are ignored so older UI builds keep working.
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid JSON: "+err.Error())
			return
		}
	}

	requested := req.Websites
	if len(requested) == 0 {
		for _, src := range domain.AllSources() {
			requested = append(requested, string(src))
		}
	}

	cfg := h.CfgVal.Load().(config.Config)
	rep, err := h.Aggregate(r.Context(), cfg, requested)
	if err != nil {
		switch {
		case errors.Is(err, scrape.ErrEmptyRequest):
			WriteError(w, r, http.StatusBadRequest, "empty_request", err.Error())
		case errors.Is(err, scrape.ErrNoValidSources):
			WriteError(w, r, http.StatusBadRequest, "unknown_sources", err.Error())
		default:
			WriteError(w, r, http.StatusInternalServerError, "aggregate_failed", err.Error())
		}
		return
	}

	h.LastReport.Store(rep)

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, "scrape_completed", 1, map[string]any{
		"count": len(rep.Postings),
	}))

	data := rep.Postings
	if data == nil {
		data = []domain.JobPosting{}
	}
	writeJSON(w, scrapeResponse{
		Success:   true,
		Count:     len(rep.Postings),
		Data:      data,
		Sources:   rep.Statuses,
		ScrapedAt: rep.ScrapedAt.Format(time.RFC3339),
	})
}
