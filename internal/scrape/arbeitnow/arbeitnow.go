// Package arbeitnow fetches postings from the Arbeitnow job-board API.
// This is the one structured source: the endpoint returns JSON pages, so
// no markup heuristics are involved.
package arbeitnow

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/FredrickOdondi/recruitscout-scraper/internal/domain"
	"github.com/FredrickOdondi/recruitscout-scraper/internal/scrape/types"
	"github.com/FredrickOdondi/recruitscout-scraper/internal/scrape/util"
)

const DefaultURL = "https://www.arbeitnow.com/api/job-board-api"

type Config struct {
	URL   string
	Pages int // pagination depth; <=0 means first page only
}

type Scraper struct {
	cfg     Config
	hc      *http.Client
	limiter *util.HostLimiter
}

func New(cfg Config, limiter *util.HostLimiter) *Scraper {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.Pages <= 0 {
		cfg.Pages = 1
	}
	return &Scraper{
		cfg:     cfg,
		// No client timeout here: each run gets a per-source deadline
		// from the aggregation context, sized by configuration.
		hc:      &http.Client{},
		limiter: limiter,
	}
}

func (s *Scraper) Name() string { return string(domain.SourceArbeitnow) }

type apiPosting struct {
	Title       string `json:"title"`
	CompanyName string `json:"company_name"`
	CreatedAt   int64  `json:"created_at"` // unix seconds
}

type apiResponse struct {
	Data  []apiPosting `json:"data"`
	Links struct {
		Next string `json:"next"`
	} `json:"links"`
}

func (s *Scraper) Fetch(ctx context.Context) (types.ScrapeResult, error) {
	seen := map[string]bool{}
	var records []domain.RawRecord

	pageURL := s.cfg.URL
	for page := 0; page < s.cfg.Pages && pageURL != ""; page++ {
		resp, err := s.fetchPage(ctx, pageURL)
		if err != nil {
			return types.ScrapeResult{}, err
		}

		for _, p := range resp.Data {
			title := util.CleanText(p.Title)
			company := util.CleanText(p.CompanyName)
			if company == "" {
				company = "Unknown"
			}

			key := strings.ToLower(title) + "|" + strings.ToLower(company)
			if title != "" && seen[key] {
				continue
			}
			seen[key] = true

			date := ""
			if p.CreatedAt > 0 {
				date = time.Unix(p.CreatedAt, 0).UTC().Format("2006-01-02")
			}

			records = append(records, domain.RawRecord{
				Title:   title,
				Date:    date,
				Company: company,
			})
		}

		pageURL = resp.Links.Next
	}

	return types.ScrapeResult{Source: domain.SourceArbeitnow, Records: records}, nil
}

func (s *Scraper) fetchPage(ctx context.Context, pageURL string) (*apiResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("arbeitnow build request: %w", err)
	}
	req.Header.Set("User-Agent", "RecruitScout/1.0 (+local)")
	req.Header.Set("Accept", "application/json")

	if s.limiter != nil {
		if err := s.limiter.WaitURL(ctx, pageURL); err != nil {
			return nil, err
		}
	}

	res, err := s.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("arbeitnow get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("arbeitnow status %d", res.StatusCode)
	}

	var out apiResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("arbeitnow decode: %w", err)
	}
	return &out, nil
}
