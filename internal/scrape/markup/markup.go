// Package markup implements the heuristic HTML job-board extractor. Boards
// without an API get a per-site Rules table: ordered selector candidates
// tried in priority order, first match wins. The tables are plain data so
// extraction is testable against static fixtures without any network.
package markup

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/FredrickOdondi/recruitscout-scraper/internal/domain"
	"github.com/FredrickOdondi/recruitscout-scraper/internal/scrape/types"
	"github.com/FredrickOdondi/recruitscout-scraper/internal/scrape/util"
)

// Rules drives extraction for one site. Selector lists are candidate
// chains: the first selector that matches anything wins.
type Rules struct {
	Listing []string // candidates for the listing container set
	Title   []string // per-listing title candidates
	Date    []string // per-listing posted-date candidates; empty text when none match
	Status  []string // per-listing status candidates; normalizer defaults to Active

	Skip     []string // lowercase phrases marking navigation/junk titles
	MinTitle int      // titles shorter than this are junk
	MaxItems int      // cap on listings taken from one page; <=0 means no cap
}

type Config struct {
	Source domain.Source
	URL    string
	Rules  Rules
}

type Scraper struct {
	cfg     Config
	hc      *http.Client
	limiter *util.HostLimiter
}

func New(cfg Config, limiter *util.HostLimiter) *Scraper {
	return &Scraper{
		cfg:     cfg,
		// No client timeout here: each run gets a per-source deadline
		// from the aggregation context, sized by configuration.
		hc:      &http.Client{},
		limiter: limiter,
	}
}

func (s *Scraper) Name() string { return string(s.cfg.Source) }

func (s *Scraper) Fetch(ctx context.Context) (types.ScrapeResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.URL, nil)
	if err != nil {
		return types.ScrapeResult{}, fmt.Errorf("%s build request: %w", s.cfg.Source, err)
	}
	req.Header.Set("User-Agent", "RecruitScout/1.0 (+local)")

	if s.limiter != nil {
		if err := s.limiter.WaitURL(ctx, s.cfg.URL); err != nil {
			return types.ScrapeResult{}, err
		}
	}

	res, err := s.hc.Do(req)
	if err != nil {
		return types.ScrapeResult{}, fmt.Errorf("%s get: %w", s.cfg.Source, err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return types.ScrapeResult{}, fmt.Errorf("%s status %d", s.cfg.Source, res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return types.ScrapeResult{}, fmt.Errorf("%s parse html: %w", s.cfg.Source, err)
	}

	return types.ScrapeResult{Source: s.cfg.Source, Records: Extract(doc, s.cfg.Rules)}, nil
}

// Extract applies a Rules table to a parsed document. Pure with respect to
// the document; fixture tests feed it static markup.
func Extract(doc *goquery.Document, r Rules) []domain.RawRecord {
	var listings *goquery.Selection
	for _, cand := range r.Listing {
		if s := doc.Find(cand); s.Length() > 0 {
			listings = s
			break
		}
	}
	if listings == nil {
		return nil
	}

	seen := map[string]bool{}
	var out []domain.RawRecord

	listings.EachWithBreak(func(_ int, item *goquery.Selection) bool {
		title := firstText(item, r.Title)
		if title == "" || len(title) < r.MinTitle {
			return true
		}
		if junkTitle(title, r.Skip) {
			return true
		}

		company := util.CompanyFromText(joinedText(item), title)

		key := strings.ToLower(title) + "|" + strings.ToLower(company)
		if seen[key] {
			return true
		}
		seen[key] = true

		out = append(out, domain.RawRecord{
			Title:   title,
			Date:    firstText(item, r.Date),
			Status:  firstText(item, r.Status),
			Company: company,
		})

		return r.MaxItems <= 0 || len(out) < r.MaxItems
	})

	return out
}

func firstText(item *goquery.Selection, candidates []string) string {
	for _, sel := range candidates {
		if s := item.Find(sel); s.Length() > 0 {
			if t := util.CleanText(s.First().Text()); t != "" {
				return t
			}
		}
	}
	return ""
}

func junkTitle(title string, skip []string) bool {
	lt := strings.ToLower(title)
	for _, s := range skip {
		if strings.Contains(lt, s) {
			return true
		}
	}
	return false
}

// joinedText renders a listing's text with a "|" between nodes, so the
// company fallback chain can pick off the trailing segment.
func joinedText(sel *goquery.Selection) string {
	var segs []string
	collectText(sel, &segs)
	return strings.Join(segs, "|")
}

func collectText(sel *goquery.Selection, segs *[]string) {
	sel.Contents().Each(func(_ int, c *goquery.Selection) {
		if goquery.NodeName(c) == "#text" {
			if t := util.CleanText(c.Text()); t != "" {
				*segs = append(*segs, t)
			}
			return
		}
		collectText(c, segs)
	})
}
