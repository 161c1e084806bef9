package scrape

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/FredrickOdondi/recruitscout-scraper/internal/domain"
	"github.com/FredrickOdondi/recruitscout-scraper/internal/scrape/types"
)

// SourceStatus is one source's outcome within a single aggregation call.
type SourceStatus struct {
	OK      bool   `json:"ok"`
	Count   int    `json:"count"`
	Dropped int    `json:"dropped,omitempty"` // records excluded for missing titles
	Error   string `json:"error,omitempty"`
}

// Report is the result of one aggregation call. Postings are ordered by
// requested source, each source's records in emission order. Statuses has
// exactly one entry per requested identifier, known or not.
type Report struct {
	Postings  []domain.JobPosting     `json:"postings"`
	Statuses  map[string]SourceStatus `json:"statuses"`
	ScrapedAt time.Time               `json:"scraped_at"`
}

// Engine fans one aggregation call out across source fetchers. It holds no
// state between calls and is safe for concurrent use.
type Engine struct {
	fetchers map[domain.Source]types.Fetcher
	timeout  time.Duration
}

// NewEngine resolves fetchers by their Name(); a fetcher whose name is not
// a recognized source identifier is ignored.
func NewEngine(timeout time.Duration, fetchers ...types.Fetcher) *Engine {
	m := make(map[domain.Source]types.Fetcher, len(fetchers))
	for _, f := range fetchers {
		if src, ok := domain.ParseSource(f.Name()); ok {
			m[src] = f
		}
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Engine{fetchers: m, timeout: timeout}
}

// Sources lists the identifiers the engine has a fetcher for.
func (e *Engine) Sources() []domain.Source {
	var out []domain.Source
	for _, src := range domain.AllSources() {
		if _, ok := e.fetchers[src]; ok {
			out = append(out, src)
		}
	}
	return out
}

type sourceOutcome struct {
	status   SourceStatus
	postings []domain.JobPosting
}

// Aggregate runs every requested source concurrently, each under its own
// timeout, and merges the results in requested order. A failing source
// contributes zero postings and a status entry with the cause; it never
// aborts its siblings. An empty request fails with ErrEmptyRequest and an
// entirely-unknown one with ErrNoValidSources.
func (e *Engine) Aggregate(ctx context.Context, requested []string) (*Report, error) {
	// Collapse duplicates, keeping first-occurrence order.
	var order []string
	dup := map[string]bool{}
	for _, raw := range requested {
		key := strings.ToLower(strings.TrimSpace(raw))
		if key == "" || dup[key] {
			continue
		}
		dup[key] = true
		order = append(order, raw)
	}
	if len(order) == 0 {
		return nil, ErrEmptyRequest
	}

	statuses := make(map[string]SourceStatus, len(order))

	type task struct {
		raw string
		src domain.Source
	}
	var tasks []task
	for _, raw := range order {
		src, ok := domain.ParseSource(raw)
		if !ok {
			statuses[raw] = SourceStatus{Error: (&UnknownSourceError{Requested: raw}).Error()}
			continue
		}
		if _, ok := e.fetchers[src]; !ok {
			statuses[raw] = SourceStatus{Error: (&UnknownSourceError{Requested: raw}).Error()}
			continue
		}
		tasks = append(tasks, task{raw: raw, src: src})
	}
	if len(tasks) == 0 {
		return nil, ErrNoValidSources
	}

	outcomes := make([]sourceOutcome, len(tasks))

	var g errgroup.Group
	for i, t := range tasks {
		i, t := i, t
		g.Go(func() error {
			fctx, cancel := context.WithTimeout(ctx, e.timeout)
			defer cancel()

			res, err := e.runFetcher(fctx, e.fetchers[t.src])
			if err != nil {
				xerr := &ExtractionError{Source: t.src, Cause: err}
				log.Printf("[%s] %v", t.src, xerr)
				outcomes[i] = sourceOutcome{status: SourceStatus{Error: xerr.Error()}}
				return nil // best-effort: don't cancel siblings
			}

			var postings []domain.JobPosting
			dropped := 0
			for _, raw := range res.Records {
				p, ok := Normalize(raw, t.src)
				if !ok {
					dropped++
					continue
				}
				postings = append(postings, p)
			}

			outcomes[i] = sourceOutcome{
				status:   SourceStatus{OK: true, Count: len(postings), Dropped: dropped},
				postings: postings,
			}
			return nil
		})
	}
	_ = g.Wait()

	rep := &Report{Statuses: statuses, ScrapedAt: time.Now().UTC()}
	for i, t := range tasks {
		statuses[t.raw] = outcomes[i].status
		rep.Postings = append(rep.Postings, outcomes[i].postings...)
	}
	return rep, nil
}

// runFetcher isolates a fetcher: a panic inside one source becomes that
// source's error instead of a process fault.
func (e *Engine) runFetcher(ctx context.Context, f types.Fetcher) (res types.ScrapeResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return f.Fetch(ctx)
}
