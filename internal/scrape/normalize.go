package scrape

import (
	"github.com/FredrickOdondi/recruitscout-scraper/internal/domain"
	"github.com/FredrickOdondi/recruitscout-scraper/internal/scrape/util"
)

// Normalize maps a raw source record into the canonical posting schema.
// Records without a title are dropped (second return false); the engine
// counts drops per source. A missing date stays empty rather than being
// synthesized, and a missing status defaults to "Active".
func Normalize(raw domain.RawRecord, src domain.Source) (domain.JobPosting, bool) {
	title := util.CleanText(raw.Title)
	if title == "" {
		return domain.JobPosting{}, false
	}

	status := util.CleanText(raw.Status)
	if status == "" {
		status = "Active"
	}

	return domain.JobPosting{
		JobTitle:   title,
		DatePosted: util.CleanText(raw.Date),
		Status:     status,
		Website:    src,
	}, true
}
