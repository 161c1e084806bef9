// Package export serializes aggregated postings to CSV. The caller passes
// an explicit posting slice; nothing here reaches for shared state.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/FredrickOdondi/recruitscout-scraper/internal/domain"
)

// Header is the fixed CSV column set. Order and spelling are part of the
// export contract.
var Header = []string{"job_title", "date_posted", "status", "website"}

// Write emits a header row and one RFC 4180 row per posting.
func Write(w io.Writer, postings []domain.JobPosting) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("csv header: %w", err)
	}
	for _, p := range postings {
		row := []string{p.JobTitle, p.DatePosted, p.Status, string(p.Website)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Read parses a document produced by Write back into postings. Mostly for
// round-trip checks; rejects any header drift.
func Read(r io.Reader) ([]domain.JobPosting, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	head, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("csv header: %w", err)
	}
	for i, col := range Header {
		if head[i] != col {
			return nil, fmt.Errorf("csv header mismatch: got %q want %q", head[i], col)
		}
	}

	var out []domain.JobPosting
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv row: %w", err)
		}
		out = append(out, domain.JobPosting{
			JobTitle:   row[0],
			DatePosted: row[1],
			Status:     row[2],
			Website:    domain.Source(row[3]),
		})
	}
	return out, nil
}

// Filename builds the attachment name used by the export endpoint.
func Filename(t time.Time) string {
	return "jobs_" + t.Format("20060102_150405") + ".csv"
}
