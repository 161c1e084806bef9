package domain

import "strings"

// Source identifies one of the job boards the engine knows how to scrape.
// The string value doubles as the `website` field on normalized postings.
type Source string

const (
	SourceArbeitnow     Source = "arbeitnow"
	SourceManfred       Source = "manfred"
	SourceBerlinStartup Source = "berlin-startup-jobs"
	SourceJob4Good      Source = "job4good"
	SourceTurijobs      Source = "turijobs"
)

// AllSources returns every recognized source, in canonical order.
func AllSources() []Source {
	return []Source{
		SourceArbeitnow,
		SourceManfred,
		SourceBerlinStartup,
		SourceJob4Good,
		SourceTurijobs,
	}
}

// ParseSource resolves a raw identifier string to a known Source.
func ParseSource(raw string) (Source, bool) {
	s := Source(strings.ToLower(strings.TrimSpace(raw)))
	switch s {
	case SourceArbeitnow, SourceManfred, SourceBerlinStartup, SourceJob4Good, SourceTurijobs:
		return s, true
	}
	return "", false
}

// RawRecord is one listing as a source emits it, before normalization.
// All fields are free text in whatever shape the board uses; Company is
// only used for in-source dedup and never reaches the canonical schema.
type RawRecord struct {
	Title   string
	Date    string
	Status  string
	Company string
}

// JobPosting is the canonical, source-agnostic listing. Immutable once
// built; JobTitle is never empty in engine output.
type JobPosting struct {
	JobTitle   string `json:"job_title"`
	DatePosted string `json:"date_posted"`
	Status     string `json:"status"`
	Website    Source `json:"website"`
}
