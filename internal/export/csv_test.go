package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FredrickOdondi/recruitscout-scraper/internal/domain"
)

func TestWriteHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil))
	assert.Equal(t, "job_title,date_posted,status,website\n", buf.String())
}

func TestWriteQuoting(t *testing.T) {
	postings := []domain.JobPosting{
		{
			JobTitle:   `Senior "Go" Engineer, Platform`,
			DatePosted: "2025-08-14",
			Status:     "Active",
			Website:    domain.SourceArbeitnow,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, postings))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "job_title,date_posted,status,website", lines[0])
	assert.Equal(t, `"Senior ""Go"" Engineer, Platform",2025-08-14,Active,arbeitnow`, lines[1])
}

func TestRoundTrip(t *testing.T) {
	postings := []domain.JobPosting{
		{
			JobTitle:   "Plain Title",
			DatePosted: "2025-08-01",
			Status:     "Active",
			Website:    domain.SourceArbeitnow,
		},
		{
			JobTitle:   `Comma, quote " and all`,
			DatePosted: `dates, with "quotes"`,
			Status:     "Active",
			Website:    domain.SourceManfred,
		},
		{
			JobTitle:   "Multi\nline\ntitle",
			DatePosted: "",
			Status:     "Filled",
			Website:    domain.SourceTurijobs,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, postings))

	back, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, postings, back)
}

func TestReadRejectsHeaderDrift(t *testing.T) {
	_, err := Read(strings.NewReader("title,date,status,site\na,b,c,d\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "header mismatch")
}

func TestFilename(t *testing.T) {
	tm, err := time.Parse(time.RFC3339, "2025-08-14T09:30:05Z")
	require.NoError(t, err)
	assert.Equal(t, "jobs_20250814_093005.csv", Filename(tm))
}
