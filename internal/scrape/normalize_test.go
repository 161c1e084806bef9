package scrape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FredrickOdondi/recruitscout-scraper/internal/domain"
)

func TestNormalizeFullRecord(t *testing.T) {
	p, ok := Normalize(domain.RawRecord{
		Title:  "  Backend Engineer ",
		Date:   " 2025-06-01 ",
		Status: "Closed",
	}, domain.SourceArbeitnow)
	require.True(t, ok)

	assert.Equal(t, "Backend Engineer", p.JobTitle)
	assert.Equal(t, "2025-06-01", p.DatePosted)
	assert.Equal(t, "Closed", p.Status)
	assert.Equal(t, domain.SourceArbeitnow, p.Website)
}

func TestNormalizeDropsMissingTitle(t *testing.T) {
	for _, title := range []string{"", "   ", " "} {
		_, ok := Normalize(domain.RawRecord{Title: title, Date: "2025-06-01"}, domain.SourceTurijobs)
		assert.False(t, ok, "title %q should be dropped", title)
	}
}

func TestNormalizeDefaults(t *testing.T) {
	p, ok := Normalize(domain.RawRecord{Title: "Chef"}, domain.SourceTurijobs)
	require.True(t, ok)

	assert.Equal(t, "Active", p.Status, "missing status defaults to Active")
	assert.Empty(t, p.DatePosted, "missing date stays empty, never synthesized")
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	raw := domain.RawRecord{Title: "  Designer ", Date: " 2025-01-02 "}
	before := raw

	_, ok := Normalize(raw, domain.SourceManfred)
	require.True(t, ok)
	assert.Equal(t, before, raw)
}
