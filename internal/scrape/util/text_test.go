package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	assert.Equal(t, "Backend Engineer", CleanText("  Backend  Engineer \n"))
	assert.Equal(t, "", CleanText("   \t"))
}

func TestCompanyFromText(t *testing.T) {
	cases := []struct {
		name     string
		fullText string
		title    string
		want     string
	}{
		{
			name:     "pipe tail wins",
			fullText: "Senior Dev|Berlin|ACME GmbH",
			title:    "Senior Dev",
			want:     "ACME GmbH",
		},
		{
			name:     "at pattern",
			fullText: "no separators here",
			title:    "Backend Engineer at Rocket Labs (Berlin)",
			want:     "Rocket Labs",
		},
		{
			name:     "trailing dash pattern",
			fullText: "",
			title:    "Data Analyst - Datawise",
			want:     "Datawise",
		},
		{
			name:     "nothing extractable",
			fullText: "",
			title:    "chef de partie",
			want:     "Unknown",
		},
		{
			name:     "oversized pipe tail falls through",
			fullText: "Senior Dev|" + strings.Repeat("x", 120),
			title:    "Senior Dev at Bright Co",
			want:     "Bright Co",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CompanyFromText(tc.fullText, tc.title))
		})
	}
}
