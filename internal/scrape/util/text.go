package util

import (
	"regexp"
	"strings"
)

// CleanText collapses whitespace (including non-breaking spaces) and trims.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

var (
	atCompanyRe   = regexp.MustCompile(`\bat\s+([A-Z][A-Za-z0-9\s&\-\.]+?)(?:\s*\(|\.|$)`)
	dashCompanyRe = regexp.MustCompile(`\-\s*([A-Z][A-Za-z0-9\s&\-\.]+)$`)
)

// CompanyFromText pulls a company name out of a listing's surrounding text.
// Board cards rarely label the company, so this is a fallback chain: the
// tail of the pipe-joined card text, then "at Acme" or a trailing "- Acme"
// in the title, else "Unknown".
func CompanyFromText(fullText, title string) string {
	if strings.Contains(fullText, "|") {
		parts := strings.Split(fullText, "|")
		company := CleanText(parts[len(parts)-1])
		if company != "" && len(company) < 100 {
			return company
		}
	}

	if m := atCompanyRe.FindStringSubmatch(title); m != nil {
		return CleanText(m[1])
	}
	if m := dashCompanyRe.FindStringSubmatch(title); m != nil {
		return CleanText(m[1])
	}
	return "Unknown"
}
