package markup

import "github.com/FredrickOdondi/recruitscout-scraper/internal/domain"

// Default board URLs. Config can override them (mirrors or cached pages).
const (
	BerlinStartupURL = "https://berlinstartupjobs.com/engineering/"
	Job4GoodURL      = "https://www.job4good.it/annunci-di-lavoro/"
	TurijobsURL      = "https://www.turijobs.com/ofertas-trabajo"
	ManfredURL       = "https://www.getmanfred.com/en/job-offers"
)

// BerlinStartupRules: the board renders one .bjs-jlid__meta card per job
// with the title in an h4.
func BerlinStartupRules() Rules {
	return Rules{
		Listing:  []string{"div.bjs-jlid__meta", "li.bjs-jlid"},
		Title:    []string{"h4 a", "h4"},
		Date:     []string{".bjs-jlid__date", "time"},
		MaxItems: 50,
	}
}

// Job4GoodRules: no stable classes, so fall through generic containers and
// filter navigation headings by phrase and length.
func Job4GoodRules() Rules {
	return Rules{
		Listing: []string{"li.job_listing", "article", "li", "div"},
		Title:   []string{"h2 a", "h2", "h3", "h4"},
		Date:    []string{"time", ".date"},
		Skip: []string{
			"chi siamo", "privacy", "menu", "candidati", "aziende", "accedi",
			"home", "info", "servizi", "risorse", "formazione", "contatti",
			"job4good", "annunci",
		},
		MinTitle: 16,
		MaxItems: 30,
	}
}

// TurijobsRules: same generic-container approach as Job4Good.
func TurijobsRules() Rules {
	return Rules{
		Listing: []string{"article", "li.offer", "li", "div"},
		Title:   []string{"h2 a", "h2", "h3", "h4"},
		Date:    []string{"time", ".date"},
		Skip: []string{
			"inicia", "registra", "blog", "empleos", "turijobs", "ofertas",
			"empresa",
		},
		MinTitle: 16,
		MaxItems: 30,
	}
}

// ManfredRules: offer cards are plain articles; headings carry the role.
func ManfredRules() Rules {
	return Rules{
		Listing: []string{"article", "li", "div"},
		Title:   []string{"h2 a", "h2", "h3", "h4"},
		Date:    []string{"time", ".date"},
		Skip: []string{
			"manfred", "cookies", "blog", "newsletter", "sign up", "log in",
		},
		MinTitle: 10,
		MaxItems: 50,
	}
}

// SiteConfig returns the built-in extraction config for a markup source.
// The second return is false for sources that are not markup-driven.
func SiteConfig(src domain.Source) (Config, bool) {
	switch src {
	case domain.SourceBerlinStartup:
		return Config{Source: src, URL: BerlinStartupURL, Rules: BerlinStartupRules()}, true
	case domain.SourceJob4Good:
		return Config{Source: src, URL: Job4GoodURL, Rules: Job4GoodRules()}, true
	case domain.SourceTurijobs:
		return Config{Source: src, URL: TurijobsURL, Rules: TurijobsRules()}, true
	case domain.SourceManfred:
		return Config{Source: src, URL: ManfredURL, Rules: ManfredRules()}, true
	}
	return Config{}, false
}
