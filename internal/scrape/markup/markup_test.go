package markup

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FredrickOdondi/recruitscout-scraper/internal/domain"
	"github.com/FredrickOdondi/recruitscout-scraper/internal/scrape/util"
)

func doc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	d, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return d
}

const berlinFixture = `
<html><body>
<ul class="jobs-list">
  <li class="bjs-jlid">
    <div class="bjs-jlid__meta">
      <h4><a href="/job/1">Senior Backend Engineer</a></h4>
      <span class="bjs-jlid__b">ACME GmbH</span>
      <span class="bjs-jlid__date">2025-08-12</span>
    </div>
  </li>
  <li class="bjs-jlid">
    <div class="bjs-jlid__meta">
      <h4><a href="/job/2">Platform Engineer (Kubernetes)</a></h4>
      <span class="bjs-jlid__b">Orbit Labs</span>
      <span class="bjs-jlid__date">2025-08-10</span>
    </div>
  </li>
</ul>
</body></html>`

func TestExtractBerlinStartupCards(t *testing.T) {
	records := Extract(doc(t, berlinFixture), BerlinStartupRules())
	require.Len(t, records, 2)

	assert.Equal(t, "Senior Backend Engineer", records[0].Title)
	assert.Equal(t, "2025-08-12", records[0].Date)
	assert.Equal(t, "Platform Engineer (Kubernetes)", records[1].Title)
	assert.Equal(t, "2025-08-10", records[1].Date)
}

func TestExtractListingCandidateFallback(t *testing.T) {
	// No article elements, so the rules should fall through to li.
	html := `
<html><body>
<ul>
  <li><h2><a href="#">Responsabile Progetti Sociali Roma</a></h2><span>Coop Sociale Alfa</span></li>
  <li><h2><a href="#">Coordinatore Volontari Milano Nord</a></h2><span>Beta Onlus</span></li>
</ul>
</body></html>`
	records := Extract(doc(t, html), Job4GoodRules())
	require.Len(t, records, 2)
	assert.Equal(t, "Responsabile Progetti Sociali Roma", records[0].Title)
}

func TestExtractTitleCandidateFallback(t *testing.T) {
	// Title only present as h3: the h2 candidates must miss, then h3 hits.
	html := `
<html><body>
<article>
  <h3>Recepcionista Hotel Playa Grande Barcelona</h3>
  <span>Grupo Mar</span>
</article>
</body></html>`
	records := Extract(doc(t, html), TurijobsRules())
	require.Len(t, records, 1)
	assert.Equal(t, "Recepcionista Hotel Playa Grande Barcelona", records[0].Title)
}

func TestExtractSkipsJunkAndShortTitles(t *testing.T) {
	html := `
<html><body>
<article><h2>Chi siamo e cosa facciamo qui</h2></article>
<article><h2>Breve</h2></article>
<article><h2>Educatore Professionale Torino Centro</h2><span>Gamma Cooperativa</span></article>
</body></html>`
	records := Extract(doc(t, html), Job4GoodRules())
	require.Len(t, records, 1)
	assert.Equal(t, "Educatore Professionale Torino Centro", records[0].Title)
}

func TestExtractDeduplicatesListings(t *testing.T) {
	html := `
<html><body>
<article><h2>Jefe de Cocina Restaurante Costa</h2><span>Grupo Sol</span></article>
<article><h2>Jefe de Cocina Restaurante Costa</h2><span>Grupo Sol</span></article>
</body></html>`
	records := Extract(doc(t, html), TurijobsRules())
	require.Len(t, records, 1)
}

func TestExtractHonorsMaxItems(t *testing.T) {
	var b strings.Builder
	b.WriteString("<html><body>")
	for i := 0; i < 10; i++ {
		b.WriteString(`<article><h2>Camarero Sala Hotel Centro Turno `)
		b.WriteString(strings.Repeat("I", i+1))
		b.WriteString(`</h2></article>`)
	}
	b.WriteString("</body></html>")

	rules := TurijobsRules()
	rules.MaxItems = 3
	records := Extract(doc(t, b.String()), rules)
	assert.Len(t, records, 3)
}

func TestExtractNoListingsMatches(t *testing.T) {
	records := Extract(doc(t, "<html><body><p>nothing here</p></body></html>"), BerlinStartupRules())
	assert.Empty(t, records)
}

func TestExtractMissingDateStaysEmpty(t *testing.T) {
	html := `
<html><body>
<article><h2>Gobernanta Hotel Cinco Estrellas Madrid</h2><span>Cadena Norte</span></article>
</body></html>`
	records := Extract(doc(t, html), TurijobsRules())
	require.Len(t, records, 1)
	assert.Empty(t, records[0].Date)
}

func TestSiteConfigCoversMarkupSourcesOnly(t *testing.T) {
	for _, f := range []func() Rules{BerlinStartupRules, Job4GoodRules, TurijobsRules, ManfredRules} {
		r := f()
		assert.NotEmpty(t, r.Listing)
		assert.NotEmpty(t, r.Title)
	}
}

func TestFetchAgainstStaticServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, berlinFixture)
	}))
	defer srv.Close()

	cfg, ok := SiteConfig(domain.SourceBerlinStartup)
	require.True(t, ok)
	cfg.URL = srv.URL

	s := New(cfg, util.NewHostLimiter(100, 10))
	assert.Equal(t, "berlin-startup-jobs", s.Name())

	res, err := s.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.SourceBerlinStartup, res.Source)
	assert.Len(t, res.Records, 2)
}

func TestFetchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	cfg, ok := SiteConfig(domain.SourceJob4Good)
	require.True(t, ok)
	cfg.URL = srv.URL

	_, err := New(cfg, nil).Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
}

func TestNewClientHasNoBuiltinTimeout(t *testing.T) {
	// The caller's per-source deadline is the only cutoff; a client-level
	// timeout would silently cap it.
	cfg, ok := SiteConfig(domain.SourceManfred)
	require.True(t, ok)
	s := New(cfg, nil)
	assert.Zero(t, s.hc.Timeout)
}
