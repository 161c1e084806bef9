package httpapi

import (
	"fmt"
	"log"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/FredrickOdondi/recruitscout-scraper/internal/export"
	"github.com/FredrickOdondi/recruitscout-scraper/internal/scrape"
)

type ExportHandler struct {
	LastReport *atomic.Value // stores *scrape.Report
}

// CSV serves the most recent aggregation result as a CSV attachment. The
// endpoint never re-scrapes on its own: callers run POST /api/scrape first
// and export the report that call produced. 404 until then.
func (h ExportHandler) CSV(w http.ResponseWriter, r *http.Request) {
	rep, ok := h.LastReport.Load().(*scrape.Report)
	if !ok || rep == nil {
		WriteError(w, r, http.StatusNotFound, "no_result", "no aggregation has run yet")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%s", export.Filename(time.Now())))

	if err := export.Write(w, rep.Postings); err != nil {
		// headers already sent; can only log
		log.Printf("level=error msg=\"csv export\" err=%v", err)
	}
}
