package httpapi

import (
	"fmt"
	"net/http"

	"github.com/FredrickOdondi/recruitscout-scraper/internal/events"
)

// EventsHandler streams hub notifications to SSE clients so a UI can
// show scrape progress without polling.
type EventsHandler struct {
	Hub *events.Hub
}

func (h EventsHandler) ServeSSE(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		WriteError(w, r, http.StatusInternalServerError, "stream_unsupported", "Streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	sub := h.Hub.Subscribe()
	defer h.Hub.Unsubscribe(sub)

	emit := func(payload string) {
		fmt.Fprintf(w, "event: message\ndata: %s\n\n", payload)
		flusher.Flush()
	}

	// Open with a ping so the client knows the stream is live.
	emit(events.MakeEvent(RequestIDFrom(r.Context()), "ping", 1, nil))

	for {
		select {
		case <-r.Context().Done():
			return
		case msg := <-sub:
			emit(msg)
		}
	}
}
