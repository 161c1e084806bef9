package httpapi

import "net/http"

type HealthHandler struct{}

// Health is a fixed liveness probe with no side effects.
func (h HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"ok": true})
}
