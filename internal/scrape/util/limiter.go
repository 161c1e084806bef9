package util

import (
	"context"
	"net/url"
	"sync"

	"golang.org/x/time/rate"
)

// HostLimiter paces outbound requests per hostname so repeated page
// fetches against one board stay polite. A nil *HostLimiter admits
// every request.
type HostLimiter struct {
	mu      sync.Mutex
	perHost map[string]*rate.Limiter
	limit   rate.Limit
	burst   int
}

func NewHostLimiter(reqPerSec float64, burst int) *HostLimiter {
	return &HostLimiter{
		perHost: make(map[string]*rate.Limiter),
		limit:   rate.Limit(reqPerSec),
		burst:   burst,
	}
}

func (hl *HostLimiter) limiterFor(host string) *rate.Limiter {
	hl.mu.Lock()
	defer hl.mu.Unlock()

	lim, ok := hl.perHost[host]
	if !ok {
		lim = rate.NewLimiter(hl.limit, hl.burst)
		hl.perHost[host] = lim
	}
	return lim
}

// WaitURL blocks until the limiter for the URL's host admits one
// request. Unparseable URLs share a single fallback bucket.
func (hl *HostLimiter) WaitURL(ctx context.Context, raw string) error {
	if hl == nil {
		return nil
	}
	host := "_"
	if u, err := url.Parse(raw); err == nil && u.Host != "" {
		host = u.Host
	}
	return hl.limiterFor(host).Wait(ctx)
}
