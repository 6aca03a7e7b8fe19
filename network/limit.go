package network

import (
	"net/http"
	"sync"

	"github.com/moodbuster/moodbuster/key"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"
)

// limitedTransport waits on a per-host token bucket before each round trip.
type limitedTransport struct {
	base http.RoundTripper

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func newLimitedTransport(base http.RoundTripper) *limitedTransport {
	return &limitedTransport{
		base:     userAgentTransport{base: base},
		limiters: make(map[string]*rate.Limiter),
	}
}

func (t *limitedTransport) limiter(host string) *rate.Limiter {
	t.mu.Lock()
	defer t.mu.Unlock()

	if l, ok := t.limiters[host]; ok {
		return l
	}

	rps := viper.GetFloat64(key.NetworkRequestsPerSecond)
	burst := viper.GetInt(key.NetworkBurst)
	if burst < 1 {
		burst = 1
	}

	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}

	l := rate.NewLimiter(limit, burst)
	t.limiters[host] = l
	return l
}

func (t *limitedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter(req.URL.Host).Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.base.RoundTrip(req)
}

// ResetLimits drops the per-host limiters so new settings take effect.
func ResetLimits() {
	if t, ok := Client.Transport.(*limitedTransport); ok {
		t.mu.Lock()
		t.limiters = make(map[string]*rate.Limiter)
		t.mu.Unlock()
	}
}
