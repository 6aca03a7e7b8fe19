// Package network provides the shared HTTP client used by every catalog.
//
// Requests are paced per host with a token bucket and isolated per host with a
// circuit breaker, so one slow or failing catalog does not drag the others down.
package network

import (
	"net/http"
	"time"

	"github.com/moodbuster/moodbuster/constant"
)

// Client is the HTTP client shared across catalogs.
var Client = &http.Client{
	Timeout:   time.Minute,
	Transport: newLimitedTransport(newTransport()),
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 50
	t.MaxIdleConnsPerHost = 10
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = time.Second
	return t
}

// userAgentTransport is the innermost wrapper so every request carries our agent.
type userAgentTransport struct {
	base http.RoundTripper
}

func (t userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", constant.UserAgent)
	}
	return t.base.RoundTrip(req)
}
