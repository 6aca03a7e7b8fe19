package network

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/moodbuster/moodbuster/key"
	"github.com/moodbuster/moodbuster/log"
	"github.com/moodbuster/moodbuster/util"
	"github.com/sony/gobreaker/v2"
	"github.com/spf13/viper"
)

// StatusError reports a non-2xx answer from a catalog.
type StatusError struct {
	Host string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.Code)
}

// ErrUnavailable wraps requests rejected because the host's breaker is open.
var ErrUnavailable = errors.New("catalog temporarily unavailable")

var (
	breakersMu sync.Mutex
	breakers   = make(map[string]*gobreaker.CircuitBreaker[*http.Response])
)

func breaker(host string) *gobreaker.CircuitBreaker[*http.Response] {
	breakersMu.Lock()
	defer breakersMu.Unlock()

	if cb, ok := breakers[host]; ok {
		return cb
	}

	threshold := uint32(max(viper.GetInt(key.NetworkBreakerFailures), 1))
	cb := gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        host,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     time.Duration(viper.GetInt(key.NetworkBreakerCooldown)) * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.With(log.Fields{"host": name, "from": from.String(), "to": to.String()}).Warn("circuit breaker state changed")
		},
	})
	breakers[host] = cb
	return cb
}

// ResetBreakers forgets every host's failure history.
func ResetBreakers() {
	breakersMu.Lock()
	breakers = make(map[string]*gobreaker.CircuitBreaker[*http.Response])
	breakersMu.Unlock()
}

// Do sends req through the shared client and the host's breaker.
// Transport failures, 429 and 5xx answers count against the host; other statuses are returned as is.
func Do(req *http.Request) (*http.Response, error) {
	host := req.URL.Host

	resp, err := breaker(host).Execute(func() (*http.Response, error) {
		resp, err := Client.Do(req)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
			return nil, &StatusError{Host: host, Code: resp.StatusCode}
		}

		return resp, nil
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%s: %w", host, ErrUnavailable)
	}

	return resp, err
}

// DoJSON performs req and decodes a 2xx JSON body into v.
func DoJSON(req *http.Request, v any) error {
	resp, err := Do(req)
	if err != nil {
		return err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Errorf("%s %s returned status %d", req.Method, req.URL.Path, resp.StatusCode)
		return &StatusError{Host: req.URL.Host, Code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %s response: %w", req.URL.Host, err)
	}

	return nil
}
