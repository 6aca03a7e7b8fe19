package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/moodbuster/moodbuster/log"
	"github.com/moodbuster/moodbuster/network"
	"golang.org/x/sync/errgroup"
)

// CheckTimeout bounds a whole reachability check.
const CheckTimeout = 10 * time.Second

// Report is the outcome of checking one catalog.
type Report struct {
	Provider   *Provider
	Configured bool
	Missing    []string
	// Err is nil when the catalog answered at all, even with 401 or 404.
	Err error
}

// Check probes the catalog's base URL.
func Check(ctx context.Context, p *Provider) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.BaseURL(), nil)
	if err != nil {
		return fmt.Errorf("%s: %w", p.ID, err)
	}

	resp, err := network.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", p.ID, err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()

	return nil
}

// CheckAll checks every catalog concurrently and returns reports in registry order.
func CheckAll(ctx context.Context) []*Report {
	providers := Builtins()
	reports := make([]*Report, len(providers))

	var g errgroup.Group
	for i, p := range providers {
		g.Go(func() error {
			missing := p.Missing()
			reports[i] = &Report{
				Provider:   p,
				Configured: len(missing) == 0,
				Missing:    missing,
				Err:        Check(ctx, p),
			}
			return nil
		})
	}
	_ = g.Wait()

	return reports
}

// CheckedMsg carries the reports into a bubbletea program.
type CheckedMsg struct {
	Reports []*Report
}

// CheckCmd runs CheckAll in the background with CheckTimeout.
func CheckCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), CheckTimeout)
		defer cancel()

		reports := CheckAll(ctx)
		for _, r := range reports {
			if r.Err != nil {
				log.Warnf("catalog %s unreachable: %v", r.Provider.ID, r.Err)
			}
		}

		return CheckedMsg{Reports: reports}
	}
}
