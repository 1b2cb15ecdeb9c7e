// Package analytics sends page-view beacons to a GoatCounter count endpoint.
package analytics

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/etbcor/tomo/internal/logging"
)

var logger = logging.For("analytics")

// DefaultTimeout bounds a single beacon when the caller gives none.
const DefaultTimeout = 3 * time.Second

// Beacon reports page views. A zero or nil Beacon is disabled.
type Beacon struct {
	endpoint string
	client   *http.Client
	timeout  time.Duration
}

// New returns a beacon for endpoint, the full count URL such as
// https://example.goatcounter.com/count. An empty endpoint disables it.
func New(endpoint string, timeout time.Duration) (*Beacon, error) {
	if endpoint == "" {
		return &Beacon{}, nil
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse analytics endpoint: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("analytics endpoint %q: unsupported scheme %q", endpoint, u.Scheme)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Beacon{endpoint: endpoint, client: &http.Client{}, timeout: timeout}, nil
}

// Enabled reports whether views are sent anywhere.
func (b *Beacon) Enabled() bool { return b != nil && b.endpoint != "" }

// View is one page load.
type View struct {
	Path    string
	Title   string
	Session string
}

// Send reports v. It is a no-op for a disabled beacon.
func (b *Beacon) Send(ctx context.Context, v View) error {
	if !b.Enabled() {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	u, err := url.Parse(b.endpoint)
	if err != nil {
		return fmt.Errorf("parse analytics endpoint: %w", err)
	}
	q := u.Query()
	q.Set("p", v.Path)
	if v.Title != "" {
		q.Set("t", v.Title)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("build beacon request: %w", err)
	}
	req.Header.Set("User-Agent", "tomo")
	if v.Session != "" {
		req.Header.Set("X-Session-Id", v.Session)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("send beacon for %s: %w", v.Path, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		return fmt.Errorf("send beacon for %s: status %s", v.Path, resp.Status)
	}
	logger.Debug("beacon sent", "path", v.Path, "session", v.Session)
	return nil
}
