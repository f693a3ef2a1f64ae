// Package jmx fetches and picks apart the JMX-over-HTTP metrics dump that
// HBase RegionServers expose at /jmx. The dump is treated as an opaque text
// blob; only metric keys following the region-count naming convention are
// extracted, everything else is ignored.
package jmx

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"hbasekit/rsregions/internal/domain"
)

const dumpPath = "/jmx"

// Client fetches metrics dumps from RegionServer endpoints. Every fetch is
// a single GET with a bounded timeout: no retries, no caching.
type Client struct {
	client *http.Client
}

// NewClient creates a Client whose fetches are bounded by the given timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		client: &http.Client{Timeout: timeout},
	}
}

// FetchDump performs one GET against http://{host}:{port}/jmx and returns
// the full response body. Connection failures and timeouts wrap
// domain.ErrUnreachable; non-2xx responses wrap domain.ErrBadStatus.
func (c *Client) FetchDump(ctx context.Context, target domain.Target) (string, error) {
	// net.JoinHostPort keeps IPv6 literals bracketed correctly.
	url := "http://" + net.JoinHostPort(target.Host, strconv.Itoa(target.Port)) + dumpPath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("jmx: failed to build request for %s: %w", target, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrUnreachable, target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %s returned %s", domain.ErrBadStatus, target, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %s: reading response: %v", domain.ErrUnreachable, target, err)
	}

	return string(body), nil
}
