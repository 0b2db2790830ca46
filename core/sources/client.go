package sources

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// maxPayloadBytes bounds how much of a source response is read.
const maxPayloadBytes = 32 << 20

// Client fetches JSON record arrays from one source system over HTTP.
type Client struct {
	source  string
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the source rooted at baseURL.
// A non-positive timeout falls back to 30 seconds.
func NewClient(source, baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          20,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeout,
		ResponseHeaderTimeout: timeout,
	}

	return &Client{
		source:  source,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Transport: transport, Timeout: timeout},
	}
}

// Source returns the name of the source system this client talks to.
func (c *Client) Source() string {
	return c.source
}

// FetchRecords GETs endpoint and decodes the body, which must be a JSON array
// of objects, into out (a pointer to a slice).
func (c *Client) FetchRecords(ctx context.Context, endpoint string, out any) error {
	url := c.baseURL + "/" + strings.TrimLeft(endpoint, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return unavailable(c.source, endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return unavailable(c.source, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return unavailable(c.source, endpoint, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return unavailable(c.source, endpoint, err)
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return Malformed(c.source, endpoint, "expected a JSON array")
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return Malformed(c.source, endpoint, "%v", err)
	}
	return nil
}
