package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Transport issues one gateway operation and returns the decoded envelope.
// The error return is reserved for transport-level failures (timeout,
// connection refused, DNS, malformed body); gateway response codes always
// come back inside the envelope. The implementation is chosen once at
// construction — live HTTP or fixture — and business logic never branches on
// which one it got.
type Transport interface {
	RoundTrip(ctx context.Context, path string, params map[string]string) (Envelope, error)
}

// HTTPConfig configures the live gateway transport.
type HTTPConfig struct {
	BaseURL string
	UseTLS  bool
	Timeout time.Duration
	Client  *http.Client
}

// HTTPTransport talks to the live gateway over HTTP(S) GET requests with
// parameters passed as query values.
type HTTPTransport struct {
	baseURL string
	client  *http.Client
}

var _ Transport = (*HTTPTransport)(nil)

// NewHTTPTransport builds the live transport. Callers should pass a
// validated config.
func NewHTTPTransport(cfg HTTPConfig) (*HTTPTransport, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		return nil, errors.New("gateway base url is required")
	}
	if !strings.Contains(base, "://") {
		scheme := "http"
		if cfg.UseTLS {
			scheme = "https"
		}
		base = scheme + "://" + base
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse gateway base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported gateway scheme %q", u.Scheme)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	return &HTTPTransport{
		baseURL: strings.TrimRight(u.String(), "/"),
		client:  hc,
	}, nil
}

// RoundTrip performs one GET against the gateway and decodes the envelope.
func (t *HTTPTransport) RoundTrip(ctx context.Context, path string, params map[string]string) (Envelope, error) {
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}

	reqURL := t.baseURL + path
	if encoded := q.Encode(); encoded != "" {
		reqURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Envelope{}, fmt.Errorf("create gateway request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return Envelope{}, fmt.Errorf("gateway request failed: %w", err)
	}

	body, readErr := io.ReadAll(resp.Body)
	closeErr := resp.Body.Close()
	if readErr != nil {
		return Envelope{}, fmt.Errorf("read gateway response: %w", readErr)
	}
	if closeErr != nil {
		return Envelope{}, fmt.Errorf("close gateway response: %w", closeErr)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Envelope{}, fmt.Errorf("gateway http %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	return DecodeEnvelope(body)
}
