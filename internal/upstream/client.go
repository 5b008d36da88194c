package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultTimeout bounds every outbound call.
	DefaultTimeout = 10 * time.Second

	maxBodyBytes = 8 << 20
	userAgent    = "lookupagg/1.0"
)

var tracer = otel.Tracer("lookupagg/internal/upstream")

// param is one query parameter. Order is kept so outbound URLs read the same
// way the services document them.
type param struct {
	key, value string
}

// caller performs bounded GET requests against one base URL and returns the
// body once it is known to be JSON.
type caller struct {
	service string
	base    *url.URL
	client  *http.Client
	timeout time.Duration
	metrics *Metrics
}

// Option configures an upstream client.
type Option func(*caller)

// WithHTTPClient replaces the shared pooled client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *caller) {
		if c != nil {
			cl.client = c
		}
	}
}

// WithTimeout sets the per-call budget. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(cl *caller) {
		if d > 0 {
			cl.timeout = d
		}
	}
}

// WithMetrics records every call in m.
func WithMetrics(m *Metrics) Option {
	return func(cl *caller) {
		cl.metrics = m
	}
}

func newCaller(service, baseURL string, opts []Option) (*caller, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse %s url: %w", service, err)
	}
	if (base.Scheme != "http" && base.Scheme != "https") || base.Host == "" {
		return nil, fmt.Errorf("%s url must be absolute http(s), got %q", service, baseURL)
	}
	c := &caller{
		service: service,
		base:    base,
		client:  DefaultHTTPClient(),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// DefaultHTTPClient returns a client whose transport keeps enough idle
// connections per host for an enrichment fan-out to reuse them.
func DefaultHTTPClient() *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = 16
	return &http.Client{Transport: transport}
}

// buildURL appends params to the base URL, keeping any query the base already has.
func (c *caller) buildURL(params []param) string {
	u := *c.base
	query := u.RawQuery
	for _, p := range params {
		if query != "" {
			query += "&"
		}
		query += url.QueryEscape(p.key) + "=" + url.QueryEscape(p.value)
	}
	u.RawQuery = query
	return u.String()
}

// getJSON issues one GET under its own timeout. The returned body is valid JSON.
func (c *caller) getJSON(ctx context.Context, params []param) (body []byte, err error) {
	ctx, span := tracer.Start(ctx, "upstream."+c.service, trace.WithSpanKind(trace.SpanKindClient))
	start := time.Now()
	defer func() {
		category := GetCategory(err)
		c.metrics.ObserveCall(c.service, category, time.Since(start))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, string(category))
		}
		span.End()
	}()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildURL(params), nil)
	if err != nil {
		return nil, newCallError(CategoryTransport, c.service, "build request", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, c.transportError("request failed", err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		ce := newCallError(CategoryBadStatus, c.service, fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
		ce.StatusCode = resp.StatusCode
		return nil, ce
	}

	body, err = io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, c.transportError("read body", err)
	}
	if len(body) > maxBodyBytes {
		return nil, newCallError(CategoryBadData, c.service, "body too large", nil)
	}
	if !json.Valid(body) {
		return nil, newCallError(CategoryBadData, c.service, "body is not JSON", nil)
	}
	return body, nil
}

// transportError classifies a client failure. The *url.Error wrapper is
// dropped because its message carries the full query, access key included.
func (c *caller) transportError(message string, err error) *CallError {
	category := CategoryTransport
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		category = CategoryTimeout
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		err = urlErr.Err
	}
	return newCallError(category, c.service, message, err)
}
