// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package httpclient

import (
	"context"
	"crypto/tls"
	"net/http"
	"sync"

	"github.com/MKhiriev/hamkee/internal/logger"
	"github.com/go-resty/resty/v2"
)

// Recorder receives the outcome of every attempt and of every logical
// request. Implemented by the metrics package.
type Recorder interface {
	ObserveAttempt(method, outcome string)
	ObserveResult(method string, ok bool)
}

type nopRecorder struct{}

func (nopRecorder) ObserveAttempt(string, string) {}
func (nopRecorder) ObserveResult(string, bool)    {}

// Option customises a [Client].
type Option func(*Client)

// WithRestyClient installs rc as the current pool. After [Client.Close] a
// fresh pool is built from the configuration.
func WithRestyClient(rc *resty.Client) Option {
	return func(c *Client) {
		c.pool = rc
	}
}

// WithTransport makes every pool the client builds use rt.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.transport = rt
	}
}

// WithMetrics reports attempts and results to r.
func WithMetrics(r Recorder) Option {
	return func(c *Client) {
		if r != nil {
			c.metrics = r
		}
	}
}

// Client sends requests through a shared, lazily created connection pool
// and retries the failure kinds listed in its [Config].
type Client struct {
	cfg       Config
	log       *logger.Logger
	metrics   Recorder
	transport http.RoundTripper

	mu   sync.Mutex
	pool *resty.Client
}

// New constructs a [Client]. Zero fields of cfg take the package defaults;
// the configuration is copied and cannot change afterwards.
func New(cfg Config, log *logger.Logger, opts ...Option) *Client {
	if log == nil {
		log = logger.Nop()
	}

	c := &Client{
		cfg:     cfg.normalized(),
		log:     log,
		metrics: nopRecorder{},
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Config returns a copy of the client configuration.
func (c *Client) Config() Config {
	return c.cfg.normalized()
}

// Open creates the connection pool if it does not exist yet.
func (c *Client) Open() {
	c.client()
	c.log.Info().Msg("Started HTTP client pool")
}

// Close releases idle pooled connections and drops the pool. A later
// request transparently creates a new one.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pool == nil {
		return
	}

	c.pool.GetClient().CloseIdleConnections()
	c.pool = nil
	c.log.Info().Msg("Closed HTTP client")
}

// client returns the current pool, creating it under the lock if absent.
func (c *Client) client() *resty.Client {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pool == nil {
		c.pool = c.newPool()
	}

	return c.pool
}

func (c *Client) newPool() *resty.Client {
	pool := resty.New().
		SetLogger(restyLogger{log: c.log}).
		SetRetryCount(0)

	if c.transport != nil {
		pool.SetTransport(c.transport)
	}
	if c.cfg.InsecureSkipVerify {
		c.skipVerify(pool)
	}

	return pool
}

// skipVerify turns certificate checks off on the pool transport. A transport
// given through [WithTransport] is cloned first; one that is not an
// *http.Transport keeps its own TLS settings.
func (c *Client) skipVerify(pool *resty.Client) {
	t, err := pool.Transport()
	if err != nil {
		c.log.Warn().Err(err).Msg("TLS verification is left to the custom transport")
		return
	}
	if c.transport != nil {
		t = t.Clone()
		pool.SetTransport(t)
	}

	tlsCfg := &tls.Config{}
	if t.TLSClientConfig != nil {
		tlsCfg = t.TLSClientConfig.Clone()
	}
	tlsCfg.InsecureSkipVerify = true //nolint:gosec // opt-in via config
	t.TLSClientConfig = tlsCfg
}

// Get sends a GET request.
func (c *Client) Get(ctx context.Context, url string, opts ...RequestOption) Result[*resty.Response] {
	return c.send(ctx, http.MethodGet, url, opts...)
}

// Post sends a POST request, usually with [WithForm] or [WithJSON].
func (c *Client) Post(ctx context.Context, url string, opts ...RequestOption) Result[*resty.Response] {
	return c.send(ctx, http.MethodPost, url, opts...)
}

// Put sends a PUT request, usually with [WithForm] or [WithJSON].
func (c *Client) Put(ctx context.Context, url string, opts ...RequestOption) Result[*resty.Response] {
	return c.send(ctx, http.MethodPut, url, opts...)
}

// Delete sends a DELETE request.
func (c *Client) Delete(ctx context.Context, url string, opts ...RequestOption) Result[*resty.Response] {
	return c.send(ctx, http.MethodDelete, url, opts...)
}

func (c *Client) send(ctx context.Context, method, url string, opts ...RequestOption) Result[*resty.Response] {
	req := newRequest(c.cfg.DefaultTimeout, opts...)
	if err := req.validate(url); err != nil {
		return c.fail(&RequestError{Method: method, URL: url, Kind: InvalidRequest, Err: err})
	}

	pool := c.client()
	c.log.Debug().
		Str("method", method).
		Str("url", url).
		Dur("timeout", req.timeout).
		Msgf("Sending %s request to: %s", method, url)

	var (
		lastErr  error
		lastKind FailureKind
	)
	for attempt := 1; attempt <= c.cfg.MaxRetries; attempt++ {
		resp, err := c.attempt(ctx, pool, method, url, req)
		if err == nil {
			c.metrics.ObserveAttempt(method, "success")
			c.metrics.ObserveResult(method, true)
			return Ok(resp)
		}

		kind, transport := Classify(err)
		if ctx.Err() != nil {
			kind, transport = Canceled, false
		}
		c.metrics.ObserveAttempt(method, kind.String())

		if !transport || !c.cfg.IsRetryable(kind) {
			return c.fail(&RequestError{Method: method, URL: url, Attempts: attempt, Kind: kind, Err: err})
		}

		c.log.Debug().
			Str("kind", kind.String()).
			Err(err).
			Msgf("Retry attempt %d/%d: %s -> %s", attempt, c.cfg.MaxRetries, method, url)
		lastErr, lastKind = err, kind
	}

	return c.fail(&RequestError{
		Method:    method,
		URL:       url,
		Attempts:  c.cfg.MaxRetries,
		Kind:      lastKind,
		Exhausted: true,
		Err:       lastErr,
	})
}

func (c *Client) attempt(ctx context.Context, pool *resty.Client, method, url string, req *request) (*resty.Response, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, req.timeout)
	defer cancel()

	r := pool.R().SetContext(attemptCtx)
	if len(req.headers) > 0 {
		r.SetHeaders(req.headers)
	}
	switch {
	case req.form != nil:
		r.SetFormData(req.form)
	case req.hasJSON:
		r.SetHeader("Content-Type", "application/json").SetBody(req.json)
	}

	return r.Execute(method, url)
}

func (c *Client) fail(err *RequestError) Result[*resty.Response] {
	c.metrics.ObserveResult(err.Method, false)
	c.log.Error().
		Str("kind", err.Kind.String()).
		Int("attempts", err.Attempts).
		Msg(err.Error())

	return Fail[*resty.Response](err)
}
