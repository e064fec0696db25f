// Package fetcher calls the external content APIs with a fixed retry budget
// and memoizes reshaped results in a shared cache.
package fetcher

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/tidwall/gjson"

	"github.com/ChairulIkhsan23/niyyah-backend/internal/metrics"
)

const (
	DefaultTimeout  = 30 * time.Second
	DefaultAttempts = 3
	DefaultBackoff  = time.Second

	maxBodySize = 8 << 20
)

type Method int

const (
	MethodGet Method = iota + 1
	MethodPost
	MethodPut
	MethodDelete
)

func (m Method) String() string {
	switch m {
	case MethodGet:
		return http.MethodGet
	case MethodPost:
		return http.MethodPost
	case MethodPut:
		return http.MethodPut
	case MethodDelete:
		return http.MethodDelete
	default:
		return "UNKNOWN(" + strconv.Itoa(int(m)) + ")"
	}
}

func (m Method) valid() bool {
	return m >= MethodGet && m <= MethodDelete
}

type RequestOptions struct {
	Query   url.Values
	Body    any
	Headers map[string]string
}

type Options struct {
	Timeout    time.Duration
	Attempts   int
	Backoff    time.Duration
	Logger     *slog.Logger
	HTTPClient *http.Client
}

// Client talks to one upstream base URL.
type Client struct {
	name       string
	baseURL    string
	httpClient *http.Client
	attempts   int
	backoff    time.Duration
	logger     *slog.Logger
}

func New(name, baseURL string, opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Attempts < 1 {
		opts.Attempts = DefaultAttempts
	}
	if opts.Backoff < 0 {
		opts.Backoff = DefaultBackoff
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	httpClient := &http.Client{}
	if opts.HTTPClient != nil {
		// copied so clients shared between upstreams keep their own timeout
		c := *opts.HTTPClient
		httpClient = &c
	}
	httpClient.Timeout = opts.Timeout
	return &Client{
		name:       name,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		attempts:   opts.Attempts,
		backoff:    opts.Backoff,
		logger:     opts.Logger.With(slog.String("upstream", name)),
	}
}

func (c *Client) Name() string {
	return c.name
}

// Fetch performs the call up to the configured number of attempts, sleeping a fixed
// backoff between them. The boolean is false when every attempt failed; that outcome
// is not an error for callers.
func (c *Client) Fetch(ctx context.Context, method Method, endpoint string, opts *RequestOptions) (gjson.Result, bool) {
	if !method.valid() {
		c.logger.Error("upstream request rejected: unsupported method", slog.String("method", method.String()))
		return gjson.Result{}, false
	}
	if opts == nil {
		opts = &RequestOptions{}
	}
	target := c.buildURL(endpoint, opts.Query)
	for attempt := 1; attempt <= c.attempts; attempt++ {
		body, status, err := c.do(ctx, method, target, opts)
		switch {
		case err != nil:
			metrics.RecordUpstreamAttempt(c.name, "error")
			c.logger.Error("upstream request error",
				slog.Int("attempt", attempt),
				slog.String("url", target),
				slog.String("error", err.Error()),
			)
		case status < 200 || status > 299:
			metrics.RecordUpstreamAttempt(c.name, "status")
			c.logger.Warn("upstream request failed",
				slog.Int("attempt", attempt),
				slog.String("url", target),
				slog.Int("status", status),
			)
		case !gjson.ValidBytes(body):
			metrics.RecordUpstreamAttempt(c.name, "invalid_body")
			c.logger.Warn("upstream response is not valid json",
				slog.Int("attempt", attempt),
				slog.String("url", target),
			)
		default:
			metrics.RecordUpstreamAttempt(c.name, "success")
			return gjson.ParseBytes(body), true
		}
		if attempt < c.attempts {
			if err := sleep(ctx, c.backoff); err != nil {
				c.logger.Warn("upstream retry interrupted", slog.String("url", target), slog.String("error", err.Error()))
				return gjson.Result{}, false
			}
		}
	}
	return gjson.Result{}, false
}

func (c *Client) do(ctx context.Context, method Method, target string, opts *RequestOptions) ([]byte, int, error) {
	var body io.Reader
	if opts.Body != nil {
		raw, err := sonic.Marshal(opts.Body)
		if err != nil {
			return nil, 0, errors.New("encoding request body error: " + err.Error())
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method.String(), target, body)
	if err != nil {
		return nil, 0, errors.New("building request error: " + err.Error())
	}
	req.Header.Set("Accept", "application/json")
	if opts.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, resp.StatusCode, errors.New("reading response body error: " + err.Error())
	}
	return raw, resp.StatusCode, nil
}

func (c *Client) buildURL(endpoint string, query url.Values) string {
	target := c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	if len(query) == 0 {
		return target
	}
	sep := "?"
	if strings.Contains(target, "?") {
		sep = "&"
	}
	return target + sep + query.Encode()
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
