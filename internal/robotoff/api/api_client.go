package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultBaseURL = "https://robotoff.openfoodfacts.org/api/v1"
	StagingBaseURL = "https://robotoff.openfoodfacts.net/api/v1"

	defaultUserAgent = "robotoffctl"
)

type Client struct {
	http   *resty.Client
	logger *slog.Logger
}

type options struct {
	baseURL   string
	userAgent string
	logger    *slog.Logger
	debug     bool
}

type Option func(*options)

func WithBaseURL(baseURL string) Option {
	return func(o *options) { o.baseURL = baseURL }
}

func WithUserAgent(userAgent string) Option {
	return func(o *options) { o.userAgent = userAgent }
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithDebug makes the underlying HTTP client dump every request and response
// to the configured logger at debug level.
func WithDebug(debug bool) Option {
	return func(o *options) { o.debug = debug }
}

// NewClient binds transport to the Robotoff API root. A nil transport falls back
// to the default one of the HTTP library. Nothing is validated here: a broken
// transport only shows up on the first call.
func NewClient(transport http.RoundTripper, opts ...Option) *Client {
	o := options{
		baseURL:   DefaultBaseURL,
		userAgent: defaultUserAgent,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	httpClient := resty.New().
		SetBaseURL(o.baseURL).
		SetHeader("User-Agent", o.userAgent).
		SetHeader("Accept", "application/json").
		SetLogger(newRestyLogger(o.logger)).
		SetDebug(o.debug)
	if transport != nil {
		httpClient.SetTransport(transport)
	}

	return &Client{
		http:   httpClient,
		logger: o.logger,
	}
}

type request struct {
	method     string
	path       string
	pathParams map[string]string
	query      url.Values
	form       url.Values
}

// do dispatches a single request and decodes a successful, non-empty body into T.
// Transport errors are returned as is; HTTP statuses are never turned into errors here.
func do[T any](ctx context.Context, c *Client, r request) (*Result[T], error) {
	req := c.http.R().SetContext(ctx)
	if len(r.pathParams) > 0 {
		req.SetPathParams(r.pathParams)
	}
	if len(r.query) > 0 {
		req.SetQueryParamsFromValues(r.query)
	}
	if r.form != nil {
		req.SetFormDataFromValues(r.form)
	}

	l := c.logger.With("method", r.method, "path", r.path)

	started := time.Now()
	resp, err := req.Execute(r.method, r.path)
	if err != nil {
		l.DebugContext(ctx, "robotoff request failed", "error", err)
		return nil, err
	}
	l.DebugContext(ctx, "robotoff request completed", "status", resp.StatusCode(), "duration", time.Since(started))

	result := &Result[T]{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
	}
	body := bytes.TrimSpace(resp.Body())
	if !resp.IsSuccess() {
		result.ErrorBody = body
		return result, nil
	}
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return result, nil
	}

	data := new(T)
	if err := json.Unmarshal(body, data); err != nil {
		return result, fmt.Errorf("decoding %s %s response: %w", r.method, r.path, err)
	}
	result.Data = data

	return result, nil
}

// get runs do and keeps only the payload.
func get[T any](ctx context.Context, c *Client, r request) (*T, error) {
	r.method = http.MethodGet
	result, err := do[T](ctx, c, r)
	if err != nil {
		return nil, err
	}
	return result.Data, nil
}
