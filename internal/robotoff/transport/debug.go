package transport

import (
	"log/slog"
	"net/http"
	"time"
)

// DebugTransport logs one line per request: method, URL, status and duration.
// Bodies are dumped by the HTTP client's own debug mode, not here.
type DebugTransport struct {
	base   http.RoundTripper
	logger *slog.Logger
}

func NewDebugTransport(base http.RoundTripper, logger *slog.Logger) *DebugTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &DebugTransport{
		base:   base,
		logger: logger.With("context", "robotoff_transport"),
	}
}

func (t *DebugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	l := t.logger.With("method", req.Method, "url", req.URL.Redacted())

	started := time.Now()
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		l.ErrorContext(req.Context(), "http request failed", "error", err, "duration", time.Since(started))
		return nil, err
	}

	l.DebugContext(req.Context(), "http request completed", "status", resp.StatusCode, "duration", time.Since(started))
	return resp, nil
}
