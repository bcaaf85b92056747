package factories

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/AnotherFullstackDev/robotoff-ctl/internal/config"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func notFoundTransport(seen *[]*http.Request) http.RoundTripper {
	return roundTripFunc(func(req *http.Request) (*http.Response, error) {
		*seen = append(*seen, req)
		return &http.Response{
			StatusCode: http.StatusNotFound,
			Header:     http.Header{},
			Body:       io.NopCloser(strings.NewReader("")),
			Request:    req,
		}, nil
	})
}

func captureDefaultLogger(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(previous) })
	return &buf
}

func TestClientFactory(t *testing.T) {
	r := require.New(t)

	cfg, err := config.NewDefaultConfig()
	r.NoError(err)

	t.Run("must log requests through the debug transport in debug mode", func(t *testing.T) {
		logs := captureDefaultLogger(t)
		var seen []*http.Request
		locator := NewSharedServicesLocator(cfg, nil, strings.NewReader(""), io.Discard, io.Discard)
		locator.Transport = notFoundTransport(&seen)
		locator.Debug = true

		_, err := NewClientFactory(locator).NewClient().QuestionsByProduct(context.Background(), 42)
		r.NoError(err)
		r.Len(seen, 1)
		r.Contains(logs.String(), "http request completed")
		r.Contains(logs.String(), "status=404")
	})

	t.Run("must not install the debug transport otherwise", func(t *testing.T) {
		logs := captureDefaultLogger(t)
		var seen []*http.Request
		locator := NewSharedServicesLocator(cfg, nil, strings.NewReader(""), io.Discard, io.Discard)
		locator.Transport = notFoundTransport(&seen)

		_, err := NewClientFactory(locator).NewClient().QuestionsByProduct(context.Background(), 42)
		r.NoError(err)
		r.Len(seen, 1)
		r.NotContains(logs.String(), "http request completed")
	})
}
