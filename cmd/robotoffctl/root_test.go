package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/AnotherFullstackDev/robotoff-ctl/internal/factories"
	"github.com/AnotherFullstackDev/robotoff-ctl/internal/lib"
	"github.com/AnotherFullstackDev/robotoff-ctl/internal/robotoff/api"
	"github.com/stretchr/testify/require"
)

type fakeResponse struct {
	status int
	body   string
}

type fakeTransport struct {
	responses map[string]fakeResponse
	requests  []*http.Request
	bodies    []string
}

func (f *fakeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
	}
	f.requests = append(f.requests, req)
	f.bodies = append(f.bodies, string(body))

	resp, ok := f.responses[req.Method+" "+req.URL.Path]
	if !ok {
		resp = fakeResponse{status: http.StatusNotFound}
	}
	return &http.Response{
		StatusCode: resp.status,
		Header:     http.Header{"Content-Type": {"application/json"}},
		Body:       io.NopCloser(strings.NewReader(resp.body)),
		Request:    req,
	}, nil
}

type memoryStorage map[string]string

func (m memoryStorage) Set(key, value string, _ lib.KeyExtras) error {
	m[key] = value
	return nil
}

func (m memoryStorage) Get(key string) (string, error) {
	return m[key], nil
}

func (m memoryStorage) Remove(key string) error {
	delete(m, key)
	return nil
}

type cliRun struct {
	stdout, stderr string
	err            error
}

func runCLI(transport http.RoundTripper, storage lib.CredentialsStorage, stdin string, args ...string) cliRun {
	var stdout, stderr bytes.Buffer
	locator := factories.NewSharedServicesLocator(nil, storage, strings.NewReader(stdin), &stdout, &stderr)
	locator.Transport = transport

	cmd := NewRootCmd(locator)
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.ExecuteContext(context.Background())

	return cliRun{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

const insightID = "3cd5aecd-edcc-4237-87d0-6595fc4e53c9"

func TestRootCmd(t *testing.T) {
	r := require.New(t)

	t.Run("questions must print the questions of the product", func(t *testing.T) {
		transport := &fakeTransport{responses: map[string]fakeResponse{
			"GET /api/v1/questions/42": {status: http.StatusOK, body: `{"status":"found","questions":[{"insight_id":"q1","barcode":"42","type":"add-binary","question":"?","insight_type":"label"}]}`},
		}}

		run := runCLI(transport, memoryStorage{}, "", "questions", "42")
		r.NoError(run.err)
		r.Contains(run.stdout, `"insight_id": "q1"`)
		r.Equal("robotoff.openfoodfacts.org", transport.requests[0].URL.Host)
	})

	t.Run("questions must reject a non numeric barcode", func(t *testing.T) {
		transport := &fakeTransport{}

		run := runCLI(transport, memoryStorage{}, "", "questions", "abc")
		r.ErrorContains(run.err, "non-negative")
		r.Empty(transport.requests)

		run = runCLI(transport, memoryStorage{}, "", "questions", "--", "-1")
		r.ErrorContains(run.err, "non-negative")
		r.Empty(transport.requests)
	})

	t.Run("unknown output format must fail before any request is sent", func(t *testing.T) {
		t.Setenv("ROBOTOFFCTL_USERNAME", "alice")
		t.Setenv(lib.PasswordEnv, "s3cret")
		transport := &fakeTransport{responses: map[string]fakeResponse{
			"POST /api/v1/insights/annotate": {status: http.StatusOK, body: `{"status":"saved"}`},
		}}

		run := runCLI(transport, memoryStorage{}, "", "-o", "xml", "insights", "annotate", insightID, "--annotation", "1")
		r.ErrorContains(run.err, `unsupported output format "xml"`)
		r.Empty(transport.requests)
		r.Empty(run.stdout)
	})

	t.Run("staging environment must target the staging host", func(t *testing.T) {
		transport := &fakeTransport{}

		run := runCLI(transport, memoryStorage{}, "", "--env", "staging", "questions", "42")
		r.NoError(run.err)
		r.Equal("robotoff.openfoodfacts.net", transport.requests[0].URL.Host)
		r.Contains(run.stderr, "no data returned")
	})

	t.Run("insights detail must report missing data", func(t *testing.T) {
		transport := &fakeTransport{}

		run := runCLI(transport, memoryStorage{}, "", "insights", "detail", insightID)
		r.NoError(run.err)
		r.Empty(run.stdout)
		r.Contains(run.stderr, "no data returned")
	})

	t.Run("insights detail must validate the id", func(t *testing.T) {
		transport := &fakeTransport{}

		run := runCLI(transport, memoryStorage{}, "", "insights", "detail", "not-a-uuid")
		r.Error(run.err)
		r.Empty(transport.requests)
	})

	t.Run("insights list must forward filters and apply the match patterns", func(t *testing.T) {
		transport := &fakeTransport{responses: map[string]fakeResponse{
			"GET /api/v1/insights": {status: http.StatusOK, body: `{"count":2,"status":"found","insights":[
				{"id":"i1","type":"label","barcode":"1","value_tag":"en:organic"},
				{"id":"i2","type":"label","barcode":"2","value_tag":"en:fair-trade"}
			]}`},
		}}

		run := runCLI(transport, memoryStorage{}, "", "insights", "list", "--country", "en:france", "--type", "label", "--annotated=false", "--match", "en:*organic*", "-o", "yaml")
		r.NoError(run.err)

		query := transport.requests[0].URL.Query()
		r.Equal("en:france", query.Get("countries"))
		r.Equal("label", query.Get("type"))
		r.Equal("false", query.Get("annotated"))
		r.False(query.Has("page"))
		r.False(query.Has("barcode"))

		r.Contains(run.stdout, "id: i1")
		r.NotContains(run.stdout, "id: i2")
		r.Contains(run.stdout, "count: 1\n")
	})

	t.Run("insights annotate must authenticate and post the form", func(t *testing.T) {
		t.Setenv("ROBOTOFFCTL_USERNAME", "alice")
		t.Setenv(lib.PasswordEnv, "s3cret")
		transport := &fakeTransport{responses: map[string]fakeResponse{
			"POST /api/v1/insights/annotate": {status: http.StatusOK, body: `{"status":"saved","description":"the annotation was saved"}`},
		}}

		run := runCLI(transport, memoryStorage{}, "", "insights", "annotate", insightID, "--annotation", "1")
		r.NoError(run.err)
		r.Contains(run.stdout, `"status": "saved"`)

		r.Len(transport.requests, 1)
		username, password, ok := transport.requests[0].BasicAuth()
		r.True(ok)
		r.Equal("alice", username)
		r.Equal("s3cret", password)
		r.Equal("annotation=1&insight_id="+insightID, transport.bodies[0])
	})

	t.Run("insights annotate must prompt for the password and return the mapped error", func(t *testing.T) {
		t.Setenv("ROBOTOFFCTL_USERNAME", "alice")
		t.Setenv(lib.PasswordEnv, "")
		t.Setenv(lib.OffNativePassword, "")
		storage := memoryStorage{}
		transport := &fakeTransport{responses: map[string]fakeResponse{
			"POST /api/v1/insights/annotate": {status: http.StatusForbidden, body: `{"description":"forbidden"}`},
		}}

		run := runCLI(transport, storage, "typed-password\n", "insights", "annotate", insightID, "--annotation", "-1")
		r.ErrorIs(run.err, api.ErrUnauthorized)
		r.Contains(run.stdout, `"status_code": 403`)
		r.Equal("typed-password", storage["off_password"])
	})

	t.Run("insights annotate must require data for a correction", func(t *testing.T) {
		transport := &fakeTransport{}

		run := runCLI(transport, memoryStorage{}, "", "insights", "annotate", insightID, "--annotation", "2")
		r.Error(run.err)
		r.Empty(transport.requests)
	})

	t.Run("debug mode must still reach the service", func(t *testing.T) {
		transport := &fakeTransport{}

		run := runCLI(transport, memoryStorage{}, "", "--debug", "questions", "42")
		r.NoError(run.err)
		r.Len(transport.requests, 1)
	})

	t.Run("logo must print the raw payload", func(t *testing.T) {
		transport := &fakeTransport{responses: map[string]fakeResponse{
			"GET /api/v1/images/logos/7": {status: http.StatusOK, body: `{"id":7,"annotation_value":"ferrero","image":{"barcode":"42"}}`},
		}}

		run := runCLI(transport, memoryStorage{}, "", "logo", "7", "-o", "yaml")
		r.NoError(run.err)
		r.YAMLEq("annotation_value: ferrero\nid: 7\nimage:\n  barcode: \"42\"\n", run.stdout)
	})
}
