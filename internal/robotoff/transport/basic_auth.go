package transport

import "net/http"

// BasicAuthTransport adds Open Food Facts account credentials to every request.
// Robotoff needs them to attribute annotations to a user.
type BasicAuthTransport struct {
	base               http.RoundTripper
	username, password string
}

func NewBasicAuthTransport(base http.RoundTripper, username, password string) *BasicAuthTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &BasicAuthTransport{
		base:     base,
		username: username,
		password: password,
	}
}

func (t *BasicAuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not modify the caller's request.
	cloned := req.Clone(req.Context())
	cloned.SetBasicAuth(t.username, t.password)
	return t.base.RoundTrip(cloned)
}
