package factories

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/AnotherFullstackDev/robotoff-ctl/internal/lib"
	"github.com/AnotherFullstackDev/robotoff-ctl/internal/robotoff/api"
	"github.com/AnotherFullstackDev/robotoff-ctl/internal/robotoff/transport"
)

const (
	offPasswordSecretKey   = "off_password"
	offPasswordSecretLabel = "Open Food Facts password"
)

var ErrUsernameMissing = errors.New("username is not configured")

type ClientFactory struct {
	locator *SharedServicesLocator
}

func NewClientFactory(locator *SharedServicesLocator) *ClientFactory {
	return &ClientFactory{locator: locator}
}

func (f *ClientFactory) options() []api.Option {
	cfg := f.locator.Config
	return []api.Option{
		api.WithBaseURL(cfg.BaseURL),
		api.WithUserAgent(cfg.UserAgent),
		api.WithLogger(slog.Default()),
		api.WithDebug(f.locator.Debug),
	}
}

// baseTransport is the locator's transport, wrapped with request logging in debug mode.
func (f *ClientFactory) baseTransport() http.RoundTripper {
	if !f.locator.Debug {
		return f.locator.Transport
	}
	return transport.NewDebugTransport(f.locator.Transport, slog.Default())
}

// NewClient builds a client for the read-only endpoints.
func (f *ClientFactory) NewClient() *api.Client {
	return api.NewClient(f.baseTransport(), f.options()...)
}

// NewAuthenticatedClient builds a client that sends the configured Open Food
// Facts account with every request. The password comes from the environment,
// the credentials storage or an interactive prompt, in that order.
func (f *ClientFactory) NewAuthenticatedClient() (*api.Client, error) {
	username := f.locator.Config.Username
	if username == "" {
		return nil, fmt.Errorf("%w: set username in the config or %s_USERNAME", ErrUsernameMissing, lib.EnvKeyPrefix)
	}

	password, err := lib.GetSecretFromEnvOrInput(
		f.locator.CredentialsStorage,
		offPasswordSecretKey,
		offPasswordSecretLabel,
		[]string{lib.PasswordEnv, lib.OffNativePassword},
		f.locator.In,
		f.locator.ErrOut,
		fmt.Sprintf("Open Food Facts password for %s", username),
	)
	if err != nil {
		return nil, fmt.Errorf("getting password for %s: %w", username, err)
	}

	authTransport := transport.NewBasicAuthTransport(f.baseTransport(), username, password)
	return api.NewClient(authTransport, f.options()...), nil
}
