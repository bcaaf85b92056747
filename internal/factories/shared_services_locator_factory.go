package factories

import (
	"io"
	"net/http"

	"github.com/AnotherFullstackDev/robotoff-ctl/internal/config"
	"github.com/AnotherFullstackDev/robotoff-ctl/internal/lib"
)

type SharedServicesLocator struct {
	Config             *config.Config
	CredentialsStorage lib.CredentialsStorage
	// Transport is the base transport for every api client. nil means the HTTP library default.
	Transport   http.RoundTripper
	Debug       bool
	In          io.Reader
	Out, ErrOut io.Writer
}

func NewSharedServicesLocator(config *config.Config, credentialsStorage lib.CredentialsStorage, in io.Reader, out, errOut io.Writer) *SharedServicesLocator {
	return &SharedServicesLocator{
		Config:             config,
		CredentialsStorage: credentialsStorage,
		In:                 in,
		Out:                out,
		ErrOut:             errOut,
	}
}
