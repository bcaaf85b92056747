package lib

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

type KeyExtras struct {
	Label, Description string
}

// CredentialsStorage persists secrets between runs, see keyring.Service.
type CredentialsStorage interface {
	Set(key string, value string, extra KeyExtras) error
	// Get returns "" with a nil error for unknown keys.
	Get(key string) (string, error)
	Remove(key string) error
}

// GetSecretFromEnvOrInput looks the secret up in envKeys (first non-empty wins),
// then in storage, and finally asks for it on in. A secret typed by the user is
// saved to storage so the next run does not prompt again.
func GetSecretFromEnvOrInput(storage CredentialsStorage, key, label string, envKeys []string, in io.Reader, out io.Writer, prompt string) (string, error) {
	l := slog.With("context", "get_secret", "key", key)

	for _, envKey := range envKeys {
		if value := os.Getenv(envKey); value != "" {
			l.Debug("secret found in environment", "env", envKey)
			return value, nil
		}
	}

	if storage != nil {
		value, err := storage.Get(key)
		if err != nil {
			return "", fmt.Errorf("reading %s from credentials storage: %w", key, err)
		}
		if value != "" {
			l.Debug("secret found in credentials storage")
			return value, nil
		}
	}

	value, err := RequestSecretInput(in, out, prompt)
	if err != nil {
		return "", fmt.Errorf("requesting %s: %w", key, err)
	}
	if value == "" {
		return "", fmt.Errorf("%s must not be empty", label)
	}

	if storage != nil {
		if err := storage.Set(key, value, KeyExtras{Label: label}); err != nil {
			return "", fmt.Errorf("saving %s to credentials storage: %w", key, err)
		}
	}

	return value, nil
}
