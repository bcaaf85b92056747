package lib

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"
)

// RequestSecretInput writes prompt to out and reads one line from in. Input is
// not echoed when in is a terminal.
func RequestSecretInput(in io.Reader, out io.Writer, prompt string) (string, error) {
	if _, err := fmt.Fprintf(out, "%s: ", prompt); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return readHidden(f, out)
	}

	slog.Debug("stdin is not a terminal, reading the secret as plain text")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("reading secret input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func readHidden(f *os.File, out io.Writer) (string, error) {
	secret, err := term.ReadPassword(int(f.Fd()))
	if err != nil {
		return "", fmt.Errorf("reading secret input: %w", err)
	}
	// ReadPassword swallows the user's newline.
	if _, err := fmt.Fprintln(out); err != nil {
		return "", fmt.Errorf("writing newline after secret input: %w", err)
	}
	return strings.TrimSpace(string(secret)), nil
}
