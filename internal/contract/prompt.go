package contract

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// TerminalPrompter reads passwords from the controlling terminal without echo.
// When stdin is not a terminal (tests, pipes) it falls back to buffered line
// reads so the binary stays scriptable.
type TerminalPrompter struct{}

// stdinReader is shared so consecutive prompts do not lose lines already
// buffered from a piped stdin.
var stdinReader = bufio.NewReader(os.Stdin)

var _ PasswordPrompter = &TerminalPrompter{} // Compile-time check

// ReadPassword implements the PasswordPrompter interface. EOF (Ctrl-D) is
// reported as an explicit abort rather than an error.
func (p *TerminalPrompter) ReadPassword(prompt string) (string, bool, error) {
	_, _ = fmt.Fprint(os.Stderr, prompt)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		_, _ = fmt.Fprintln(os.Stderr)
		if errors.Is(err, io.EOF) {
			return "", true, nil
		}
		if err != nil {
			return "", false, fmt.Errorf("failed to read password: %w", err)
		}
		return string(raw), false, nil
	}

	line, err := stdinReader.ReadString('\n')
	if errors.Is(err, io.EOF) && line == "" {
		return "", true, nil
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), false, nil
}

// Confirm asks a yes/no question on the terminal and reports the answer.
// Anything other than y/yes counts as a no.
func Confirm(prompt string) (bool, error) {
	_, _ = fmt.Fprintf(os.Stderr, "%s [y/N]: ", prompt)

	line, err := stdinReader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
