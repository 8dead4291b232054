package contract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
)

// Color variables for console output.
var (
	SuccessColor = color.New(color.FgGreen)           // confirmed operations
	WarnColor    = color.New(color.FgYellow)          // recoverable conditions
	ErrorColor   = color.New(color.FgRed, color.Bold) // terminal failures
	InfoColor    = color.New(color.FgCyan)            // neutral status output
)

// LogFatal logs a fatal message to stderr and exits.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// PrintSuccess writes a green confirmation line to stdout.
func PrintSuccess(format string, args ...any) {
	_, _ = SuccessColor.Fprintf(os.Stdout, format+"\n", args...)
}

// PrintWarn writes a yellow notice line to stderr.
func PrintWarn(format string, args ...any) {
	_, _ = WarnColor.Fprintf(os.Stderr, format+"\n", args...)
}

// PrintError writes a red error line to stderr.
func PrintError(format string, args ...any) {
	_, _ = ErrorColor.Fprintf(os.Stderr, format+"\n", args...)
}

// GetSessionDBFilePath returns the path to the SQLite DB file for session storage.
func GetSessionDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".contactbook_session.db"
	}
	return filepath.Join(homeDir, ".contactbook_session.db")
}

// TruncateText truncates a value to a maximum width with an ellipsis suffix.
func TruncateText(value string, maxWidth int) string {
	runes := []rune(value)
	if maxWidth > 3 && len(runes) > maxWidth {
		return string(runes[:maxWidth-3]) + "..."
	}
	return value
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It returns os.Stdout when the path is empty.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}
