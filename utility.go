package applog

import (
	"fmt"
	"os"
	"strings"
)

// fmtErrorf wrapper
func fmtErrorf(format string, args ...any) error {
	if !strings.HasPrefix(format, "applog: ") {
		format = "applog: " + format
	}
	return fmt.Errorf(format, args...)
}

// combineErrors helper
func combineErrors(err1, err2 error) error {
	if err1 == nil {
		return err2
	}
	if err2 == nil {
		return err1
	}
	return fmt.Errorf("%v; %w", err1, err2)
}

// parseKeyValue splits a "key=value" string.
func parseKeyValue(arg string) (string, string, error) {
	parts := strings.SplitN(strings.TrimSpace(arg), "=", 2)
	if len(parts) != 2 {
		return "", "", fmtErrorf("invalid format in override string '%s', expected key=value", arg)
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", fmtErrorf("key cannot be empty in override string '%s'", arg)
	}
	return key, value, nil
}

// internalLog writes a diagnostic about logger internals to the
// configured sink. Filesystem failures are reported here instead of
// being surfaced to producers.
func (l *Logger) internalLog(format string, args ...any) {
	w := l.getConfig().DiagWriter
	if w == nil {
		w = os.Stderr
	}
	if !strings.HasPrefix(format, "applog: ") {
		format = "applog: " + format
	}
	fmt.Fprintf(w, format, args...)
}
