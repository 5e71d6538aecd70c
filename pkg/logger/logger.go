// Package logger provides leveled, structured log lines for midipatterns
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"sync"
)

// Fields represents structured log fields
type Fields map[string]interface{}

var (
	mu  sync.Mutex
	std = log.New(os.Stderr, "", log.LstdFlags)
)

// SetOutput redirects all log output, e.g. to io.Discard inside the TUI
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	std.SetOutput(w)
}

// Info logs an informational message with structured fields
func Info(msg string, fields Fields) {
	write("INFO", msg, nil, fields)
}

// Warn logs a recoverable problem, such as a skipped table lookup
func Warn(msg string, fields Fields) {
	write("WARN", msg, nil, fields)
}

// Error logs an error message with structured fields
func Error(msg string, err error, fields Fields) {
	write("ERROR", msg, err, fields)
}

func write(level, msg string, err error, fields Fields) {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", level, msg)
	if err != nil {
		fmt.Fprintf(&b, ": %v", err)
	}
	if f := formatFields(fields); f != "" {
		b.WriteString(" ")
		b.WriteString(f)
	}

	mu.Lock()
	defer mu.Unlock()
	std.Println(b.String())
}

// formatFields renders fields as sorted key=value pairs
func formatFields(fields Fields) string {
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, fields[k])
	}
	return strings.Join(parts, " ")
}
