// Package logger provides namespaced debug logging for validate-workflows.
//
// Loggers are silent unless the DEBUG environment variable selects their
// namespace, so debug output never mixes with the validation report on stdout.
package logger

import (
	"fmt"
	"hash/fnv"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/githubnext/validate-workflows/pkg/timeutil"
	"github.com/githubnext/validate-workflows/pkg/tty"
)

// Logger writes debug lines for a single namespace such as "workflow:validator".
type Logger struct {
	namespace string
	enabled   bool
	color     string

	mu      sync.Mutex
	lastLog time.Time
}

var (
	// DEBUG environment variable value, read once at initialization.
	debugEnv = os.Getenv("DEBUG")

	// DEBUG_COLORS=0 turns namespace colouring off.
	debugColors = os.Getenv("DEBUG_COLORS") != "0"

	isTTY = tty.IsStderrTerminal()

	// output is where enabled loggers write. Always stderr outside of tests.
	output io.Writer = os.Stderr

	// ANSI 256-colour codes readable on light and dark backgrounds.
	colorPalette = []string{
		"\033[38;5;33m",  // Blue
		"\033[38;5;35m",  // Green
		"\033[38;5;166m", // Orange
		"\033[38;5;125m", // Purple
		"\033[38;5;37m",  // Cyan
		"\033[38;5;161m", // Magenta
		"\033[38;5;136m", // Yellow
		"\033[38;5;124m", // Red
	}

	colorReset = "\033[0m"
)

// New creates a Logger for namespace. Whether it is enabled is decided once,
// here, from DEBUG using npm debug syntax:
//
//	DEBUG=*                  - all namespaces
//	DEBUG=workflow:*         - every namespace under workflow
//	DEBUG=cli:*,parser:yaml  - a list of patterns
//	DEBUG=*,-fileutil:*      - everything except the excluded patterns
func New(namespace string) *Logger {
	return &Logger{
		namespace: namespace,
		enabled:   computeEnabled(namespace, debugEnv),
		color:     selectColor(namespace),
		lastLog:   time.Now(),
	}
}

// Enabled returns whether this logger writes anything.
func (l *Logger) Enabled() bool {
	return l.enabled
}

// Printf logs a formatted message followed by the time elapsed since the
// previous line from the same logger.
func (l *Logger) Printf(format string, args ...any) {
	if !l.enabled {
		return
	}
	l.emit(fmt.Sprintf(format, args...))
}

// Print logs its operands formatted with fmt.Sprint.
func (l *Logger) Print(args ...any) {
	if !l.enabled {
		return
	}
	l.emit(fmt.Sprint(args...))
}

func (l *Logger) emit(message string) {
	l.mu.Lock()
	now := time.Now()
	diff := now.Sub(l.lastLog)
	l.lastLog = now
	l.mu.Unlock()

	name := l.namespace
	if l.color != "" {
		name = l.color + l.namespace + colorReset
	}
	fmt.Fprintf(output, "%s %s +%s\n", name, message, timeutil.FormatDuration(diff))
}

// selectColor picks a stable palette entry for namespace.
func selectColor(namespace string) string {
	if !debugColors || !isTTY {
		return ""
	}

	h := fnv.New32a()
	if _, err := h.Write([]byte(namespace)); err != nil {
		return ""
	}
	return colorPalette[h.Sum32()%uint32(len(colorPalette))]
}

// computeEnabled reports whether namespace is selected by the comma separated
// patterns in debug. Exclusions win over inclusions.
func computeEnabled(namespace, debug string) bool {
	enabled := false

	for _, pattern := range strings.Split(debug, ",") {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}

		if excluded, ok := strings.CutPrefix(pattern, "-"); ok {
			if matchPattern(namespace, excluded) {
				return false
			}
			continue
		}

		if matchPattern(namespace, pattern) {
			enabled = true
		}
	}

	return enabled
}

// matchPattern matches namespace against a pattern with at most one '*'.
func matchPattern(namespace, pattern string) bool {
	if pattern == "*" || pattern == namespace {
		return true
	}

	prefix, suffix, found := strings.Cut(pattern, "*")
	if !found {
		return false
	}
	return len(namespace) >= len(prefix)+len(suffix) &&
		strings.HasPrefix(namespace, prefix) &&
		strings.HasSuffix(namespace, suffix)
}
