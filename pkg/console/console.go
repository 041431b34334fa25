// Package console formats user-facing diagnostics written to stderr.
//
// Messages carry a leading symbol and are styled with lipgloss only when
// stderr is a terminal, so redirected output stays plain text.
package console

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/githubnext/validate-workflows/pkg/styles"
	"github.com/githubnext/validate-workflows/pkg/tty"
)

// isTTY is evaluated per call so tests and pipes see plain output.
var isTTY = tty.IsStderrTerminal

func applyStyle(style lipgloss.Style, text string) string {
	if isTTY() {
		return style.Render(text)
	}
	return text
}

// FormatErrorMessage formats an error for stderr.
func FormatErrorMessage(message string) string {
	return applyStyle(styles.Error, "✗ ") + message
}

// FormatWarningMessage formats a warning for stderr.
func FormatWarningMessage(message string) string {
	return applyStyle(styles.Warning, "⚠ ") + message
}

// FormatSuccessMessage formats a success note for stderr.
func FormatSuccessMessage(message string) string {
	return applyStyle(styles.Success, "✓ ") + message
}

// FormatInfoMessage formats an informational note for stderr.
func FormatInfoMessage(message string) string {
	return applyStyle(styles.Info, "ℹ ") + message
}

// FormatVerboseMessage formats a --verbose detail line.
func FormatVerboseMessage(message string) string {
	return applyStyle(styles.Verbose, "🔍 "+message)
}
