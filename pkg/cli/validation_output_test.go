//go:build !integration

package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/exp/golden"
	"github.com/githubnext/validate-workflows/pkg/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatResultLine(t *testing.T) {
	tests := []struct {
		name     string
		result   workflow.Result
		expected string
	}{
		{
			name:     "valid file",
			result:   workflow.Result{Path: ".github/workflows/a.yml", Valid: true},
			expected: "OK: .github/workflows/a.yml",
		},
		{
			name: "invalid file",
			result: workflow.Result{
				Path:       ".github/workflows/b.yaml",
				ErrorClass: "SyntaxError",
				Message:    "[1:6] sequence end token ']' not found",
			},
			expected: "ERROR: .github/workflows/b.yaml -> SyntaxError: [1:6] sequence end token ']' not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatResultLine(tt.result))
		})
	}
}

func TestFormatSummaryLine(t *testing.T) {
	assert.Equal(t, "All workflow YAML files parsed OK", FormatSummaryLine(&workflow.Summary{}))
	assert.Equal(t, "Found 1 invalid YAML workflow(s)", FormatSummaryLine(&workflow.Summary{Failures: 1}))
	assert.Equal(t, "Found 3 invalid YAML workflow(s)", FormatSummaryLine(&workflow.Summary{Failures: 3}))
}

// TestGolden_Report renders complete text reports from fixed results.
func TestGolden_Report(t *testing.T) {
	tests := []struct {
		name    string
		summary *workflow.Summary
	}{
		{
			name: "all_valid",
			summary: &workflow.Summary{
				Files: []workflow.Result{
					{Path: ".github/workflows/ci.yml", Valid: true},
					{Path: ".github/workflows/release.yaml", Valid: true},
				},
			},
		},
		{
			name: "mixed",
			summary: &workflow.Summary{
				Files: []workflow.Result{
					{Path: ".github/workflows/a.yml", Valid: true},
					{Path: ".github/workflows/b.yaml", ErrorClass: "SyntaxError", Message: "[1:6] sequence end token ']' not found"},
					{Path: ".github/workflows/c.yaml", ErrorClass: "MultipleDocumentsError", Message: "expected a single document in the stream, but found 2 documents"},
				},
				Failures: 2,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			for _, r := range tt.summary.Files {
				out.WriteString(FormatResultLine(r) + "\n")
			}
			out.WriteString(FormatSummaryLine(tt.summary) + "\n")

			golden.RequireEqual(t, []byte(out.String()))
		})
	}
}

func TestWriteJSONReport(t *testing.T) {
	t.Run("empty file list is an empty array", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeJSONReport(&buf, ".github/workflows", &workflow.Summary{}))

		var report map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &report))
		assert.Equal(t, []any{}, report["files"])
		assert.Equal(t, true, report["valid"])
		assert.Equal(t, float64(0), report["failures"])
	})

	t.Run("golden", func(t *testing.T) {
		summary := &workflow.Summary{
			Files: []workflow.Result{
				{Path: ".github/workflows/a.yml", Valid: true},
				{Path: ".github/workflows/b.yaml", ErrorClass: "SyntaxError", Message: "[1:6] sequence end token ']' not found"},
			},
			Failures: 1,
		}

		var buf bytes.Buffer
		require.NoError(t, writeJSONReport(&buf, ".github/workflows", summary))
		golden.RequireEqual(t, buf.Bytes())
	})
}

func TestExitError(t *testing.T) {
	inner := errors.New("found 1 invalid YAML workflow(s)")
	err := &ExitError{Code: 2, Err: inner}

	assert.Equal(t, "found 1 invalid YAML workflow(s)", err.Error())
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "exit status 2", (&ExitError{Code: 2}).Error())

	var exitErr *ExitError
	require.ErrorAs(t, errors.Join(errors.New("other"), err), &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestFormatRunError(t *testing.T) {
	assert.Empty(t, FormatRunError(nil))
	assert.Contains(t, FormatRunError(errors.New("failed to read workflow file ci.yml")), "failed to read workflow file ci.yml")

	var buf bytes.Buffer
	PrintRunError(&buf, nil)
	assert.Empty(t, buf.String())

	PrintRunError(&buf, errors.New("boom"))
	assert.True(t, strings.HasSuffix(buf.String(), "boom\n"))
}
