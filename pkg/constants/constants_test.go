//go:build !integration

package constants

import (
	"path/filepath"
	"testing"
)

func TestGetWorkflowDir(t *testing.T) {
	expected := filepath.Join(".github", "workflows")
	result := GetWorkflowDir()

	if result != expected {
		t.Errorf("GetWorkflowDir() = %q, want %q", result, expected)
	}
}

func TestWorkflowFilePatterns(t *testing.T) {
	expected := []string{"*.yml", "*.yaml"}
	if len(WorkflowFilePatterns) != len(expected) {
		t.Fatalf("WorkflowFilePatterns length = %d, want %d", len(WorkflowFilePatterns), len(expected))
	}

	for i, pattern := range expected {
		if WorkflowFilePatterns[i] != pattern {
			t.Errorf("WorkflowFilePatterns[%d] = %q, want %q", i, WorkflowFilePatterns[i], pattern)
		}
		if _, err := filepath.Match(pattern, "ci"+filepath.Ext(pattern)); err != nil {
			t.Errorf("WorkflowFilePatterns[%d] = %q is not a valid glob: %v", i, pattern, err)
		}
	}
}

func TestExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		value    int
		expected int
	}{
		{"ExitCodeOK", ExitCodeOK, 0},
		{"ExitCodeUnexpectedError", ExitCodeUnexpectedError, 1},
		{"ExitCodeInvalidWorkflow", ExitCodeInvalidWorkflow, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != tt.expected {
				t.Errorf("%s = %d, want %d", tt.name, tt.value, tt.expected)
			}
		})
	}
}
