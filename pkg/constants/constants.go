// Package constants defines names and values shared across validate-workflows.
package constants

import "path/filepath"

// CLIName is the name of the validate-workflows binary as used in help text.
const CLIName = "validate-workflows"

// WorkflowFilePatterns are the glob patterns matched directly under the
// workflows directory, in the order their matches are reported.
var WorkflowFilePatterns = []string{"*.yml", "*.yaml"}

// Process exit codes.
const (
	ExitCodeOK              = 0
	ExitCodeUnexpectedError = 1
	ExitCodeInvalidWorkflow = 2
)

// GetWorkflowDir returns the workflows directory relative to the repository root.
func GetWorkflowDir() string {
	return filepath.Join(".github", "workflows")
}
