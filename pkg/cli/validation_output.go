package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/githubnext/validate-workflows/pkg/console"
	"github.com/githubnext/validate-workflows/pkg/workflow"
)

// Report lines written to stdout. CI logs are grepped for these, so they are
// never styled.
const (
	NoWorkflowFilesMessage = "No workflow files found"
	AllValidMessage        = "All workflow YAML files parsed OK"
)

// ExitError carries the process exit code for a run that completed but must
// not exit 0. The report has already been printed when it is returned.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// FormatResultLine renders the report line for a single file.
func FormatResultLine(result workflow.Result) string {
	if result.Valid {
		return "OK: " + result.Path
	}
	return fmt.Sprintf("ERROR: %s -> %s: %s", result.Path, result.ErrorClass, result.Message)
}

// FormatSummaryLine renders the closing line of a run over at least one file.
func FormatSummaryLine(summary *workflow.Summary) string {
	if summary.Failures > 0 {
		return fmt.Sprintf("Found %d invalid YAML workflow(s)", summary.Failures)
	}
	return AllValidMessage
}

// ValidationReport is the --json output document.
type ValidationReport struct {
	Directory string            `json:"directory"`
	Files     []workflow.Result `json:"files"`
	Failures  int               `json:"failures"`
	Valid     bool              `json:"valid"`
}

func writeJSONReport(out io.Writer, dir string, summary *workflow.Summary) error {
	report := ValidationReport{
		Directory: dir,
		Files:     summary.Files,
		Failures:  summary.Failures,
		Valid:     summary.Valid(),
	}
	if report.Files == nil {
		report.Files = []workflow.Result{}
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("failed to write JSON report: %w", err)
	}
	return nil
}

// FormatRunError formats an error that stopped a run for console output.
func FormatRunError(err error) string {
	if err == nil {
		return ""
	}
	return console.FormatErrorMessage(err.Error())
}

// PrintRunError prints err to w with console formatting.
func PrintRunError(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(w, FormatRunError(err))
}
