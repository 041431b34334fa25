package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/githubnext/validate-workflows/pkg/console"
	"github.com/githubnext/validate-workflows/pkg/constants"
	"github.com/githubnext/validate-workflows/pkg/fileutil"
	"github.com/githubnext/validate-workflows/pkg/logger"
	"github.com/githubnext/validate-workflows/pkg/timeutil"
	"github.com/githubnext/validate-workflows/pkg/workflow"
	"github.com/spf13/cobra"
)

var validateLog = logger.New("cli:validate_command")

// ValidateConfig holds configuration for a validation run
type ValidateConfig struct {
	WorkflowDir string
	JSONOutput  bool
	Verbose     bool
}

// NewValidateCommand creates the validate-workflows command
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   constants.CLIName,
		Short: "Check that every workflow file parses as YAML",
		Long: `Check that every *.yml and *.yaml file directly under the workflows directory
is syntactically valid YAML. Only parseability is checked; the structure of the
workflow (triggers, jobs, steps) is not validated.

Each file produces one line on stdout, either "OK: <path>" or
"ERROR: <path> -> <ErrorClass>: <message>", followed by a summary line.

Exit codes:
  0  no workflow files found, or every file parsed
  1  unexpected error (unreadable file, invalid flag)
  2  one or more files failed to parse

Examples:
  ` + constants.CLIName + `                      # Check .github/workflows
  ` + constants.CLIName + ` --dir ci/workflows   # Check another directory
  ` + constants.CLIName + ` --json               # Output results in JSON format
  ` + constants.CLIName + ` --verbose            # Show progress details on stderr`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			jsonOutput, _ := cmd.Flags().GetBool("json")
			verbose, _ := cmd.Flags().GetBool("verbose")

			config := ValidateConfig{
				WorkflowDir: dir,
				JSONOutput:  jsonOutput,
				Verbose:     verbose,
			}
			return RunValidate(cmd.OutOrStdout(), cmd.ErrOrStderr(), config)
		},
	}

	cmd.Flags().StringP("dir", "d", constants.GetWorkflowDir(), "Workflow directory")
	cmd.Flags().BoolP("json", "j", false, "Output results in JSON format")
	cmd.Flags().BoolP("verbose", "v", false, "Print progress details to stderr")

	return cmd
}

// RunValidate validates every workflow file in config.WorkflowDir, writing the
// report to out and verbose diagnostics to errOut. It returns an *ExitError
// when one or more files failed to parse, and a plain error when the run could
// not be completed.
func RunValidate(out, errOut io.Writer, config ValidateConfig) error {
	dir := config.WorkflowDir
	if dir == "" {
		dir = constants.GetWorkflowDir()
	}
	validateLog.Printf("Running validate: dir=%s, json=%v, verbose=%v", dir, config.JSONOutput, config.Verbose)
	start := time.Now()

	if config.Verbose {
		fmt.Fprintln(errOut, console.FormatInfoMessage("Validating workflow files in "+dir))
		if !fileutil.DirExists(dir) {
			fmt.Fprintln(errOut, console.FormatWarningMessage(fmt.Sprintf("Workflow directory %s does not exist", dir)))
		}
	}

	files, err := workflow.FindWorkflowFiles(dir)
	if err != nil {
		return err
	}

	if config.JSONOutput {
		return runValidateJSON(out, errOut, dir, files, config.Verbose, start)
	}

	if len(files) == 0 {
		fmt.Fprintln(out, NoWorkflowFilesMessage)
		return nil
	}

	summary, err := workflow.ValidateFiles(files, func(result workflow.Result) {
		fmt.Fprintln(out, FormatResultLine(result))
		reportVerboseProgress(errOut, result, config.Verbose)
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(out, FormatSummaryLine(summary))
	reportVerboseSummary(errOut, summary, config.Verbose, start)
	return exitErrorFor(summary)
}

func runValidateJSON(out, errOut io.Writer, dir string, files []string, verbose bool, start time.Time) error {
	summary, err := workflow.ValidateFiles(files, func(result workflow.Result) {
		reportVerboseProgress(errOut, result, verbose)
	})
	if err != nil {
		return err
	}

	if err := writeJSONReport(out, dir, summary); err != nil {
		return err
	}

	reportVerboseSummary(errOut, summary, verbose, start)
	return exitErrorFor(summary)
}

func reportVerboseProgress(errOut io.Writer, result workflow.Result, verbose bool) {
	if !verbose {
		return
	}
	status := "valid"
	if !result.Valid {
		status = "invalid (" + result.ErrorClass + ")"
	}
	fmt.Fprintln(errOut, console.FormatVerboseMessage(fmt.Sprintf("Checked %s: %s", result.Path, status)))
}

func reportVerboseSummary(errOut io.Writer, summary *workflow.Summary, verbose bool, start time.Time) {
	if !verbose {
		return
	}
	elapsed := timeutil.FormatDuration(time.Since(start))
	msg := fmt.Sprintf("Validated %d workflow file(s) in %s", len(summary.Files), elapsed)
	if summary.Valid() {
		fmt.Fprintln(errOut, console.FormatSuccessMessage(msg))
		return
	}
	fmt.Fprintln(errOut, console.FormatWarningMessage(fmt.Sprintf("%s, %d failed", msg, summary.Failures)))
}

func exitErrorFor(summary *workflow.Summary) error {
	if summary.Valid() {
		return nil
	}
	return &ExitError{
		Code: constants.ExitCodeInvalidWorkflow,
		Err:  fmt.Errorf("found %d invalid YAML workflow(s): %w", summary.Failures, summary.Err),
	}
}
