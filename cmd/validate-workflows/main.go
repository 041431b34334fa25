package main

import (
	"errors"
	"io"
	"os"

	"github.com/githubnext/validate-workflows/pkg/cli"
	"github.com/githubnext/validate-workflows/pkg/constants"
	"github.com/githubnext/validate-workflows/pkg/logger"
	"github.com/spf13/cobra"
)

// Build-time variables.
var (
	version = "dev"
)

var mainLog = logger.New("main")

func main() {
	rootCmd := cli.NewValidateCommand()
	rootCmd.Version = version
	os.Exit(run(rootCmd, os.Args[1:], os.Stderr))
}

// run executes cmd with args and maps the outcome to a process exit code.
func run(cmd *cobra.Command, args []string, stderr io.Writer) int {
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return constants.ExitCodeOK
	}

	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		mainLog.Printf("Exiting with code %d: %v", exitErr.Code, exitErr)
		return exitErr.Code
	}

	cli.PrintRunError(stderr, err)
	return constants.ExitCodeUnexpectedError
}
