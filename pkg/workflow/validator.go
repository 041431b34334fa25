// Package workflow checks that workflow files are syntactically valid YAML.
//
// The validator runs strictly in sequence: discover the files, then read and
// parse one file at a time, reporting each result as soon as it is known.
// A malformed file only marks that file as failed; any other error (an
// unreadable file, content that is not UTF-8) stops the run.
package workflow

import (
	"fmt"

	"github.com/githubnext/validate-workflows/pkg/fileutil"
	"github.com/githubnext/validate-workflows/pkg/logger"
	"github.com/githubnext/validate-workflows/pkg/parser"
)

var validatorLog = logger.New("workflow:validator")

// Result is the outcome of validating a single workflow file.
type Result struct {
	Path       string `json:"path"`
	Valid      bool   `json:"valid"`
	ErrorClass string `json:"error_class,omitempty"`
	Message    string `json:"message,omitempty"`
}

// Summary is the outcome of one validation run.
type Summary struct {
	Files    []Result
	Failures int
	// Err joins the parse errors of all failed files, wrapped with their path.
	Err error
}

// Valid reports whether every file parsed.
func (s *Summary) Valid() bool {
	return s.Failures == 0
}

// ValidateFile reads path and checks that it holds one well-formed YAML
// document. A parse failure is reported in the Result; the returned error is
// reserved for failures to read the file.
func ValidateFile(path string) (Result, error) {
	content, err := fileutil.ReadTextFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read workflow file %s: %w", path, err)
	}

	if err := parser.ParseYAML(content); err != nil {
		validatorLog.Printf("Invalid YAML: path=%s, error=%v", path, err)
		return Result{
			Path:       path,
			ErrorClass: parser.ErrorClassName(err),
			Message:    parser.ErrorMessage(err),
		}, nil
	}

	validatorLog.Printf("Valid YAML: path=%s", path)
	return Result{Path: path, Valid: true}, nil
}

// ValidateFiles validates paths in order and calls report with each result
// before moving on to the next file. It stops at the first read error; the
// summary returned alongside it covers the files validated so far.
func ValidateFiles(paths []string, report func(Result)) (*Summary, error) {
	validatorLog.Printf("Validating %d workflow files", len(paths))

	summary := &Summary{Files: make([]Result, 0, len(paths))}
	collector := NewErrorCollector()

	for _, path := range paths {
		result, err := ValidateFile(path)
		if err != nil {
			summary.Failures = collector.Count()
			summary.Err = collector.Error()
			return summary, err
		}

		if !result.Valid {
			collector.Add(fmt.Errorf("%s: %s: %s", result.Path, result.ErrorClass, result.Message))
		}
		summary.Files = append(summary.Files, result)
		if report != nil {
			report(result)
		}
	}

	summary.Failures = collector.Count()
	summary.Err = collector.Error()
	validatorLog.Printf("Validation finished: files=%d, failures=%d", len(summary.Files), summary.Failures)
	return summary, nil
}
