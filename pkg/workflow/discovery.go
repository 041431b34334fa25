package workflow

import (
	"fmt"
	"path/filepath"

	"github.com/githubnext/validate-workflows/pkg/constants"
	"github.com/githubnext/validate-workflows/pkg/fileutil"
	"github.com/githubnext/validate-workflows/pkg/logger"
)

var discoveryLog = logger.New("workflow:discovery")

// FindWorkflowFiles returns the workflow files directly under dir: every
// "*.yml" match followed by every "*.yaml" match. Matching is case-sensitive
// and does not recurse. A directory with no matches, or one that does not
// exist, yields an empty slice and no error.
func FindWorkflowFiles(dir string) ([]string, error) {
	discoveryLog.Printf("Discovering workflow files: dir=%s", dir)

	var files []string
	for _, pattern := range constants.WorkflowFilePatterns {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("failed to list workflow files in %s: %w", dir, err)
		}

		for _, match := range matches {
			// a directory named like a workflow is not a workflow file; anything
			// else, including a dangling link, is left for the reader to fail on
			if fileutil.DirExists(match) {
				discoveryLog.Printf("Skipping directory match: %s", match)
				continue
			}
			files = append(files, match)
		}
	}

	discoveryLog.Printf("Found %d workflow files in %s", len(files), dir)
	return files, nil
}
