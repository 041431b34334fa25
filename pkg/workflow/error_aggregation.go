package workflow

import (
	"errors"

	"github.com/githubnext/validate-workflows/pkg/logger"
)

var errorAggregationLog = logger.New("workflow:error_aggregation")

// ErrorCollector accumulates per-file parse failures so the scan can continue
// past a malformed file. Count is the failure counter read at the end of a run.
type ErrorCollector struct {
	errors []error
}

// NewErrorCollector creates an empty collector.
func NewErrorCollector() *ErrorCollector {
	return &ErrorCollector{errors: make([]error, 0)}
}

// Add records err. Nil errors are ignored.
func (c *ErrorCollector) Add(err error) {
	if err == nil {
		return
	}
	errorAggregationLog.Printf("Adding error to collector: %v", err)
	c.errors = append(c.errors, err)
}

// Count returns the number of errors collected
func (c *ErrorCollector) Count() int {
	return len(c.errors)
}

// Error returns the collected errors joined with errors.Join, or nil.
func (c *ErrorCollector) Error() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		errorAggregationLog.Printf("Aggregating %d errors", len(c.errors))
		return errors.Join(c.errors...)
	}
}
