// Package fileutil provides utility functions for working with file paths and file operations.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/githubnext/validate-workflows/pkg/logger"
)

var log = logger.New("fileutil:fileutil")

// ErrInvalidUTF8 is returned by ReadTextFile when the content is not UTF-8 text.
var ErrInvalidUTF8 = errors.New("content is not valid UTF-8")

// DirExists checks if a directory exists.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// ReadTextFile reads the whole file at path and checks that it is UTF-8 text.
// The file handle is closed before ReadTextFile returns.
func ReadTextFile(path string) ([]byte, error) {
	log.Printf("Reading text file: %s", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if !utf8.Valid(content) {
		return nil, fmt.Errorf("failed to decode %s: %w", path, ErrInvalidUTF8)
	}

	log.Printf("Read %d bytes from %s", len(content), path)
	return content, nil
}
