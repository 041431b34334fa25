package parser

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/githubnext/validate-workflows/pkg/logger"
	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	yamlparser "github.com/goccy/go-yaml/parser"
)

var yamlCheckLog = logger.New("parser:yaml_check")

const goccyYAMLPackage = "github.com/goccy/go-yaml"

// MultipleDocumentsError reports a stream that holds more than one YAML document.
type MultipleDocumentsError struct {
	Count int
}

func (e *MultipleDocumentsError) Error() string {
	return fmt.Sprintf("expected a single document in the stream, but found %d documents", e.Count)
}

// ConstructorError reports a tag outside the core schema, which a safe
// loader has no constructor for.
type ConstructorError struct {
	Tag    string
	Line   int
	Column int
}

func (e *ConstructorError) Error() string {
	return fmt.Sprintf("[%d:%d] could not determine a constructor for the tag '%s'", e.Line, e.Column, e.Tag)
}

// coreTags are the tags a safe loader builds values for. "!" is the
// non-specific tag and resolves to a plain string.
var coreTags = map[string]bool{
	"!":           true,
	"!!str":       true,
	"!!int":       true,
	"!!float":     true,
	"!!bool":      true,
	"!!null":      true,
	"!!seq":       true,
	"!!map":       true,
	"!!binary":    true,
	"!!timestamp": true,
	"!!merge":     true,
	"!!omap":      true,
	"!!pairs":     true,
	"!!set":       true,
}

// ParseYAML checks that content is one well-formed YAML document.
//
// Only scalars, sequences and mappings are accepted: any tag outside the core
// schema fails with a ConstructorError. Duplicate mapping keys are allowed,
// the last one wins.
func ParseYAML(content []byte) error {
	file, err := yamlparser.ParseBytes(content, 0, yamlparser.AllowDuplicateMapKey())
	if err != nil {
		yamlCheckLog.Printf("Syntax error: %v", err)
		return err
	}

	if count := countDocuments(file); count > 1 {
		yamlCheckLog.Printf("Stream has %d documents", count)
		return &MultipleDocumentsError{Count: count}
	}

	if err := checkTags(file); err != nil {
		yamlCheckLog.Printf("Unsupported tag: %v", err)
		return err
	}

	var doc any
	if err := yaml.UnmarshalWithOptions(content, &doc, yaml.AllowDuplicateMapKey()); err != nil {
		yamlCheckLog.Printf("Decode error: %v", err)
		return err
	}

	return nil
}

// countDocuments counts the documents in file. A document without content
// counts only when it opens with an explicit "---", so a comment-only
// preamble is not a document but a trailing "---" is.
func countDocuments(file *ast.File) int {
	if file == nil {
		return 0
	}
	count := 0
	for _, doc := range file.Docs {
		if doc == nil {
			continue
		}
		if doc.Start == nil && isEmptyBody(doc.Body) {
			continue
		}
		count++
	}
	return count
}

func isEmptyBody(body ast.Node) bool {
	if body == nil {
		return true
	}
	_, ok := body.(*ast.CommentGroupNode)
	return ok
}

// tagChecker records the first tag in a tree that is not a core tag.
type tagChecker struct {
	err *ConstructorError
}

func (c *tagChecker) Visit(node ast.Node) ast.Visitor {
	if c.err != nil {
		return nil
	}
	tag, ok := node.(*ast.TagNode)
	if !ok || tag.Start == nil || coreTags[tag.Start.Value] {
		return c
	}
	c.err = &ConstructorError{Tag: tag.Start.Value}
	if pos := tag.Start.Position; pos != nil {
		c.err.Line, c.err.Column = pos.Line, pos.Column
	}
	return nil
}

func checkTags(file *ast.File) error {
	if file == nil {
		return nil
	}
	checker := &tagChecker{}
	for _, doc := range file.Docs {
		if doc == nil || doc.Body == nil {
			continue
		}
		ast.Walk(checker, doc.Body)
		if checker.err != nil {
			return checker.err
		}
	}
	return nil
}

// ErrorClassName names the category of a parse error by its Go type name,
// e.g. "SyntaxError" or "MultipleDocumentsError". Wrapping errors are looked
// through to the parser error they carry.
func ErrorClassName(err error) string {
	if err == nil {
		return ""
	}
	return typeName(classifyingError(err))
}

// ErrorMessage renders err as a single line without source excerpts.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := yaml.FormatError(classifyingError(err), false, false)
	return strings.Join(strings.Fields(msg), " ")
}

// classifyingError walks err's tree breadth first and returns the first error
// that comes from the YAML library or from this package, or err itself when
// there is none.
func classifyingError(err error) error {
	queue := []error{err}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == nil {
			continue
		}

		if isClassifiable(current) {
			return current
		}

		switch wrapped := current.(type) {
		case interface{ Unwrap() error }:
			queue = append(queue, wrapped.Unwrap())
		case interface{ Unwrap() []error }:
			queue = append(queue, wrapped.Unwrap()...)
		}
	}
	return err
}

func isClassifiable(err error) bool {
	switch err.(type) {
	case *MultipleDocumentsError, *ConstructorError:
		return true
	}
	return strings.HasPrefix(derefType(err).PkgPath(), goccyYAMLPackage)
}

func derefType(err error) reflect.Type {
	t := reflect.TypeOf(err)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// typeName falls back to "YAMLError" for unnamed or unexported error types
// such as the ones built by errors.New or fmt.Errorf.
func typeName(err error) string {
	name := derefType(err).Name()
	first, _ := utf8.DecodeRuneInString(name)
	if !unicode.IsUpper(first) {
		return "YAMLError"
	}
	return name
}
