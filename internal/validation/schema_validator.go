// Package validation checks JSON documents against embedded JSON schemas.
package validation

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SchemaValidator validates JSON data against registered JSON schemas
type SchemaValidator interface {
	RegisterSchema(name string, schema []byte) error
	ValidateBytes(data []byte, schemaName string) error
}

// Violation is one failed keyword at one location of the instance
type Violation struct {
	Path    string // JSON pointer into the document, "" for the root
	Keyword string
	Message string
}

func (v Violation) String() string {
	path := v.Path
	if path == "" {
		path = "(root)"
	}
	return fmt.Sprintf("at %s: %s", path, v.Message)
}

// SchemaError lists every violation found in a document
type SchemaError struct {
	Schema     string
	Violations []Violation
}

func (e *SchemaError) Error() string {
	lines := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		lines = append(lines, "  - "+v.String())
	}
	return fmt.Sprintf("schema %s validation failed:\n%s", e.Schema, strings.Join(lines, "\n"))
}

type validator struct {
	mu       sync.RWMutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
	printer  *message.Printer
}

// NewSchemaValidator creates a new schema validator
func NewSchemaValidator() SchemaValidator {
	return &validator{
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
		printer:  message.NewPrinter(language.English),
	}
}

// RegisterSchema compiles a schema document and stores it under name.
// Registering a name twice keeps the first schema.
func (v *validator) RegisterSchema(name string, schema []byte) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.schemas[name]; ok {
		return nil
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schema))
	if err != nil {
		return fmt.Errorf("failed to parse schema JSON: %w", err)
	}
	if err := v.compiler.AddResource(name, doc); err != nil {
		return fmt.Errorf("failed to add schema resource: %w", err)
	}

	compiled, err := v.compiler.Compile(name)
	if err != nil {
		return fmt.Errorf("failed to compile schema: %w", err)
	}

	v.schemas[name] = compiled
	return nil
}

// ValidateBytes validates JSON data against a registered schema. Schema
// failures are returned as *SchemaError.
func (v *validator) ValidateBytes(data []byte, schemaName string) error {
	v.mu.RLock()
	schema, ok := v.schemas[schemaName]
	v.mu.RUnlock()
	if !ok {
		return fmt.Errorf("failed to load schema %s: not registered", schemaName)
	}

	// UnmarshalJSON keeps numbers as json.Number so integer checks are exact
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}

	err = schema.Validate(doc)
	if err == nil {
		return nil
	}

	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return fmt.Errorf("validation error: %w", err)
	}
	out := &SchemaError{Schema: schemaName}
	v.collect(verr, &out.Violations)
	return out
}

// collect records the leaves of the error tree; inner nodes only group causes
func (v *validator) collect(err *jsonschema.ValidationError, into *[]Violation) {
	if len(err.Causes) > 0 {
		for _, cause := range err.Causes {
			v.collect(cause, into)
		}
		return
	}

	viol := Violation{Message: "validation failed"}
	if len(err.InstanceLocation) > 0 {
		viol.Path = "/" + strings.Join(err.InstanceLocation, "/")
	}
	if err.ErrorKind != nil {
		viol.Keyword = strings.Join(err.ErrorKind.KeywordPath(), ".")
		viol.Message = err.ErrorKind.LocalizedString(v.printer)
	}
	*into = append(*into, viol)
}
