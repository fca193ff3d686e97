package report

import "fmt"

// ParseError indicates the recipe source could not be parsed.
type ParseError struct {
	// Cause is the parser's error.
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing recipe: %v", e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// TemplateError indicates template compilation or execution failed.
// Datastore lookup failures inside a render are not wrapped in a
// TemplateError; they surface as their own error kinds.
type TemplateError struct {
	// Line is the 1-based template line, 0 when unknown.
	Line int

	// Cause is the underlying engine error.
	Cause error
}

func (e *TemplateError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("template error at line %d: %v", e.Line, e.Cause)
	}
	return fmt.Sprintf("template error: %v", e.Cause)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}
