// Package types provides shared types used across the contentgate codebase.
// This package is at the bottom of the dependency graph and should not import
// any other internal packages to avoid circular dependencies.
package types

import "fmt"

// Verdict is the three-valued outcome of one evaluation.
type Verdict string

// Approval verdict constants.
const (
	VerdictApproved      Verdict = "approved"
	VerdictNeedsRevision Verdict = "needs_revision"
	VerdictRejected      Verdict = "rejected"
)

// Severity level constants.
const (
	SeverityError      = "error"
	SeverityWarning    = "warning"
	SeveritySuggestion = "suggestion"
	SeverityInfo       = "info"
)

// Issue represents a validation issue attached to a document, such as a
// frontmatter schema violation.
type Issue struct {
	File     string
	Message  string
	Severity string
	Line     int
	Column   int
}

// ConfigurationError reports an invalid weight table, standards record, or
// analyzer registration. It is raised at construction time, never per call.
type ConfigurationError struct {
	Setting string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration %s: %s", e.Setting, e.Reason)
}

// InvalidInputError reports a caller-supplied input that violates the engine's
// preconditions. No analyzer runs after one is raised.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}

// AnalyzerError wraps a failure from a single dimension analyzer. The engine
// never substitutes a default score for a failed analyzer; the whole
// evaluation fails with this error instead.
type AnalyzerError struct {
	Dimension string
	Err       error
}

func (e *AnalyzerError) Error() string {
	return fmt.Sprintf("analyzer %s: %v", e.Dimension, e.Err)
}

func (e *AnalyzerError) Unwrap() error {
	return e.Err
}
