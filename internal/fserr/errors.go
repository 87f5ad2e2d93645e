// Package fserr defines the typed error kinds raised by the fuzzyfind
// engine.
//
// Each error kind carries the context of its failure (the field,
// language, or operation involved); ConfigError and SnapshotError also
// wrap an underlying cause reachable via Unwrap for errors.Is/errors.As.
// None of these errors are retried by the engine: per the
// engine's error-handling contract, a configuration, processor, field,
// or index error is always fatal to the call that raised it.
package fserr

import "fmt"

// ConfigError reports an out-of-range or contradictory configuration
// value, raised synchronously at Build or Validate time.
type ConfigError struct {
	Field string
	Cause error
}

// NewConfigError creates a ConfigError for the named field.
func NewConfigError(field string, cause error) *ConfigError {
	return &ConfigError{Field: field, Cause: cause}
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: invalid value for %q: %v", e.Field, e.Cause)
}

func (e *ConfigError) Unwrap() error { return e.Cause }

// MissingProcessorError reports that no Language Processor resolves for
// a declared language tag.
type MissingProcessorError struct {
	Language string
}

// NewMissingProcessorError creates a MissingProcessorError for the
// unresolved language tag.
func NewMissingProcessorError(language string) *MissingProcessorError {
	return &MissingProcessorError{Language: language}
}

func (e *MissingProcessorError) Error() string {
	return fmt.Sprintf("no language processor registered for %q", e.Language)
}

// FieldMismatchError reports a record/field-declaration mismatch: a
// record item without a declared field list, or a non-record item added
// to an index built in record mode.
type FieldMismatchError struct {
	Op     string
	Reason string
}

// NewFieldMismatchError creates a FieldMismatchError.
func NewFieldMismatchError(op, reason string) *FieldMismatchError {
	return &FieldMismatchError{Op: op, Reason: reason}
}

func (e *FieldMismatchError) Error() string {
	return fmt.Sprintf("%s: field mismatch: %s", e.Op, e.Reason)
}

// InvalidIndexError reports a mutating operation called on a nil or
// partially constructed index.
type InvalidIndexError struct {
	Op string
}

// NewInvalidIndexError creates an InvalidIndexError for the named
// operation.
func NewInvalidIndexError(op string) *InvalidIndexError {
	return &InvalidIndexError{Op: op}
}

func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("%s: index is nil or not built", e.Op)
}

// SnapshotError reports a version mismatch or malformed data at
// snapshot-load time.
type SnapshotError struct {
	Op    string
	Cause error
}

// NewSnapshotError creates a SnapshotError for the named operation.
func NewSnapshotError(op string, cause error) *SnapshotError {
	return &SnapshotError{Op: op, Cause: cause}
}

func (e *SnapshotError) Error() string {
	return fmt.Sprintf("snapshot %s failed: %v", e.Op, e.Cause)
}

func (e *SnapshotError) Unwrap() error { return e.Cause }
