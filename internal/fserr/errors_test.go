package fserr

import (
	"errors"
	"testing"
)

func TestConfigErrorUnwrap(t *testing.T) {
	cause := errors.New("must be >= 1")
	err := NewConfigError("MaxResults", cause)

	expected := `config: invalid value for "MaxResults": must be >= 1`
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause in the chain")
	}
}

func TestMissingProcessorError(t *testing.T) {
	err := NewMissingProcessorError("klingon")
	expected := `no language processor registered for "klingon"`
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestFieldMismatchError(t *testing.T) {
	err := NewFieldMismatchError("Add", "item is a record but index has no declared fields")
	if err.Op != "Add" {
		t.Errorf("Op = %q, want %q", err.Op, "Add")
	}
}

func TestInvalidIndexError(t *testing.T) {
	err := NewInvalidIndexError("Remove")
	expected := "Remove: index is nil or not built"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestSnapshotErrorChaining(t *testing.T) {
	root := errors.New("unexpected end of JSON input")
	err := NewSnapshotError("load", root)
	if !errors.Is(err, root) {
		t.Error("expected errors.Is to find the root cause")
	}
}
