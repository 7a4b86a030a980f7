package ir

import "fmt"

// ErrorCode classifies resolution and schema-shape failures. Every failure is
// fatal: the run aborts rather than produce a partially generated binding
// surface.
type ErrorCode string

const (
	// CodeSchemaShape marks a node lacking a required field for its kind.
	CodeSchemaShape ErrorCode = "schema_shape"

	// CodeOverrideMismatch marks an explicit type override whose declared
	// source text does not match the structural rendering at that path.
	CodeOverrideMismatch ErrorCode = "override_mismatch"

	// CodeDuplicateNominalType marks two global nominal types sharing a name
	// with different definitions.
	CodeDuplicateNominalType ErrorCode = "duplicate_nominal_type"

	// CodeUnsupportedTypeShape marks a type-expression combination with no
	// mapping rule.
	CodeUnsupportedTypeShape ErrorCode = "unsupported_type_shape"

	// CodeUnnamedUnion marks an anonymous union reaching a code path that
	// requires a name.
	CodeUnnamedUnion ErrorCode = "unnamed_union"
)

// Error is a fatal generation error carrying the offending node's path.
type Error struct {
	Code    ErrorCode
	Path    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Path, e.Message)
}

// Errorf builds an Error for the node at path.
func Errorf(code ErrorCode, path, format string, args ...any) *Error {
	return &Error{Code: code, Path: path, Message: fmt.Sprintf(format, args...)}
}
