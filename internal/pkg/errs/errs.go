package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for classification with errors.Is. Each typed error below
// unwraps to the matching sentinel (plus its cause, when one was attached).
var (
	// ErrValueIsRequired classifies errors about missing required values.
	ErrValueIsRequired = errors.New("value is required")

	// ErrValueIsInvalid classifies errors about values that fail validation.
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrObjectNotFound classifies errors about objects missing from storage.
	ErrObjectNotFound = errors.New("object not found")
)

// ValueIsRequiredError indicates that a required value was not provided.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates an error for a missing required value.
// ParamName identifies the missing value in the error message.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates an error for a missing required
// value and records the underlying cause for unwrapping.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

// Error implements the error interface.
func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (%s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

// Unwrap supports errors.Is/errors.As chains.
func (e *ValueIsRequiredError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrValueIsRequired, e.Cause}
	}
	return []error{ErrValueIsRequired}
}

// ValueIsInvalidError indicates that a provided value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates an error for an invalid value.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates an error for an invalid value and
// records the underlying cause for unwrapping.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

// Error implements the error interface.
func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (%s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

// Unwrap supports errors.Is/errors.As chains.
func (e *ValueIsInvalidError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrValueIsInvalid, e.Cause}
	}
	return []error{ErrValueIsInvalid}
}

// ObjectNotFoundError indicates that an object could not be found in storage.
type ObjectNotFoundError struct {
	ObjectName string
	ObjectID   string
	Cause      error
}

// NewObjectNotFoundError creates an error for an object that cannot be found.
// ObjectName names the kind of object, ObjectID identifies the instance.
func NewObjectNotFoundError(objectName, objectID string) *ObjectNotFoundError {
	return &ObjectNotFoundError{ObjectName: objectName, ObjectID: objectID}
}

// NewObjectNotFoundErrorWithCause creates an error for an object that cannot
// be found and records the underlying cause for unwrapping.
func NewObjectNotFoundErrorWithCause(objectName, objectID string, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ObjectName: objectName, ObjectID: objectID, Cause: cause}
}

// Error implements the error interface.
func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s %s (%s)", ErrObjectNotFound, e.ObjectName, e.ObjectID, e.Cause)
	}
	return fmt.Sprintf("%s: %s %s", ErrObjectNotFound, e.ObjectName, e.ObjectID)
}

// Unwrap supports errors.Is/errors.As chains.
func (e *ObjectNotFoundError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrObjectNotFound, e.Cause}
	}
	return []error{ErrObjectNotFound}
}
