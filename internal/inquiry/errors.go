package inquiry

import (
	"fmt"
)

// Failure codes carried by validation and conflict errors. Handlers map the
// error kinds to HTTP statuses; the codes identify the exact rule that fired.
const (
	CodeMissingField        = "missing_field"
	CodeInvalidEmail        = "invalid_email"
	CodeInvalidPhone        = "invalid_phone"
	CodeInvalidPropertyType = "invalid_property_type"
	CodeInvalidStatus       = "invalid_status"
	CodeSelfInquiry         = "self_inquiry"
	CodeDuplicateInquiry    = "duplicate_inquiry"
)

// ValidationError reports malformed or missing input.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError reports an absent entity.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// AuthorizationError reports a caller that is not the resource's buyer or seller.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return "Unauthorized: " + e.Message
}

// ConflictError reports a request that clashes with existing state, such as a
// self-inquiry or a duplicate inquiry.
type ConflictError struct {
	Code    string
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// StateError reports an illegal lifecycle transition.
type StateError struct {
	Message string
}

func (e *StateError) Error() string {
	return e.Message
}

// InfrastructureError wraps a storage failure.
type InfrastructureError struct {
	Op  string
	Err error
}

func (e *InfrastructureError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}
