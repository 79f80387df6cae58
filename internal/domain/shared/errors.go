package shared

import "fmt"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound           = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists      = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput       = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrUnauthorized       = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrForbidden          = NewDomainError("FORBIDDEN", "Access to this resource is forbidden")
	ErrInvalidState       = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrInvalidCredentials = NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
)

// Reference describes records of one dependent kind that still point at an
// entity scheduled for deletion.
type Reference struct {
	Kind          string   `json:"model"`
	Count         int64    `json:"count"`
	MatchedFields []string `json:"fields"`
}

// ReferenceConflictError is returned when a delete is blocked because
// dependent records still reference the target entity's natural key.
type ReferenceConflictError struct {
	Entity         string      `json:"entity"`
	References     []Reference `json:"references"`
	ActionRequired string      `json:"action_required"`
}

// Error implements the error interface
func (e *ReferenceConflictError) Error() string {
	return fmt.Sprintf("%s cannot be deleted: %d dependent record kind(s) still reference it", e.Entity, len(e.References))
}

// NewReferenceConflictError creates a reference conflict error for the given
// entity with the dependency report attached.
func NewReferenceConflictError(entity string, refs []Reference) *ReferenceConflictError {
	return &ReferenceConflictError{
		Entity:         entity,
		References:     refs,
		ActionRequired: fmt.Sprintf("Delete or reassign the dependent records before deleting this %s", entity),
	}
}
