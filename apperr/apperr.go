// Package apperr holds the error taxonomy shared by the core and the HTTP layer.
//
// Policy, validation, not-found and conflict errors are client errors and are
// never retried. StorageError wraps a persistence failure; callers may retry
// the whole operation because every multi-step write runs in one transaction.
package apperr

import (
	"errors"
	"fmt"
)

// Reason identifies why a policy decision denied an action.
type Reason string

const (
	ReasonAccessDenied      Reason = "access_denied"
	ReasonUnauthenticated   Reason = "unauthenticated"
	ReasonRoleRequired      Reason = "role_required"
	ReasonNotOwner          Reason = "not_owner"
	ReasonCannotDeleteAdmin Reason = "cannot_delete_admin"
	ReasonAdminProtected    Reason = "admin_protected"
)

var (
	// ErrInvalidOrExpired is returned for every failed reset-code redemption.
	// It deliberately carries no detail about which check failed.
	ErrInvalidOrExpired = errors.New("invalid code or expired")

	// ErrInvalidCredentials is returned for every failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnavailable means an optional backend (image storage) is not configured.
	ErrUnavailable = errors.New("service unavailable")
)

type PolicyError struct {
	Reason   Reason
	Expected string // role required, only set for ReasonRoleRequired
}

func (e *PolicyError) Error() string {
	switch e.Reason {
	case ReasonRoleRequired:
		return fmt.Sprintf("role %s required", e.Expected)
	case ReasonUnauthenticated:
		return "authentication required"
	case ReasonNotOwner:
		return "resource belongs to another user"
	case ReasonCannotDeleteAdmin:
		return "cannot delete admin users"
	case ReasonAdminProtected:
		return "admin users cannot be modified"
	default:
		return "access denied"
	}
}

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// StorageError wraps a transient persistence failure.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func Denied(reason Reason) error {
	return &PolicyError{Reason: reason}
}

func RoleRequired(role string) error {
	return &PolicyError{Reason: ReasonRoleRequired, Expected: role}
}

func Invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func NotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

func Conflict(format string, args ...any) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsPolicy reports whether err is (or wraps) a PolicyError.
func IsPolicy(err error) bool {
	var pe *PolicyError
	return errors.As(err, &pe)
}

// IsStorage reports whether err is (or wraps) a StorageError.
func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
