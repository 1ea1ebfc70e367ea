package services

import "errors"

// Expected business-rule failures are sentinel values so handlers can map
// them to an HTTP status and taxonomy code without string matching.
// Anything else bubbling out of a service is treated as INTERNAL.
var (
	ErrValidation      = errors.New("validation error")
	ErrNotFound        = errors.New("resource not found")
	ErrForbidden       = errors.New("forbidden: insufficient permissions")
	ErrUnauthenticated = errors.New("unauthorized: invalid credentials")
	ErrConflict        = errors.New("conflict: resource already exists")
	ErrInvalidState    = errors.New("operation not permitted in current status")

	ErrTokenInvalid     = errors.New("token invalid")
	ErrTokenExpired     = errors.New("token expired")
	ErrAlreadyVerified  = errors.New("user already verified")
	ErrEmailNotVerified = errors.New("email not verified")
	ErrAccountSuspended = errors.New("account suspended")

	ErrPastDate  = errors.New("reservation date is in the past")
	ErrSlotTaken = errors.New("slot already taken")
)
