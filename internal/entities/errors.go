// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrRequestNotFound is returned when a request does not exist.
	ErrRequestNotFound = errors.New("request not found")
	// ErrApprovalNotFound signals an unknown approval id within a request.
	ErrApprovalNotFound = errors.New("approval not found")
	// ErrUserNotFound is returned when a user is unknown to the directory.
	ErrUserNotFound = errors.New("user not found")
	// ErrPreApproverSetNotFound signals a missing pre-approver set.
	ErrPreApproverSetNotFound = errors.New("pre-approver set not found")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidTransition signals an operation outside its allowed state.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrUnauthorized signals the actor lacks permission.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrApproverExists signals a duplicate approver on a request.
	ErrApproverExists = errors.New("approver exists")
)

// IsNotFound reports whether err belongs to the not-found family.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrRequestNotFound) ||
		errors.Is(err, ErrApprovalNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrPreApproverSetNotFound)
}
