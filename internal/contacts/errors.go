package contacts

import "errors"

var (
	// ErrContactNotFound is returned when no contact carries the given id.
	ErrContactNotFound = errors.New("contact not found")

	// ErrNotPending is returned when an invitation operation targets a
	// contact that is no longer waiting for acceptance.
	ErrNotPending = errors.New("invitation is not pending")

	// ErrInvitationExpired is returned when accepting, or resending with the
	// strict policy, an invitation past its expiry.
	ErrInvitationExpired = errors.New("invitation expired")

	// ErrNotActive is returned when editing a contact that has not accepted
	// its invitation.
	ErrNotActive = errors.New("contact is not active")
)
