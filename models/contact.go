// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ContactType is the kind of channel a contact is reached through.
type ContactType string

const (
	ContactTypeEmail ContactType = "email"
	ContactTypePhone ContactType = "phone"
	ContactTypeOther ContactType = "other"
)

// ContactStatus is the stored status of a trusted contact.
type ContactStatus string

const (
	ContactPendingInvitation ContactStatus = "pending_invitation"
	ContactActive            ContactStatus = "active"
	ContactRemoved           ContactStatus = "removed"
)

// VoteStatus is a contact's vote during social recovery.
type VoteStatus string

const (
	VotePending   VoteStatus = "pending"
	VoteApproved  VoteStatus = "approved"
	VoteDenied    VoteStatus = "denied"
	VoteAbstained VoteStatus = "abstained"
)

// Contact is a trusted contact of the profile owner.
type Contact struct {
	ContactID     string      `json:"contactId"`
	Name          string      `json:"name"`
	ContactMethod string      `json:"contactMethod"`
	Type          ContactType `json:"type"`
	Relationship  string      `json:"relationship"`

	Status ContactStatus `json:"status"`

	InvitationSentAt     *time.Time `json:"invitationSentAt,omitempty"`
	InvitationExpiresAt  *time.Time `json:"invitationExpiresAt,omitempty"`
	InvitationAcceptedAt *time.Time `json:"invitationAcceptedAt,omitempty"`

	LastNotified *time.Time `json:"lastNotified,omitempty"`

	RecoveryVoteStatus VoteStatus `json:"recoveryVoteStatus,omitempty"`
	LastVoteAt         *time.Time `json:"lastVoteAt,omitempty"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// IsExpired reports whether a pending invitation has passed its expiry time.
// Expiry is never stored; the stored status stays pending_invitation.
func (c Contact) IsExpired(now time.Time) bool {
	if c.Status != ContactPendingInvitation || c.InvitationExpiresAt == nil {
		return false
	}
	return now.After(*c.InvitationExpiresAt)
}

// IsActive reports whether the contact accepted the invitation and was not
// removed.
func (c Contact) IsActive() bool {
	return c.Status == ContactActive
}

// CanBeAlerted reports whether an alert may be dispatched to the contact.
func (c Contact) CanBeAlerted(now time.Time) bool {
	return c.IsActive() && !c.IsExpired(now)
}

// CanVote reports whether the contact may take part in recovery voting.
func (c Contact) CanVote(now time.Time) bool {
	return c.CanBeAlerted(now)
}

// ContactInput carries the user-editable identity fields of a contact.
type ContactInput struct {
	Name          string      `json:"name" validate:"required,max=120"`
	ContactMethod string      `json:"contactMethod" validate:"required,contactmethod"`
	Type          ContactType `json:"type" validate:"required,oneof=email phone other"`
	Relationship  string      `json:"relationship" validate:"max=60"`
}
