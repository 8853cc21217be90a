// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// OnboardRequest creates a fresh profile.
type OnboardRequest struct {
	Name       string `json:"name" validate:"required,max=120"`
	AuthMethod string `json:"authMethod" validate:"required,max=40"`
}

// SuspicionReport opens a security review. For contact flags ContactID
// identifies the reporter; otherwise ReporterName and Relationship are used
// as given.
type SuspicionReport struct {
	ContactID    string   `json:"contactId,omitempty"`
	ReporterName string   `json:"reporterName,omitempty" validate:"max=120"`
	Relationship string   `json:"relationship,omitempty" validate:"max=60"`
	Platforms    []string `json:"platforms" validate:"dive,required,max=60"`
	Description  string   `json:"description,omitempty" validate:"max=2000"`
}

// BreachDetection is a simulated oracle finding.
type BreachDetection struct {
	Platforms []string `json:"platforms" validate:"min=1,dive,required,max=60"`
	Reason    string   `json:"reason,omitempty" validate:"max=500"`
}

// IdentityCheck carries the opaque outcome of a video/biometric check.
type IdentityCheck struct {
	Success bool `json:"success"`
}

// DismissRequest resolves a review as a false alarm.
type DismissRequest struct {
	NotifyReporter bool `json:"notifyReporter"`
}

// MessageRequest carries a free-form message for additional alerts and
// recovery messages.
type MessageRequest struct {
	Message string `json:"message" validate:"required,max=2000"`
}

// SecurityActionRequest names a security checklist item the user ticked.
type SecurityActionRequest struct {
	Action string `json:"action" validate:"required,max=120"`
}

// ComposedMessage is the rendered recovery message.
type ComposedMessage struct {
	Message string `json:"message"`
}

// VoteTally is the outcome of one simulated recovery voting round.
type VoteTally struct {
	Voters    int           `json:"voters"`
	Approved  int           `json:"approved"`
	Denied    int           `json:"denied"`
	Abstained int           `json:"abstained"`
	Threshold int           `json:"threshold"`
	Stage     RecoveryStage `json:"recoveryStage"`
}

// ExpiryResult reports how many invitations an expiry check found.
type ExpiryResult struct {
	Expired int `json:"expired"`
}
