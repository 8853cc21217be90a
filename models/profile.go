// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AccountStatus is the central lifecycle status of a user profile.
// It governs which screens and operations are reachable.
type AccountStatus string

const (
	StatusSafe        AccountStatus = "safe"
	StatusUnderReview AccountStatus = "under_review"
	StatusCompromised AccountStatus = "compromised"
	StatusRecovering  AccountStatus = "recovering"
	StatusRecovered   AccountStatus = "recovered"
)

// IsCalm reports whether the status carries no breach or review context.
// Profiles in a calm status must not hold BreachTriggerDetails or
// ReviewRequestDetails.
func (s AccountStatus) IsCalm() bool {
	return s == StatusSafe || s == StatusRecovered
}

// IsBreached reports whether alerts may be dispatched in this status.
func (s AccountStatus) IsBreached() bool {
	return s == StatusCompromised || s == StatusRecovering
}

// RecoveryStage is the sub-state of StatusRecovering.
type RecoveryStage string

const (
	StageAlertingContacts           RecoveryStage = "alerting_contacts"
	StageAwaitingSocialVerification RecoveryStage = "awaiting_social_verification"
	StageFinalizing                 RecoveryStage = "finalizing"
)

// BreachCause records what put the profile into StatusCompromised.
type BreachCause string

const (
	CauseContactFlag         BreachCause = "contact_flag"
	CauseSystemOracle        BreachCause = "system_oracle"
	CauseUserConfirmedReview BreachCause = "user_confirmed_review"
)

// ReviewSource identifies who opened a security review.
type ReviewSource string

const (
	ReviewSourceContact ReviewSource = "contact"
	ReviewSourceSelf    ReviewSource = "self"
	ReviewSourceSystem  ReviewSource = "system"
)

// UserProfile is the single per-session profile. All other records are
// scoped to it.
type UserProfile struct {
	UserID     string    `json:"userId"`
	Name       string    `json:"name"`
	AuthMethod string    `json:"authMethod"`
	CreatedAt  time.Time `json:"createdAt"`

	CurrentStatus AccountStatus `json:"currentStatus"`

	// RecoveryStage is meaningful only while CurrentStatus is StatusRecovering.
	RecoveryStage *RecoveryStage `json:"recoveryStage"`

	LastVerification *time.Time `json:"lastVerification,omitempty"`

	// BreachTriggerDetails is present only while compromised or recovering.
	BreachTriggerDetails *BreachTriggerDetails `json:"breachTriggerDetails,omitempty"`

	// ReviewRequestDetails is present only while under review.
	ReviewRequestDetails *ReviewRequestDetails `json:"reviewRequestDetails,omitempty"`
}

// BreachTriggerDetails records what caused the compromised status.
type BreachTriggerDetails struct {
	Cause             BreachCause `json:"cause"`
	ReporterName      string      `json:"reporterName,omitempty"`
	Reason            string      `json:"reason,omitempty"`
	Timestamp         time.Time   `json:"timestamp"`
	AffectedPlatforms []string    `json:"affectedPlatforms"`
}

// ReviewRequestDetails records what caused the under_review status.
type ReviewRequestDetails struct {
	Source                       ReviewSource `json:"source"`
	ReportingContactID           string       `json:"reportingContactId,omitempty"`
	ReportingContactName         string       `json:"reportingContactName"`
	ReportingContactRelationship string       `json:"reportingContactRelationship,omitempty"`
	ReportedPlatforms            []string     `json:"reportedPlatforms"`
	Description                  string       `json:"description,omitempty"`
	Timestamp                    time.Time    `json:"timestamp"`
	IdentityVerified             bool         `json:"identityVerified"`
}

// Stage returns the current recovery stage or an empty value.
func (p *UserProfile) Stage() RecoveryStage {
	if p == nil || p.RecoveryStage == nil {
		return ""
	}
	return *p.RecoveryStage
}

// SetStage sets the recovery stage; an empty stage clears it.
func (p *UserProfile) SetStage(stage RecoveryStage) {
	if stage == "" {
		p.RecoveryStage = nil
		return
	}
	p.RecoveryStage = &stage
}

// ClearIncident drops breach and review context.
func (p *UserProfile) ClearIncident() {
	p.BreachTriggerDetails = nil
	p.ReviewRequestDetails = nil
}
