// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EventType is the closed set of activity log event kinds.
type EventType string

const (
	EventUserOnboarded                           EventType = "user_onboarded"
	EventIdentityVerified                        EventType = "identity_verified"
	EventContactAdded                            EventType = "contact_added"
	EventInvitationSent                          EventType = "invitation_sent"
	EventInvitationResent                        EventType = "invitation_resent"
	EventInvitationAccepted                      EventType = "invitation_accepted"
	EventInvitationExpired                       EventType = "invitation_expired"
	EventContactActivated                        EventType = "contact_activated"
	EventContactUpdated                          EventType = "contact_updated"
	EventContactRemoved                          EventType = "contact_removed"
	EventSuspicionReportedByContact              EventType = "suspicion_reported_by_contact"
	EventContactFlaggedSuspicion                 EventType = "contact_flagged_suspicion"
	EventSecurityReviewInitiated                 EventType = "security_review_initiated"
	EventSecurityReviewIdentityVerified          EventType = "security_review_identity_verified"
	EventSecurityReviewCompromiseConfirmed       EventType = "security_review_compromise_confirmed"
	EventSecurityReviewFalseAlarmDismissed       EventType = "security_review_false_alarm_dismissed"
	EventSecurityReviewContactNotifiedResolution EventType = "security_review_contact_notified_of_resolution"
	EventBreachDetected                          EventType = "breach_detected"
	EventIdentityReverified                      EventType = "identity_reverified"
	EventContactsAlerted                         EventType = "contacts_alerted"
	EventRecoveryAlertsSentToContacts            EventType = "recovery_alerts_sent_to_contacts"
	EventRecoveryMessageComposed                 EventType = "recovery_message_composed"
	EventAdditionalAlertSent                     EventType = "additional_alert_sent"
	EventRecoveryInitiated                       EventType = "recovery_initiated"
	EventRecoveryProcessViewed                   EventType = "recovery_process_viewed"
	EventSocialVotingInitiated                   EventType = "social_voting_initiated"
	EventContactVoteReceived                     EventType = "contact_vote_received"
	EventRecoveryCompleted                       EventType = "recovery_completed"
	EventSystemCheckCompleted                    EventType = "system_check_completed"
	EventAccountSecurityActionChecked            EventType = "account_security_action_checked"
)

var knownEventTypes = map[EventType]struct{}{
	EventUserOnboarded: {}, EventIdentityVerified: {}, EventContactAdded: {},
	EventInvitationSent: {}, EventInvitationResent: {}, EventInvitationAccepted: {},
	EventInvitationExpired: {}, EventContactActivated: {}, EventContactUpdated: {},
	EventContactRemoved: {}, EventSuspicionReportedByContact: {}, EventContactFlaggedSuspicion: {},
	EventSecurityReviewInitiated: {}, EventSecurityReviewIdentityVerified: {},
	EventSecurityReviewCompromiseConfirmed: {}, EventSecurityReviewFalseAlarmDismissed: {},
	EventSecurityReviewContactNotifiedResolution: {}, EventBreachDetected: {},
	EventIdentityReverified: {}, EventContactsAlerted: {}, EventRecoveryAlertsSentToContacts: {},
	EventRecoveryMessageComposed: {}, EventAdditionalAlertSent: {}, EventRecoveryInitiated: {},
	EventRecoveryProcessViewed: {}, EventSocialVotingInitiated: {}, EventContactVoteReceived: {},
	EventRecoveryCompleted: {}, EventSystemCheckCompleted: {}, EventAccountSecurityActionChecked: {},
}

// Valid reports whether e belongs to the closed event set.
func (e EventType) Valid() bool {
	_, ok := knownEventTypes[e]
	return ok
}

// SystemSource tags which subsystem wrote an activity log entry.
type SystemSource string

const (
	SourceLifecycle SystemSource = "lifecycle"
	SourceContacts  SystemSource = "contact_registry"
	SourceNotifier  SystemSource = "notification_dispatcher"
	SourceReview    SystemSource = "security_review"
	SourceRecovery  SystemSource = "recovery"
	SourceSystem    SystemSource = "system"
)

// ActivityLogEntry is one immutable record of a significant lifecycle action.
type ActivityLogEntry struct {
	EntryID      string         `json:"entryId"`
	EventType    EventType      `json:"eventType"`
	Timestamp    time.Time      `json:"timestamp"`
	Details      map[string]any `json:"details"`
	SystemSource SystemSource   `json:"systemSource"`
}
