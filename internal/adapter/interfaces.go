// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the lifecycle process on behalf of the terminal
// client.
//
// [ServerAdapter] hides the transport from the UI. Error responses are mapped
// back to the sentinel values in errors.go so callers can branch with
// [errors.Is], e.g. [ErrRejected] for an operation the current status does
// not allow.
package adapter

import (
	"context"

	"github.com/MKhiriev/reclaim/models"
)

// ServerAdapter is the client view of the lifecycle API. Operations that
// change the session return the snapshot taken right after the change.
//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

type ServerAdapter interface {
	Version(ctx context.Context) (string, error)
	State(ctx context.Context) (models.Snapshot, error)
	DismissError(ctx context.Context) (models.Snapshot, error)
	ResetSession(ctx context.Context) (models.Snapshot, error)

	Onboard(ctx context.Context, req models.OnboardRequest) (models.UserProfile, error)
	VerifyIdentity(ctx context.Context) (models.Snapshot, error)
	RunSystemCheck(ctx context.Context) (models.Snapshot, error)
	CheckSecurityAction(ctx context.Context, req models.SecurityActionRequest) (models.Snapshot, error)

	ReportSuspicion(ctx context.Context, report models.SuspicionReport) (models.Snapshot, error)
	SelfReport(ctx context.Context, report models.SuspicionReport) (models.Snapshot, error)
	DetectBreach(ctx context.Context, detection models.BreachDetection) (models.Snapshot, error)
	VerifyReviewIdentity(ctx context.Context, check models.IdentityCheck) (models.Snapshot, error)
	ConfirmCompromise(ctx context.Context) (models.Snapshot, error)
	DismissFalseAlarm(ctx context.Context, req models.DismissRequest) (models.Snapshot, error)

	SendAlerts(ctx context.Context) (models.Snapshot, error)
	SendAdditionalAlert(ctx context.Context, message string) (models.Snapshot, error)

	// ComposeRecoveryMessage renders the recovery message; an empty message
	// selects the default text.
	ComposeRecoveryMessage(ctx context.Context, message string) (models.ComposedMessage, error)
	InitiateRecovery(ctx context.Context) (models.Snapshot, error)
	ViewRecovery(ctx context.Context) (models.Snapshot, error)
	SendRecoveryRequests(ctx context.Context, message string) (models.Snapshot, error)
	SimulateVotes(ctx context.Context) (models.VoteTally, error)
	CompleteRecovery(ctx context.Context) (models.Snapshot, error)

	InviteContact(ctx context.Context, input models.ContactInput) (models.Contact, error)
	UpdateContact(ctx context.Context, contactID string, input models.ContactInput) (models.Contact, error)
	RemoveContact(ctx context.Context, contactID string) (models.Contact, error)
	ResendInvitation(ctx context.Context, contactID string) (models.Contact, error)
	AcceptInvitation(ctx context.Context, contactID string) (models.Contact, error)
	FlagSuspicion(ctx context.Context, contactID string, report models.SuspicionReport) (models.Snapshot, error)
	CheckInvitationExpiry(ctx context.Context) (int, error)

	MarkNotificationRead(ctx context.Context, notificationID string) (models.Snapshot, error)
}
