package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/reclaim/internal/contacts"
	"github.com/MKhiriev/reclaim/internal/notify"
	"github.com/MKhiriev/reclaim/internal/validators"
	"github.com/MKhiriev/reclaim/models"
)

// SystemReporterName names the reporter of system-detected breaches.
const SystemReporterName = "Reclaim breach monitor"

var causeBySource = map[models.ReviewSource]models.BreachCause{
	models.ReviewSourceContact: models.CauseContactFlag,
	models.ReviewSourceSystem:  models.CauseSystemOracle,
	models.ReviewSourceSelf:    models.CauseUserConfirmedReview,
}

// ReportSuspicion opens a review from a report relayed on behalf of a
// contact. ContactID is optional; when it names a known contact the report
// is linked to it.
func (s *Service) ReportSuspicion(ctx context.Context, report models.SuspicionReport) error {
	if err := s.validate(ctx, report); err != nil {
		return err
	}
	if report.ReporterName == "" && report.ContactID == "" {
		return &validators.ValidationError{Fields: []validators.FieldError{{Field: "reporterName", Message: "is required"}}}
	}

	return s.mutate(ctx, func(now time.Time) error {
		if err := s.requireStatus("report suspicion", models.StatusSafe); err != nil {
			return err
		}

		details := &models.ReviewRequestDetails{
			Source:                       models.ReviewSourceContact,
			ReportingContactName:         report.ReporterName,
			ReportingContactRelationship: report.Relationship,
			ReportedPlatforms:            nonNil(report.Platforms),
			Description:                  report.Description,
			Timestamp:                    now,
		}
		if report.ContactID != "" {
			if c, err := s.contacts.Get(report.ContactID); err == nil {
				details.ReportingContactID = c.ContactID
				if details.ReportingContactName == "" {
					details.ReportingContactName = c.Name
				}
				if details.ReportingContactRelationship == "" {
					details.ReportingContactRelationship = c.Relationship
				}
			} else if details.ReportingContactName == "" {
				return fmt.Errorf("report suspicion: %w", err)
			}
		}

		s.openReviewLocked(details, models.EventSuspicionReportedByContact, "report suspicion")
		return nil
	})
}

// FlagSuspicion opens a review on behalf of an active contact.
func (s *Service) FlagSuspicion(ctx context.Context, contactID string, report models.SuspicionReport) error {
	if err := s.validate(ctx, report); err != nil {
		return err
	}

	return s.mutate(ctx, func(now time.Time) error {
		if err := s.requireStatus("flag suspicion", models.StatusSafe); err != nil {
			return err
		}

		c, err := s.contacts.Get(contactID)
		if err != nil {
			return fmt.Errorf("flag suspicion: %w", err)
		}
		if !c.CanBeAlerted(now) {
			return rejected("flag suspicion", "contact %s is not active", contactID)
		}

		s.openReviewLocked(&models.ReviewRequestDetails{
			Source:                       models.ReviewSourceContact,
			ReportingContactID:           c.ContactID,
			ReportingContactName:         c.Name,
			ReportingContactRelationship: c.Relationship,
			ReportedPlatforms:            nonNil(report.Platforms),
			Description:                  report.Description,
			Timestamp:                    now,
		}, models.EventContactFlaggedSuspicion, "flag suspicion")
		return nil
	})
}

// SelfReport opens a review started by the user.
func (s *Service) SelfReport(ctx context.Context, report models.SuspicionReport) error {
	if err := s.validate(ctx, report); err != nil {
		return err
	}

	return s.mutate(ctx, func(now time.Time) error {
		if err := s.requireStatus("self report", models.StatusSafe); err != nil {
			return err
		}

		s.openReviewLocked(&models.ReviewRequestDetails{
			Source:               models.ReviewSourceSelf,
			ReportingContactName: s.profile.Name,
			ReportedPlatforms:    nonNil(report.Platforms),
			Description:          report.Description,
			Timestamp:            now,
		}, models.EventSecurityReviewInitiated, "self report")
		return nil
	})
}

// DetectBreach opens a review from a simulated breach-monitor finding.
func (s *Service) DetectBreach(ctx context.Context, detection models.BreachDetection) error {
	if err := s.validate(ctx, detection); err != nil {
		return err
	}

	return s.mutate(ctx, func(now time.Time) error {
		if err := s.requireStatus("detect breach", models.StatusSafe); err != nil {
			return err
		}

		s.openReviewLocked(&models.ReviewRequestDetails{
			Source:               models.ReviewSourceSystem,
			ReportingContactName: SystemReporterName,
			ReportedPlatforms:    slices.Clone(detection.Platforms),
			Description:          detection.Reason,
			Timestamp:            now,
		}, models.EventBreachDetected, "detect breach")
		return nil
	})
}

func (s *Service) openReviewLocked(details *models.ReviewRequestDetails, event models.EventType, op string) {
	s.profile.CurrentStatus = models.StatusUnderReview
	s.profile.ReviewRequestDetails = details
	s.profile.BreachTriggerDetails = nil

	s.activity.Record(event, map[string]any{
		"source":        string(details.Source),
		"reporterName":  details.ReportingContactName,
		"contactId":     details.ReportingContactID,
		"platforms":     slices.Clone(details.ReportedPlatforms),
		"description":   details.Description,
		"currentStatus": string(models.StatusUnderReview),
	}, sourceFor(details.Source))
	s.logTransition(op)
}

// VerifyReviewIdentity records the opaque outcome of the identity check the
// user passes during a review. A success also refreshes lastVerification.
func (s *Service) VerifyReviewIdentity(ctx context.Context, check models.IdentityCheck) error {
	return s.mutate(ctx, func(now time.Time) error {
		if err := s.requireStatus("verify review identity", models.StatusUnderReview); err != nil {
			return err
		}

		s.profile.ReviewRequestDetails.IdentityVerified = check.Success
		if check.Success {
			s.profile.LastVerification = &now
		}
		s.activity.Record(models.EventSecurityReviewIdentityVerified, map[string]any{
			"success": check.Success,
		}, models.SourceReview)
		return nil
	})
}

// ConfirmCompromiseAfterReview moves a review to compromised and alerts every
// active contact. Having nobody to alert, or failing to send the alerts, does
// not fail the transition; it sets the error slot instead.
func (s *Service) ConfirmCompromiseAfterReview(ctx context.Context) error {
	return s.mutate(ctx, func(now time.Time) error {
		if err := s.requireStatus("confirm compromise", models.StatusUnderReview); err != nil {
			return err
		}

		review := s.profile.ReviewRequestDetails
		s.profile.CurrentStatus = models.StatusCompromised
		s.profile.BreachTriggerDetails = &models.BreachTriggerDetails{
			Cause:             causeBySource[review.Source],
			ReporterName:      review.ReportingContactName,
			Reason:            review.Description,
			Timestamp:         now,
			AffectedPlatforms: slices.Clone(review.ReportedPlatforms),
		}
		s.profile.ReviewRequestDetails = nil
		s.profile.SetStage(models.StageAlertingContacts)

		s.activity.Record(models.EventSecurityReviewCompromiseConfirmed, map[string]any{
			"cause":         string(s.profile.BreachTriggerDetails.Cause),
			"reporterName":  review.ReportingContactName,
			"platforms":     slices.Clone(review.ReportedPlatforms),
			"currentStatus": string(models.StatusCompromised),
			"recoveryStage": string(models.StageAlertingContacts),
		}, models.SourceReview)
		s.logTransition("confirm compromise")

		if err := s.sendBreachAlertsLocked(now); err != nil {
			s.reportDispatchLocked("confirm compromise", err)
		}
		return nil
	})
}

// DismissFalseAlarm resolves a review back to safe. With notifyReporter set
// and a registered reporter who can still be alerted, the reporter receives a
// review_resolution notification.
func (s *Service) DismissFalseAlarm(ctx context.Context, req models.DismissRequest) error {
	return s.mutate(ctx, func(now time.Time) error {
		if err := s.requireStatus("dismiss false alarm", models.StatusUnderReview); err != nil {
			return err
		}

		review := s.profile.ReviewRequestDetails
		s.profile.CurrentStatus = models.StatusSafe
		s.profile.ClearIncident()
		s.profile.SetStage("")

		s.activity.Record(models.EventSecurityReviewFalseAlarmDismissed, map[string]any{
			"source":         string(review.Source),
			"reporterName":   review.ReportingContactName,
			"notifyReporter": req.NotifyReporter,
			"currentStatus":  string(models.StatusSafe),
		}, models.SourceReview)
		s.logTransition("dismiss false alarm")

		if !req.NotifyReporter || review.ReportingContactID == "" {
			return nil
		}
		reporter, err := s.contacts.Get(review.ReportingContactID)
		if err != nil || !reporter.CanBeAlerted(now) {
			s.logger.Warn().Str("contact", review.ReportingContactID).Msg("reporter can no longer be notified")
			return nil
		}
		batch, err := s.dispatchLocked([]models.Contact{reporter}, models.NotificationReviewResolution, nil, "", now)
		if err != nil {
			s.reportDispatchLocked("dismiss false alarm", err)
			return nil
		}
		s.activity.Record(models.EventSecurityReviewContactNotifiedResolution, map[string]any{
			"contactId":      reporter.ContactID,
			"notificationId": batch[0].NotificationID,
		}, models.SourceReview)
		return nil
	})
}

// dispatchLocked sends one notification type to contacts, stamps their
// lastNotified and keeps the batch. An empty contact list puts a message in
// the error slot and returns notify.ErrNoActiveContacts.
func (s *Service) dispatchLocked(to []models.Contact, typ models.NotificationType, platforms []string, message string, now time.Time) ([]models.Notification, error) {
	batch, err := s.dispatcher.Dispatch(to, notify.Request{
		Type:             typ,
		ProfileName:      s.profile.Name,
		LastVerification: s.profile.LastVerification,
		Platforms:        platforms,
		Message:          message,
		SentAt:           now,
	})
	if errors.Is(err, notify.ErrNoActiveContacts) {
		s.setError("No active contacts to notify. Invite a trusted contact and wait for them to accept.")
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(batch))
	for _, n := range batch {
		ids = append(ids, n.ContactID)
	}
	s.contacts.MarkNotified(ids, now)
	s.notifications = append(s.notifications, batch...)

	return batch, nil
}

// reportDispatchLocked records a dispatch that failed after its transition
// was applied. The transition stands; the failure goes to the error slot.
// A missing audience is already reported by dispatchLocked.
func (s *Service) reportDispatchLocked(op string, err error) {
	if errors.Is(err, notify.ErrNoActiveContacts) {
		return
	}
	s.logger.Err(err).Str("op", op).Msg("error dispatching notifications")
	s.setError("Notifications could not be sent: %v", err)
}

func sourceFor(src models.ReviewSource) models.SystemSource {
	if src == models.ReviewSourceSystem {
		return models.SourceSystem
	}
	return models.SourceReview
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return slices.Clone(items)
}

// contact registry errors that describe a failed precondition
func asRejection(op string, err error) error {
	switch {
	case errors.Is(err, contacts.ErrNotPending),
		errors.Is(err, contacts.ErrInvitationExpired),
		errors.Is(err, contacts.ErrNotActive):
		return fmt.Errorf("%s: %w: %w", op, ErrRejected, err)
	case err != nil:
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
