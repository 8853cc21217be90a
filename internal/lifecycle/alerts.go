package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/reclaim/internal/notify"
	"github.com/MKhiriev/reclaim/internal/validators"
	"github.com/MKhiriev/reclaim/models"
)

// SendAlertsToContacts dispatches a breach alert to every active contact.
// With nobody to alert it returns notify.ErrNoActiveContacts and sets the
// error slot; the state is otherwise unchanged.
func (s *Service) SendAlertsToContacts(ctx context.Context) error {
	return s.mutateAlert(ctx, "send alerts", func(now time.Time) error {
		return s.sendBreachAlertsLocked(now)
	})
}

func (s *Service) sendBreachAlertsLocked(now time.Time) error {
	platforms := s.affectedPlatforms()
	batch, err := s.dispatchLocked(s.contacts.Active(now), models.NotificationBreachAlert, platforms, "", now)
	if err != nil {
		return err
	}

	s.activity.Record(models.EventContactsAlerted, map[string]any{
		"count":           len(batch),
		"platforms":       platforms,
		"notificationIds": notificationIDs(batch),
	}, models.SourceNotifier)
	return nil
}

// SendAdditionalAlert dispatches a free-form update to every active contact.
func (s *Service) SendAdditionalAlert(ctx context.Context, req models.MessageRequest) error {
	if err := s.validate(ctx, req); err != nil {
		return err
	}

	return s.mutateAlert(ctx, "send additional alert", func(now time.Time) error {
		batch, err := s.dispatchLocked(s.contacts.Active(now), models.NotificationAdditionalAlert, s.affectedPlatforms(), req.Message, now)
		if err != nil {
			return err
		}

		s.activity.Record(models.EventAdditionalAlertSent, map[string]any{
			"count":           len(batch),
			"message":         req.Message,
			"notificationIds": notificationIDs(batch),
		}, models.SourceNotifier)
		return nil
	})
}

// ComposeRecoveryMessage renders the text the user can share on other
// channels while the account is breached. The message is optional.
func (s *Service) ComposeRecoveryMessage(ctx context.Context, message string) (models.ComposedMessage, error) {
	if err := checkMessage(message); err != nil {
		return models.ComposedMessage{}, err
	}

	var out models.ComposedMessage
	err := s.mutate(ctx, func(time.Time) error {
		if err := s.requireStatus("compose recovery message", models.StatusCompromised, models.StatusRecovering); err != nil {
			return err
		}

		text, err := notify.ComposeRecoveryMessage(s.profile.Name, s.profile.LastVerification, s.affectedPlatforms(), message)
		if err != nil {
			return fmt.Errorf("compose recovery message: %w", err)
		}

		out.Message = text
		s.activity.Record(models.EventRecoveryMessageComposed, map[string]any{
			"length": len(text),
		}, models.SourceRecovery)
		return nil
	})
	return out, err
}

// MarkNotificationRead advances a delivered notification to read. Advancing
// from any other status is a no-op.
func (s *Service) MarkNotificationRead(ctx context.Context, notificationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed, err := notify.Advance(s.notifications, notificationID, models.DeliveryRead, s.now())
	if err != nil {
		return fmt.Errorf("mark read: %w", err)
	}
	if changed {
		s.persistLocked(ctx)
	}
	return nil
}

// mutateAlert is mutate for operations allowed while the account is
// breached. A dispatch with no recipients changes nothing and returns
// notify.ErrNoActiveContacts.
func (s *Service) mutateAlert(ctx context.Context, op string, fn func(now time.Time) error) error {
	return s.mutate(ctx, func(now time.Time) error {
		if err := s.requireStatus(op, models.StatusCompromised, models.StatusRecovering); err != nil {
			return err
		}
		if err := fn(now); err != nil {
			if errors.Is(err, notify.ErrNoActiveContacts) {
				return fmt.Errorf("%s: %w", op, err)
			}
			return err
		}
		return nil
	})
}

func (s *Service) affectedPlatforms() []string {
	if s.profile.BreachTriggerDetails == nil {
		return []string{}
	}
	return slices.Clone(s.profile.BreachTriggerDetails.AffectedPlatforms)
}

// optional free-form messages share the limit of MessageRequest
const maxMessageLength = 2000

func checkMessage(message string) error {
	if len(message) <= maxMessageLength {
		return nil
	}
	return &validators.ValidationError{Fields: []validators.FieldError{{Field: "message", Message: "is too long"}}}
}

func notificationIDs(batch []models.Notification) []string {
	ids := make([]string, 0, len(batch))
	for _, n := range batch {
		ids = append(ids, n.NotificationID)
	}
	return ids
}
