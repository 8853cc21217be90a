package lifecycle

import (
	"context"
	"time"

	"github.com/MKhiriev/reclaim/models"
)

// InviteContact adds a trusted contact with a pending invitation.
func (s *Service) InviteContact(ctx context.Context, input models.ContactInput) (models.Contact, error) {
	if err := s.validate(ctx, input); err != nil {
		return models.Contact{}, err
	}

	var out models.Contact
	err := s.mutate(ctx, func(time.Time) error {
		if err := s.requireProfile(); err != nil {
			return err
		}
		out = s.contacts.Invite(input)
		return nil
	})
	return out, err
}

// ResendInvitation restarts the invitation clock of a pending contact.
func (s *Service) ResendInvitation(ctx context.Context, contactID string) (models.Contact, error) {
	return s.contactOp(ctx, "resend invitation", func() (models.Contact, error) {
		return s.contacts.Resend(contactID)
	})
}

// AcceptInvitation simulates the contact accepting their invitation.
func (s *Service) AcceptInvitation(ctx context.Context, contactID string) (models.Contact, error) {
	return s.contactOp(ctx, "accept invitation", func() (models.Contact, error) {
		return s.contacts.Accept(contactID)
	})
}

// UpdateContact edits an active contact.
func (s *Service) UpdateContact(ctx context.Context, contactID string, input models.ContactInput) (models.Contact, error) {
	if err := s.validate(ctx, input); err != nil {
		return models.Contact{}, err
	}

	return s.contactOp(ctx, "update contact", func() (models.Contact, error) {
		return s.contacts.Update(contactID, input)
	})
}

// RemoveContact deletes a contact. Notifications already sent to it are kept.
func (s *Service) RemoveContact(ctx context.Context, contactID string) (models.Contact, error) {
	return s.contactOp(ctx, "remove contact", func() (models.Contact, error) {
		return s.contacts.Remove(contactID)
	})
}

// CheckInvitationExpiry logs every invitation that expired since the last
// check and returns how many did. Nothing is persisted when none expired.
func (s *Service) CheckInvitationExpiry(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.profile == nil {
		return 0
	}

	expired := s.contacts.CheckExpiry(s.now().UTC())
	if len(expired) == 0 {
		return 0
	}

	s.logger.Info().Int("expired", len(expired)).Msg("invitations expired")
	s.persistLocked(ctx)
	return len(expired)
}

func (s *Service) contactOp(ctx context.Context, op string, fn func() (models.Contact, error)) (models.Contact, error) {
	var out models.Contact
	err := s.mutate(ctx, func(time.Time) error {
		if err := s.requireProfile(); err != nil {
			return err
		}

		c, err := fn()
		if err != nil {
			return asRejection(op, err)
		}
		out = c
		return nil
	})
	return out, err
}
