package lifecycle

import (
	"context"
	"fmt"

	"github.com/MKhiriev/reclaim/models"
)

// demo session content
const (
	demoProfileName = "Demo User"
	demoAuthMethod  = "passkey"
)

var demoContacts = []models.ContactInput{
	{Name: "Alice Johnson", ContactMethod: "alice@example.com", Type: models.ContactTypeEmail, Relationship: "Sister"},
	{Name: "Bob Smith", ContactMethod: "+15551234567", Type: models.ContactTypePhone, Relationship: "Friend"},
}

// ResetSession cancels every pending delivery, wipes the stored records and
// starts over with the default session.
func (s *Service) ResetSession(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cancelled := s.resetLocked()
	s.lastErr = ""

	if err := s.store.Reset(context.WithoutCancel(ctx)); err != nil {
		s.logger.Err(err).Str("func", "*Service.ResetSession").Msg("error wiping stored session")
		s.setError("Stored session could not be cleared: %v", err)
		return fmt.Errorf("error resetting session: %w", err)
	}

	s.seedLocked()
	s.persistLocked(ctx)

	s.logger.Info().Int("cancelled", cancelled).Bool("seeded", s.profile != nil).Msg("session reset")
	return nil
}

// seedLocked fills an empty session with the demo profile and contacts when
// configured: one active contact and one pending invitation.
func (s *Service) seedLocked() {
	if !s.cfg.SeedDemoData {
		return
	}

	now := s.now().UTC()
	s.onboardLocked(models.OnboardRequest{Name: demoProfileName, AuthMethod: demoAuthMethod}, now)
	s.profile.LastVerification = &now

	alice := s.contacts.Invite(demoContacts[0])
	if _, err := s.contacts.Accept(alice.ContactID); err != nil {
		s.logger.Err(err).Msg("error seeding demo contact")
	}
	s.contacts.Invite(demoContacts[1])
}
