package lifecycle

import (
	"context"
	"time"

	"github.com/MKhiriev/reclaim/models"
)

// Onboard creates the session profile in the safe state. A session holds one
// profile; onboarding again requires a reset first.
func (s *Service) Onboard(ctx context.Context, req models.OnboardRequest) (models.UserProfile, error) {
	if err := s.validate(ctx, req); err != nil {
		return models.UserProfile{}, err
	}

	var out models.UserProfile
	err := s.mutate(ctx, func(now time.Time) error {
		if s.profile != nil {
			return rejected("onboard", "profile %s already exists", s.profile.UserID)
		}

		s.onboardLocked(req, now)
		out = *cloneProfile(s.profile)
		return nil
	})
	return out, err
}

func (s *Service) onboardLocked(req models.OnboardRequest, now time.Time) {
	s.profile = &models.UserProfile{
		UserID:        s.userIDs.Generate(),
		Name:          req.Name,
		AuthMethod:    req.AuthMethod,
		CreatedAt:     now,
		CurrentStatus: models.StatusSafe,
	}
	s.activity.Bind(s.profile.UserID)
	s.activity.Record(models.EventUserOnboarded, map[string]any{
		"userId":     s.profile.UserID,
		"name":       req.Name,
		"authMethod": req.AuthMethod,
	}, models.SourceLifecycle)
	s.logTransition("onboard")
}

// VerifyIdentity records a successful identity proof. A first proof logs
// identity_verified, later ones identity_reverified.
func (s *Service) VerifyIdentity(ctx context.Context) error {
	return s.mutate(ctx, func(now time.Time) error {
		if err := s.requireProfile(); err != nil {
			return err
		}

		event := models.EventIdentityVerified
		if s.profile.LastVerification != nil {
			event = models.EventIdentityReverified
		}
		s.profile.LastVerification = &now
		s.activity.Record(event, map[string]any{
			"status": string(s.profile.CurrentStatus),
		}, models.SourceLifecycle)
		return nil
	})
}

// RunSystemCheck logs a summary of the session health.
func (s *Service) RunSystemCheck(ctx context.Context) error {
	return s.mutate(ctx, func(now time.Time) error {
		if err := s.requireProfile(); err != nil {
			return err
		}

		var active, pending, expired int
		for _, c := range s.contacts.All() {
			switch {
			case c.IsActive():
				active++
			case c.IsExpired(now):
				expired++
			case c.Status == models.ContactPendingInvitation:
				pending++
			}
		}

		s.activity.Record(models.EventSystemCheckCompleted, map[string]any{
			"status":             string(s.profile.CurrentStatus),
			"activeContacts":     active,
			"pendingInvitations": pending,
			"expiredInvitations": expired,
			"notifications":      len(s.notifications),
		}, models.SourceSystem)
		return nil
	})
}

// CheckSecurityAction logs that the user ticked an item of the security
// checklist.
func (s *Service) CheckSecurityAction(ctx context.Context, req models.SecurityActionRequest) error {
	if err := s.validate(ctx, req); err != nil {
		return err
	}

	return s.mutate(ctx, func(time.Time) error {
		if err := s.requireProfile(); err != nil {
			return err
		}

		s.activity.Record(models.EventAccountSecurityActionChecked, map[string]any{
			"action": req.Action,
			"status": string(s.profile.CurrentStatus),
		}, models.SourceSystem)
		return nil
	})
}
