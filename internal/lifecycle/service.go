// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package lifecycle implements the account status state machine of a
// session:
//
//	safe → under_review → compromised → recovering → recovered
//
// Service is constructed once per session and passed to its consumers. Every
// operation runs under one lock, mutates the in-memory state, records one
// activity entry and persists the four records. Guard failures return an
// error wrapping [ErrRejected] and leave the state untouched. Persistence
// failures never undo the in-memory change; they land in the error slot
// exposed by [Service.LastError].
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/reclaim/internal/activity"
	"github.com/MKhiriev/reclaim/internal/config"
	"github.com/MKhiriev/reclaim/internal/contacts"
	"github.com/MKhiriev/reclaim/internal/logger"
	"github.com/MKhiriev/reclaim/internal/notify"
	"github.com/MKhiriev/reclaim/internal/store"
	"github.com/MKhiriev/reclaim/internal/utils"
	"github.com/MKhiriev/reclaim/internal/validators"
	"github.com/MKhiriev/reclaim/models"
)

// Service owns the session state. It is safe for concurrent use.
type Service struct {
	mu sync.Mutex

	cfg       config.App
	store     store.StateStore
	validator validators.Validator
	logger    *logger.Logger

	profile       *models.UserProfile
	activity      *activity.Log
	contacts      *contacts.Registry
	notifications []models.Notification

	scheduler  *notify.Scheduler
	dispatcher notifier
	voter      Voter

	lastErr string

	now        func() time.Time
	userIDs    utils.IDGenerator
	contactIDs utils.IDGenerator
	noteIDs    utils.IDGenerator
	entryIDs   utils.IDGenerator
}

// notifier creates simulated deliveries and resumes restored ones.
type notifier interface {
	Dispatch(contacts []models.Contact, req notify.Request) ([]models.Notification, error)
	Resume(n models.Notification)
}

// Option customises a [Service] at construction.
type Option func(*Service)

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithVoter replaces the random recovery voter.
func WithVoter(v Voter) Option {
	return func(s *Service) { s.voter = v }
}

// WithIDGenerator makes every entity id come from g.
func WithIDGenerator(g utils.IDGenerator) Option {
	return func(s *Service) {
		s.userIDs, s.contactIDs, s.noteIDs, s.entryIDs = g, g, g, g
	}
}

// NewService builds a service around st. Call [Service.Load] before use.
func NewService(cfg config.ServerConfig, st store.StateStore, v validators.Validator, log *logger.Logger, opts ...Option) *Service {
	s := &Service{
		cfg:        cfg.App,
		store:      st,
		validator:  v,
		logger:     log,
		scheduler:  notify.NewScheduler(),
		voter:      NewRandomVoter(cfg.App.VoteApprovalRate),
		now:        time.Now,
		userIDs:    utils.NewUUIDGenerator("usr_"),
		contactIDs: utils.NewUUIDGenerator("ctc_"),
		noteIDs:    utils.NewUUIDGenerator("ntf_"),
		entryIDs:   utils.NewUUIDGenerator("evt_"),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.activity = activity.NewLog(s.entryIDs.Generate, s.now)
	s.contacts = contacts.NewRegistry(contacts.Options{
		InvitationTTL:       cfg.App.InvitationTTL,
		RejectExpiredResend: cfg.App.RejectExpiredResend,
	}, s.activity, s.contactIDs.Generate, s.now)
	s.dispatcher = notify.NewDispatcher(cfg.Delivery, s.scheduler, s, s.noteIDs.Generate, s.now)

	return s
}

// Load restores the session from the store. When loading fails the service
// falls back to the default session and records the failure in the error
// slot; the returned error is informational only.
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "*Service.Load").Msg("error loading session, falling back to defaults")
		s.resetLocked()
		s.seedLocked()
		s.setError("Saved session could not be loaded; started a fresh one (%v)", err)
		return fmt.Errorf("error loading session: %w", err)
	}

	s.restoreLocked(state)
	if s.profile == nil && s.cfg.SeedDemoData {
		s.seedLocked()
		s.persistLocked(ctx)
	}

	s.logger.Info().
		Bool("profile", s.profile != nil).
		Int("contacts", len(state.Contacts)).
		Int("notifications", len(state.Notifications)).
		Msg("session loaded")
	return nil
}

func (s *Service) restoreLocked(state models.State) {
	s.profile = state.Profile
	owner := ""
	if s.profile != nil {
		owner = s.profile.UserID
	}
	s.activity.Restore(owner, state.ActivityLog)
	s.contacts.Restore(state.Contacts, state.ActivityLog)
	s.notifications = slices.Clone(state.Notifications)

	// timers do not survive a restart; pick deliveries up where they stopped
	for _, n := range s.notifications {
		s.dispatcher.Resume(n)
	}
}

// resetLocked empties the session and returns the number of deliveries it
// cancelled.
func (s *Service) resetLocked() int {
	cancelled := s.scheduler.CancelAll()
	s.profile = nil
	s.activity.Reset()
	s.contacts.Reset()
	s.notifications = nil
	return cancelled
}

// persistLocked saves the full state. Failures go to the error slot and never
// roll back the in-memory change.
func (s *Service) persistLocked(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)
	if err := s.store.Save(ctx, s.stateLocked()); err != nil {
		s.logger.Err(err).Str("func", "*Service.persist").Msg("error saving session")
		s.setError("Changes could not be saved: %v", err)
	}
}

func (s *Service) stateLocked() models.State {
	return models.State{
		Profile:       cloneProfile(s.profile),
		Contacts:      s.contacts.All(),
		ActivityLog:   s.activity.Persisted(),
		Notifications: slices.Clone(s.notifications),
	}
}

// mutate runs fn under the lock and persists when it succeeds.
func (s *Service) mutate(ctx context.Context, fn func(now time.Time) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.now().UTC()); err != nil {
		return err
	}

	s.persistLocked(ctx)
	return nil
}

func (s *Service) requireProfile() error {
	if s.profile == nil {
		return ErrNoProfile
	}
	return nil
}

func (s *Service) requireStatus(op string, allowed ...models.AccountStatus) error {
	if err := s.requireProfile(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !slices.Contains(allowed, s.profile.CurrentStatus) {
		return rejected(op, "status is %s", s.profile.CurrentStatus)
	}
	return nil
}

func (s *Service) setError(format string, args ...any) {
	s.lastErr = fmt.Sprintf(format, args...)
}

// LastError returns the message in the process-wide error slot, if any.
func (s *Service) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// DismissError clears the error slot.
func (s *Service) DismissError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = ""
}

// Snapshot returns a copy of the session for rendering. The activity log is
// newest-first.
func (s *Service) Snapshot() models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return models.Snapshot{
		Profile:       cloneProfile(s.profile),
		Contacts:      s.contacts.All(),
		ActivityLog:   s.activity.Entries(),
		Notifications: slices.Clone(s.notifications),
		Error:         s.lastErr,
	}
}

// ApplyDelivery implements [notify.Sink]. Advances scheduled before the last
// session reset are dropped.
func (s *Service) ApplyDelivery(gen uint64, notificationID string, next models.DeliveryStatus, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.scheduler.IsCurrent(gen) {
		s.logger.Debug().Str("notification", notificationID).Msg("dropping stale delivery update")
		return
	}

	changed, err := notify.Advance(s.notifications, notificationID, next, at)
	if err != nil || !changed {
		return
	}

	s.logger.Debug().Str("notification", notificationID).Str("status", string(next)).Msg("delivery advanced")
	s.persistLocked(context.Background())
}

// PendingDeliveries returns the number of delivery tasks not yet fired.
func (s *Service) PendingDeliveries() int {
	return s.scheduler.Pending()
}

// Close stops every pending delivery and releases the store.
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scheduler.CancelAll()
	return s.store.Close()
}

func (s *Service) validate(ctx context.Context, obj any) error {
	if err := s.validator.Validate(ctx, obj); err != nil {
		if errors.Is(err, validators.ErrUnsupportedType) {
			return fmt.Errorf("error validating %T: %w", obj, err)
		}
		return err
	}
	return nil
}

func (s *Service) logTransition(op string) {
	s.logger.Info().
		Str("op", op).
		Str("status", string(s.profile.CurrentStatus)).
		Str("stage", string(s.profile.Stage())).
		Msg("lifecycle transition")
}

func cloneProfile(p *models.UserProfile) *models.UserProfile {
	if p == nil {
		return nil
	}

	out := *p
	if p.RecoveryStage != nil {
		stage := *p.RecoveryStage
		out.RecoveryStage = &stage
	}
	if p.LastVerification != nil {
		t := *p.LastVerification
		out.LastVerification = &t
	}
	if p.BreachTriggerDetails != nil {
		d := *p.BreachTriggerDetails
		d.AffectedPlatforms = slices.Clone(d.AffectedPlatforms)
		out.BreachTriggerDetails = &d
	}
	if p.ReviewRequestDetails != nil {
		d := *p.ReviewRequestDetails
		d.ReportedPlatforms = slices.Clone(d.ReportedPlatforms)
		out.ReviewRequestDetails = &d
	}
	return &out
}
