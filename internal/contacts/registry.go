// Package contacts manages trusted contacts and their invitation
// sub-lifecycle: pending_invitation → active, with a derived expiry.
package contacts

import (
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/reclaim/internal/activity"
	"github.com/MKhiriev/reclaim/models"
)

// DefaultInvitationTTL is how long an invitation stays acceptable when no
// TTL is configured.
const DefaultInvitationTTL = 7 * 24 * time.Hour

// Options tunes the invitation policy.
type Options struct {
	InvitationTTL time.Duration
	// RejectExpiredResend makes Resend fail on an expired invitation instead
	// of silently restarting its clock.
	RejectExpiredResend bool
}

// Registry holds the contacts of one profile and records every change in the
// activity log.
//
// Registry is not safe for concurrent use; the lifecycle service serializes
// access.
type Registry struct {
	contacts []models.Contact
	opts     Options
	log      *activity.Log
	newID    func() string
	now      func() time.Time

	// expiry notes already logged, keyed by contact id
	expiryNoted map[string]time.Time
}

// NewRegistry returns an empty registry.
func NewRegistry(opts Options, log *activity.Log, newID func() string, now func() time.Time) *Registry {
	if opts.InvitationTTL <= 0 {
		opts.InvitationTTL = DefaultInvitationTTL
	}
	return &Registry{
		opts:        opts,
		log:         log,
		newID:       newID,
		now:         now,
		expiryNoted: make(map[string]time.Time),
	}
}

// Restore replaces the registry content with persisted contacts. Expiry
// notes are rebuilt from the activity log so an expiry is never logged twice.
func (r *Registry) Restore(contacts []models.Contact, history []models.ActivityLogEntry) {
	r.contacts = slices.Clone(contacts)
	clear(r.expiryNoted)

	for _, e := range history {
		if e.EventType != models.EventInvitationExpired {
			continue
		}
		id, _ := e.Details["contactId"].(string)
		raw, _ := e.Details["expiresAt"].(string)
		at, err := time.Parse(time.RFC3339Nano, raw)
		if id == "" || err != nil {
			continue
		}
		r.expiryNoted[id] = at
	}
}

// Reset drops every contact.
func (r *Registry) Reset() {
	r.contacts = nil
	clear(r.expiryNoted)
}

// All returns a copy of every contact in insertion order.
func (r *Registry) All() []models.Contact {
	return slices.Clone(r.contacts)
}

// Active returns the contacts that may be alerted and may vote at now.
func (r *Registry) Active(now time.Time) []models.Contact {
	out := make([]models.Contact, 0, len(r.contacts))
	for _, c := range r.contacts {
		if c.CanBeAlerted(now) {
			out = append(out, c)
		}
	}
	return out
}

// Get returns the contact with the given id.
func (r *Registry) Get(id string) (models.Contact, error) {
	i, err := r.index(id)
	if err != nil {
		return models.Contact{}, err
	}
	return r.contacts[i], nil
}

// Invite adds a contact in pending_invitation and starts its invitation
// clock. Input is expected to be validated by the caller.
func (r *Registry) Invite(input models.ContactInput) models.Contact {
	now := r.now().UTC()
	expires := now.Add(r.opts.InvitationTTL)

	c := models.Contact{
		ContactID:           r.newID(),
		Name:                input.Name,
		ContactMethod:       input.ContactMethod,
		Type:                input.Type,
		Relationship:        input.Relationship,
		Status:              models.ContactPendingInvitation,
		InvitationSentAt:    &now,
		InvitationExpiresAt: &expires,
		CreatedAt:           now,
	}
	r.contacts = append(r.contacts, c)

	r.log.Record(models.EventContactAdded, map[string]any{
		"contactId": c.ContactID,
		"name":      c.Name,
		"type":      string(c.Type),
	}, models.SourceContacts)
	r.log.Record(models.EventInvitationSent, map[string]any{
		"contactId": c.ContactID,
		"expiresAt": expires.Format(time.RFC3339Nano),
	}, models.SourceContacts)

	return c
}

// Resend restarts the invitation clock of a pending contact.
func (r *Registry) Resend(id string) (models.Contact, error) {
	i, err := r.index(id)
	if err != nil {
		return models.Contact{}, err
	}

	now := r.now().UTC()
	c := &r.contacts[i]
	if c.Status != models.ContactPendingInvitation {
		return models.Contact{}, fmt.Errorf("resend %s: %w", id, ErrNotPending)
	}
	wasExpired := c.IsExpired(now)
	if wasExpired && r.opts.RejectExpiredResend {
		return models.Contact{}, fmt.Errorf("resend %s: %w", id, ErrInvitationExpired)
	}

	expires := now.Add(r.opts.InvitationTTL)
	c.InvitationSentAt = &now
	c.InvitationExpiresAt = &expires
	c.UpdatedAt = &now
	delete(r.expiryNoted, id)

	r.log.Record(models.EventInvitationResent, map[string]any{
		"contactId":  id,
		"expiresAt":  expires.Format(time.RFC3339Nano),
		"wasExpired": wasExpired,
	}, models.SourceContacts)

	return *c, nil
}

// Accept activates a pending contact.
func (r *Registry) Accept(id string) (models.Contact, error) {
	i, err := r.index(id)
	if err != nil {
		return models.Contact{}, err
	}

	now := r.now().UTC()
	c := &r.contacts[i]
	if c.Status != models.ContactPendingInvitation {
		return models.Contact{}, fmt.Errorf("accept %s: %w", id, ErrNotPending)
	}
	if c.IsExpired(now) {
		return models.Contact{}, fmt.Errorf("accept %s: %w", id, ErrInvitationExpired)
	}

	c.Status = models.ContactActive
	c.InvitationAcceptedAt = &now
	c.LastNotified = &now
	c.UpdatedAt = &now

	r.log.Record(models.EventInvitationAccepted, map[string]any{"contactId": id}, models.SourceContacts)
	r.log.Record(models.EventContactActivated, map[string]any{"contactId": id, "name": c.Name}, models.SourceContacts)

	return *c, nil
}

// Update edits the identity fields of an active contact.
func (r *Registry) Update(id string, input models.ContactInput) (models.Contact, error) {
	i, err := r.index(id)
	if err != nil {
		return models.Contact{}, err
	}

	c := &r.contacts[i]
	if !c.IsActive() {
		return models.Contact{}, fmt.Errorf("update %s: %w", id, ErrNotActive)
	}

	now := r.now().UTC()
	c.Name = input.Name
	c.ContactMethod = input.ContactMethod
	c.Type = input.Type
	c.Relationship = input.Relationship
	c.UpdatedAt = &now

	r.log.Record(models.EventContactUpdated, map[string]any{"contactId": id, "name": c.Name}, models.SourceContacts)

	return *c, nil
}

// Remove deletes a contact whatever its status.
func (r *Registry) Remove(id string) (models.Contact, error) {
	i, err := r.index(id)
	if err != nil {
		return models.Contact{}, err
	}

	removed := r.contacts[i]
	r.contacts = slices.Delete(r.contacts, i, i+1)
	delete(r.expiryNoted, id)

	r.log.Record(models.EventContactRemoved, map[string]any{
		"contactId":      id,
		"name":           removed.Name,
		"previousStatus": string(removed.Status),
	}, models.SourceContacts)

	removed.Status = models.ContactRemoved
	return removed, nil
}

// MarkNotified stamps lastNotified on the given contacts.
func (r *Registry) MarkNotified(ids []string, at time.Time) {
	at = at.UTC()
	for i := range r.contacts {
		if slices.Contains(ids, r.contacts[i].ContactID) {
			r.contacts[i].LastNotified = &at
		}
	}
}

// SetVote records a recovery vote on a contact.
func (r *Registry) SetVote(id string, vote models.VoteStatus, at time.Time) {
	i, err := r.index(id)
	if err != nil {
		return
	}
	at = at.UTC()
	r.contacts[i].RecoveryVoteStatus = vote
	r.contacts[i].LastVoteAt = &at
}

// ResetVotes puts every active contact back to a pending vote and clears
// the votes of everyone else.
func (r *Registry) ResetVotes() {
	for i := range r.contacts {
		r.contacts[i].LastVoteAt = nil
		r.contacts[i].RecoveryVoteStatus = ""
		if r.contacts[i].IsActive() {
			r.contacts[i].RecoveryVoteStatus = models.VotePending
		}
	}
}

// CheckExpiry logs one invitation_expired entry for every invitation that
// expired since the last check and returns those contacts. Stored status is
// left untouched.
func (r *Registry) CheckExpiry(now time.Time) []models.Contact {
	var expired []models.Contact
	for _, c := range r.contacts {
		if !c.IsExpired(now) {
			continue
		}
		if noted, ok := r.expiryNoted[c.ContactID]; ok && noted.Equal(*c.InvitationExpiresAt) {
			continue
		}

		r.expiryNoted[c.ContactID] = *c.InvitationExpiresAt
		r.log.Record(models.EventInvitationExpired, map[string]any{
			"contactId": c.ContactID,
			"name":      c.Name,
			"expiresAt": c.InvitationExpiresAt.UTC().Format(time.RFC3339Nano),
		}, models.SourceContacts)
		expired = append(expired, c)
	}
	return expired
}

func (r *Registry) index(id string) (int, error) {
	i := slices.IndexFunc(r.contacts, func(c models.Contact) bool { return c.ContactID == id })
	if i < 0 {
		return -1, fmt.Errorf("%w: %s", ErrContactNotFound, id)
	}
	return i, nil
}
