package lifecycle

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/reclaim/models"
)

// InitiateRecovery moves a compromised account into recovery. The stage is
// set to alerting_contacts and every contact vote is reset.
func (s *Service) InitiateRecovery(ctx context.Context) error {
	return s.mutate(ctx, func(time.Time) error {
		if err := s.requireStatus("initiate recovery", models.StatusCompromised); err != nil {
			return err
		}

		s.profile.CurrentStatus = models.StatusRecovering
		s.profile.SetStage(models.StageAlertingContacts)
		s.contacts.ResetVotes()

		s.activity.Record(models.EventRecoveryInitiated, map[string]any{
			"currentStatus": string(models.StatusRecovering),
			"recoveryStage": string(models.StageAlertingContacts),
		}, models.SourceRecovery)
		s.logTransition("initiate recovery")
		return nil
	})
}

// ViewRecoveryProcess logs that the user opened the recovery progress view.
func (s *Service) ViewRecoveryProcess(ctx context.Context) error {
	return s.mutate(ctx, func(time.Time) error {
		if err := s.requireStatus("view recovery", models.StatusRecovering); err != nil {
			return err
		}

		s.activity.Record(models.EventRecoveryProcessViewed, map[string]any{
			"recoveryStage": string(s.profile.Stage()),
		}, models.SourceRecovery)
		return nil
	})
}

// SendRecoveryRequests asks every active contact to vouch for the user and
// resets their votes to pending. Unless recovery is already finalizing, the
// stage moves to awaiting_social_verification. The message is optional.
func (s *Service) SendRecoveryRequests(ctx context.Context, message string) error {
	if err := checkMessage(message); err != nil {
		return err
	}

	return s.mutate(ctx, func(now time.Time) error {
		if err := s.requireStatus("send recovery requests", models.StatusRecovering); err != nil {
			return err
		}

		batch, err := s.dispatchLocked(s.contacts.Active(now), models.NotificationRecoveryRequest, s.affectedPlatforms(), message, now)
		if err != nil {
			return fmt.Errorf("send recovery requests: %w", err)
		}
		s.contacts.ResetVotes()
		if s.profile.Stage() != models.StageFinalizing {
			s.profile.SetStage(models.StageAwaitingSocialVerification)
		}

		s.activity.Record(models.EventRecoveryAlertsSentToContacts, map[string]any{
			"count":           len(batch),
			"notificationIds": notificationIDs(batch),
			"recoveryStage":   string(s.profile.Stage()),
		}, models.SourceRecovery)
		return nil
	})
}

// SimulateContactRecoveryVotes asks every votable contact for a vote. The
// stage advances to finalizing when approvals reach a majority of the voters,
// rounded up, and at least one contact voted. A vote short of the majority
// leaves recovery awaiting_social_verification; with no voters the stage is
// unchanged.
func (s *Service) SimulateContactRecoveryVotes(ctx context.Context) (models.VoteTally, error) {
	var tally models.VoteTally
	err := s.mutate(ctx, func(now time.Time) error {
		if err := s.requireStatus("simulate votes", models.StatusRecovering); err != nil {
			return err
		}
		stage := s.profile.Stage()
		if stage != models.StageAlertingContacts && stage != models.StageAwaitingSocialVerification {
			return rejected("simulate votes", "recovery stage is %s", stage)
		}

		type cast struct {
			contact models.Contact
			vote    models.VoteStatus
		}
		var votes []cast
		for _, c := range s.contacts.All() {
			if !c.CanVote(now) {
				continue
			}
			v := s.voter.Vote(c)
			votes = append(votes, cast{contact: c, vote: v})

			switch v {
			case models.VoteApproved:
				tally.Approved++
			case models.VoteDenied:
				tally.Denied++
			default:
				tally.Abstained++
			}
		}
		tally.Voters = len(votes)
		tally.Threshold = (tally.Voters + 1) / 2

		switch {
		case tally.Voters == 0:
			tally.Stage = stage
		case tally.Approved >= tally.Threshold:
			tally.Stage = models.StageFinalizing
		default:
			tally.Stage = models.StageAwaitingSocialVerification
		}
		s.profile.SetStage(tally.Stage)

		s.activity.Record(models.EventSocialVotingInitiated, map[string]any{
			"voters":        tally.Voters,
			"approved":      tally.Approved,
			"denied":        tally.Denied,
			"abstained":     tally.Abstained,
			"threshold":     tally.Threshold,
			"recoveryStage": string(tally.Stage),
		}, models.SourceRecovery)
		for _, v := range votes {
			s.contacts.SetVote(v.contact.ContactID, v.vote, now)
			s.activity.Record(models.EventContactVoteReceived, map[string]any{
				"contactId":   v.contact.ContactID,
				"contactName": v.contact.Name,
				"vote":        string(v.vote),
			}, models.SourceRecovery)
		}
		s.logTransition("simulate votes")
		return nil
	})
	return tally, err
}

// CompleteRecovery closes a finalizing recovery. Active contacts receive a
// recovery update; having none, or failing to send it, does not block
// completion.
func (s *Service) CompleteRecovery(ctx context.Context) error {
	return s.mutate(ctx, func(now time.Time) error {
		if err := s.requireStatus("complete recovery", models.StatusRecovering); err != nil {
			return err
		}
		if stage := s.profile.Stage(); stage != models.StageFinalizing {
			return rejected("complete recovery", "recovery stage is %s", stage)
		}

		s.profile.CurrentStatus = models.StatusRecovered
		s.profile.SetStage("")
		s.profile.ClearIncident()
		s.profile.LastVerification = &now

		s.activity.Record(models.EventRecoveryCompleted, map[string]any{
			"currentStatus": string(models.StatusRecovered),
		}, models.SourceRecovery)
		s.logTransition("complete recovery")

		active := s.contacts.Active(now)
		if len(active) == 0 {
			return nil
		}
		if _, err := s.dispatchLocked(active, models.NotificationRecoveryUpdate, nil, "", now); err != nil {
			s.reportDispatchLocked("complete recovery", err)
		}
		return nil
	})
}
