package lifecycle

import (
	"math/rand/v2"

	"github.com/MKhiriev/reclaim/models"
)

// Voter decides how a contact answers a recovery request.
type Voter interface {
	Vote(contact models.Contact) models.VoteStatus
}

// VoterFunc adapts a plain function to [Voter].
type VoterFunc func(contact models.Contact) models.VoteStatus

func (f VoterFunc) Vote(contact models.Contact) models.VoteStatus { return f(contact) }

// randomVoter approves with the configured probability and splits the rest
// evenly between denied and abstained.
type randomVoter struct {
	approvalRate float64
}

// NewRandomVoter returns a [Voter] that approves with probability rate.
func NewRandomVoter(rate float64) Voter {
	return &randomVoter{approvalRate: min(max(rate, 0), 1)}
}

func (v *randomVoter) Vote(models.Contact) models.VoteStatus {
	r := rand.Float64()
	switch {
	case r < v.approvalRate:
		return models.VoteApproved
	case r < v.approvalRate+(1-v.approvalRate)/2:
		return models.VoteDenied
	default:
		return models.VoteAbstained
	}
}
