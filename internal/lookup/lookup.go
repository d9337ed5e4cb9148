// Package lookup resolves a caller-supplied code to a complaint for anonymous
// status checks.
package lookup

import (
	"strings"

	"aegiswhistle/backend/internal/models"
	"aegiswhistle/backend/internal/store"
)

// Reward labels shown to anonymous callers.
const (
	RewardPending  = "Pending"
	RewardRewarded = "Rewarded"
)

// StatusView is the redacted projection exposed to anonymous followup.
// Transcript and audit trail are deliberately not part of it.
type StatusView struct {
	Status  string `json:"status"`
	Reward  string `json:"reward"`
	Summary string `json:"summary"`
}

// Service resolves acknowledgement codes against the case store. It never
// mutates it.
type Service struct {
	Store store.CaseStore
}

// NewService creates a new lookup service.
func NewService(s store.CaseStore) *Service {
	return &Service{Store: s}
}

// FindByCode matches the supplied string against either the stringified case
// id or the ack code. Surrounding whitespace is trimmed; beyond that the
// match is exact. The second return value is false when nothing matches.
func (s *Service) FindByCode(code string) (StatusView, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return StatusView{}, false
	}

	for _, c := range s.Store.List() {
		if c.CodeString() == code || c.AckCode == code {
			return view(&c), true
		}
	}
	return StatusView{}, false
}

func view(c *models.Complaint) StatusView {
	reward := RewardPending
	if c.Rewarded {
		reward = RewardRewarded
	}
	return StatusView{
		Status:  c.Status,
		Reward:  reward,
		Summary: c.Summary,
	}
}
