// Package casefile provides the core logic for handling submitted reports:
// intake defaults, officer and investigator actions, notifications and live
// dashboard events.
package casefile

import (
	"time"

	"github.com/google/uuid"

	"aegiswhistle/backend/internal/config"
	"aegiswhistle/backend/internal/models"
	"aegiswhistle/backend/internal/notify"
	"aegiswhistle/backend/internal/store"
)

// Events receives one CaseEvent per mutating operation. Implemented by the
// case hub.
type Events interface {
	Emit(evt models.CaseEvent)
}

// Service handles the business logic for cases.
type Service struct {
	Store    store.CaseStore
	Notifier notify.Notifier
	Events   Events
}

// NewService creates a new case service. events may be nil when no live
// dashboard stream is wired (the admin CLI does this).
func NewService(s store.CaseStore, n notify.Notifier, events Events) *Service {
	return &Service{Store: s, Notifier: n, Events: events}
}

// Submit is the single normalized entry point for the voice widget, the
// write form and embedded web components. It applies intake defaults and
// returns the created record, ack code included.
func (s *Service) Submit(sub models.ReportSubmission) *models.Complaint {
	if sub.Summary == "" {
		sub.Summary = "Voice complaint summary"
	}
	if sub.Category == "" {
		sub.Category = config.DefaultCategory
	}

	c := s.Store.Create(sub)
	if c == nil {
		return nil
	}

	s.Notifier.Notify("Report received!", "Your Acknowledgement Code: "+c.AckCode)
	s.emit(c.ID, "submitted", c.AssignedTo)
	return c
}

// Assign hands the case to an investigator. No roster check is performed.
func (s *Service) Assign(id uint, investigator string) bool {
	if !s.Store.Assign(id, investigator) {
		return false
	}
	s.Notifier.Notify("Assigned", "Case assigned to "+investigator)
	s.emit(id, "assigned", investigator)
	return true
}

// Resolve closes the case and rewards the whistleblower.
func (s *Service) Resolve(id uint) bool {
	if !s.Store.Resolve(id) {
		return false
	}
	s.Notifier.Notify("Case resolved!", "Case resolved and whistleblower rewarded.")
	s.emitCurrent(id, "resolved")
	return true
}

// Escalate flags the case for further review, whatever its current status.
func (s *Service) Escalate(id uint) bool {
	if !s.Store.Escalate(id) {
		return false
	}
	s.Notifier.Notify("Case Escalated", "Case escalated for further review.")
	s.emitCurrent(id, "escalated")
	return true
}

// Reward sends the anonymous reward for a case.
func (s *Service) Reward(id uint) bool {
	if !s.Store.Reward(id) {
		return false
	}
	s.Notifier.Notify("Reward Sent", "Crypto reward sent anonymously for this case.")
	s.emitCurrent(id, "rewarded")
	return true
}

// UpdateNote replaces the investigator's working note.
func (s *Service) UpdateNote(id uint, text string) bool {
	if !s.Store.UpdateNote(id, text) {
		return false
	}
	s.Notifier.Notify("Update Added", "")
	s.emitCurrent(id, "note_updated")
	return true
}

// AttachEvidence adds an evidence link to the case.
func (s *Service) AttachEvidence(id uint, link string) bool {
	if !s.Store.AttachEvidence(id, link) {
		return false
	}
	s.Notifier.Notify("Evidence Attached", "Evidence link recorded for this case.")
	s.emitCurrent(id, "evidence_attached")
	return true
}

// emitCurrent looks the case up so the event carries its current assignment,
// which the hub needs for investigator scoping.
func (s *Service) emitCurrent(id uint, action string) {
	assignedTo := ""
	if c, ok := s.Store.Get(id); ok {
		assignedTo = c.AssignedTo
	}
	s.emit(id, action, assignedTo)
}

func (s *Service) emit(id uint, action, assignedTo string) {
	if s.Events == nil {
		return
	}
	s.Events.Emit(models.CaseEvent{
		EventID:    uuid.New().String(),
		CaseID:     id,
		Action:     action,
		AssignedTo: assignedTo,
		Timestamp:  time.Now().UTC().Format("2006-01-02 15:04"),
	})
}
