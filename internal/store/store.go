// Package store holds the complaint collection and its mutation operations.
// Two implementations exist: an in-memory store (the default; state is lost on
// restart) and a GORM-backed store for deployments that want durability.
package store

import (
	"time"

	"aegiswhistle/backend/internal/models"
)

// Audit trail action strings. These are part of the followup/dashboard
// contract and must not be reworded.
const (
	ActionSubmitted = "Complaint submitted"
	ActionResolved  = "Marked as resolved"
	ActionEscalated = "Escalated"
	ActionRewarded  = "Whistleblower anonymously rewarded"
	ActionNoteAdded = "Investigator note added"
)

// CaseStore is the single owner of complaint state. Mutations on an unknown
// id change nothing and report found=false; they never return an error to the
// caller.
type CaseStore interface {
	// Create assigns the next sequential id and a unique ack code, seeds the
	// audit trail and appends the record.
	Create(sub models.ReportSubmission) *models.Complaint
	Get(id uint) (*models.Complaint, bool)
	// List returns all complaints in creation order.
	List() []models.Complaint

	// Assign sets the investigator for a case. No roster check is performed.
	Assign(id uint, investigator string) bool
	// Resolve marks the case resolved and rewards the whistleblower.
	Resolve(id uint) bool
	// Escalate is reachable from any status, including resolved.
	Escalate(id uint) bool
	// Reward sets the rewarded flag. The flag is idempotent, the audit entry
	// is not.
	Reward(id uint) bool
	// UpdateNote overwrites the investigator note (it does not append).
	UpdateNote(id uint, text string) bool
	// AttachEvidence appends an evidence link.
	AttachEvidence(id uint, link string) bool
}

// nowstr formats timestamps the way the dashboards display them.
func nowstr() string {
	return time.Now().UTC().Format("2006-01-02 15:04")
}
