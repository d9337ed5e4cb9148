package models

import (
	"strconv"

	"github.com/lib/pq"
)

// Complaint status values. Transitions are deliberately permissive: escalate
// and resolve are both reachable from any current status.
const (
	StatusOpen      = "open"
	StatusResolved  = "resolved"
	StatusEscalated = "escalated"
)

// Complaint represents a single whistleblower report. It is the only
// persistent entity in the system.
type Complaint struct {
	// ID is assigned sequentially in creation order, starting at 1.
	ID uint `gorm:"primaryKey" json:"id"`
	// AckCode is the opaque token handed to the submitter. It is their sole
	// retrieval credential for anonymous followup.
	AckCode string `gorm:"uniqueIndex" json:"ackCode"`
	// Summary is the short description given at submission time.
	Summary string `gorm:"type:text" json:"summary"`
	// Transcript holds the full spoken or written report body. May be empty.
	Transcript string `gorm:"type:text" json:"transcript"`
	// Category is an open-ended tag ("fraud", "harassment", ...). Any string
	// is accepted.
	Category string `json:"category"`
	// Status is one of StatusOpen, StatusResolved, StatusEscalated.
	Status string `json:"status"`
	// AssignedTo is the investigator username, empty until assigned.
	AssignedTo string `json:"assignedTo"`
	// Notes is the investigator's working note. Overwritten on update, not
	// appended.
	Notes string `gorm:"type:text" json:"notes"`
	// Rewarded is monotonic: once true it is never reset.
	Rewarded bool `json:"rewarded"`
	// AudioURL points at the voice recording, if the report came in by voice.
	AudioURL string `json:"audioUrl"`
	// Evidence holds links attached by the assigned investigator.
	Evidence pq.StringArray `gorm:"type:text[]" json:"evidence"`
	// Timestamp is the human-readable creation time. Immutable after creation.
	Timestamp string `json:"timestamp"`

	// AuditTrail is append-only. The first entry is always
	// "Complaint submitted"; every mutation appends exactly one entry.
	AuditTrail []AuditEntry `gorm:"foreignKey:ComplaintID" json:"auditTrail"`
}

// AuditEntry is one line of a complaint's audit trail.
type AuditEntry struct {
	ID          uint   `gorm:"primaryKey" json:"-"`
	ComplaintID uint   `gorm:"index" json:"-"`
	Action      string `json:"action"`
	Timestamp   string `json:"timestamp"`
}

// CodeString returns the complaint id in the form the followup flow matches
// against.
func (c *Complaint) CodeString() string {
	return strconv.FormatUint(uint64(c.ID), 10)
}
