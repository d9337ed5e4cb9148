package models

// ReportSubmission is the normalized intake payload. Voice widget, write form
// and embedded web components all funnel into this shape.
type ReportSubmission struct {
	Summary    string `json:"summary"`
	Transcript string `json:"transcript"`
	Category   string `json:"category"`
	AudioURL   string `json:"audioUrl"`
}

// CaseEvent is broadcast to connected dashboards whenever a case changes.
type CaseEvent struct {
	EventID string `json:"event_id"`
	CaseID  uint   `json:"case_id"`
	Action  string `json:"action"` // "submitted", "assigned", "resolved", "escalated", "rewarded", "note_updated", "evidence_attached"
	// AssignedTo carries the investigator the case belongs to after this
	// event, so the hub can scope delivery.
	AssignedTo string `json:"assigned_to"`
	Timestamp  string `json:"timestamp"`
}
