package store

import (
	"fmt"
	"sync"

	"aegiswhistle/backend/internal/ackcode"
	"aegiswhistle/backend/internal/config"
	"aegiswhistle/backend/internal/models"
)

// MemoryStore keeps all complaints in process memory. Handlers run
// concurrently, so every operation takes the mutex; each mutation is a single
// atomic state change.
type MemoryStore struct {
	mu         sync.Mutex
	complaints []models.Complaint
	nextID     uint
	codes      map[string]uint
}

// NewMemoryStore creates an empty in-memory case store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID: 1,
		codes:  make(map[string]uint),
	}
}

// Create appends a new complaint with the next sequential id and a fresh ack
// code. Ack codes that collide with an existing one are regenerated; after
// the attempt budget the code is disambiguated with the id, which is unique
// by construction.
func (s *MemoryStore) Create(sub models.ReportSubmission) *models.Complaint {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++

	code := ackcode.New()
	for attempt := 1; ; attempt++ {
		if _, taken := s.codes[code]; !taken {
			break
		}
		if attempt >= config.AckCodeMaxAttempts {
			code = fmt.Sprintf("%s-%d", ackcode.New(), id)
			break
		}
		code = ackcode.New()
	}
	s.codes[code] = id

	ts := nowstr()
	c := models.Complaint{
		ID:         id,
		AckCode:    code,
		Summary:    sub.Summary,
		Transcript: sub.Transcript,
		Category:   sub.Category,
		Status:     models.StatusOpen,
		AudioURL:   sub.AudioURL,
		Timestamp:  ts,
		AuditTrail: []models.AuditEntry{
			{ComplaintID: id, Action: ActionSubmitted, Timestamp: ts},
		},
	}
	s.complaints = append(s.complaints, c)

	out := cloneComplaint(&s.complaints[len(s.complaints)-1])
	return &out
}

// Get returns a copy of the complaint with the given id.
func (s *MemoryStore) Get(id uint) (*models.Complaint, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.find(id)
	if c == nil {
		return nil, false
	}
	out := cloneComplaint(c)
	return &out, true
}

// List returns copies of all complaints in creation order.
func (s *MemoryStore) List() []models.Complaint {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Complaint, 0, len(s.complaints))
	for i := range s.complaints {
		out = append(out, cloneComplaint(&s.complaints[i]))
	}
	return out
}

// Assign sets the investigator and records the assignment in the trail.
func (s *MemoryStore) Assign(id uint, investigator string) bool {
	return s.mutate(id, func(c *models.Complaint) string {
		c.AssignedTo = investigator
		return "Assigned to " + investigator
	})
}

// Resolve marks the case resolved and sets the rewarded flag.
func (s *MemoryStore) Resolve(id uint) bool {
	return s.mutate(id, func(c *models.Complaint) string {
		c.Status = models.StatusResolved
		c.Rewarded = true
		return ActionResolved
	})
}

// Escalate sets the status regardless of the current one.
func (s *MemoryStore) Escalate(id uint) bool {
	return s.mutate(id, func(c *models.Complaint) string {
		c.Status = models.StatusEscalated
		return ActionEscalated
	})
}

// Reward sets the rewarded flag and always appends a trail entry, even when
// the flag was already set.
func (s *MemoryStore) Reward(id uint) bool {
	return s.mutate(id, func(c *models.Complaint) string {
		c.Rewarded = true
		return ActionRewarded
	})
}

// UpdateNote replaces the investigator note. The trail entry is appended
// whether or not the text changed.
func (s *MemoryStore) UpdateNote(id uint, text string) bool {
	return s.mutate(id, func(c *models.Complaint) string {
		c.Notes = text
		return ActionNoteAdded
	})
}

// AttachEvidence appends an evidence link to the case.
func (s *MemoryStore) AttachEvidence(id uint, link string) bool {
	return s.mutate(id, func(c *models.Complaint) string {
		c.Evidence = append(c.Evidence, link)
		return "Evidence attached"
	})
}

// mutate applies fn to the complaint with the given id and appends the trail
// entry fn describes. An unknown id is a no-op.
func (s *MemoryStore) mutate(id uint, fn func(c *models.Complaint) string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.find(id)
	if c == nil {
		return false
	}
	action := fn(c)
	c.AuditTrail = append(c.AuditTrail, models.AuditEntry{
		ComplaintID: id,
		Action:      action,
		Timestamp:   nowstr(),
	})
	return true
}

func (s *MemoryStore) find(id uint) *models.Complaint {
	for i := range s.complaints {
		if s.complaints[i].ID == id {
			return &s.complaints[i]
		}
	}
	return nil
}

// cloneComplaint copies the record including its slices, so callers can't
// reach the store's internal state.
func cloneComplaint(c *models.Complaint) models.Complaint {
	out := *c
	out.AuditTrail = append([]models.AuditEntry(nil), c.AuditTrail...)
	out.Evidence = append(out.Evidence[:0:0], c.Evidence...)
	return out
}
