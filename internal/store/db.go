package store

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"aegiswhistle/backend/internal/ackcode"
	"aegiswhistle/backend/internal/config"
	"aegiswhistle/backend/internal/models"
)

// DBStore persists complaints in PostgreSQL through GORM. It implements the
// same silent no-op contract as the in-memory store: database errors are
// logged, not surfaced.
type DBStore struct {
	DB *gorm.DB
}

// NewDBStore wraps an open GORM handle. Call AutoMigrate before first use.
func NewDBStore(db *gorm.DB) *DBStore {
	return &DBStore{DB: db}
}

// AutoMigrate creates the complaint tables.
func (s *DBStore) AutoMigrate() error {
	return s.DB.AutoMigrate(&models.Complaint{}, &models.AuditEntry{})
}

// Create inserts a new complaint. The primary key comes from the database
// sequence, so ids stay strictly increasing in creation order.
func (s *DBStore) Create(sub models.ReportSubmission) *models.Complaint {
	ts := nowstr()
	c := models.Complaint{
		Summary:    sub.Summary,
		Transcript: sub.Transcript,
		Category:   sub.Category,
		Status:     models.StatusOpen,
		AudioURL:   sub.AudioURL,
		Timestamp:  ts,
		AckCode:    s.freshCode(),
	}

	if err := s.DB.Create(&c).Error; err != nil {
		log.Printf("ERROR: Failed to save complaint: %v", err)
		return nil
	}

	entry := models.AuditEntry{ComplaintID: c.ID, Action: ActionSubmitted, Timestamp: ts}
	if err := s.DB.Create(&entry).Error; err != nil {
		log.Printf("ERROR: Failed to seed audit trail for complaint %d: %v", c.ID, err)
	}
	c.AuditTrail = []models.AuditEntry{entry}
	return &c
}

// freshCode generates an ack code that is not yet in use. After the attempt
// budget it returns the last candidate and lets the unique index catch the
// residual risk.
func (s *DBStore) freshCode() string {
	code := ackcode.New()
	for attempt := 1; attempt < config.AckCodeMaxAttempts; attempt++ {
		var count int64
		if err := s.DB.Model(&models.Complaint{}).Where("ack_code = ?", code).Count(&count).Error; err != nil {
			log.Printf("ERROR: Ack code uniqueness check failed: %v", err)
			return code
		}
		if count == 0 {
			return code
		}
		code = ackcode.New()
	}
	return code
}

// Get loads one complaint with its audit trail.
func (s *DBStore) Get(id uint) (*models.Complaint, bool) {
	var c models.Complaint
	err := s.DB.Preload("AuditTrail").First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false
	}
	if err != nil {
		log.Printf("ERROR: Failed to get complaint %d: %v", id, err)
		return nil, false
	}
	return &c, true
}

// List returns all complaints in creation order.
func (s *DBStore) List() []models.Complaint {
	var cs []models.Complaint
	if err := s.DB.Preload("AuditTrail").Order("id asc").Find(&cs).Error; err != nil {
		log.Printf("ERROR: Failed to list complaints: %v", err)
		return nil
	}
	return cs
}

func (s *DBStore) Assign(id uint, investigator string) bool {
	return s.mutate(id, map[string]interface{}{"assigned_to": investigator},
		fmt.Sprintf("Assigned to %s", investigator))
}

func (s *DBStore) Resolve(id uint) bool {
	return s.mutate(id, map[string]interface{}{
		"status":   models.StatusResolved,
		"rewarded": true,
	}, ActionResolved)
}

func (s *DBStore) Escalate(id uint) bool {
	return s.mutate(id, map[string]interface{}{"status": models.StatusEscalated}, ActionEscalated)
}

func (s *DBStore) Reward(id uint) bool {
	return s.mutate(id, map[string]interface{}{"rewarded": true}, ActionRewarded)
}

func (s *DBStore) UpdateNote(id uint, text string) bool {
	return s.mutate(id, map[string]interface{}{"notes": text}, ActionNoteAdded)
}

func (s *DBStore) AttachEvidence(id uint, link string) bool {
	c, ok := s.Get(id)
	if !ok {
		return false
	}
	return s.mutate(id, map[string]interface{}{
		"evidence": append(c.Evidence, link),
	}, "Evidence attached")
}

// mutate applies the column updates and appends one audit entry. An unknown
// id changes nothing.
func (s *DBStore) mutate(id uint, updates map[string]interface{}, action string) bool {
	result := s.DB.Model(&models.Complaint{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		log.Printf("ERROR: Failed to update complaint %d: %v", id, result.Error)
		return false
	}
	if result.RowsAffected == 0 {
		return false
	}

	entry := models.AuditEntry{ComplaintID: id, Action: action, Timestamp: nowstr()}
	if err := s.DB.Create(&entry).Error; err != nil {
		log.Printf("ERROR: Failed to append audit entry for complaint %d: %v", id, err)
	}
	return true
}
