package availability

import (
	"errors"

	"gorm.io/gorm"

	"github.com/EslamElkfafy/medical-app-update/models"
	"github.com/EslamElkfafy/medical-app-update/timeslot"
)

// Upsert outcome reported back to the display layer.
const (
	StatusCreated = "created"
	StatusUpdated = "updated"
	StatusSkipped = "skipped"
)

// Service reconciles a single day's submitted time slots against the
// persisted availability record of one doctor.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Upsert creates the doctor's availability record on the first submission
// and patches only the named day afterwards, leaving sibling days untouched.
// A missing doctor profile id is a no-op and never reaches storage. Slots are
// validated and de-duplicated before any write; a failed write leaves prior
// state intact.
func (s *Service) Upsert(doctorProfileID, day string, slots []string) (*models.Availability, string, error) {
	if doctorProfileID == "" {
		return nil, StatusSkipped, nil
	}
	if !models.IsDay(day) {
		return nil, "", ErrUnknownDay
	}

	canonical, err := canonicalizeSlots(slots)
	if err != nil {
		return nil, "", err
	}

	existing, err := s.store.FindByDoctorProfileID(doctorProfileID)
	if err != nil {
		return nil, "", &PersistenceError{Op: "lookup", Err: err}
	}

	if existing == nil {
		record := emptyRecord(doctorProfileID)
		record.SetDaySlots(day, canonical)
		if err := s.store.Create(record); err != nil {
			return nil, "", &PersistenceError{Op: "create", Err: err}
		}
		return record, StatusCreated, nil
	}

	updated, err := s.store.PatchDay(doctorProfileID, day, canonical)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", &NotFoundError{DoctorProfileID: doctorProfileID}
	}
	if err != nil {
		return nil, "", &PersistenceError{Op: "patch", Err: err}
	}
	return updated, StatusUpdated, nil
}

// Find returns the doctor's availability record, or nil when none has been
// created yet.
func (s *Service) Find(doctorProfileID string) (*models.Availability, error) {
	if doctorProfileID == "" {
		return nil, nil
	}
	record, err := s.store.FindByDoctorProfileID(doctorProfileID)
	if err != nil {
		return nil, &PersistenceError{Op: "lookup", Err: err}
	}
	return record, nil
}

// canonicalizeSlots normalizes every slot to "HH:mm" and drops duplicates,
// keeping the first occurrence. Format errors never reach storage.
func canonicalizeSlots(slots []string) ([]string, error) {
	out := make([]string, 0, len(slots))
	seen := make(map[string]bool, len(slots))
	for _, slot := range slots {
		c, err := timeslot.ToCanonical(slot)
		if err != nil {
			return nil, err
		}
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out, nil
}

func emptyRecord(doctorProfileID string) *models.Availability {
	record := &models.Availability{DoctorProfileID: doctorProfileID}
	for _, d := range models.Days {
		record.SetDaySlots(d, []string{})
	}
	return record
}
