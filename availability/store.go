package availability

import (
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/EslamElkfafy/medical-app-update/models"
)

// Store is the persistence boundary for availability records. Absent records
// are reported as (nil, nil) by FindByDoctorProfileID; PatchDay returns
// gorm.ErrRecordNotFound when no row matched.
type Store interface {
	FindByDoctorProfileID(doctorProfileID string) (*models.Availability, error)
	Create(record *models.Availability) error
	PatchDay(doctorProfileID, day string, slots []string) (*models.Availability, error)
}

// GormStore implements Store on the postgres database.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) FindByDoctorProfileID(doctorProfileID string) (*models.Availability, error) {
	var record models.Availability
	err := s.db.Where("doctor_profile_id = ?", doctorProfileID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *GormStore) Create(record *models.Availability) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	return s.db.Create(record).Error
}

// PatchDay updates a single day column so concurrent patches to sibling days
// of the same record cannot clobber each other.
func (s *GormStore) PatchDay(doctorProfileID, day string, slots []string) (*models.Availability, error) {
	if !models.IsDay(day) {
		return nil, ErrUnknownDay
	}
	res := s.db.Model(&models.Availability{}).
		Where("doctor_profile_id = ?", doctorProfileID).
		Update(day, pq.StringArray(slots))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var record models.Availability
	if err := s.db.Where("doctor_profile_id = ?", doctorProfileID).First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}
