package availability

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/EslamElkfafy/medical-app-update/models"
	"github.com/EslamElkfafy/medical-app-update/timeslot"
)

// fakeStore is an in-memory Store for service tests.
type fakeStore struct {
	record *models.Availability

	findErr   error
	createErr error
	patchErr  error

	findCalls   int
	createCalls int
	patchCalls  int
}

func (f *fakeStore) FindByDoctorProfileID(doctorProfileID string) (*models.Availability, error) {
	f.findCalls++
	if f.findErr != nil {
		return nil, f.findErr
	}
	if f.record == nil || f.record.DoctorProfileID != doctorProfileID {
		return nil, nil
	}
	copied := *f.record
	return &copied, nil
}

func (f *fakeStore) Create(record *models.Availability) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	record.ID = "avail-1"
	copied := *record
	f.record = &copied
	return nil
}

func (f *fakeStore) PatchDay(doctorProfileID, day string, slots []string) (*models.Availability, error) {
	f.patchCalls++
	if f.patchErr != nil {
		return nil, f.patchErr
	}
	if f.record == nil || f.record.DoctorProfileID != doctorProfileID {
		return nil, gorm.ErrRecordNotFound
	}
	f.record.SetDaySlots(day, slots)
	copied := *f.record
	return &copied, nil
}

func TestUpsertCreatesFirstRecord(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	record, status, err := svc.Upsert("doc-1", "monday", []string{"09:00", "10:00"})
	assert.NoError(t, err)
	assert.Equal(t, StatusCreated, status)
	assert.Equal(t, 1, store.createCalls)

	assert.Equal(t, "doc-1", record.DoctorProfileID)
	assert.Equal(t, []string{"09:00", "10:00"}, []string(record.Monday))
	for _, day := range []string{"tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"} {
		assert.Empty(t, record.DaySlots(day), day)
		assert.NotNil(t, record.DaySlots(day), day)
	}
}

func TestUpsertPatchesOnlyTargetDay(t *testing.T) {
	store := &fakeStore{
		record: &models.Availability{
			ID:              "avail-1",
			DoctorProfileID: "doc-1",
			Monday:          []string{"07:00"},
			Tuesday:         []string{"11:00", "12:00"},
			Sunday:          []string{"15:00"},
		},
	}
	svc := NewService(store)

	record, status, err := svc.Upsert("doc-1", "monday", []string{"09:00", "10:00"})
	assert.NoError(t, err)
	assert.Equal(t, StatusUpdated, status)
	assert.Equal(t, 1, store.patchCalls)
	assert.Equal(t, 0, store.createCalls)

	assert.Equal(t, []string{"09:00", "10:00"}, []string(record.Monday))
	// Sibling days stay byte-identical
	assert.Equal(t, []string{"11:00", "12:00"}, []string(record.Tuesday))
	assert.Equal(t, []string{"15:00"}, []string(record.Sunday))
}

func TestUpsertMissingProfileIDIsNoOp(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	record, status, err := svc.Upsert("", "monday", []string{"09:00"})
	assert.NoError(t, err)
	assert.Nil(t, record)
	assert.Equal(t, StatusSkipped, status)
	assert.Equal(t, 0, store.findCalls)
	assert.Equal(t, 0, store.createCalls)
	assert.Equal(t, 0, store.patchCalls)
}

func TestUpsertDeduplicatesSlots(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	record, _, err := svc.Upsert("doc-1", "friday", []string{"09:00", "09:00", "10:00"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"09:00", "10:00"}, []string(record.Friday))
}

func TestUpsertCanonicalizesDisplayLabels(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	record, _, err := svc.Upsert("doc-1", "tuesday", []string{"7:00 AM", "2:30 PM"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"07:00", "14:30"}, []string(record.Tuesday))
}

func TestUpsertRejectsBadSlotBeforeStorage(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	_, _, err := svc.Upsert("doc-1", "monday", []string{"nonsense"})
	var formatErr *timeslot.FormatError
	assert.ErrorAs(t, err, &formatErr)
	assert.Equal(t, 0, store.findCalls)
	assert.Equal(t, 0, store.createCalls)
}

func TestUpsertUnknownDay(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	_, _, err := svc.Upsert("doc-1", "someday", []string{"09:00"})
	assert.ErrorIs(t, err, ErrUnknownDay)
	assert.Equal(t, 0, store.findCalls)
}

func TestUpsertWrapsStorageFailures(t *testing.T) {
	boom := errors.New("connection reset")

	store := &fakeStore{findErr: boom}
	svc := NewService(store)
	_, _, err := svc.Upsert("doc-1", "monday", []string{"09:00"})
	var persistErr *PersistenceError
	assert.ErrorAs(t, err, &persistErr)
	assert.ErrorIs(t, err, boom)

	store = &fakeStore{createErr: boom}
	svc = NewService(store)
	_, _, err = svc.Upsert("doc-1", "monday", []string{"09:00"})
	assert.ErrorAs(t, err, &persistErr)
	assert.Equal(t, "create", persistErr.Op)
}

func TestUpsertPatchOnVanishedRecord(t *testing.T) {
	store := &fakeStore{
		record:   &models.Availability{DoctorProfileID: "doc-1"},
		patchErr: gorm.ErrRecordNotFound,
	}
	svc := NewService(store)

	_, _, err := svc.Upsert("doc-1", "monday", []string{"09:00"})
	var notFoundErr *NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "doc-1", notFoundErr.DoctorProfileID)
}

func TestFindReturnsNilWhenAbsent(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	record, err := svc.Find("doc-1")
	assert.NoError(t, err)
	assert.Nil(t, record)
}
