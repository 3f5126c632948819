package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/EslamElkfafy/medical-app-update/availability"
	"github.com/EslamElkfafy/medical-app-update/configuration"
	"github.com/EslamElkfafy/medical-app-update/models"
)

// memoryStore keeps availability records in memory for handler tests.
type memoryStore struct {
	record *models.Availability
}

func (m *memoryStore) FindByDoctorProfileID(doctorProfileID string) (*models.Availability, error) {
	if m.record == nil || m.record.DoctorProfileID != doctorProfileID {
		return nil, nil
	}
	copied := *m.record
	return &copied, nil
}

func (m *memoryStore) Create(record *models.Availability) error {
	record.ID = "avail-1"
	copied := *record
	m.record = &copied
	return nil
}

func (m *memoryStore) PatchDay(doctorProfileID, day string, slots []string) (*models.Availability, error) {
	if m.record == nil || m.record.DoctorProfileID != doctorProfileID {
		return nil, gorm.ErrRecordNotFound
	}
	m.record.SetDaySlots(day, slots)
	copied := *m.record
	return &copied, nil
}

func authMiddlewareTest(profileID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("doctor_profile_id", profileID)
		c.Next()
	}
}

func setupAvailabilityRouter(store availability.Store, profileID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	Init(configuration.Config{DefaultDisplayZone: "Africa/Cairo"}, availability.NewService(store))

	r := gin.New()
	r.Use(authMiddlewareTest(profileID))
	r.PATCH("/doctor/availability/:day", SaveAvailability)
	r.GET("/doctor/availability", GetMyAvailability)
	return r
}

func TestSaveAvailabilityCreatesRecord(t *testing.T) {
	store := &memoryStore{}
	r := setupAvailabilityRouter(store, "doc-1")

	body, _ := json.Marshal(gin.H{"slots": []string{"09:00", "10:00"}})
	req := httptest.NewRequest(http.MethodPatch, "/doctor/availability/monday", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status string              `json:"Status"`
		Data   models.Availability `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "created", resp.Status)
	assert.Equal(t, []string{"09:00", "10:00"}, []string(resp.Data.Monday))
	assert.Empty(t, resp.Data.Tuesday)
}

func TestSaveAvailabilityConvertsZoneOnWrite(t *testing.T) {
	store := &memoryStore{}
	r := setupAvailabilityRouter(store, "doc-1")

	// 09:00 in Cairo is 07:00 UTC
	body, _ := json.Marshal(gin.H{"slots": []string{"9:00 AM"}, "zone": "Africa/Cairo"})
	req := httptest.NewRequest(http.MethodPatch, "/doctor/availability/monday", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"07:00"}, []string(store.record.Monday))
}

func TestSaveAvailabilityRejectsUnknownDay(t *testing.T) {
	store := &memoryStore{}
	r := setupAvailabilityRouter(store, "doc-1")

	body, _ := json.Marshal(gin.H{"slots": []string{"09:00"}})
	req := httptest.NewRequest(http.MethodPatch, "/doctor/availability/someday", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, store.record)
}

func TestGetMyAvailabilityReturnsDisplayZone(t *testing.T) {
	store := &memoryStore{
		record: &models.Availability{
			ID:              "avail-1",
			DoctorProfileID: "doc-1",
			Monday:          []string{"07:00"},
		},
	}
	r := setupAvailabilityRouter(store, "doc-1")

	req := httptest.NewRequest(http.MethodGet, "/doctor/availability", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data models.Availability `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"09:00"}, []string(resp.Data.Monday))
}

func TestGetMyAvailabilityNotFound(t *testing.T) {
	r := setupAvailabilityRouter(&memoryStore{}, "doc-1")

	req := httptest.NewRequest(http.MethodGet, "/doctor/availability", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
