package timeslot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/EslamElkfafy/medical-app-update/models"
)

func weekRecord() models.Availability {
	return models.Availability{
		ID:              "avail-1",
		DoctorProfileID: "doc-1",
		Monday:          []string{"07:00", "08:00"},
		Tuesday:         []string{"10:30"},
		Wednesday:       []string{},
		Thursday:        []string{"23:30"},
		Friday:          []string{"00:00"},
		Saturday:        []string{"12:00"},
		Sunday:          []string{},
	}
}

func TestNormalizeToCairo(t *testing.T) {
	// Africa/Cairo is UTC+2 at the reference date
	record := weekRecord()

	local, err := Normalize(record, "Africa/Cairo")
	assert.NoError(t, err)

	assert.Equal(t, []string{"09:00", "10:00"}, []string(local.Monday))
	assert.Equal(t, []string{"12:30"}, []string(local.Tuesday))
	assert.Equal(t, []string{"14:00"}, []string(local.Saturday))
	// A slot crossing midnight stays a plain wall-clock time, the date shift
	// is discarded
	assert.Equal(t, []string{"01:30"}, []string(local.Thursday))
	assert.Equal(t, []string{"02:00"}, []string(local.Friday))

	// Record identity carries over untouched
	assert.Equal(t, record.ID, local.ID)
	assert.Equal(t, record.DoctorProfileID, local.DoctorProfileID)
}

func TestNormalizeProcessesEmptyDays(t *testing.T) {
	record := weekRecord()

	local, err := Normalize(record, "Africa/Cairo")
	assert.NoError(t, err)

	for _, day := range models.Days {
		assert.NotNil(t, local.DaySlots(day), day)
	}
	assert.Empty(t, local.Wednesday)
	assert.Empty(t, local.Sunday)
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	record := weekRecord()

	_, err := Normalize(record, "Africa/Cairo")
	assert.NoError(t, err)

	assert.Equal(t, weekRecord(), record)
}

func TestNormalizeDenormalizeRoundTrip(t *testing.T) {
	record := weekRecord()

	for _, zone := range []string{"Africa/Cairo", "America/New_York", "Asia/Kolkata", "UTC"} {
		local, err := Normalize(record, zone)
		assert.NoError(t, err, zone)

		back, err := Denormalize(local, zone)
		assert.NoError(t, err, zone)

		for _, day := range models.Days {
			assert.Equal(t, record.DaySlots(day), back.DaySlots(day), "%s in %s", day, zone)
		}
	}
}

func TestNormalizeUnknownZone(t *testing.T) {
	_, err := Normalize(weekRecord(), "Mars/Olympus_Mons")
	var zoneErr *ZoneError
	assert.ErrorAs(t, err, &zoneErr)
	assert.Equal(t, "Mars/Olympus_Mons", zoneErr.Zone)
}

func TestNormalizeRejectsBadSlot(t *testing.T) {
	record := weekRecord()
	record.Monday = []string{"7 AM"}

	_, err := Normalize(record, "Africa/Cairo")
	var formatErr *FormatError
	assert.ErrorAs(t, err, &formatErr)
}

func TestConvertSlots(t *testing.T) {
	got, err := ConvertSlots([]string{"07:00"}, "UTC", "Africa/Cairo")
	assert.NoError(t, err)
	assert.Equal(t, []string{"09:00"}, got)

	back, err := ConvertSlots(got, "Africa/Cairo", "UTC")
	assert.NoError(t, err)
	assert.Equal(t, []string{"07:00"}, back)

	_, err = ConvertSlots([]string{"07:00"}, "UTC", "Nowhere/Nope")
	var zoneErr *ZoneError
	assert.ErrorAs(t, err, &zoneErr)
}
