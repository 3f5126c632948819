package timeslot

import (
	"time"

	"github.com/EslamElkfafy/medical-app-update/models"
)

// Slots encode a recurring wall-clock time, not an instant, so conversions
// are anchored to a fixed date and pick up the zone's standard offset.
// Date rollover across midnight is discarded with the date itself.
var refDate = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Normalize returns a copy of the availability record with every slot in
// every day converted from UTC to the target IANA zone. The input record is
// never mutated and all seven days are processed even when empty.
func Normalize(a models.Availability, zone string) (models.Availability, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return models.Availability{}, &ZoneError{Zone: zone}
	}
	return convertDays(a, time.UTC, loc)
}

// Denormalize is the inverse of Normalize: slots expressed in the given zone
// are converted back to UTC for storage.
func Denormalize(a models.Availability, zone string) (models.Availability, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return models.Availability{}, &ZoneError{Zone: zone}
	}
	return convertDays(a, loc, time.UTC)
}

// ConvertSlots converts a single day's slot list between two IANA zones.
func ConvertSlots(slots []string, fromZone, toZone string) ([]string, error) {
	from, err := time.LoadLocation(fromZone)
	if err != nil {
		return nil, &ZoneError{Zone: fromZone}
	}
	to, err := time.LoadLocation(toZone)
	if err != nil {
		return nil, &ZoneError{Zone: toZone}
	}
	converted := make([]string, 0, len(slots))
	for _, slot := range slots {
		local, err := convertSlot(slot, from, to)
		if err != nil {
			return nil, err
		}
		converted = append(converted, local)
	}
	return converted, nil
}

func convertDays(a models.Availability, from, to *time.Location) (models.Availability, error) {
	out := a
	for _, day := range models.Days {
		slots := a.DaySlots(day)
		converted := make([]string, 0, len(slots))
		for _, slot := range slots {
			local, err := convertSlot(slot, from, to)
			if err != nil {
				return models.Availability{}, err
			}
			converted = append(converted, local)
		}
		out.SetDaySlots(day, converted)
	}
	return out, nil
}

func convertSlot(slot string, from, to *time.Location) (string, error) {
	t, err := time.Parse("15:04", slot)
	if err != nil {
		return "", &FormatError{Input: slot}
	}
	anchored := time.Date(refDate.Year(), refDate.Month(), refDate.Day(),
		t.Hour(), t.Minute(), 0, 0, from)
	return anchored.In(to).Format("15:04"), nil
}
