package models

import (
	"time"

	"github.com/lib/pq"
)

// Availability holds a doctor's recurring weekly schedule. Each day column
// is an ordered list of "HH:mm" slot strings stored in UTC.
type Availability struct {
	ID              string         `json:"id" gorm:"primaryKey"`
	DoctorProfileID string         `json:"doctor_profile_id" gorm:"uniqueIndex;not null"`
	Monday          pq.StringArray `json:"monday" gorm:"type:text[]"`
	Tuesday         pq.StringArray `json:"tuesday" gorm:"type:text[]"`
	Wednesday       pq.StringArray `json:"wednesday" gorm:"type:text[]"`
	Thursday        pq.StringArray `json:"thursday" gorm:"type:text[]"`
	Friday          pq.StringArray `json:"friday" gorm:"type:text[]"`
	Saturday        pq.StringArray `json:"saturday" gorm:"type:text[]"`
	Sunday          pq.StringArray `json:"sunday" gorm:"type:text[]"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// Days lists the seven day field names in the order the dashboard shows them.
var Days = []string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

// IsDay reports whether name is one of the seven day field names.
func IsDay(name string) bool {
	for _, d := range Days {
		if d == name {
			return true
		}
	}
	return false
}

// DaySlots returns the slot list for the named day. Unknown names return nil.
func (a *Availability) DaySlots(day string) []string {
	switch day {
	case "monday":
		return a.Monday
	case "tuesday":
		return a.Tuesday
	case "wednesday":
		return a.Wednesday
	case "thursday":
		return a.Thursday
	case "friday":
		return a.Friday
	case "saturday":
		return a.Saturday
	case "sunday":
		return a.Sunday
	}
	return nil
}

// SetDaySlots replaces the slot list for the named day. Unknown names are ignored.
func (a *Availability) SetDaySlots(day string, slots []string) {
	switch day {
	case "monday":
		a.Monday = slots
	case "tuesday":
		a.Tuesday = slots
	case "wednesday":
		a.Wednesday = slots
	case "thursday":
		a.Thursday = slots
	case "friday":
		a.Friday = slots
	case "saturday":
		a.Saturday = slots
	case "sunday":
		a.Sunday = slots
	}
}
