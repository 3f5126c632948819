package timeslot

import (
	"fmt"
	"time"
)

// Layouts accepted by ToCanonical. The dashboard sends 12-hour labels like
// "7:00 AM"; upstream services send 24-hour strings, sometimes with a
// single-digit hour.
var inputLayouts = []string{
	"3:04 PM",
	"15:04",
}

// ToCanonical converts a selected time label into the canonical 24-hour
// "HH:mm" form used for storage.
func ToCanonical(display string) (string, error) {
	for _, layout := range inputLayouts {
		t, err := time.Parse(layout, display)
		if err == nil {
			return t.Format("15:04"), nil
		}
	}
	return "", &FormatError{Input: display}
}

// ToDisplay converts a canonical "HH:mm" string into the 12-hour label shown
// in the time picker, e.g. "07:00" -> "7:00 AM".
func ToDisplay(canonical string) (string, error) {
	t, err := time.Parse("15:04", canonical)
	if err != nil {
		return "", &FormatError{Input: canonical}
	}
	return t.Format("3:04 PM"), nil
}

// FromISOTimestamp reduces an RFC3339 timestamp to its time-of-day component.
// The hour keeps its literal width ("9:05", "14:30") while minutes are always
// zero-padded; ToCanonical normalizes the result if it re-enters storage.
func FromISOTimestamp(iso string) (string, error) {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return "", &FormatError{Input: iso}
	}
	return fmt.Sprintf("%d:%02d", t.Hour(), t.Minute()), nil
}
