package timeslot

import "fmt"

// FormatError reports a time string that does not match any recognized pattern.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unrecognized time format: %q", e.Input)
}

// ZoneError reports an unknown IANA timezone identifier.
type ZoneError struct {
	Zone string
}

func (e *ZoneError) Error() string {
	return fmt.Sprintf("unknown timezone: %q", e.Zone)
}
