package clock

import (
	"fmt"
	"strings"
	"time"
)

// IST is the fixed civil time zone (UTC+5:30) all attendance cutoffs are
// evaluated in, independent of the server locale.
var IST = time.FixedZone("IST", 5*3600+30*60)

const (
	// TimeLayout is the wall-clock format stored on attendance rows.
	TimeLayout = "03:04 PM"
	// DateLayout is the calendar-day key of the attendance ledger.
	DateLayout = "2006-01-02"
)

// ToIST converts any instant to IST wall time.
func ToIST(t time.Time) time.Time {
	return t.In(IST)
}

// AttendanceDate returns the ledger date a scan at t belongs to. Scans before
// boundaryHour local time are attributed to the previous calendar day so a
// late night shift does not split across two rows. boundaryHour 0 disables
// the rule.
func AttendanceDate(t time.Time, boundaryHour int) string {
	local := t.In(IST)
	if boundaryHour > 0 && local.Hour() < boundaryHour {
		local = local.AddDate(0, 0, -1)
	}
	return local.Format(DateLayout)
}

// FormatTime renders an instant as the stored "hh:mm AM/PM" wall time in IST.
func FormatTime(t time.Time) string {
	return t.In(IST).Format(TimeLayout)
}

// ClockMinutes parses a wall-time string into minutes since midnight.
// Accepts both "09:30 AM" and 24-hour "09:30".
func ClockMinutes(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty time string")
	}

	var layouts []string
	if strings.ContainsAny(s, "AaPp") {
		layouts = []string{"03:04 PM", "3:04 PM"}
	} else {
		layouts = []string{"15:04"}
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, strings.ToUpper(s)); err == nil {
			return t.Hour()*60 + t.Minute(), nil
		}
	}
	return 0, fmt.Errorf("unparseable time %q", s)
}

// WorkMinutes computes elapsed minutes between check-in and check-out wall
// times. A checkout numerically earlier than check-in means the shift crossed
// midnight, so a full day is added before subtracting.
func WorkMinutes(checkIn, checkOut string) (int, error) {
	if checkIn == "" || checkOut == "" {
		return 0, nil
	}
	in, err := ClockMinutes(checkIn)
	if err != nil {
		return 0, err
	}
	out, err := ClockMinutes(checkOut)
	if err != nil {
		return 0, err
	}
	if out < in {
		return 24*60 - in + out, nil
	}
	return out - in, nil
}
