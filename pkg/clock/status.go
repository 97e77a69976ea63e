package clock

// Reporting cutoffs for the legacy time-of-day classification.
const (
	presentCutoff = 9*60 + 30 // 09:30 AM
	halfDayCutoff = 11 * 60   // 11:00 AM
)

// Defaults applied when a user has no shift assigned.
const (
	DefaultMinimumHours = 4
	DefaultGraceMinutes = 15
)

// DurationStatus classifies a completed day from elapsed work minutes against
// the shift's minimum. Zero minutes counts as ABSENT, below the minimum as
// HALF_DAY, at or above as PRESENT.
func DurationStatus(workMinutes, minimumHours int) string {
	if workMinutes == 0 {
		return "ABSENT"
	}
	if minimumHours <= 0 {
		minimumHours = DefaultMinimumHours
	}
	if workMinutes < minimumHours*60 {
		return "HALF_DAY"
	}
	return "PRESENT"
}

// IsLate reports whether a check-in missed the shift start plus grace window.
// With no shift start configured nothing counts as late.
func IsLate(checkIn, shiftStart string, graceMinutes int) bool {
	if checkIn == "" || shiftStart == "" {
		return false
	}
	in, err := ClockMinutes(checkIn)
	if err != nil {
		return false
	}
	start, err := ClockMinutes(shiftStart)
	if err != nil {
		return false
	}
	if graceMinutes < 0 {
		graceMinutes = DefaultGraceMinutes
	}
	return in > start+graceMinutes
}

// TimeOfDayStatus classifies a day by check-in clock time alone. Used for
// reporting summaries only; the scan path derives status from work duration.
func TimeOfDayStatus(checkIn string) string {
	if checkIn == "" {
		return "ABSENT"
	}
	in, err := ClockMinutes(checkIn)
	if err != nil {
		return "ABSENT"
	}
	switch {
	case in <= presentCutoff:
		return "PRESENT"
	case in <= halfDayCutoff:
		return "HALF_DAY"
	default:
		return "LATE"
	}
}
