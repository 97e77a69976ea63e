package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAttendanceDate(t *testing.T) {
	// 2025-06-10 01:30 IST == 2025-06-09 20:00 UTC
	earlyMorning := time.Date(2025, 6, 9, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, "2025-06-09", AttendanceDate(earlyMorning, 3), "01:30 scan belongs to previous day")
	assert.Equal(t, "2025-06-10", AttendanceDate(earlyMorning, 0), "boundary 0 disables the rule")

	// 2025-06-10 09:00 IST
	morning := time.Date(2025, 6, 10, 3, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-06-10", AttendanceDate(morning, 3))
}

func TestFormatTime(t *testing.T) {
	// 2025-06-10 09:05 IST
	at := time.Date(2025, 6, 10, 3, 35, 0, 0, time.UTC)
	assert.Equal(t, "09:05 AM", FormatTime(at))
}

func TestClockMinutes(t *testing.T) {
	cases := map[string]int{
		"09:30 AM": 9*60 + 30,
		"9:30 AM":  9*60 + 30,
		"12:00 AM": 0,
		"12:15 PM": 12*60 + 15,
		"05:45 pm": 17*60 + 45,
		"09:30":    9*60 + 30,
		"23:59":    23*60 + 59,
	}
	for in, want := range cases {
		got, err := ClockMinutes(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ClockMinutes("not a time")
	assert.Error(t, err)
	_, err = ClockMinutes("")
	assert.Error(t, err)
}

func TestWorkMinutes(t *testing.T) {
	m, err := WorkMinutes("09:00 AM", "01:30 PM")
	assert.NoError(t, err)
	assert.Equal(t, 270, m)

	m, err = WorkMinutes("09:00 AM", "11:00 AM")
	assert.NoError(t, err)
	assert.Equal(t, 120, m)

	// Overnight shift adds a day before subtracting.
	m, err = WorkMinutes("10:00 PM", "02:00 AM")
	assert.NoError(t, err)
	assert.Equal(t, 240, m)

	m, err = WorkMinutes("", "02:00 AM")
	assert.NoError(t, err)
	assert.Equal(t, 0, m)
}

func TestDurationStatus(t *testing.T) {
	assert.Equal(t, "ABSENT", DurationStatus(0, 4))
	assert.Equal(t, "HALF_DAY", DurationStatus(120, 4))
	assert.Equal(t, "HALF_DAY", DurationStatus(239, 4))
	assert.Equal(t, "PRESENT", DurationStatus(240, 4))
	assert.Equal(t, "PRESENT", DurationStatus(270, 4))
	// Zero minimum falls back to the 4h default.
	assert.Equal(t, "HALF_DAY", DurationStatus(120, 0))
}

func TestIsLate(t *testing.T) {
	assert.False(t, IsLate("09:10 AM", "09:00 AM", 15))
	assert.True(t, IsLate("09:16 AM", "09:00 AM", 15))
	assert.False(t, IsLate("09:16 AM", "", 15), "no shift start means never late")
	assert.False(t, IsLate("", "09:00 AM", 15))
}

func TestTimeOfDayStatus(t *testing.T) {
	assert.Equal(t, "PRESENT", TimeOfDayStatus("09:30 AM"))
	assert.Equal(t, "HALF_DAY", TimeOfDayStatus("09:31 AM"))
	assert.Equal(t, "HALF_DAY", TimeOfDayStatus("11:00 AM"))
	assert.Equal(t, "LATE", TimeOfDayStatus("11:01 AM"))
	assert.Equal(t, "ABSENT", TimeOfDayStatus(""))
}

func TestDatesBetween(t *testing.T) {
	got := DatesBetween("2025-06-01", "2025-06-06")
	assert.Equal(t, []string{"2025-06-02", "2025-06-03", "2025-06-04", "2025-06-05"}, got)

	assert.Nil(t, DatesBetween("2025-06-05", "2025-06-06"), "adjacent days leave no gap")
	assert.Nil(t, DatesBetween("2025-06-06", "2025-06-01"), "reversed bounds")
	assert.Nil(t, DatesBetween("garbage", "2025-06-01"))

	// Month rollover.
	got = DatesBetween("2025-01-30", "2025-02-02")
	assert.Equal(t, []string{"2025-01-31", "2025-02-01"}, got)
}

func TestMonthBounds(t *testing.T) {
	first, last, err := MonthBounds("2025-02")
	assert.NoError(t, err)
	assert.Equal(t, "2025-02-01", first)
	assert.Equal(t, "2025-02-28", last)

	_, _, err = MonthBounds("2025-13")
	assert.Error(t, err)
}
