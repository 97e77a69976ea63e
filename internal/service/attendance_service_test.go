package service

import (
	"context"
	"testing"
	"time"

	"attendance-backend/internal/model"
	"attendance-backend/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type attendanceFixture struct {
	svc       *attendanceService
	users     *fakeUserRepo
	records   *fakeAttendanceRepo
	shifts    *fakeShiftRepo
	runs      *fakeRunRepo
	wallClock time.Time
}

func newAttendanceFixture(t *testing.T, cfg AttendanceConfig) *attendanceFixture {
	t.Helper()
	f := &attendanceFixture{
		users:   &fakeUserRepo{},
		records: newFakeAttendanceRepo(),
		shifts:  newFakeShiftRepo(),
		runs:    newFakeRunRepo(),
	}
	svc := NewAttendanceService(f.records, f.users, f.shifts, f.runs, nil, cfg)
	f.svc = svc.(*attendanceService)
	f.wallClock = time.Date(2025, 6, 9, 9, 0, 0, 0, clock.IST)
	f.svc.now = func() time.Time { return f.wallClock }
	return f
}

func (f *attendanceFixture) addEmployee(uid string) *model.User {
	user := &model.User{
		ID:         uuid.New(),
		Name:       "Asha Rao",
		EmployeeID: "MMS_007",
		UID:        uid,
		Role:       model.RoleEmployee,
		IsActive:   true,
	}
	f.users.users = append(f.users.users, user)
	return user
}

func TestScanRejectsEmptyUID(t *testing.T) {
	f := newAttendanceFixture(t, DefaultAttendanceConfig())

	_, err := f.svc.Scan(context.Background(), ScanRequest{UID: "   "})
	assert.ErrorIs(t, err, ErrUIDRequired)
}

func TestScanUnregisteredCardCreatesNoRow(t *testing.T) {
	f := newAttendanceFixture(t, DefaultAttendanceConfig())
	f.addEmployee("04A1B2")

	result, err := f.svc.Scan(context.Background(), ScanRequest{UID: "DEADBEEF"})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, ReasonInvalidCard, result.Reason)
	assert.Empty(t, f.records.recs)
}

func TestScanMatchesUIDWithEmbeddedWhitespace(t *testing.T) {
	f := newAttendanceFixture(t, DefaultAttendanceConfig())
	user := f.addEmployee("04 A1 B2")

	result, err := f.svc.Scan(context.Background(), ScanRequest{UID: "04a1b2"})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, model.ScanIn, result.Type)
	assert.Equal(t, user.Name, result.Name)
}

func TestScanCheckInThenCheckOut(t *testing.T) {
	f := newAttendanceFixture(t, DefaultAttendanceConfig())
	user := f.addEmployee("04A1B2")
	ctx := context.Background()

	in, err := f.svc.Scan(ctx, ScanRequest{UID: "04A1B2", DeviceTime: "2025-06-09T09:00:00+05:30"})
	require.NoError(t, err)
	assert.True(t, in.Success)
	assert.Equal(t, model.ScanIn, in.Type)
	assert.Equal(t, "09:00 AM", in.Time)
	assert.Equal(t, "2025-06-09", in.Date)

	out, err := f.svc.Scan(ctx, ScanRequest{UID: "04A1B2", DeviceTime: "2025-06-09T18:00:00+05:30"})
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, model.ScanOut, out.Type)
	assert.Equal(t, "06:00 PM", out.Time)

	rec, err := f.records.FindOne(ctx, user.ID.String(), "2025-06-09")
	require.NoError(t, err)
	assert.Equal(t, model.ScanOut, rec.ScanStatus)
	assert.Equal(t, 540, rec.WorkMinutes)
	assert.Equal(t, model.StatusPresent, rec.Status)
	assert.False(t, rec.Late)
}

func TestScanShortDayBecomesHalfDay(t *testing.T) {
	f := newAttendanceFixture(t, DefaultAttendanceConfig())
	user := f.addEmployee("04A1B2")
	ctx := context.Background()

	_, err := f.svc.Scan(ctx, ScanRequest{UID: "04A1B2", DeviceTime: "2025-06-09T09:00:00+05:30"})
	require.NoError(t, err)
	_, err = f.svc.Scan(ctx, ScanRequest{UID: "04A1B2", DeviceTime: "2025-06-09T11:00:00+05:30"})
	require.NoError(t, err)

	rec, err := f.records.FindOne(ctx, user.ID.String(), "2025-06-09")
	require.NoError(t, err)
	assert.Equal(t, 120, rec.WorkMinutes)
	assert.Equal(t, model.StatusHalfDay, rec.Status)
}

func TestScanShiftDrivesLateAndMinimum(t *testing.T) {
	f := newAttendanceFixture(t, DefaultAttendanceConfig())
	user := f.addEmployee("04A1B2")
	shift := &model.Shift{
		ID:           uuid.New(),
		UserID:       user.ID,
		ShiftName:    "Morning",
		StartTime:    "09:00 AM",
		EndTime:      "06:00 PM",
		GraceMinutes: 15,
		MinimumHours: 6,
		IsActive:     true,
	}
	f.shifts.shifts[shift.ID.String()] = shift
	user.CurrentShiftID = &shift.ID
	ctx := context.Background()

	// 09:30 check-in misses the 09:00 start plus 15 minutes of grace.
	_, err := f.svc.Scan(ctx, ScanRequest{UID: "04A1B2", DeviceTime: "2025-06-09T09:30:00+05:30"})
	require.NoError(t, err)
	// Five hours worked falls short of the shift's six-hour minimum.
	_, err = f.svc.Scan(ctx, ScanRequest{UID: "04A1B2", DeviceTime: "2025-06-09T14:30:00+05:30"})
	require.NoError(t, err)

	rec, err := f.records.FindOne(ctx, user.ID.String(), "2025-06-09")
	require.NoError(t, err)
	assert.Equal(t, 300, rec.WorkMinutes)
	assert.Equal(t, model.StatusHalfDay, rec.Status)
	assert.True(t, rec.Late)
}

func TestScanDebounceWindow(t *testing.T) {
	f := newAttendanceFixture(t, DefaultAttendanceConfig())
	f.addEmployee("04A1B2")
	ctx := context.Background()

	in, err := f.svc.Scan(ctx, ScanRequest{UID: "04A1B2", DeviceTime: "2025-06-09T09:00:00+05:30"})
	require.NoError(t, err)
	require.True(t, in.Success)

	// 3 seconds later: electrical double-read, rejected without mutation.
	dup, err := f.svc.Scan(ctx, ScanRequest{UID: "04A1B2", DeviceTime: "2025-06-09T09:00:03+05:30"})
	require.NoError(t, err)
	assert.False(t, dup.Success)
	assert.Equal(t, ReasonDuplicateScan, dup.Reason)

	// 15 seconds after the first: outside the window, a normal check-out.
	out, err := f.svc.Scan(ctx, ScanRequest{UID: "04A1B2", DeviceTime: "2025-06-09T09:00:15+05:30"})
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, model.ScanOut, out.Type)
}

func TestScanAfterCheckOutRejectedWithoutMutation(t *testing.T) {
	f := newAttendanceFixture(t, DefaultAttendanceConfig())
	user := f.addEmployee("04A1B2")
	ctx := context.Background()

	_, err := f.svc.Scan(ctx, ScanRequest{UID: "04A1B2", DeviceTime: "2025-06-09T09:00:00+05:30"})
	require.NoError(t, err)
	_, err = f.svc.Scan(ctx, ScanRequest{UID: "04A1B2", DeviceTime: "2025-06-09T18:00:00+05:30"})
	require.NoError(t, err)

	before, err := f.records.FindOne(ctx, user.ID.String(), "2025-06-09")
	require.NoError(t, err)

	third, err := f.svc.Scan(ctx, ScanRequest{UID: "04A1B2", DeviceTime: "2025-06-09T19:00:00+05:30"})
	require.NoError(t, err)
	assert.False(t, third.Success)
	assert.Equal(t, ReasonAlreadyOut, third.Reason)

	after, err := f.records.FindOne(ctx, user.ID.String(), "2025-06-09")
	require.NoError(t, err)
	assert.Equal(t, before.CheckOut, after.CheckOut)
	assert.Equal(t, before.WorkMinutes, after.WorkMinutes)
}

// raceAttendanceRepo simulates losing the create race to a concurrent scan:
// the lookup sees no row, but the unique (user, date) index rejects the insert.
type raceAttendanceRepo struct {
	*fakeAttendanceRepo
}

func (r *raceAttendanceRepo) FindOne(context.Context, string, string) (*model.AttendanceRecord, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *raceAttendanceRepo) Create(context.Context, *model.AttendanceRecord) error {
	return gorm.ErrDuplicatedKey
}

func TestScanCreateRaceReportsDuplicate(t *testing.T) {
	f := newAttendanceFixture(t, DefaultAttendanceConfig())
	f.addEmployee("04A1B2")
	f.svc.attendanceRepo = &raceAttendanceRepo{f.records}

	result, err := f.svc.Scan(context.Background(), ScanRequest{UID: "04A1B2", DeviceTime: "2025-06-09T09:00:00+05:30"})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, ReasonDuplicateScan, result.Reason)
}

func TestScanEarlyMorningAttributedToPreviousDay(t *testing.T) {
	f := newAttendanceFixture(t, DefaultAttendanceConfig())
	user := f.addEmployee("04A1B2")
	ctx := context.Background()

	// Check in late evening, check out at 01:30 IST: both land on 2025-06-09.
	_, err := f.svc.Scan(ctx, ScanRequest{UID: "04A1B2", DeviceTime: "2025-06-09T22:00:00+05:30"})
	require.NoError(t, err)
	out, err := f.svc.Scan(ctx, ScanRequest{UID: "04A1B2", DeviceTime: "2025-06-10T01:30:00+05:30"})
	require.NoError(t, err)
	require.True(t, out.Success)
	assert.Equal(t, "2025-06-09", out.Date)

	rec, err := f.records.FindOne(ctx, user.ID.String(), "2025-06-09")
	require.NoError(t, err)
	// 22:00 to 01:30 crosses midnight: 3.5 hours.
	assert.Equal(t, 210, rec.WorkMinutes)
	assert.Equal(t, model.StatusHalfDay, rec.Status)
}

func TestScanBackfillsGapAsAbsent(t *testing.T) {
	f := newAttendanceFixture(t, DefaultAttendanceConfig())
	user := f.addEmployee("04A1B2")
	ctx := context.Background()

	seed := &model.AttendanceRecord{
		UserID:      user.ID,
		Date:        "2025-06-01",
		CheckIn:     "09:00 AM",
		CheckOut:    "06:00 PM",
		WorkMinutes: 540,
		Status:      model.StatusPresent,
		ScanStatus:  model.ScanOut,
	}
	require.NoError(t, f.records.Create(ctx, seed))

	result, err := f.svc.Scan(ctx, ScanRequest{UID: "04A1B2", DeviceTime: "2025-06-07T09:00:00+05:30"})
	require.NoError(t, err)
	require.True(t, result.Success)

	// Exactly the strictly-between days exist as synthesized ABSENT rows.
	for _, d := range []string{"2025-06-02", "2025-06-03", "2025-06-04", "2025-06-05", "2025-06-06"} {
		rec, err := f.records.FindOne(ctx, user.ID.String(), d)
		require.NoError(t, err, "missing backfilled row for %s", d)
		assert.Equal(t, model.StatusAbsent, rec.Status)
		assert.Equal(t, model.ScanNone, rec.ScanStatus)
		assert.Empty(t, rec.CheckIn)
	}
	assert.Len(t, f.records.recs, 7)

	// Idempotent: a second pass adds nothing and flips no statuses.
	require.NoError(t, f.svc.backfillUser(ctx, user.ID.String(), "2025-06-07"))
	assert.Len(t, f.records.recs, 7)
	gap, err := f.records.FindOne(ctx, user.ID.String(), "2025-06-04")
	require.NoError(t, err)
	assert.Equal(t, model.StatusAbsent, gap.Status)
}

func TestScanClaimsBackfilledAbsentRow(t *testing.T) {
	f := newAttendanceFixture(t, DefaultAttendanceConfig())
	user := f.addEmployee("04A1B2")
	ctx := context.Background()

	absent := &model.AttendanceRecord{
		UserID:     user.ID,
		Date:       "2025-06-09",
		Status:     model.StatusAbsent,
		ScanStatus: model.ScanNone,
	}
	require.NoError(t, f.records.Create(ctx, absent))

	result, err := f.svc.Scan(ctx, ScanRequest{UID: "04A1B2", DeviceTime: "2025-06-09T09:00:00+05:30"})
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, model.ScanIn, result.Type)

	rec, err := f.records.FindOne(ctx, user.ID.String(), "2025-06-09")
	require.NoError(t, err)
	assert.Equal(t, model.ScanIn, rec.ScanStatus)
	assert.Equal(t, model.StatusIn, rec.Status)
	assert.Equal(t, "09:00 AM", rec.CheckIn)
	assert.Len(t, f.records.recs, 1)
}

func TestMarkAbsentSynthesizesYesterday(t *testing.T) {
	f := newAttendanceFixture(t, DefaultAttendanceConfig())
	scanned := f.addEmployee("04A1B2")
	missed := f.addEmployee("99FFEE")
	missed.Name = "Vikram Shah"
	missed.EmployeeID = "MMS_008"
	ctx := context.Background()

	// scanned already has yesterday's row; missed does not.
	require.NoError(t, f.records.Create(ctx, &model.AttendanceRecord{
		UserID:     scanned.ID,
		Date:       "2025-06-08",
		Status:     model.StatusPresent,
		ScanStatus: model.ScanOut,
	}))

	result, err := f.svc.MarkAbsent(ctx, MarkAbsentRequest{})
	require.NoError(t, err)
	assert.False(t, result.Skipped)
	assert.Equal(t, "2025-06-08", result.Date)
	assert.Equal(t, 1, result.Marked)

	rec, err := f.records.FindOne(ctx, missed.ID.String(), "2025-06-08")
	require.NoError(t, err)
	assert.Equal(t, model.StatusAbsent, rec.Status)

	// Same day again: gated by the persisted run row.
	again, err := f.svc.MarkAbsent(ctx, MarkAbsentRequest{})
	require.NoError(t, err)
	assert.True(t, again.Skipped)

	// Force bypasses the gate but the conflict-skipping insert stays benign.
	forced, err := f.svc.MarkAbsent(ctx, MarkAbsentRequest{Force: true})
	require.NoError(t, err)
	assert.False(t, forced.Skipped)
	assert.Equal(t, 0, forced.Marked)
}

func TestMarkAbsentSingleUserSkipsGate(t *testing.T) {
	f := newAttendanceFixture(t, DefaultAttendanceConfig())
	user := f.addEmployee("04A1B2")
	ctx := context.Background()
	f.runs.runs[markAbsentJob] = "2025-06-09" // global run already done today

	result, err := f.svc.MarkAbsent(ctx, MarkAbsentRequest{UserID: user.ID.String()})
	require.NoError(t, err)
	assert.False(t, result.Skipped)
	assert.Equal(t, 1, result.Marked)
}

func TestMonthlyRejectsMalformedMonth(t *testing.T) {
	f := newAttendanceFixture(t, DefaultAttendanceConfig())
	f.addEmployee("04A1B2")

	_, err := f.svc.Monthly(context.Background(), uuid.NewString(), "June 2025")
	assert.EqualError(t, err, "invalid month, expected YYYY-MM")
}
