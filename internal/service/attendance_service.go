package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"attendance-backend/internal/model"
	"attendance-backend/internal/repository"
	ws "attendance-backend/internal/websocket"
	"attendance-backend/pkg/clock"

	"github.com/google/uuid"
)

// ErrUIDRequired is the only scan failure surfaced as HTTP 400; every other
// business outcome travels in the response payload.
var ErrUIDRequired = errors.New("UID required")

// Business rejection codes carried in the scan response payload.
const (
	ReasonInvalidCard   = "INVALID_CARD"
	ReasonDuplicateScan = "DUPLICATE_SCAN"
	ReasonAlreadyOut    = "ALREADY_OUT"
)

const markAbsentJob = "mark-absent"

// DTOs
type ScanRequest struct {
	UID        string `json:"uid"`
	DeviceTime string `json:"deviceTime"` // RFC3339, from offline-capable terminals
}

type ScanResult struct {
	Success bool   `json:"success"`
	Type    string `json:"type,omitempty"` // IN or OUT
	Reason  string `json:"reason,omitempty"`
	Name    string `json:"name,omitempty"`
	Time    string `json:"time,omitempty"`
	Date    string `json:"date,omitempty"`
	Message string `json:"message"`
}

type MarkAbsentRequest struct {
	UserID string `json:"userId"`
	Force  bool   `json:"force"`
}

type MarkAbsentResult struct {
	Skipped bool   `json:"skipped"`
	Date    string `json:"date"`
	Marked  int    `json:"marked"`
}

// AttendanceConfig carries the resolver policies picked at startup.
type AttendanceConfig struct {
	// DayBoundaryHour attributes scans before this IST hour to the previous
	// calendar day (0 disables).
	DayBoundaryHour int
	// DebounceWindow rejects a second scan of the same record inside this
	// window as an electrical double-read.
	DebounceWindow time.Duration
}

// DefaultAttendanceConfig matches the production scan terminals.
func DefaultAttendanceConfig() AttendanceConfig {
	return AttendanceConfig{
		DayBoundaryHour: 3,
		DebounceWindow:  10 * time.Second,
	}
}

// AttendanceService resolves raw card scans into the per-day attendance state
// machine (NONE -> IN -> OUT) and keeps the ledger gapless via backfill.
type AttendanceService interface {
	Scan(ctx context.Context, req ScanRequest) (*ScanResult, error)
	List(ctx context.Context, filter repository.AttendanceFilter, page, limit int) ([]model.AttendanceRecord, int64, error)
	ListForUser(ctx context.Context, userID string, page, limit int) ([]model.AttendanceRecord, int64, error)
	Monthly(ctx context.Context, userID, month string) ([]model.AttendanceRecord, error)
	Today(ctx context.Context) ([]model.AttendanceRecord, error)
	MarkAbsent(ctx context.Context, req MarkAbsentRequest) (*MarkAbsentResult, error)
}

type attendanceService struct {
	attendanceRepo repository.AttendanceRepository
	userRepo       repository.UserRepository
	shiftRepo      repository.ShiftRepository
	runRepo        repository.BackfillRunRepository
	hub            *ws.Hub
	cfg            AttendanceConfig
	now            func() time.Time
}

// NewAttendanceService returns a new instance of AttendanceService
func NewAttendanceService(
	attendanceRepo repository.AttendanceRepository,
	userRepo repository.UserRepository,
	shiftRepo repository.ShiftRepository,
	runRepo repository.BackfillRunRepository,
	hub *ws.Hub,
	cfg AttendanceConfig,
) AttendanceService {
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		shiftRepo:      shiftRepo,
		runRepo:        runRepo,
		hub:            hub,
		cfg:            cfg,
		now:            time.Now,
	}
}

// Scan drives one step of the per-(user, date) state machine. Business
// rejections come back as a non-error ScanResult; only validation and storage
// failures return an error.
func (s *attendanceService) Scan(ctx context.Context, req ScanRequest) (*ScanResult, error) {
	if strings.TrimSpace(req.UID) == "" {
		return nil, ErrUIDRequired
	}

	user, err := s.userRepo.FindByMatchedUID(ctx, UIDMatchPattern(req.UID))
	if err != nil {
		if repository.IsNotFound(err) {
			return &ScanResult{
				Success: false,
				Reason:  ReasonInvalidCard,
				Message: "Card is not registered to any active user",
			}, nil
		}
		return nil, err
	}

	scanTime := s.resolveScanTime(req.DeviceTime)
	date := clock.AttendanceDate(scanTime, s.cfg.DayBoundaryHour)

	// A failed backfill must never block the scan itself.
	if err := s.backfillUser(ctx, user.ID.String(), date); err != nil {
		log.Printf("backfill for user %s failed: %v", user.ID, err)
	}

	rec, err := s.attendanceRepo.FindOne(ctx, user.ID.String(), date)
	if err != nil {
		if repository.IsNotFound(err) {
			return s.checkIn(ctx, user, date, scanTime)
		}
		return nil, err
	}

	switch rec.ScanStatus {
	case model.ScanNone:
		// Synthesized ABSENT row for this date; a real scan claims it.
		return s.claimAbsentRow(ctx, user, rec, scanTime)
	case model.ScanIn:
		if s.isBounce(rec, scanTime) {
			return &ScanResult{
				Success: false,
				Reason:  ReasonDuplicateScan,
				Name:    user.Name,
				Message: "Duplicate scan ignored",
			}, nil
		}
		return s.checkOut(ctx, user, rec, scanTime)
	default: // model.ScanOut
		return &ScanResult{
			Success: false,
			Reason:  ReasonAlreadyOut,
			Name:    user.Name,
			Message: "Attendance already completed for today",
		}, nil
	}
}

func (s *attendanceService) resolveScanTime(deviceTime string) time.Time {
	if deviceTime != "" {
		if t, err := time.Parse(time.RFC3339, deviceTime); err == nil {
			return clock.ToIST(t)
		}
		log.Printf("ignoring unparseable deviceTime %q", deviceTime)
	}
	return clock.ToIST(s.now())
}

func (s *attendanceService) isBounce(rec *model.AttendanceRecord, scanTime time.Time) bool {
	if rec.LastScanAt == nil || s.cfg.DebounceWindow <= 0 {
		return false
	}
	elapsed := scanTime.Sub(*rec.LastScanAt)
	return elapsed >= 0 && elapsed < s.cfg.DebounceWindow
}

func (s *attendanceService) checkIn(ctx context.Context, user *model.User, date string, scanTime time.Time) (*ScanResult, error) {
	at := scanTime
	rec := &model.AttendanceRecord{
		UserID:     user.ID,
		Date:       date,
		CheckIn:    clock.FormatTime(scanTime),
		Status:     model.StatusIn,
		ScanStatus: model.ScanIn,
		LastScanAt: &at,
	}

	if err := s.attendanceRepo.Create(ctx, rec); err != nil {
		// A concurrent scan won the create race; the unique (user, date)
		// index is the backstop, so report a duplicate rather than fail.
		if repository.IsDuplicateKey(err) {
			return &ScanResult{
				Success: false,
				Reason:  ReasonDuplicateScan,
				Name:    user.Name,
				Message: "Duplicate scan ignored",
			}, nil
		}
		return nil, err
	}

	result := &ScanResult{
		Success: true,
		Type:    model.ScanIn,
		Name:    user.Name,
		Time:    rec.CheckIn,
		Date:    date,
		Message: "Check-In Done",
	}
	s.broadcast(user, result)
	return result, nil
}

// claimAbsentRow upgrades a backfilled ABSENT row into a live check-in when a
// genuine scan arrives for that date.
func (s *attendanceService) claimAbsentRow(ctx context.Context, user *model.User, rec *model.AttendanceRecord, scanTime time.Time) (*ScanResult, error) {
	at := scanTime
	rec.CheckIn = clock.FormatTime(scanTime)
	rec.Status = model.StatusIn
	rec.ScanStatus = model.ScanIn
	rec.LastScanAt = &at

	if err := s.attendanceRepo.Save(ctx, rec); err != nil {
		return nil, err
	}

	result := &ScanResult{
		Success: true,
		Type:    model.ScanIn,
		Name:    user.Name,
		Time:    rec.CheckIn,
		Date:    rec.Date,
		Message: "Check-In Done",
	}
	s.broadcast(user, result)
	return result, nil
}

func (s *attendanceService) checkOut(ctx context.Context, user *model.User, rec *model.AttendanceRecord, scanTime time.Time) (*ScanResult, error) {
	at := scanTime
	rec.CheckOut = clock.FormatTime(scanTime)
	rec.LastScanAt = &at
	rec.ScanStatus = model.ScanOut

	worked, err := clock.WorkMinutes(rec.CheckIn, rec.CheckOut)
	if err != nil {
		log.Printf("work-minute computation failed for record %s: %v", rec.ID, err)
		worked = 0
	}
	rec.WorkMinutes = worked

	minimumHours := clock.DefaultMinimumHours
	graceMinutes := clock.DefaultGraceMinutes
	shiftStart := ""
	if shift := s.userShift(ctx, user); shift != nil {
		minimumHours = shift.MinimumHours
		graceMinutes = shift.GraceMinutes
		shiftStart = shift.StartTime
	}

	rec.Status = clock.DurationStatus(worked, minimumHours)
	rec.Late = clock.IsLate(rec.CheckIn, shiftStart, graceMinutes)

	if err := s.attendanceRepo.Save(ctx, rec); err != nil {
		return nil, err
	}

	result := &ScanResult{
		Success: true,
		Type:    model.ScanOut,
		Name:    user.Name,
		Time:    rec.CheckOut,
		Date:    rec.Date,
		Message: "Check-Out Done",
	}
	s.broadcast(user, result)
	return result, nil
}

func (s *attendanceService) userShift(ctx context.Context, user *model.User) *model.Shift {
	if user.CurrentShift != nil {
		return user.CurrentShift
	}
	if user.CurrentShiftID == nil {
		return nil
	}
	shift, err := s.shiftRepo.GetByID(ctx, user.CurrentShiftID.String())
	if err != nil {
		log.Printf("shift lookup failed for user %s: %v", user.ID, err)
		return nil
	}
	return shift
}

// backfillUser synthesizes ABSENT rows for every day strictly between the
// user's last known record and targetDate. One range query finds existing
// dates; the bulk insert ignores conflicts so concurrent backfills are benign.
func (s *attendanceService) backfillUser(ctx context.Context, userID, targetDate string) error {
	last, err := s.attendanceRepo.Latest(ctx, userID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil // no synthetic history before a user's first real record
		}
		return err
	}

	missing := clock.DatesBetween(last.Date, targetDate)
	if len(missing) == 0 {
		return nil
	}

	existing, err := s.attendanceRepo.ExistingDates(ctx, userID, missing[0], missing[len(missing)-1])
	if err != nil {
		return err
	}
	seen := make(map[string]bool, len(existing))
	for _, d := range existing {
		seen[d] = true
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return err
	}

	var recs []model.AttendanceRecord
	for _, d := range missing {
		if seen[d] {
			continue
		}
		recs = append(recs, model.AttendanceRecord{
			UserID:     uid,
			Date:       d,
			Status:     model.StatusAbsent,
			ScanStatus: model.ScanNone,
		})
	}
	if len(recs) == 0 {
		return nil
	}

	if err := s.attendanceRepo.InsertMissing(ctx, recs); err != nil {
		return err
	}
	log.Printf("backfilled %d absent day(s) for user %s", len(recs), userID)
	return nil
}

func (s *attendanceService) List(ctx context.Context, filter repository.AttendanceFilter, page, limit int) ([]model.AttendanceRecord, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 50
	}
	return s.attendanceRepo.List(ctx, filter, page, limit)
}

func (s *attendanceService) ListForUser(ctx context.Context, userID string, page, limit int) ([]model.AttendanceRecord, int64, error) {
	today := clock.AttendanceDate(s.now(), s.cfg.DayBoundaryHour)
	if err := s.backfillUser(ctx, userID, today); err != nil {
		log.Printf("backfill for user %s failed: %v", userID, err)
	}
	return s.List(ctx, repository.AttendanceFilter{UserID: userID}, page, limit)
}

func (s *attendanceService) Monthly(ctx context.Context, userID, month string) ([]model.AttendanceRecord, error) {
	first, lastDate, err := clock.MonthBounds(month)
	if err != nil {
		return nil, errors.New("invalid month, expected YYYY-MM")
	}

	today := clock.AttendanceDate(s.now(), s.cfg.DayBoundaryHour)
	if err := s.backfillUser(ctx, userID, today); err != nil {
		log.Printf("backfill for user %s failed: %v", userID, err)
	}

	recs, _, err := s.attendanceRepo.List(ctx, repository.AttendanceFilter{
		UserID:   userID,
		FromDate: first,
		ToDate:   lastDate,
	}, 1, 31)
	return recs, err
}

func (s *attendanceService) Today(ctx context.Context) ([]model.AttendanceRecord, error) {
	today := clock.AttendanceDate(s.now(), s.cfg.DayBoundaryHour)
	recs, _, err := s.attendanceRepo.List(ctx, repository.AttendanceFilter{Date: today}, 1, 1000)
	return recs, err
}

// MarkAbsent is the eager reconciliation job: every active employee (or one
// user) gets yesterday's row synthesized as ABSENT when no scan happened. The
// persisted run row gates it to once per day across process instances.
func (s *attendanceService) MarkAbsent(ctx context.Context, req MarkAbsentRequest) (*MarkAbsentResult, error) {
	today := clock.AttendanceDate(s.now(), s.cfg.DayBoundaryHour)
	todayTime, err := clock.ParseDate(today)
	if err != nil {
		return nil, err
	}
	yesterday := todayTime.AddDate(0, 0, -1).Format(clock.DateLayout)

	if !req.Force && req.UserID == "" {
		lastRun, err := s.runRepo.LastRun(ctx, markAbsentJob)
		if err != nil {
			return nil, err
		}
		if lastRun == today {
			return &MarkAbsentResult{Skipped: true, Date: yesterday}, nil
		}
	}

	var users []model.User
	if req.UserID != "" {
		user, err := s.userRepo.GetByID(ctx, req.UserID)
		if err != nil {
			return nil, errors.New("user not found")
		}
		users = []model.User{*user}
	} else {
		users, err = s.userRepo.ListActiveEmployees(ctx)
		if err != nil {
			return nil, err
		}
	}

	var recs []model.AttendanceRecord
	for _, u := range users {
		if _, err := s.attendanceRepo.FindOne(ctx, u.ID.String(), yesterday); err == nil {
			continue
		} else if !repository.IsNotFound(err) {
			return nil, err
		}
		recs = append(recs, model.AttendanceRecord{
			UserID:     u.ID,
			Date:       yesterday,
			Status:     model.StatusAbsent,
			ScanStatus: model.ScanNone,
		})
	}

	if err := s.attendanceRepo.InsertMissing(ctx, recs); err != nil {
		return nil, err
	}

	if req.UserID == "" {
		if err := s.runRepo.MarkRun(ctx, markAbsentJob, today); err != nil {
			log.Printf("recording mark-absent run failed: %v", err)
		}
	}

	return &MarkAbsentResult{Date: yesterday, Marked: len(recs)}, nil
}

type scanEvent struct {
	Event      string `json:"event"`
	Type       string `json:"type"`
	Name       string `json:"name"`
	EmployeeID string `json:"employee_id"`
	Time       string `json:"time"`
	Date       string `json:"date"`
}

// broadcast pushes a live scan event to dashboard websocket clients. The send
// is non-blocking so a stalled hub never delays a scan response.
func (s *attendanceService) broadcast(user *model.User, result *ScanResult) {
	if s.hub == nil {
		return
	}
	payload, err := json.Marshal(scanEvent{
		Event:      "attendance_scan",
		Type:       result.Type,
		Name:       user.Name,
		EmployeeID: user.EmployeeID,
		Time:       result.Time,
		Date:       result.Date,
	})
	if err != nil {
		return
	}
	select {
	case s.hub.Broadcast <- payload:
	default:
	}
}
