package service

import (
	"context"
	"log"
	"time"

	"attendance-backend/internal/model"
	"attendance-backend/internal/repository"
	"attendance-backend/pkg/clock"
)

type AdminDashboard struct {
	Date             string                   `json:"date"`
	TotalEmployees   int64                    `json:"total_employees"`
	PresentToday     int                      `json:"present_today"`
	AbsentToday      int                      `json:"absent_today"`
	TodayAttendance  []model.AttendanceRecord `json:"today_attendance"`
	EmployeesOnLeave []model.Leave            `json:"employees_on_leave"`
	PendingLeaves    []model.Leave            `json:"pending_leaves"`
	ComplaintStats   map[string]int64         `json:"complaint_stats"`
	RecentComplaints []model.Complaint        `json:"recent_complaints"`
	Notices          []model.Notice           `json:"notices"`
}

type EmployeeDashboard struct {
	Month      string                   `json:"month"`
	StatusDays map[string]int64         `json:"status_days"`
	Recent     []model.AttendanceRecord `json:"recent"`
	Notices    []model.Notice           `json:"notices"`
	Leaves     []model.Leave            `json:"leaves"`
}

// DashboardService aggregates the read models behind the admin and employee
// home screens. Every optional block degrades to empty on error so one broken
// collection never blanks the whole dashboard.
type DashboardService interface {
	Admin(ctx context.Context) (*AdminDashboard, error)
	Employee(ctx context.Context, userID string) (*EmployeeDashboard, error)
}

type dashboardService struct {
	userRepo       repository.UserRepository
	attendanceRepo repository.AttendanceRepository
	leaveRepo      repository.LeaveRepository
	complaintRepo  repository.ComplaintRepository
	noticeRepo     repository.NoticeRepository
	cfg            AttendanceConfig
	now            func() time.Time
}

// NewDashboardService returns a new instance of DashboardService
func NewDashboardService(
	userRepo repository.UserRepository,
	attendanceRepo repository.AttendanceRepository,
	leaveRepo repository.LeaveRepository,
	complaintRepo repository.ComplaintRepository,
	noticeRepo repository.NoticeRepository,
	cfg AttendanceConfig,
) DashboardService {
	return &dashboardService{
		userRepo:       userRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		complaintRepo:  complaintRepo,
		noticeRepo:     noticeRepo,
		cfg:            cfg,
		now:            time.Now,
	}
}

func (s *dashboardService) Admin(ctx context.Context) (*AdminDashboard, error) {
	today := clock.AttendanceDate(s.now(), s.cfg.DayBoundaryHour)

	totalEmployees, err := s.userRepo.CountByRole(ctx, model.RoleEmployee)
	if err != nil {
		return nil, err
	}

	todayAttendance, _, err := s.attendanceRepo.List(ctx, repository.AttendanceFilter{Date: today}, 1, 1000)
	if err != nil {
		return nil, err
	}

	present, absent := 0, 0
	for _, rec := range todayAttendance {
		switch rec.Status {
		case model.StatusPresent, model.StatusIn, model.StatusOut, model.StatusLate, model.StatusHalfDay:
			present++
		case model.StatusAbsent:
			absent++
		}
	}

	dash := &AdminDashboard{
		Date:            today,
		TotalEmployees:  totalEmployees,
		PresentToday:    present,
		AbsentToday:     absent,
		TodayAttendance: todayAttendance,
		ComplaintStats:  map[string]int64{},
	}

	if onLeave, err := s.leaveRepo.ListApprovedOn(ctx, today); err == nil {
		dash.EmployeesOnLeave = onLeave
	} else {
		log.Printf("dashboard: leaves on %s unavailable: %v", today, err)
	}
	if pending, err := s.leaveRepo.ListPending(ctx, 5); err == nil {
		dash.PendingLeaves = pending
	} else {
		log.Printf("dashboard: pending leaves unavailable: %v", err)
	}

	for _, status := range []string{model.ComplaintOpen, model.ComplaintInProgress, model.ComplaintResolved} {
		count, err := s.complaintRepo.CountByStatus(ctx, status)
		if err != nil {
			log.Printf("dashboard: complaint count for %s unavailable: %v", status, err)
			continue
		}
		dash.ComplaintStats[status] = count
	}
	if recent, err := s.complaintRepo.ListRecentOpen(ctx, 3); err == nil {
		dash.RecentComplaints = recent
	}

	if notices, err := s.noticeRepo.ListActive(ctx); err == nil {
		dash.Notices = notices
	}

	return dash, nil
}

func (s *dashboardService) Employee(ctx context.Context, userID string) (*EmployeeDashboard, error) {
	month := clock.ToIST(s.now()).Format("2006-01")
	first, last, err := clock.MonthBounds(month)
	if err != nil {
		return nil, err
	}

	counts, err := s.attendanceRepo.CountByStatus(ctx, userID, first, last)
	if err != nil {
		return nil, err
	}

	recent, _, err := s.attendanceRepo.List(ctx, repository.AttendanceFilter{UserID: userID}, 1, 7)
	if err != nil {
		return nil, err
	}

	dash := &EmployeeDashboard{
		Month:      month,
		StatusDays: counts,
		Recent:     recent,
	}
	if notices, err := s.noticeRepo.ListActive(ctx); err == nil {
		dash.Notices = notices
	}
	if leaves, err := s.leaveRepo.List(ctx, userID, ""); err == nil {
		dash.Leaves = leaves
	}
	return dash, nil
}
