package service

import (
	"context"
	"errors"

	"attendance-backend/internal/model"
	"attendance-backend/internal/repository"
	"attendance-backend/pkg/clock"

	"github.com/shopspring/decimal"
)

// Day-status payout multipliers. LATE still pays a full day; the late flag is
// informational.
var salaryMultipliers = map[string]decimal.Decimal{
	model.StatusPresent: decimal.NewFromInt(1),
	model.StatusLate:    decimal.NewFromInt(1),
	model.StatusHalfDay: decimal.NewFromFloat(0.5),
	model.StatusAbsent:  decimal.Zero,
}

type SalaryEstimate struct {
	UserID      string            `json:"user_id"`
	Month       string            `json:"month"`
	DailyRate   decimal.Decimal   `json:"daily_rate"`
	StatusDays  map[string]int64  `json:"status_days"`
	PayableDays decimal.Decimal   `json:"payable_days"`
	Amount      decimal.Decimal   `json:"amount"`
}

// SalaryService estimates a month's payout from the attendance ledger
type SalaryService interface {
	Estimate(ctx context.Context, userID, month string, dailyRate decimal.Decimal) (*SalaryEstimate, error)
}

type salaryService struct {
	attendanceRepo repository.AttendanceRepository
	userRepo       repository.UserRepository
}

// NewSalaryService returns a new instance of SalaryService
func NewSalaryService(attendanceRepo repository.AttendanceRepository, userRepo repository.UserRepository) SalaryService {
	return &salaryService{attendanceRepo: attendanceRepo, userRepo: userRepo}
}

func (s *salaryService) Estimate(ctx context.Context, userID, month string, dailyRate decimal.Decimal) (*SalaryEstimate, error) {
	if dailyRate.IsNegative() {
		return nil, errors.New("dailyRate must not be negative")
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, errors.New("user not found")
	}

	first, last, err := clock.MonthBounds(month)
	if err != nil {
		return nil, errors.New("invalid month, expected YYYY-MM")
	}

	counts, err := s.attendanceRepo.CountByStatus(ctx, userID, first, last)
	if err != nil {
		return nil, err
	}

	payable := decimal.Zero
	for status, days := range counts {
		mult, ok := salaryMultipliers[status]
		if !ok {
			continue // IN/OUT days are still in progress
		}
		payable = payable.Add(mult.Mul(decimal.NewFromInt(days)))
	}

	return &SalaryEstimate{
		UserID:      userID,
		Month:       month,
		DailyRate:   dailyRate,
		StatusDays:  counts,
		PayableDays: payable,
		Amount:      payable.Mul(dailyRate).Round(2),
	}, nil
}
