package service

import (
	"context"
	"errors"

	"attendance-backend/internal/model"
	"attendance-backend/internal/repository"
	"attendance-backend/pkg/clock"

	"github.com/google/uuid"
)

type CreateShiftRequest struct {
	UserID       string `json:"userId" binding:"required"`
	ShiftName    string `json:"shiftName" binding:"required"`
	StartTime    string `json:"startTime" binding:"required"`
	EndTime      string `json:"endTime" binding:"required"`
	GraceMinutes int    `json:"graceMinutes"`
	MinimumHours int    `json:"minimumHours"`
}

type AssignShiftRequest struct {
	UserID  string `json:"userId" binding:"required"`
	ShiftID string `json:"shiftId" binding:"required"`
}

// ShiftService defines the interface for business logic related to Shift
type ShiftService interface {
	Create(ctx context.Context, req CreateShiftRequest) (*model.Shift, error)
	Assign(ctx context.Context, req AssignShiftRequest) error
	ListActive(ctx context.Context) ([]model.Shift, error)
	ListByUser(ctx context.Context, userID string) ([]model.Shift, error)
	Deactivate(ctx context.Context, id string) error
}

type shiftService struct {
	shiftRepo repository.ShiftRepository
	userRepo  repository.UserRepository
}

// NewShiftService returns a new instance of ShiftService
func NewShiftService(shiftRepo repository.ShiftRepository, userRepo repository.UserRepository) ShiftService {
	return &shiftService{shiftRepo: shiftRepo, userRepo: userRepo}
}

func (s *shiftService) Create(ctx context.Context, req CreateShiftRequest) (*model.Shift, error) {
	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, errors.New("user not found")
	}

	// Window bounds must parse as wall-clock times up front.
	if _, err := clock.ClockMinutes(req.StartTime); err != nil {
		return nil, errors.New("invalid startTime, expected hh:mm AM/PM")
	}
	if _, err := clock.ClockMinutes(req.EndTime); err != nil {
		return nil, errors.New("invalid endTime, expected hh:mm AM/PM")
	}

	grace := req.GraceMinutes
	if grace <= 0 {
		grace = clock.DefaultGraceMinutes
	}
	minimum := req.MinimumHours
	if minimum <= 0 {
		minimum = clock.DefaultMinimumHours
	}

	shift := &model.Shift{
		UserID:       user.ID,
		ShiftName:    req.ShiftName,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		GraceMinutes: grace,
		MinimumHours: minimum,
		IsActive:     true,
	}
	if err := s.shiftRepo.Create(ctx, shift); err != nil {
		return nil, err
	}
	return shift, nil
}

func (s *shiftService) Assign(ctx context.Context, req AssignShiftRequest) error {
	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return errors.New("user not found")
	}

	shift, err := s.shiftRepo.GetByID(ctx, req.ShiftID)
	if err != nil {
		return errors.New("shift not found")
	}

	shiftID := shift.ID
	user.CurrentShiftID = &shiftID
	user.CurrentShift = nil
	return s.userRepo.Update(ctx, user)
}

func (s *shiftService) ListActive(ctx context.Context) ([]model.Shift, error) {
	return s.shiftRepo.ListActive(ctx)
}

func (s *shiftService) ListByUser(ctx context.Context, userID string) ([]model.Shift, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, errors.New("invalid user id")
	}
	return s.shiftRepo.ListByUser(ctx, userID)
}

func (s *shiftService) Deactivate(ctx context.Context, id string) error {
	if _, err := s.shiftRepo.GetByID(ctx, id); err != nil {
		return errors.New("shift not found")
	}
	return s.shiftRepo.Deactivate(ctx, id)
}
