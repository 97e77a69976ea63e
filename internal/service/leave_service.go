package service

import (
	"context"
	"errors"

	"attendance-backend/internal/model"
	"attendance-backend/internal/repository"
	"attendance-backend/pkg/clock"
)

type SubmitLeaveRequest struct {
	UserID    string `json:"userId" binding:"required"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
}

type UpdateLeaveStatusRequest struct {
	Status        string `json:"status" binding:"required,oneof=APPROVED REJECTED PENDING"`
	AdminResponse string `json:"adminResponse"`
}

// LeaveService defines the interface for business logic related to Leave
type LeaveService interface {
	Submit(ctx context.Context, req SubmitLeaveRequest) (*model.Leave, error)
	List(ctx context.Context, userID, status string) ([]model.Leave, error)
	UpdateStatus(ctx context.Context, id string, req UpdateLeaveStatusRequest) (*model.Leave, error)
}

type leaveService struct {
	leaveRepo repository.LeaveRepository
	userRepo  repository.UserRepository
}

// NewLeaveService returns a new instance of LeaveService
func NewLeaveService(leaveRepo repository.LeaveRepository, userRepo repository.UserRepository) LeaveService {
	return &leaveService{leaveRepo: leaveRepo, userRepo: userRepo}
}

func (s *leaveService) Submit(ctx context.Context, req SubmitLeaveRequest) (*model.Leave, error) {
	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, errors.New("user not found")
	}

	start, err := clock.ParseDate(req.StartDate)
	if err != nil {
		return nil, errors.New("invalid startDate, expected YYYY-MM-DD")
	}
	end, err := clock.ParseDate(req.EndDate)
	if err != nil {
		return nil, errors.New("invalid endDate, expected YYYY-MM-DD")
	}
	if end.Before(start) {
		return nil, errors.New("endDate before startDate")
	}

	leave := &model.Leave{
		UserID:    user.ID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
		Status:    model.LeavePending,
	}
	if err := s.leaveRepo.Create(ctx, leave); err != nil {
		return nil, err
	}
	return leave, nil
}

func (s *leaveService) List(ctx context.Context, userID, status string) ([]model.Leave, error) {
	return s.leaveRepo.List(ctx, userID, status)
}

func (s *leaveService) UpdateStatus(ctx context.Context, id string, req UpdateLeaveStatusRequest) (*model.Leave, error) {
	leave, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("leave application not found")
	}

	leave.Status = req.Status
	leave.AdminResponse = req.AdminResponse
	if err := s.leaveRepo.Update(ctx, leave); err != nil {
		return nil, err
	}
	return leave, nil
}
