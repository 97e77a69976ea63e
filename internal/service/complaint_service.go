package service

import (
	"context"
	"errors"

	"attendance-backend/internal/model"
	"attendance-backend/internal/repository"
)

type SubmitComplaintRequest struct {
	UserID      string `json:"userId" binding:"required"`
	Subject     string `json:"subject" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type UpdateComplaintStatusRequest struct {
	Status        string `json:"status" binding:"required,oneof=OPEN IN_PROGRESS RESOLVED"`
	AdminResponse string `json:"adminResponse"`
}

// ComplaintService defines the interface for business logic related to Complaint
type ComplaintService interface {
	Submit(ctx context.Context, req SubmitComplaintRequest) (*model.Complaint, error)
	List(ctx context.Context, userID, status string) ([]model.Complaint, error)
	UpdateStatus(ctx context.Context, id string, req UpdateComplaintStatusRequest) (*model.Complaint, error)
}

type complaintService struct {
	complaintRepo repository.ComplaintRepository
	userRepo      repository.UserRepository
}

// NewComplaintService returns a new instance of ComplaintService
func NewComplaintService(complaintRepo repository.ComplaintRepository, userRepo repository.UserRepository) ComplaintService {
	return &complaintService{complaintRepo: complaintRepo, userRepo: userRepo}
}

func (s *complaintService) Submit(ctx context.Context, req SubmitComplaintRequest) (*model.Complaint, error) {
	user, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, errors.New("user not found")
	}

	complaint := &model.Complaint{
		UserID:      user.ID,
		Subject:     req.Subject,
		Description: req.Description,
		Status:      model.ComplaintOpen,
	}
	if err := s.complaintRepo.Create(ctx, complaint); err != nil {
		return nil, err
	}
	return complaint, nil
}

func (s *complaintService) List(ctx context.Context, userID, status string) ([]model.Complaint, error) {
	return s.complaintRepo.List(ctx, userID, status)
}

func (s *complaintService) UpdateStatus(ctx context.Context, id string, req UpdateComplaintStatusRequest) (*model.Complaint, error) {
	complaint, err := s.complaintRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("complaint not found")
	}

	complaint.Status = req.Status
	complaint.AdminResponse = req.AdminResponse
	if err := s.complaintRepo.Update(ctx, complaint); err != nil {
		return nil, err
	}
	return complaint, nil
}
