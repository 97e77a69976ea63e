package service

import (
	"context"
	"errors"

	"attendance-backend/internal/model"
	"attendance-backend/internal/repository"

	"github.com/google/uuid"
)

type CreateNoticeRequest struct {
	Title    string `json:"title" binding:"required"`
	Body     string `json:"body" binding:"required"`
	Priority int    `json:"priority"`
}

type UpdateNoticeRequest struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Priority *int   `json:"priority"`
	IsActive *bool  `json:"is_active"`
}

// NoticeService defines the interface for business logic related to Notice
type NoticeService interface {
	Create(ctx context.Context, createdBy string, req CreateNoticeRequest) (*model.Notice, error)
	ListActive(ctx context.Context) ([]model.Notice, error)
	Update(ctx context.Context, id string, req UpdateNoticeRequest) (*model.Notice, error)
	Deactivate(ctx context.Context, id string) error
}

type noticeService struct {
	noticeRepo repository.NoticeRepository
}

// NewNoticeService returns a new instance of NoticeService
func NewNoticeService(noticeRepo repository.NoticeRepository) NoticeService {
	return &noticeService{noticeRepo: noticeRepo}
}

func (s *noticeService) Create(ctx context.Context, createdBy string, req CreateNoticeRequest) (*model.Notice, error) {
	creatorID, err := uuid.Parse(createdBy)
	if err != nil {
		return nil, errors.New("invalid creator id")
	}

	notice := &model.Notice{
		Title:       req.Title,
		Body:        req.Body,
		Priority:    req.Priority,
		IsActive:    true,
		CreatedByID: creatorID,
	}
	if err := s.noticeRepo.Create(ctx, notice); err != nil {
		return nil, err
	}
	return notice, nil
}

func (s *noticeService) ListActive(ctx context.Context) ([]model.Notice, error) {
	return s.noticeRepo.ListActive(ctx)
}

func (s *noticeService) Update(ctx context.Context, id string, req UpdateNoticeRequest) (*model.Notice, error) {
	notice, err := s.noticeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("notice not found")
	}

	if req.Title != "" {
		notice.Title = req.Title
	}
	if req.Body != "" {
		notice.Body = req.Body
	}
	if req.Priority != nil {
		notice.Priority = *req.Priority
	}
	if req.IsActive != nil {
		notice.IsActive = *req.IsActive
	}

	if err := s.noticeRepo.Update(ctx, notice); err != nil {
		return nil, err
	}
	return notice, nil
}

func (s *noticeService) Deactivate(ctx context.Context, id string) error {
	if _, err := s.noticeRepo.GetByID(ctx, id); err != nil {
		return errors.New("notice not found")
	}
	return s.noticeRepo.Deactivate(ctx, id)
}
