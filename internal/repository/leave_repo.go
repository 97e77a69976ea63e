package repository

import (
	"context"

	"attendance-backend/internal/model"

	"gorm.io/gorm"
)

// LeaveRepository defines the interface for data access of Leave entities
type LeaveRepository interface {
	Create(ctx context.Context, leave *model.Leave) error
	GetByID(ctx context.Context, id string) (*model.Leave, error)
	List(ctx context.Context, userID, status string) ([]model.Leave, error)
	// ListApprovedOn returns approved leaves covering the given ledger date.
	ListApprovedOn(ctx context.Context, date string) ([]model.Leave, error)
	ListPending(ctx context.Context, limit int) ([]model.Leave, error)
	Update(ctx context.Context, leave *model.Leave) error
}

type leaveRepository struct {
	db *gorm.DB
}

// NewLeaveRepository returns a new instance of LeaveRepository
func NewLeaveRepository(db *gorm.DB) LeaveRepository {
	return &leaveRepository{db: db}
}

func (r *leaveRepository) Create(ctx context.Context, leave *model.Leave) error {
	return r.db.WithContext(ctx).Create(leave).Error
}

func (r *leaveRepository) GetByID(ctx context.Context, id string) (*model.Leave, error) {
	var leave model.Leave
	if err := r.db.WithContext(ctx).Preload("User").First(&leave, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &leave, nil
}

func (r *leaveRepository) List(ctx context.Context, userID, status string) ([]model.Leave, error) {
	query := r.db.WithContext(ctx).Preload("User")
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var leaves []model.Leave
	if err := query.Order("created_at DESC").Find(&leaves).Error; err != nil {
		return nil, err
	}
	return leaves, nil
}

func (r *leaveRepository) ListApprovedOn(ctx context.Context, date string) ([]model.Leave, error) {
	var leaves []model.Leave
	if err := r.db.WithContext(ctx).Preload("User").
		Where("status = ? AND start_date <= ? AND end_date >= ?", model.LeaveApproved, date, date).
		Find(&leaves).Error; err != nil {
		return nil, err
	}
	return leaves, nil
}

func (r *leaveRepository) ListPending(ctx context.Context, limit int) ([]model.Leave, error) {
	var leaves []model.Leave
	if err := r.db.WithContext(ctx).Preload("User").
		Where("status = ?", model.LeavePending).
		Order("created_at DESC").
		Limit(limit).
		Find(&leaves).Error; err != nil {
		return nil, err
	}
	return leaves, nil
}

func (r *leaveRepository) Update(ctx context.Context, leave *model.Leave) error {
	return r.db.WithContext(ctx).Save(leave).Error
}
