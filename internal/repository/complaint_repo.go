package repository

import (
	"context"

	"attendance-backend/internal/model"

	"gorm.io/gorm"
)

// ComplaintRepository defines the interface for data access of Complaint entities
type ComplaintRepository interface {
	Create(ctx context.Context, complaint *model.Complaint) error
	GetByID(ctx context.Context, id string) (*model.Complaint, error)
	List(ctx context.Context, userID, status string) ([]model.Complaint, error)
	ListRecentOpen(ctx context.Context, limit int) ([]model.Complaint, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	Update(ctx context.Context, complaint *model.Complaint) error
}

type complaintRepository struct {
	db *gorm.DB
}

// NewComplaintRepository returns a new instance of ComplaintRepository
func NewComplaintRepository(db *gorm.DB) ComplaintRepository {
	return &complaintRepository{db: db}
}

func (r *complaintRepository) Create(ctx context.Context, complaint *model.Complaint) error {
	return r.db.WithContext(ctx).Create(complaint).Error
}

func (r *complaintRepository) GetByID(ctx context.Context, id string) (*model.Complaint, error) {
	var complaint model.Complaint
	if err := r.db.WithContext(ctx).Preload("User").First(&complaint, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &complaint, nil
}

func (r *complaintRepository) List(ctx context.Context, userID, status string) ([]model.Complaint, error) {
	query := r.db.WithContext(ctx).Preload("User")
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var complaints []model.Complaint
	if err := query.Order("created_at DESC").Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}

func (r *complaintRepository) ListRecentOpen(ctx context.Context, limit int) ([]model.Complaint, error) {
	var complaints []model.Complaint
	if err := r.db.WithContext(ctx).Preload("User").
		Where("status = ?", model.ComplaintOpen).
		Order("created_at DESC").
		Limit(limit).
		Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}

func (r *complaintRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Complaint{}).
		Where("status = ?", status).
		Count(&total).Error
	return total, err
}

func (r *complaintRepository) Update(ctx context.Context, complaint *model.Complaint) error {
	return r.db.WithContext(ctx).Save(complaint).Error
}
