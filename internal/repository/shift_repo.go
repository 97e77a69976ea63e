package repository

import (
	"context"

	"attendance-backend/internal/model"

	"gorm.io/gorm"
)

// ShiftRepository defines the interface for data access of Shift entities
type ShiftRepository interface {
	Create(ctx context.Context, shift *model.Shift) error
	GetByID(ctx context.Context, id string) (*model.Shift, error)
	ListActive(ctx context.Context) ([]model.Shift, error)
	ListByUser(ctx context.Context, userID string) ([]model.Shift, error)
	Update(ctx context.Context, shift *model.Shift) error
	Deactivate(ctx context.Context, id string) error
}

type shiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository returns a new instance of ShiftRepository
func NewShiftRepository(db *gorm.DB) ShiftRepository {
	return &shiftRepository{db: db}
}

func (r *shiftRepository) Create(ctx context.Context, shift *model.Shift) error {
	return r.db.WithContext(ctx).Create(shift).Error
}

func (r *shiftRepository) GetByID(ctx context.Context, id string) (*model.Shift, error) {
	var shift model.Shift
	if err := r.db.WithContext(ctx).First(&shift, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &shift, nil
}

func (r *shiftRepository) ListActive(ctx context.Context) ([]model.Shift, error) {
	var shifts []model.Shift
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&shifts).Error; err != nil {
		return nil, err
	}
	return shifts, nil
}

func (r *shiftRepository) ListByUser(ctx context.Context, userID string) ([]model.Shift, error) {
	var shifts []model.Shift
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		Find(&shifts).Error; err != nil {
		return nil, err
	}
	return shifts, nil
}

func (r *shiftRepository) Update(ctx context.Context, shift *model.Shift) error {
	return r.db.WithContext(ctx).Save(shift).Error
}

func (r *shiftRepository) Deactivate(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&model.Shift{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}
