package repository

import (
	"context"

	"attendance-backend/internal/model"

	"gorm.io/gorm"
)

// NoticeRepository defines the interface for data access of Notice entities
type NoticeRepository interface {
	Create(ctx context.Context, notice *model.Notice) error
	GetByID(ctx context.Context, id string) (*model.Notice, error)
	ListActive(ctx context.Context) ([]model.Notice, error)
	Update(ctx context.Context, notice *model.Notice) error
	Deactivate(ctx context.Context, id string) error
}

type noticeRepository struct {
	db *gorm.DB
}

// NewNoticeRepository returns a new instance of NoticeRepository
func NewNoticeRepository(db *gorm.DB) NoticeRepository {
	return &noticeRepository{db: db}
}

func (r *noticeRepository) Create(ctx context.Context, notice *model.Notice) error {
	return r.db.WithContext(ctx).Create(notice).Error
}

func (r *noticeRepository) GetByID(ctx context.Context, id string) (*model.Notice, error) {
	var notice model.Notice
	if err := r.db.WithContext(ctx).Preload("CreatedBy").First(&notice, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &notice, nil
}

func (r *noticeRepository) ListActive(ctx context.Context) ([]model.Notice, error) {
	var notices []model.Notice
	if err := r.db.WithContext(ctx).Preload("CreatedBy").
		Where("is_active = ?", true).
		Order("priority DESC, created_at DESC").
		Find(&notices).Error; err != nil {
		return nil, err
	}
	return notices, nil
}

func (r *noticeRepository) Update(ctx context.Context, notice *model.Notice) error {
	return r.db.WithContext(ctx).Save(notice).Error
}

func (r *noticeRepository) Deactivate(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&model.Notice{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}
