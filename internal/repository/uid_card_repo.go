package repository

import (
	"context"

	"attendance-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UIDCardRepository tracks the physical card inventory. Consulted only at
// registration time; the scan path resolves users directly.
type UIDCardRepository interface {
	Create(ctx context.Context, card *model.UIDCard) error
	GetByUID(ctx context.Context, uid string) (*model.UIDCard, error)
	List(ctx context.Context, onlyAvailable bool) ([]model.UIDCard, error)
	MarkIssued(ctx context.Context, uid string, userID uuid.UUID) error
	Release(ctx context.Context, userID uuid.UUID) error
}

type uidCardRepository struct {
	db *gorm.DB
}

// NewUIDCardRepository returns a new instance of UIDCardRepository
func NewUIDCardRepository(db *gorm.DB) UIDCardRepository {
	return &uidCardRepository{db: db}
}

func (r *uidCardRepository) Create(ctx context.Context, card *model.UIDCard) error {
	return r.db.WithContext(ctx).Create(card).Error
}

func (r *uidCardRepository) GetByUID(ctx context.Context, uid string) (*model.UIDCard, error) {
	var card model.UIDCard
	if err := r.db.WithContext(ctx).First(&card, "uid = ?", uid).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *uidCardRepository) List(ctx context.Context, onlyAvailable bool) ([]model.UIDCard, error) {
	query := r.db.WithContext(ctx).Preload("AssignedTo")
	if onlyAvailable {
		query = query.Where("is_used = ?", false)
	}

	var cards []model.UIDCard
	if err := query.Order("created_at DESC").Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *uidCardRepository) MarkIssued(ctx context.Context, uid string, userID uuid.UUID) error {
	return GetDB(ctx, r.db).Model(&model.UIDCard{}).
		Where("uid = ?", uid).
		Updates(map[string]interface{}{"is_used": true, "assigned_to_id": userID}).Error
}

func (r *uidCardRepository) Release(ctx context.Context, userID uuid.UUID) error {
	return GetDB(ctx, r.db).Model(&model.UIDCard{}).
		Where("assigned_to_id = ?", userID).
		Updates(map[string]interface{}{"is_used": false, "assigned_to_id": nil}).Error
}
