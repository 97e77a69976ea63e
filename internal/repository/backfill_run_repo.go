package repository

import (
	"context"

	"attendance-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BackfillRunRepository persists the once-per-day gate of the eager absent
// marking job so multiple process instances share a single run record.
type BackfillRunRepository interface {
	LastRun(ctx context.Context, name string) (string, error)
	MarkRun(ctx context.Context, name, date string) error
}

type backfillRunRepository struct {
	db *gorm.DB
}

func NewBackfillRunRepository(db *gorm.DB) BackfillRunRepository {
	return &backfillRunRepository{db: db}
}

func (r *backfillRunRepository) LastRun(ctx context.Context, name string) (string, error) {
	var run model.BackfillRun
	if err := r.db.WithContext(ctx).First(&run, "name = ?", name).Error; err != nil {
		if IsNotFound(err) {
			return "", nil
		}
		return "", err
	}
	return run.LastRun, nil
}

func (r *backfillRunRepository) MarkRun(ctx context.Context, name, date string) error {
	run := model.BackfillRun{Name: name, LastRun: date}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"last_run", "updated_at"}),
		}).
		Create(&run).Error
}
