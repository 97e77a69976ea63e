package repository

import (
	"context"

	"attendance-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AttendanceFilter narrows attendance queries. Zero values are ignored.
type AttendanceFilter struct {
	UserID   string
	Date     string
	FromDate string
	ToDate   string
}

// AttendanceRepository is the date-partitioned attendance ledger: one row per
// (user, calendar day), guarded by a composite unique index.
type AttendanceRepository interface {
	// Create fails with a duplicate-key error when the (user, date) row
	// already exists; callers treat that as a benign conflict.
	Create(ctx context.Context, rec *model.AttendanceRecord) error
	Save(ctx context.Context, rec *model.AttendanceRecord) error
	FindOne(ctx context.Context, userID, date string) (*model.AttendanceRecord, error)
	Latest(ctx context.Context, userID string) (*model.AttendanceRecord, error)
	List(ctx context.Context, filter AttendanceFilter, page, limit int) ([]model.AttendanceRecord, int64, error)
	// ExistingDates returns the ledger dates already present for a user in
	// [fromDate, toDate], letting backfill compute the missing set in one query.
	ExistingDates(ctx context.Context, userID, fromDate, toDate string) ([]string, error)
	// InsertMissing bulk-inserts synthesized rows, silently skipping any that
	// lost a race to an existing (user, date) row.
	InsertMissing(ctx context.Context, recs []model.AttendanceRecord) error
	CountByStatus(ctx context.Context, userID, fromDate, toDate string) (map[string]int64, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository returns a new instance of AttendanceRepository
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(ctx context.Context, rec *model.AttendanceRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *attendanceRepository) Save(ctx context.Context, rec *model.AttendanceRecord) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *attendanceRepository) FindOne(ctx context.Context, userID, date string) (*model.AttendanceRecord, error) {
	var rec model.AttendanceRecord
	if err := r.db.WithContext(ctx).
		First(&rec, "user_id = ? AND date = ?", userID, date).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *attendanceRepository) Latest(ctx context.Context, userID string) (*model.AttendanceRecord, error) {
	var rec model.AttendanceRecord
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *attendanceRepository) List(ctx context.Context, filter AttendanceFilter, page, limit int) ([]model.AttendanceRecord, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.AttendanceRecord{})
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Date != "" {
		query = query.Where("date = ?", filter.Date)
	}
	if filter.FromDate != "" {
		query = query.Where("date >= ?", filter.FromDate)
	}
	if filter.ToDate != "" {
		query = query.Where("date <= ?", filter.ToDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recs []model.AttendanceRecord
	offset := (page - 1) * limit
	if err := query.Preload("User").
		Order("date DESC").
		Offset(offset).Limit(limit).
		Find(&recs).Error; err != nil {
		return nil, 0, err
	}

	return recs, total, nil
}

func (r *attendanceRepository) ExistingDates(ctx context.Context, userID, fromDate, toDate string) ([]string, error) {
	var dates []string
	if err := r.db.WithContext(ctx).Model(&model.AttendanceRecord{}).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, fromDate, toDate).
		Pluck("date", &dates).Error; err != nil {
		return nil, err
	}
	return dates, nil
}

func (r *attendanceRepository) InsertMissing(ctx context.Context, recs []model.AttendanceRecord) error {
	if len(recs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&recs).Error
}

func (r *attendanceRepository) CountByStatus(ctx context.Context, userID, fromDate, toDate string) (map[string]int64, error) {
	type row struct {
		Status string
		Total  int64
	}
	var rows []row
	query := r.db.WithContext(ctx).Model(&model.AttendanceRecord{}).
		Select("status, COUNT(*) AS total").
		Group("status")
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	if fromDate != "" {
		query = query.Where("date >= ?", fromDate)
	}
	if toDate != "" {
		query = query.Where("date <= ?", toDate)
	}
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Total
	}
	return counts, nil
}
