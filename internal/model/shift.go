package model

import (
	"time"

	"github.com/google/uuid"
)

// Shift is a named work window used by the attendance resolver for late and
// half-day thresholds. Times are "hh:mm AM/PM" wall-clock strings in IST.
type Shift struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	ShiftName    string    `gorm:"type:varchar(100);not null" json:"shift_name"`
	StartTime    string    `gorm:"type:varchar(10);not null" json:"start_time"`
	EndTime      string    `gorm:"type:varchar(10);not null" json:"end_time"`
	GraceMinutes int       `gorm:"not null;default:15" json:"grace_minutes"`
	MinimumHours int       `gorm:"not null;default:4" json:"minimum_hours"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
