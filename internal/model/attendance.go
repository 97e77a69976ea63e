package model

import (
	"time"

	"github.com/google/uuid"
)

// Day classification stored on an attendance row.
const (
	StatusPresent = "PRESENT"
	StatusHalfDay = "HALF_DAY"
	StatusLate    = "LATE"
	StatusAbsent  = "ABSENT"
	StatusIn      = "IN"
	StatusOut     = "OUT"
)

// Progress through the two-scan check-in/check-out cycle, distinct from the
// day's overall status.
const (
	ScanNone = "NONE"
	ScanIn   = "IN"
	ScanOut  = "OUT"
)

// AttendanceRecord is one row per (user, calendar date). The composite unique
// index is the correctness backstop for concurrent scans and backfill: a
// duplicate-key error on insert means another request already created the row.
type AttendanceRecord struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_attendance_user_date" json:"user_id"`
	User        *User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user,omitempty"`
	Date        string     `gorm:"type:varchar(10);not null;uniqueIndex:idx_attendance_user_date;index" json:"date"` // YYYY-MM-DD (IST)
	CheckIn     string     `gorm:"type:varchar(10)" json:"check_in,omitempty"`  // hh:mm AM/PM (IST)
	CheckOut    string     `gorm:"type:varchar(10)" json:"check_out,omitempty"` // hh:mm AM/PM (IST)
	WorkMinutes int        `gorm:"not null;default:0" json:"work_minutes"`
	Status      string     `gorm:"type:varchar(10);not null;default:'ABSENT'" json:"status"`
	ScanStatus  string     `gorm:"type:varchar(5);not null;default:'NONE'" json:"scan_status"`
	Late        bool       `gorm:"not null;default:false" json:"late"`
	LastScanAt  *time.Time `json:"last_scan_at,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// BackfillRun is the persisted once-per-day gate for the eager absent-marking
// job, replacing an in-process "last checked date" variable so multiple
// instances do not redundantly run it.
type BackfillRun struct {
	Name      string    `gorm:"type:varchar(50);primaryKey"` // job name, e.g. "mark-absent"
	LastRun   string    `gorm:"type:varchar(10);not null"`   // YYYY-MM-DD (IST)
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
