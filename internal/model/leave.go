package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	LeavePending  = "PENDING"
	LeaveApproved = "APPROVED"
	LeaveRejected = "REJECTED"
)

// Leave is an employee leave application reviewed by an admin
type Leave struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User          *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	StartDate     string    `gorm:"type:varchar(10);not null" json:"start_date"` // YYYY-MM-DD
	EndDate       string    `gorm:"type:varchar(10);not null" json:"end_date"`   // YYYY-MM-DD
	Reason        string    `gorm:"type:text;not null" json:"reason"`
	Status        string    `gorm:"type:varchar(10);not null;default:'PENDING';index" json:"status"`
	AdminResponse string    `gorm:"type:text" json:"admin_response,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
