package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ComplaintOpen       = "OPEN"
	ComplaintInProgress = "IN_PROGRESS"
	ComplaintResolved   = "RESOLVED"
)

// Complaint is an employee-raised issue tracked through resolution
type Complaint struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User          *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Subject       string    `gorm:"type:varchar(255);not null" json:"subject"`
	Description   string    `gorm:"type:text;not null" json:"description"`
	Status        string    `gorm:"type:varchar(15);not null;default:'OPEN';index" json:"status"`
	AdminResponse string    `gorm:"type:text" json:"admin_response,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
