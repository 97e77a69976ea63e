package model

import (
	"time"

	"github.com/google/uuid"
)

// Notice is an admin-published announcement shown on dashboards
type Notice struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Body        string    `gorm:"type:text;not null" json:"body"`
	Priority    int       `gorm:"not null;default:0" json:"priority"` // higher sorts first
	IsActive    bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedByID uuid.UUID `gorm:"type:uuid;not null" json:"created_by_id"`
	CreatedBy   *User     `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
