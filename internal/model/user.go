package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin    = "Admin"
	RoleEmployee = "Employee"
)

// User represents an employee or admin identified by a physical RFID card UID
type User struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	EmployeeID     string         `gorm:"type:varchar(20);uniqueIndex" json:"employee_id"`
	Name           string         `gorm:"type:varchar(255);not null" json:"name"`
	Email          string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password       string         `gorm:"type:varchar(255);not null" json:"-"` // Omit password from JSON requests/responses
	Address        string         `gorm:"type:varchar(255)" json:"address"`
	UID            string         `gorm:"column:uid;type:varchar(64);uniqueIndex;not null" json:"uid"`
	Role           string         `gorm:"type:varchar(20);not null;default:'Employee'" json:"role"` // Admin, Employee
	ProfileImage   string         `gorm:"type:varchar(512)" json:"profile_image,omitempty"`
	IsActive       bool           `gorm:"not null;default:true" json:"is_active"`
	CurrentShiftID *uuid.UUID     `gorm:"type:uuid;index" json:"current_shift_id,omitempty"`
	CurrentShift   *Shift         `gorm:"foreignKey:CurrentShiftID" json:"current_shift,omitempty"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"` // GORM soft delete
}

// Counter backs the sequential employee ID generator (MMS_001, MMS_002, ...)
type Counter struct {
	Name  string `gorm:"type:varchar(50);primaryKey"`
	Value int64  `gorm:"not null;default:0"`
}
