package model

import (
	"time"

	"github.com/google/uuid"
)

// UIDCard is a pre-provisioned physical card in the inventory. Cards are
// consulted at registration time to prevent issuing the same card twice; the
// scan path never touches this table.
type UIDCard struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UID          string     `gorm:"column:uid;type:varchar(64);uniqueIndex;not null" json:"uid"`
	IsUsed       bool       `gorm:"not null;default:false;index" json:"is_used"`
	AssignedToID *uuid.UUID `gorm:"type:uuid" json:"assigned_to_id,omitempty"`
	AssignedTo   *User      `gorm:"foreignKey:AssignedToID" json:"assigned_to,omitempty"`
	AddedBy      string     `gorm:"type:varchar(100);default:'Admin'" json:"added_by"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
