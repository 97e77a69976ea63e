package database

import (
	"log"

	"attendance-backend/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewConnection initializes a new connection pool using GORM
func NewConnection(dsn string) (*gorm.DB, error) {
	// TranslateError maps driver duplicate-key failures to gorm.ErrDuplicatedKey,
	// which the attendance resolver relies on to treat create races as benign.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	// Auto-migrate core models
	err = db.AutoMigrate(
		&model.User{},
		&model.Counter{},
		&model.Shift{},
		&model.AttendanceRecord{},
		&model.BackfillRun{},
		&model.UIDCard{},
		&model.Leave{},
		&model.Complaint{},
		&model.Notice{},
	)
	if err != nil {
		log.Println("WARNING: Failed to auto-migrate models:", err)
	}

	return db, nil
}
