package database

import (
	"errors"
	"fmt"
	"time"

	"appointment-scheduler/cmd/internal/domain/entity"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

// Migration is one versioned schema change. Versions are applied in the
// order they appear in Migrations and are recorded in schema_migrations.
type Migration struct {
	Version string
	Up      func(tx *gorm.DB) error
}

// appointmentV1 freezes the shape of the appointments table as created by
// the first migration, so later changes to entity.Appointment don't rewrite
// history.
type appointmentV1 struct {
	ID                   int       `gorm:"primaryKey;autoIncrement"`
	Name                 string    `gorm:"size:255;not null"`
	IdentificationNumber string    `gorm:"size:50;not null"`
	Phone                string    `gorm:"size:20;not null"`
	Date                 time.Time `gorm:"not null"`
}

func (appointmentV1) TableName() string {
	return "appointments"
}

var Migrations = []Migration{
	{
		Version: "0001_create_appointments",
		Up: func(tx *gorm.DB) error {
			if tx.Migrator().HasTable(&appointmentV1{}) {
				return nil
			}
			return tx.Migrator().CreateTable(&appointmentV1{})
		},
	},
}

// Migrate brings the schema up to date by applying every migration that is
// not yet recorded. Each migration runs in its own transaction.
func Migrate(db *gorm.DB, migrations []Migration) error {
	if err := db.AutoMigrate(&entity.SchemaMigration{}); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	for _, m := range migrations {
		applied, err := isApplied(db, m.Version)
		if err != nil {
			return err
		}
		if applied {
			log.Debugf("migration %s already applied", m.Version)
			continue
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := m.Up(tx); err != nil {
				return err
			}
			return tx.Create(&entity.SchemaMigration{
				Version:   m.Version,
				AppliedAt: time.Now().UTC(),
			}).Error
		})
		if err != nil {
			return fmt.Errorf("apply migration %s: %w", m.Version, err)
		}
		log.Infof("applied migration %s", m.Version)
	}
	return nil
}

func isApplied(db *gorm.DB, version string) (bool, error) {
	var rec entity.SchemaMigration
	err := db.Where("version = ?", version).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check migration %s: %w", version, err)
	}
	return true, nil
}
