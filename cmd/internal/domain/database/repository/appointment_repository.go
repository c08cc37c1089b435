package repository

import (
	"context"
	"fmt"

	"appointment-scheduler/cmd/internal/domain/entity"
	"gorm.io/gorm"
)

type DefaultAppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *DefaultAppointmentRepository {
	return &DefaultAppointmentRepository{db: db}
}

// Create inserts the appointment inside a transaction and fills in the
// generated ID. Nothing is committed if the insert fails.
func (a *DefaultAppointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	err := a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(appointment).Error
	})
	if err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}
