package entity

import "time"

type Appointment struct {
	ID                   int       `gorm:"primaryKey;autoIncrement"`
	Name                 string    `gorm:"size:255;not null"`
	IdentificationNumber string    `gorm:"size:50;not null"`
	Phone                string    `gorm:"size:20;not null"`
	Date                 time.Time `gorm:"not null"`
}

func (Appointment) TableName() string {
	return "appointments"
}
