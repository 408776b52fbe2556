package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "PRESENT"
	AttendanceAbsent  AttendanceStatus = "ABSENT"
	AttendanceHalfDay AttendanceStatus = "HALF_DAY"
)

// Counts reports whether the status counts as having worked that day.
func (s AttendanceStatus) Counts() bool {
	return s == AttendancePresent || s == AttendanceHalfDay
}

// AttendanceRecord holds at most one entry per worker per calendar date.
type AttendanceRecord struct {
	ID           string           `gorm:"type:varchar(36);primarykey"`
	WorkerID     string           `gorm:"type:varchar(36);not null;uniqueIndex:idx_attendance_worker_date"`
	Date         datatypes.Date   `gorm:"not null;uniqueIndex:idx_attendance_worker_date;index"`
	Status       AttendanceStatus `gorm:"type:varchar(20);not null"`
	HoursWorked  *float64
	ContractorID string           `gorm:"type:varchar(36);not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Relations
	Worker *Worker `gorm:"foreignKey:WorkerID"`
}

func (a *AttendanceRecord) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
