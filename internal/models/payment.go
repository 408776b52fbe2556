package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "COMPLETED"
)

// Payment is an immutable cash payout to a worker.
type Payment struct {
	ID           string        `gorm:"type:varchar(36);primarykey"`
	Amount       float64       `gorm:"not null"`
	Notes        *string       `gorm:"type:text"`
	WorkerID     string        `gorm:"type:varchar(36);not null;index"`
	ContractorID string        `gorm:"type:varchar(36);not null;index"`
	Status       PaymentStatus `gorm:"type:varchar(20);not null;default:'COMPLETED'"`
	CreatedAt    time.Time     `gorm:"index"`

	// Relations
	Worker *Worker `gorm:"foreignKey:WorkerID"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
