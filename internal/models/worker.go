package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Worker struct {
	ID           string    `gorm:"type:varchar(36);primarykey" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Phone        string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_workers_contractor_phone" json:"phone"`
	WageRate     float64   `gorm:"not null;default:0" json:"wageRate"`
	ContractorID string    `gorm:"type:varchar(36);not null;index;uniqueIndex:idx_workers_contractor_phone" json:"contractorId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (w *Worker) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}
