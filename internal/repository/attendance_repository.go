package repository

import (
	"context"

	"github.com/rajkrish0608/WorkProof/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAttendanceRepository is a GORM implementation of AttendanceRepository
type GormAttendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &GormAttendanceRepository{db: db}
}

// ListByDate lists attendance for one date with workers preloaded
func (r *GormAttendanceRepository) ListByDate(ctx context.Context, contractorID string, date datatypes.Date) ([]models.AttendanceRecord, error) {
	records := []models.AttendanceRecord{}
	if err := r.db.WithContext(ctx).
		Preload("Worker").
		Where("contractor_id = ? AND date = ?", contractorID, date).
		Order("created_at ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// UpsertBatch applies every record or none of them.
func (r *GormAttendanceRepository) UpsertBatch(ctx context.Context, records []models.AttendanceRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range records {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "worker_id"}, {Name: "date"}},
				DoUpdates: clause.AssignmentColumns([]string{"status", "hours_worked", "updated_at"}),
			}).Create(&records[i]).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

// CountActive counts PRESENT and HALF_DAY records on a date
func (r *GormAttendanceRepository) CountActive(ctx context.Context, contractorID string, date datatypes.Date) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.AttendanceRecord{}).
		Where("contractor_id = ? AND date = ?", contractorID, date).
		Where("status IN ?", []string{string(models.AttendancePresent), string(models.AttendanceHalfDay)}).
		Count(&count).Error
	return count, err
}
