package repository

import (
	"context"

	"github.com/rajkrish0608/WorkProof/internal/models"
	"gorm.io/gorm"
)

// GormWorkerRepository is a GORM implementation of WorkerRepository
type GormWorkerRepository struct {
	db *gorm.DB
}

// NewWorkerRepository creates a new WorkerRepository
func NewWorkerRepository(db *gorm.DB) WorkerRepository {
	return &GormWorkerRepository{db: db}
}

// Create creates a new worker
func (r *GormWorkerRepository) Create(ctx context.Context, worker *models.Worker) error {
	return r.db.WithContext(ctx).Create(worker).Error
}

// FindByID finds a worker by ID
func (r *GormWorkerRepository) FindByID(ctx context.Context, id string) (*models.Worker, error) {
	var worker models.Worker
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&worker).Error; err != nil {
		return nil, err
	}
	return &worker, nil
}

// FindByPhone finds a worker of an organization by phone
func (r *GormWorkerRepository) FindByPhone(ctx context.Context, contractorID, phone string) (*models.Worker, error) {
	var worker models.Worker
	if err := r.db.WithContext(ctx).
		Where("contractor_id = ? AND phone = ?", contractorID, phone).
		First(&worker).Error; err != nil {
		return nil, err
	}
	return &worker, nil
}

// ListByContractor lists workers of an organization by name
func (r *GormWorkerRepository) ListByContractor(ctx context.Context, contractorID string) ([]models.Worker, error) {
	workers := []models.Worker{}
	if err := r.db.WithContext(ctx).
		Where("contractor_id = ?", contractorID).
		Order("name ASC").
		Find(&workers).Error; err != nil {
		return nil, err
	}
	return workers, nil
}

// CountByContractor counts workers of an organization
func (r *GormWorkerRepository) CountByContractor(ctx context.Context, contractorID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Worker{}).
		Where("contractor_id = ?", contractorID).
		Count(&count).Error
	return count, err
}

// CountOwned counts how many of ids belong to the organization
func (r *GormWorkerRepository) CountOwned(ctx context.Context, contractorID string, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Worker{}).
		Where("contractor_id = ? AND id IN ?", contractorID, ids).
		Count(&count).Error
	return count, err
}

// Update saves a worker
func (r *GormWorkerRepository) Update(ctx context.Context, worker *models.Worker) error {
	return r.db.WithContext(ctx).Save(worker).Error
}

// Delete removes the worker and its attendance in a transaction. Payments are kept.
func (r *GormWorkerRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("worker_id = ?", id).Delete(&models.AttendanceRecord{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Worker{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
