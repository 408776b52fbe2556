package repository

import (
	"context"
	"time"

	"github.com/rajkrish0608/WorkProof/internal/models"
	"gorm.io/gorm"
)

// GormPaymentRepository is a GORM implementation of PaymentRepository
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new PaymentRepository
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &GormPaymentRepository{db: db}
}

// Create creates a new payment
func (r *GormPaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

// FindByID finds a payment by ID with its worker
func (r *GormPaymentRepository) FindByID(ctx context.Context, id string) (*models.Payment, error) {
	var payment models.Payment
	if err := r.db.WithContext(ctx).
		Preload("Worker").
		Where("id = ?", id).
		First(&payment).Error; err != nil {
		return nil, err
	}
	return &payment, nil
}

// ListByContractor lists payments of an organization, newest first
func (r *GormPaymentRepository) ListByContractor(ctx context.Context, contractorID string) ([]models.Payment, error) {
	payments := []models.Payment{}
	if err := r.db.WithContext(ctx).
		Preload("Worker").
		Where("contractor_id = ?", contractorID).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// SumSince sums payment amounts created at or after since
func (r *GormPaymentRepository) SumSince(ctx context.Context, contractorID string, since time.Time) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("contractor_id = ? AND created_at >= ?", contractorID, since).
		Scan(&total).Error
	return total, err
}
