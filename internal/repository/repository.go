package repository

import (
	"context"
	"time"

	"github.com/rajkrish0608/WorkProof/internal/models"
	"gorm.io/datatypes"
)

// AccountRepository defines the interface for account data access
type AccountRepository interface {
	// Create creates a new account
	Create(ctx context.Context, account *models.Account) error

	// FindByID finds an account by ID
	FindByID(ctx context.Context, id string) (*models.Account, error)

	// FindByEmail finds an account by email
	FindByEmail(ctx context.Context, email string) (*models.Account, error)

	// EmailTaken reports whether another account (not excludeID) uses the email
	EmailTaken(ctx context.Context, email, excludeID string) (bool, error)

	// ListByManager lists the staff accounts managed by an owner, newest first
	ListByManager(ctx context.Context, managerID string) ([]models.Account, error)

	// Update saves an account
	Update(ctx context.Context, account *models.Account) error

	// Delete hard deletes an account
	Delete(ctx context.Context, id string) error
}

// WorkerRepository defines the interface for worker data access
type WorkerRepository interface {
	// Create creates a new worker
	Create(ctx context.Context, worker *models.Worker) error

	// FindByID finds a worker by ID
	FindByID(ctx context.Context, id string) (*models.Worker, error)

	// FindByPhone finds a worker of an organization by phone
	FindByPhone(ctx context.Context, contractorID, phone string) (*models.Worker, error)

	// ListByContractor lists an organization's workers ordered by name
	ListByContractor(ctx context.Context, contractorID string) ([]models.Worker, error)

	// CountByContractor counts an organization's workers
	CountByContractor(ctx context.Context, contractorID string) (int64, error)

	// CountOwned counts how many of the given worker IDs belong to the organization
	CountOwned(ctx context.Context, contractorID string, ids []string) (int64, error)

	// Update saves a worker
	Update(ctx context.Context, worker *models.Worker) error

	// Delete removes a worker and its attendance records
	Delete(ctx context.Context, id string) error
}

// AttendanceRepository defines the interface for attendance data access
type AttendanceRepository interface {
	// ListByDate lists an organization's records for one date with workers preloaded
	ListByDate(ctx context.Context, contractorID string, date datatypes.Date) ([]models.AttendanceRecord, error)

	// UpsertBatch inserts or overwrites records keyed by (worker_id, date) in one transaction
	UpsertBatch(ctx context.Context, records []models.AttendanceRecord) error

	// CountActive counts PRESENT and HALF_DAY records for one date
	CountActive(ctx context.Context, contractorID string, date datatypes.Date) (int64, error)
}

// PaymentRepository defines the interface for payment data access
type PaymentRepository interface {
	// Create records a payment
	Create(ctx context.Context, payment *models.Payment) error

	// FindByID finds a payment by ID with its worker preloaded
	FindByID(ctx context.Context, id string) (*models.Payment, error)

	// ListByContractor lists an organization's payments newest first with workers preloaded
	ListByContractor(ctx context.Context, contractorID string) ([]models.Payment, error)

	// SumSince sums an organization's payment amounts created at or after since
	SumSince(ctx context.Context, contractorID string, since time.Time) (float64, error)
}
