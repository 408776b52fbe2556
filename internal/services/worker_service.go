package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rajkrish0608/WorkProof/internal/constants"
	"github.com/rajkrish0608/WorkProof/internal/models"
	"github.com/rajkrish0608/WorkProof/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrWorkerNotFound     = errors.New("worker not found")
	ErrWorkerPhoneTaken   = errors.New("worker with this phone already exists")
	ErrWorkerNameRequired = errors.New("name is required")
	ErrWorkerPhoneInvalid = errors.New("phone must be at least 10 characters")
	ErrNegativeWageRate   = errors.New("wage rate must not be negative")
)

// WorkerService manages an organization's workers.
type WorkerService struct {
	workerRepo repository.WorkerRepository
}

// NewWorkerService creates a new WorkerService
func NewWorkerService(workerRepo repository.WorkerRepository) *WorkerService {
	return &WorkerService{workerRepo: workerRepo}
}

// CreateWorkerInput represents input for creating a worker
type CreateWorkerInput struct {
	Name     string
	Phone    string
	WageRate float64
}

// UpdateWorkerInput represents a partial worker update
type UpdateWorkerInput struct {
	Name     *string
	Phone    *string
	WageRate *float64
}

// List returns the organization's workers ordered by name.
func (s *WorkerService) List(ctx context.Context, orgID string) ([]models.Worker, error) {
	workers, err := s.workerRepo.ListByContractor(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}
	return workers, nil
}

// Create adds a worker to the organization.
func (s *WorkerService) Create(ctx context.Context, orgID string, input CreateWorkerInput) (*models.Worker, error) {
	name := strings.TrimSpace(input.Name)
	phone := strings.TrimSpace(input.Phone)
	if err := validateWorkerFields(&name, &phone, &input.WageRate); err != nil {
		return nil, err
	}

	if err := s.ensurePhoneFree(ctx, orgID, phone, ""); err != nil {
		return nil, err
	}

	worker := &models.Worker{
		Name:         name,
		Phone:        phone,
		WageRate:     input.WageRate,
		ContractorID: orgID,
	}
	if err := s.workerRepo.Create(ctx, worker); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrWorkerPhoneTaken
		}
		return nil, fmt.Errorf("failed to create worker: %w", err)
	}
	return worker, nil
}

// Update applies a partial update to a worker of the organization.
func (s *WorkerService) Update(ctx context.Context, id, orgID string, input UpdateWorkerInput) (*models.Worker, error) {
	worker, err := s.getOwned(ctx, id, orgID)
	if err != nil {
		return nil, err
	}

	var name, phone *string
	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		name = &trimmed
	}
	if input.Phone != nil {
		trimmed := strings.TrimSpace(*input.Phone)
		phone = &trimmed
	}
	if err := validateWorkerFields(name, phone, input.WageRate); err != nil {
		return nil, err
	}

	if phone != nil && *phone != worker.Phone {
		if err := s.ensurePhoneFree(ctx, orgID, *phone, worker.ID); err != nil {
			return nil, err
		}
		worker.Phone = *phone
	}
	if name != nil {
		worker.Name = *name
	}
	if input.WageRate != nil {
		worker.WageRate = *input.WageRate
	}

	if err := s.workerRepo.Update(ctx, worker); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrWorkerPhoneTaken
		}
		return nil, fmt.Errorf("failed to update worker: %w", err)
	}
	return worker, nil
}

// Delete removes a worker of the organization together with its attendance.
func (s *WorkerService) Delete(ctx context.Context, id, orgID string) error {
	if _, err := s.getOwned(ctx, id, orgID); err != nil {
		return err
	}

	if err := s.workerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWorkerNotFound
		}
		return fmt.Errorf("failed to delete worker: %w", err)
	}
	return nil
}

// getOwned hides workers of other organizations behind ErrWorkerNotFound.
func (s *WorkerService) getOwned(ctx context.Context, id, orgID string) (*models.Worker, error) {
	worker, err := s.workerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, fmt.Errorf("failed to find worker: %w", err)
	}
	if worker.ContractorID != orgID {
		return nil, ErrWorkerNotFound
	}
	return worker, nil
}

func (s *WorkerService) ensurePhoneFree(ctx context.Context, orgID, phone, excludeID string) error {
	existing, err := s.workerRepo.FindByPhone(ctx, orgID, phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check phone: %w", err)
	}
	if existing.ID != excludeID {
		return ErrWorkerPhoneTaken
	}
	return nil
}

func validateWorkerFields(name, phone *string, wageRate *float64) error {
	if name != nil && *name == "" {
		return ErrWorkerNameRequired
	}
	if phone != nil && len(*phone) < constants.MinWorkerPhoneLength {
		return ErrWorkerPhoneInvalid
	}
	if wageRate != nil && *wageRate < 0 {
		return ErrNegativeWageRate
	}
	return nil
}
