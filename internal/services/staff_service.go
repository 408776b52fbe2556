package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rajkrish0608/WorkProof/internal/constants"
	"github.com/rajkrish0608/WorkProof/internal/models"
	"github.com/rajkrish0608/WorkProof/internal/notify"
	"github.com/rajkrish0608/WorkProof/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrStaffNotFound     = errors.New("staff member not found")
	ErrStaffNameTooShort = errors.New("name must be at least 2 characters")
)

const minStaffNameLength = 2

// StaffService lets an owner manage the STAFF accounts of the organization.
type StaffService struct {
	accountRepo repository.AccountRepository
	email       notify.EmailSender
	logger      *zap.Logger
}

// NewStaffService creates a new StaffService
func NewStaffService(accountRepo repository.AccountRepository, email notify.EmailSender, logger *zap.Logger) *StaffService {
	return &StaffService{
		accountRepo: accountRepo,
		email:       email,
		logger:      logger,
	}
}

// CreateStaffInput represents input for adding a staff member
type CreateStaffInput struct {
	Name     string
	Email    string
	Password string
	Phone    *string
}

// UpdateStaffInput represents a partial staff update
type UpdateStaffInput struct {
	Name     *string
	Email    *string
	Password *string
	Phone    *string
}

// List returns the owner's staff newest first.
func (s *StaffService) List(ctx context.Context, ownerID string) ([]models.Account, error) {
	staff, err := s.accountRepo.ListByManager(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	return staff, nil
}

// Create adds a STAFF account managed by the owner.
func (s *StaffService) Create(ctx context.Context, ownerID string, input CreateStaffInput) (*models.Account, error) {
	name := strings.TrimSpace(input.Name)
	if len(name) < minStaffNameLength {
		return nil, ErrStaffNameTooShort
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	email := normalizeEmail(input.Email)
	if err := s.ensureEmailFree(ctx, email, ""); err != nil {
		return nil, err
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	manager := ownerID
	account := &models.Account{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		Phone:        input.Phone,
		Role:         models.RoleStaff,
		ManagerID:    &manager,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create staff: %w", err)
	}

	s.sendWelcome(ctx, account)
	return account, nil
}

// Update applies a partial update to a staff member of the owner.
func (s *StaffService) Update(ctx context.Context, id, ownerID string, input UpdateStaffInput) (*models.Account, error) {
	account, err := s.getOwned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if len(name) < minStaffNameLength {
			return nil, ErrStaffNameTooShort
		}
		account.Name = name
	}
	if input.Password != nil {
		if len(*input.Password) < constants.MinPasswordLength {
			return nil, ErrPasswordTooShort
		}
		hash, err := HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		account.PasswordHash = hash
	}
	if input.Email != nil {
		email := normalizeEmail(*input.Email)
		if email != account.Email {
			if err := s.ensureEmailFree(ctx, email, account.ID); err != nil {
				return nil, err
			}
			account.Email = email
		}
	}
	if input.Phone != nil {
		account.Phone = input.Phone
	}

	if err := s.accountRepo.Update(ctx, account); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to update staff: %w", err)
	}
	return account, nil
}

// Delete removes a staff member of the owner.
func (s *StaffService) Delete(ctx context.Context, id, ownerID string) error {
	if _, err := s.getOwned(ctx, id, ownerID); err != nil {
		return err
	}

	if err := s.accountRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStaffNotFound
		}
		return fmt.Errorf("failed to delete staff: %w", err)
	}
	return nil
}

func (s *StaffService) getOwned(ctx context.Context, id, ownerID string) (*models.Account, error) {
	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to find staff: %w", err)
	}
	if account.ManagerID == nil || *account.ManagerID != ownerID {
		return nil, ErrStaffNotFound
	}
	return account, nil
}

func (s *StaffService) ensureEmailFree(ctx context.Context, email, excludeID string) error {
	taken, err := s.accountRepo.EmailTaken(ctx, email, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return ErrEmailTaken
	}
	return nil
}

func (s *StaffService) sendWelcome(ctx context.Context, account *models.Account) {
	if s.email == nil {
		return
	}

	body := fmt.Sprintf("Hi %s, you have been added to a WorkProof team. Sign in with %s.", account.Name, account.Email)
	if err := s.email.SendEmail(ctx, account.Email, "Welcome to WorkProof", body); err != nil {
		s.logger.Warn("failed to send welcome email",
			zap.String("account_id", account.ID),
			zap.Error(err),
		)
	}
}
