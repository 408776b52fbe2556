package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rajkrish0608/WorkProof/internal/constants"
	"github.com/rajkrish0608/WorkProof/internal/models"
	"github.com/rajkrish0608/WorkProof/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken           = errors.New("user already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrAccountNotFound      = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// AuthService handles registration and login.
type AuthService struct {
	accountRepo repository.AccountRepository
	tokens      *TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(accountRepo repository.AccountRepository, tokens *TokenService) *AuthService {
	return &AuthService{
		accountRepo: accountRepo,
		tokens:      tokens,
	}
}

// RegisterInput represents the information needed to open an owner account.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Phone    *string
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// AuthResult is a freshly issued token and the account it belongs to.
type AuthResult struct {
	Token   string
	Account *models.Account
}

// Register creates an OWNER account heading a new organization and signs it in.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	email := normalizeEmail(input.Email)
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.accountRepo.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		Email:        email,
		PasswordHash: hash,
		Name:         strings.TrimSpace(input.Name),
		Phone:        input.Phone,
		Role:         models.RoleOwner,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return s.signIn(account)
}

// Login verifies credentials and issues a token.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	account, err := s.accountRepo.FindByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	if !CheckPassword(account.PasswordHash, input.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.signIn(account)
}

// GetAccount retrieves an account by ID.
func (s *AuthService) GetAccount(ctx context.Context, id string) (*models.Account, error) {
	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	return account, nil
}

func (s *AuthService) signIn(account *models.Account) (*AuthResult, error) {
	token, err := s.tokens.Issue(IdentityFor(account))
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, Account: account}, nil
}

// HashPassword bcrypt-hashes a plaintext password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), constants.BcryptCost)
	if err != nil {
		return "", ErrFailedToHashPassword
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
