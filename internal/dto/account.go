package dto

import (
	"time"

	"github.com/rajkrish0608/WorkProof/internal/models"
)

// AccountDTO represents an account in API responses
type AccountDTO struct {
	ID        string      `json:"id"`
	Email     string      `json:"email"`
	Name      string      `json:"name"`
	Phone     *string     `json:"phone"`
	Role      models.Role `json:"role"`
	ManagerID *string     `json:"managerId,omitempty"`
	OrgID     string      `json:"orgId"`
	CreatedAt time.Time   `json:"createdAt"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Token string     `json:"token"`
	User  AccountDTO `json:"user"`
}

// ToAccountDTO converts an account to DTO
func ToAccountDTO(account models.Account) AccountDTO {
	return AccountDTO{
		ID:        account.ID,
		Email:     account.Email,
		Name:      account.Name,
		Phone:     account.Phone,
		Role:      account.Role,
		ManagerID: account.ManagerID,
		OrgID:     account.OrgID(),
		CreatedAt: account.CreatedAt,
	}
}

// ToAccountDTOs converts accounts to DTOs
func ToAccountDTOs(accounts []models.Account) []AccountDTO {
	result := make([]AccountDTO, len(accounts))
	for i, account := range accounts {
		result[i] = ToAccountDTO(account)
	}
	return result
}
