package dto

import (
	"time"

	"github.com/rajkrish0608/WorkProof/internal/models"
)

// PaymentWorkerDTO is the worker summary embedded in payments
type PaymentWorkerDTO struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// PaymentDTO represents a payment in API responses
type PaymentDTO struct {
	ID           string               `json:"id"`
	Amount       float64              `json:"amount"`
	Notes        *string              `json:"notes"`
	WorkerID     string               `json:"workerId"`
	ContractorID string               `json:"contractorId"`
	Status       models.PaymentStatus `json:"status"`
	CreatedAt    time.Time            `json:"createdAt"`
	Worker       *PaymentWorkerDTO    `json:"worker"`
}

// ToPaymentDTO converts a payment to DTO
func ToPaymentDTO(payment models.Payment) PaymentDTO {
	result := PaymentDTO{
		ID:           payment.ID,
		Amount:       payment.Amount,
		Notes:        payment.Notes,
		WorkerID:     payment.WorkerID,
		ContractorID: payment.ContractorID,
		Status:       payment.Status,
		CreatedAt:    payment.CreatedAt,
	}
	if payment.Worker != nil {
		result.Worker = &PaymentWorkerDTO{
			Name:  payment.Worker.Name,
			Phone: payment.Worker.Phone,
		}
	}
	return result
}

// ToPaymentDTOs converts payments to DTOs
func ToPaymentDTOs(payments []models.Payment) []PaymentDTO {
	result := make([]PaymentDTO, len(payments))
	for i, payment := range payments {
		result[i] = ToPaymentDTO(payment)
	}
	return result
}
