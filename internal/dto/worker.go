package dto

import (
	"time"

	"github.com/rajkrish0608/WorkProof/internal/models"
)

// WorkerDTO represents a worker in API responses
type WorkerDTO struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	WageRate     float64   `json:"wageRate"`
	ContractorID string    `json:"contractorId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ToWorkerDTO converts a worker to DTO
func ToWorkerDTO(worker models.Worker) WorkerDTO {
	return WorkerDTO{
		ID:           worker.ID,
		Name:         worker.Name,
		Phone:        worker.Phone,
		WageRate:     worker.WageRate,
		ContractorID: worker.ContractorID,
		CreatedAt:    worker.CreatedAt,
		UpdatedAt:    worker.UpdatedAt,
	}
}

// ToWorkerDTOs converts workers to DTOs
func ToWorkerDTOs(workers []models.Worker) []WorkerDTO {
	result := make([]WorkerDTO, len(workers))
	for i, worker := range workers {
		result[i] = ToWorkerDTO(worker)
	}
	return result
}
