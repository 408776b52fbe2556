package dto

import (
	"time"

	"github.com/rajkrish0608/WorkProof/internal/constants"
	"github.com/rajkrish0608/WorkProof/internal/models"
)

// AttendanceWorkerDTO is the worker summary embedded in attendance records
type AttendanceWorkerDTO struct {
	Name string `json:"name"`
}

// AttendanceDTO represents an attendance record in API responses
type AttendanceDTO struct {
	ID           string                  `json:"id"`
	WorkerID     string                  `json:"workerId"`
	Date         string                  `json:"date"`
	Status       models.AttendanceStatus `json:"status"`
	HoursWorked  *float64                `json:"hoursWorked"`
	ContractorID string                  `json:"contractorId"`
	CreatedAt    time.Time               `json:"createdAt"`
	UpdatedAt    time.Time               `json:"updatedAt"`
	Worker       *AttendanceWorkerDTO    `json:"worker,omitempty"`
}

// ToAttendanceDTO converts an attendance record to DTO
func ToAttendanceDTO(record models.AttendanceRecord) AttendanceDTO {
	result := AttendanceDTO{
		ID:           record.ID,
		WorkerID:     record.WorkerID,
		Date:         time.Time(record.Date).Format(constants.DateLayout),
		Status:       record.Status,
		HoursWorked:  record.HoursWorked,
		ContractorID: record.ContractorID,
		CreatedAt:    record.CreatedAt,
		UpdatedAt:    record.UpdatedAt,
	}
	if record.Worker != nil {
		result.Worker = &AttendanceWorkerDTO{Name: record.Worker.Name}
	}
	return result
}

// ToAttendanceDTOs converts attendance records to DTOs
func ToAttendanceDTOs(records []models.AttendanceRecord) []AttendanceDTO {
	result := make([]AttendanceDTO, len(records))
	for i, record := range records {
		result[i] = ToAttendanceDTO(record)
	}
	return result
}
