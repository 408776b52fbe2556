package dto

import "github.com/rajkrish0608/WorkProof/internal/services"

// DashboardDTO represents the dashboard counters
type DashboardDTO struct {
	TotalWorkers   int64   `json:"totalWorkers"`
	ActiveToday    int64   `json:"activeToday"`
	TotalPaidMonth float64 `json:"totalPaidMonth"`
}

// ToDashboardDTO converts dashboard stats to DTO
func ToDashboardDTO(stats services.DashboardStats) DashboardDTO {
	return DashboardDTO{
		TotalWorkers:   stats.TotalWorkers,
		ActiveToday:    stats.ActiveToday,
		TotalPaidMonth: stats.TotalPaidMonth,
	}
}
