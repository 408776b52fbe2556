package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rajkrish0608/WorkProof/internal/constants"
	"github.com/rajkrish0608/WorkProof/internal/models"
	"github.com/rajkrish0608/WorkProof/internal/repository"
	"gorm.io/datatypes"
)

var (
	ErrDateRequired       = errors.New("date is required")
	ErrInvalidDate        = errors.New("date must be formatted as YYYY-MM-DD")
	ErrWorkerIDRequired   = errors.New("workerId is required")
	ErrInvalidStatus      = errors.New("status must be PRESENT, ABSENT or HALF_DAY")
	ErrInvalidHours       = errors.New("hoursWorked must be between 0 and 24")
	ErrUnknownBatchWorker = errors.New("one or more workers were not found")
)

// AttendanceService records daily attendance.
type AttendanceService struct {
	attendanceRepo repository.AttendanceRepository
	workerRepo     repository.WorkerRepository
}

// NewAttendanceService creates a new AttendanceService
func NewAttendanceService(attendanceRepo repository.AttendanceRepository, workerRepo repository.WorkerRepository) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		workerRepo:     workerRepo,
	}
}

// AttendanceEntry is one worker's attendance in a bulk submission.
type AttendanceEntry struct {
	WorkerID    string
	Status      models.AttendanceStatus
	HoursWorked *float64
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(value string) (datatypes.Date, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return datatypes.Date{}, ErrDateRequired
	}
	t, err := time.Parse(constants.DateLayout, value)
	if err != nil {
		return datatypes.Date{}, ErrInvalidDate
	}
	return CalendarDate(t), nil
}

// CalendarDate truncates t to its calendar day at UTC midnight.
func CalendarDate(t time.Time) datatypes.Date {
	y, m, d := t.Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// Get lists the organization's attendance for one date ordered by worker name.
func (s *AttendanceService) Get(ctx context.Context, orgID, date string) ([]models.AttendanceRecord, error) {
	day, err := ParseDate(date)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListByDate(ctx, orgID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return workerName(records[i]) < workerName(records[j])
	})
	return records, nil
}

// BulkUpsert validates the whole batch, checks every worker belongs to the
// organization and then writes all entries in one transaction.
func (s *AttendanceService) BulkUpsert(ctx context.Context, orgID, date string, entries []AttendanceEntry) error {
	day, err := ParseDate(date)
	if err != nil {
		return err
	}

	// Later entries for the same worker win.
	latest := make(map[string]int, len(entries))
	order := make([]string, 0, len(entries))
	for i, entry := range entries {
		if err := validateEntry(entry); err != nil {
			return err
		}
		if _, seen := latest[entry.WorkerID]; !seen {
			order = append(order, entry.WorkerID)
		}
		latest[entry.WorkerID] = i
	}
	if len(order) == 0 {
		return nil
	}

	owned, err := s.workerRepo.CountOwned(ctx, orgID, order)
	if err != nil {
		return fmt.Errorf("failed to check workers: %w", err)
	}
	if owned != int64(len(order)) {
		return ErrUnknownBatchWorker
	}

	records := make([]models.AttendanceRecord, 0, len(order))
	for _, workerID := range order {
		entry := entries[latest[workerID]]
		hours := entry.HoursWorked
		if entry.Status == models.AttendanceAbsent {
			zero := 0.0
			hours = &zero
		}
		records = append(records, models.AttendanceRecord{
			WorkerID:     workerID,
			Date:         day,
			Status:       entry.Status,
			HoursWorked:  hours,
			ContractorID: orgID,
		})
	}

	if err := s.attendanceRepo.UpsertBatch(ctx, records); err != nil {
		return fmt.Errorf("failed to record attendance: %w", err)
	}
	return nil
}

func validateEntry(entry AttendanceEntry) error {
	if strings.TrimSpace(entry.WorkerID) == "" {
		return ErrWorkerIDRequired
	}
	switch entry.Status {
	case models.AttendancePresent, models.AttendanceAbsent, models.AttendanceHalfDay:
	default:
		return ErrInvalidStatus
	}
	if entry.HoursWorked != nil && (*entry.HoursWorked < 0 || *entry.HoursWorked > constants.MaxHoursPerDay) {
		return ErrInvalidHours
	}
	return nil
}

func workerName(record models.AttendanceRecord) string {
	if record.Worker == nil {
		return ""
	}
	return record.Worker.Name
}
