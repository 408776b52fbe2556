package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rajkrish0608/WorkProof/internal/repository"
	"golang.org/x/sync/errgroup"
)

// DashboardStats summarizes an organization.
type DashboardStats struct {
	TotalWorkers   int64
	ActiveToday    int64
	TotalPaidMonth float64
}

// DashboardService computes the summary counters.
type DashboardService struct {
	workerRepo     repository.WorkerRepository
	attendanceRepo repository.AttendanceRepository
	paymentRepo    repository.PaymentRepository
	now            func() time.Time
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(workerRepo repository.WorkerRepository, attendanceRepo repository.AttendanceRepository, paymentRepo repository.PaymentRepository) *DashboardService {
	return &DashboardService{
		workerRepo:     workerRepo,
		attendanceRepo: attendanceRepo,
		paymentRepo:    paymentRepo,
		now:            time.Now,
	}
}

// SetClock replaces the clock that defines today and the current month.
func (s *DashboardService) SetClock(now func() time.Time) {
	s.now = now
}

// Stats runs the three aggregate queries concurrently.
func (s *DashboardService) Stats(ctx context.Context, orgID string) (*DashboardStats, error) {
	now := s.now()
	today := CalendarDate(now)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).UTC()

	var stats DashboardStats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.workerRepo.CountByContractor(gctx, orgID)
		if err != nil {
			return fmt.Errorf("failed to count workers: %w", err)
		}
		stats.TotalWorkers = n
		return nil
	})
	g.Go(func() error {
		n, err := s.attendanceRepo.CountActive(gctx, orgID, today)
		if err != nil {
			return fmt.Errorf("failed to count attendance: %w", err)
		}
		stats.ActiveToday = n
		return nil
	})
	g.Go(func() error {
		total, err := s.paymentRepo.SumSince(gctx, orgID, monthStart)
		if err != nil {
			return fmt.Errorf("failed to sum payments: %w", err)
		}
		stats.TotalPaidMonth = total
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}
