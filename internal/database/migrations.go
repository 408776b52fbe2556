package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds composite indexes for the tenant-scoped list queries (postgres only).
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		{"payments", "idx_payments_contractor_created_at", "contractor_id, created_at DESC"},
		{"attendance_records", "idx_attendance_contractor_date", "contractor_id, date"},
		{"workers", "idx_workers_contractor_name", "contractor_id, name"},
		{"accounts", "idx_accounts_manager_created_at", "manager_id, created_at DESC"},
	}

	for _, idx := range indexes {
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM pg_indexes
			WHERE tablename = ? AND indexname = ?
		`, idx.table, idx.name).Scan(&count).Error
		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}
		if count > 0 {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
