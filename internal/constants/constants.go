package constants

import "time"

// Context keys
const (
	ContextKeyIdentity  = "identity"
	ContextKeyRequestID = "request_id"
)

// Authentication
const (
	MinPasswordLength = 6
	TokenTTL          = 7 * 24 * time.Hour
	BcryptCost        = 10
)

// Workers
const (
	MinWorkerPhoneLength = 10
)

// Attendance
const (
	DateLayout     = "2006-01-02"
	MaxHoursPerDay = 24
)

// Idempotency
const (
	IdempotencyHeader  = "Idempotency-Key"
	IdempotencyTTL     = 24 * time.Hour
	IdempotencyLockTTL = time.Minute // reservation held while the first request runs
)
