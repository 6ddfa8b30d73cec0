package domain

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for lookups and state checks.
var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrPeriodNotFound   = errors.New("tracking period not found")
	ErrPeriodNotActive  = errors.New("tracking period is not active")
	ErrNoActivePeriod   = errors.New("no active tracking period")
	ErrSessionNotFound  = errors.New("onboarding session not found")
	ErrDuplicatePeriod  = errors.New("account already has an active tracking period")
	ErrResourceMismatch = errors.New("resource does not belong to account")
)

// ValidationError is a recoverable bad-input error, surfaced to the end
// user with a corrective message. No state is mutated.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for one input field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// QuotaError rejects a whole submission batch, either because the day
// falls outside the period window or because the batch would overshoot
// the daily target. Remaining carries how many more would have fit.
type QuotaError struct {
	PeriodID  int64
	Day       time.Time
	Reason    RejectReason
	Remaining int
	// Boundary is set when the day is outside [start, end]; quota state
	// is irrelevant in that case.
	Boundary bool
}

func (e *QuotaError) Error() string {
	if e.Boundary {
		return fmt.Sprintf("period %d: day %s outside tracking window", e.PeriodID, e.Day.Format("2006-01-02"))
	}
	return fmt.Sprintf("period %d: batch exceeds daily target, %d more would fit", e.PeriodID, e.Remaining)
}

// ConsistencyError is a security/consistency signal: an event arrived in
// a place it should not have. Logged, dropped, no user-facing reply.
type ConsistencyError struct {
	ExternalID int64
	ResourceID int64
	Detail     string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("consistency: account %d in resource %d: %s", e.ExternalID, e.ResourceID, e.Detail)
}
