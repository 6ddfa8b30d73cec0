package domain

import "time"

// Account is one tracked external identity participating in the program.
// ExternalID is the stable identifier assigned by the chat platform.
type Account struct {
	ID            int64  `db:"id"`
	ExternalID    int64  `db:"external_id"`
	DisplayName   string `db:"display_name"`
	ClaimedHandle string `db:"claimed_handle"`
	// ResourceRef points at the per-account tracking resource (channel).
	// It can go stale when the resource is deleted externally, so it is
	// re-validated before use, never trusted blindly.
	ResourceRef *int64    `db:"resource_ref"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// PeriodStatus is the closed set of tracking-period states.
type PeriodStatus string

const (
	StatusActive     PeriodStatus = "active"
	StatusPaused     PeriodStatus = "paused"
	StatusDeleted    PeriodStatus = "deleted"
	StatusLeftServer PeriodStatus = "left_server"
)

// Valid reports whether s is one of the known period statuses.
func (s PeriodStatus) Valid() bool {
	switch s {
	case StatusActive, StatusPaused, StatusDeleted, StatusLeftServer:
		return true
	}
	return false
}

// TrackingPeriod is the window during which an account has a daily
// submission target. Only one active period per account is honored at
// the read layer; creation itself is guarded transactionally.
type TrackingPeriod struct {
	ID           int64        `db:"id"`
	AccountID    int64        `db:"account_id"`
	TargetPerDay int          `db:"target_per_day"`
	StartDate    time.Time    `db:"start_date"`
	EndDate      time.Time    `db:"end_date"`
	Status       PeriodStatus `db:"status"`
	// ReportRef points at the externally generated spreadsheet mirroring
	// this period. Derived and regenerable, never authoritative.
	ReportRef *string   `db:"report_ref"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ContainsDay reports whether day falls within [StartDate, EndDate].
func (p *TrackingPeriod) ContainsDay(day time.Time) bool {
	d := Day(day)
	return !d.Before(Day(p.StartDate)) && !d.After(Day(p.EndDate))
}

// ActivePeriod joins a period with its account, as read by the
// reconciler and the reminder sweep.
type ActivePeriod struct {
	Period  TrackingPeriod
	Account Account
}

// Day truncates t to its calendar date in UTC. Submissions are
// partitioned by this value, not by wall-clock submit time.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
