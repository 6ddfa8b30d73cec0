package domain

import "time"

// Submission is one accepted link counted against a specific day's target.
type Submission struct {
	ID       int64 `db:"id"`
	PeriodID int64 `db:"period_id"`
	// OccurredOn is the calendar date partition key.
	OccurredOn time.Time `db:"occurred_on"`
	Link       string    `db:"link"`
	// Ordinal is the 1-based position within the (period, day) partition,
	// assigned at insert time and never reused.
	Ordinal int `db:"ordinal"`
	// ExtractedHandle and PostID are best-effort parses of the link,
	// kept for duplicate detection.
	ExtractedHandle string `db:"extracted_handle"`
	PostID          string `db:"post_id"`
	// Valid is always true on the normal accept path; rejected links are
	// never stored. Kept for forward compatibility with soft-invalidation.
	Valid     bool      `db:"valid"`
	CreatedAt time.Time `db:"created_at"`
}

// RejectReason classifies why a candidate link was not recorded.
type RejectReason string

const (
	RejectOwnership RejectReason = "format/ownership"
	RejectQuota     RejectReason = "quota exceeded"
)

// RejectedLink pairs a candidate with the reason it was turned away.
type RejectedLink struct {
	Link   string
	Reason RejectReason
}

// SubmitResult is what the quota ledger reports back for one batch.
type SubmitResult struct {
	Accepted []Submission
	Rejected []RejectedLink
	// TodayCount is the accepted total for the day after this batch.
	TodayCount int
	// Remaining is how many more submissions would still fit today.
	Remaining int
}
