package domain

import "time"

// ReminderTarget is one account behind its daily target, as read by the
// reminder sweep.
type ReminderTarget struct {
	ExternalID  int64  `db:"external_id"`
	ResourceRef *int64 `db:"resource_ref"`
	Target      int    `db:"target_per_day"`
	Done        int    `db:"done"`
}

// ProgressReport is the read-side view of one account's tracking period.
type ProgressReport struct {
	Handle        string
	Target        int
	StartDate     time.Time
	EndDate       time.Time
	Status        PeriodStatus
	TotalReplies  int
	Expected      int
	ActiveDays    int
	DaysElapsed   int
	TodayCount    int
	CompletionPct float64
}

// Performance is one account's standing for a single day.
type Performance struct {
	DisplayName   string
	Handle        string
	Target        int
	Done          int
	CompletionPct float64
}

// DuplicateEntry records one post submitted more than once by the same
// account.
type DuplicateEntry struct {
	PostID   string
	Link     string
	Days     []time.Time
	Ordinals []int
}

// AccountDuplicates groups an account's internal duplicates.
type AccountDuplicates struct {
	ExternalID  int64
	DisplayName string
	Handle      string
	Total       int
	Duplicates  []DuplicateEntry
}

// CrossDuplicate is one post identifier submitted by several accounts.
// Advisory only: edits and deletions of the source post are invisible here.
type CrossDuplicate struct {
	PostID   string
	Accounts []string
}

// DuplicateReport is the full scan result.
type DuplicateReport struct {
	Scanned      []AccountDuplicates
	CrossAccount []CrossDuplicate
}
