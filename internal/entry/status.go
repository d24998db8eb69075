package entry

import (
	"strings"
	"time"
)

// Status is the lifecycle state of an entry. Statuses are recomputed
// from dates and rating, not transitioned, except for the explicit
// start-pending operation.
type Status string

const (
	StatusPending           Status = "pending"
	StatusInProgress        Status = "in-progress"
	StatusInProgressNoDates Status = "in-progress-no-dates"
	StatusCompleted         Status = "completed"
	StatusCompletedNoDates  Status = "completed-no-dates"
	// StatusUnknownDates is only ever set explicitly by the user for
	// items whose dates are genuinely unknown; inference never emits it.
	StatusUnknownDates Status = "unknown-dates"
)

var allStatuses = []Status{
	StatusPending,
	StatusInProgress,
	StatusInProgressNoDates,
	StatusCompleted,
	StatusCompletedNoDates,
	StatusUnknownDates,
}

var statusSet = func() map[Status]struct{} {
	set := make(map[Status]struct{}, len(allStatuses))
	for _, status := range allStatuses {
		set[status] = struct{}{}
	}
	return set
}()

// AllStatuses returns the ordered list of known statuses.
func AllStatuses() []Status {
	cp := make([]Status, len(allStatuses))
	copy(cp, allStatuses)
	return cp
}

// ParseStatus converts a string into a known Status.
func ParseStatus(value string) (Status, bool) {
	normalized := Status(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return "", false
	}
	_, ok := statusSet[normalized]
	return normalized, ok
}

// IsCompleted reports whether a status marks the entry as finished,
// with or without recorded dates.
func (s Status) IsCompleted() bool {
	return s == StatusCompleted || s == StatusCompletedNoDates
}

// ComputeStatus derives an entry status from its recorded dates, its
// rating, and the explicit finished flag. The rules are evaluated in
// order; the first match wins:
//
//	no dates, rating or finished flag  -> completed-no-dates
//	no dates, neither                  -> in-progress-no-dates
//	finish date only                   -> completed
//	start date only                    -> in-progress
//	both dates                         -> completed
//
// A not-applicable rating counts as absent here. The function is pure
// and total; malformed inputs are rejected upstream.
func ComputeStatus(start, finish *time.Time, rating Rating, explicitFinished bool) Status {
	hasStart := start != nil
	hasFinish := finish != nil
	switch {
	case !hasStart && !hasFinish:
		if rating.IsScored() || explicitFinished {
			return StatusCompletedNoDates
		}
		return StatusInProgressNoDates
	case !hasStart:
		return StatusCompleted
	case !hasFinish:
		return StatusInProgress
	default:
		return StatusCompleted
	}
}

// InferStatus resolves the status for a persisted record. An explicit
// stored status always wins; inference only fills a blank field. This
// keeps pending entries pending across reads regardless of their other
// fields.
func InferStatus(stored Status, start, finish *time.Time, rating Rating) Status {
	if stored != "" {
		return stored
	}
	return ComputeStatus(start, finish, rating, false)
}
