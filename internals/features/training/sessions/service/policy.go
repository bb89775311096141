package service

import (
	"time"
)

// SessionStatus is always derived from the date range, never stored.
type SessionStatus string

const (
	StatusUpcoming  SessionStatus = "upcoming"
	StatusOngoing   SessionStatus = "ongoing"
	StatusCompleted SessionStatus = "completed"
)

// StatusOn maps (today, startDate, endDate) to the session status at
// day granularity. The effective end is endDate when present, else
// startDate; the end day itself counts as ongoing. This is the single
// implementation of the formula — creation, display mapping and
// edit gating all call it.
func StatusOn(today time.Time, start time.Time, end *time.Time) SessionStatus {
	d := dateOnly(today)
	s := dateOnly(start)
	e := s
	if end != nil {
		e = dateOnly(*end)
	}
	switch {
	case d.Before(s):
		return StatusUpcoming
	case d.After(e):
		return StatusCompleted
	default:
		return StatusOngoing
	}
}

// StatusNow is StatusOn anchored at the current day.
func StatusNow(start time.Time, end *time.Time) SessionStatus {
	return StatusOn(time.Now(), start, end)
}

// StatusWhereClause translates a status into the SQL predicate used by
// paged listing. It mirrors StatusOn and must change with it.
func StatusWhereClause(status SessionStatus) (string, bool) {
	switch status {
	case StatusUpcoming:
		return "training_session_start_date > CURRENT_DATE", true
	case StatusCompleted:
		return "COALESCE(training_session_end_date, training_session_start_date) < CURRENT_DATE", true
	case StatusOngoing:
		return "training_session_start_date <= CURRENT_DATE AND COALESCE(training_session_end_date, training_session_start_date) >= CURRENT_DATE", true
	}
	return "", false
}

// ValidDateRange rejects end before start. Enforced at the input
// boundary so the policy itself stays total.
func ValidDateRange(start time.Time, end *time.Time) bool {
	if end == nil {
		return true
	}
	return !dateOnly(*end).Before(dateOnly(start))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
