package sessions

import "time"

// Earnings are derived from a tutor's completed sessions on every request;
// nothing here is persisted.
type Earnings struct {
	Total     float64            `json:"total"`
	Weekly    float64            `json:"weekly"`
	Monthly   float64            `json:"monthly"`
	BySubject map[string]float64 `json:"bySubject"`
	ByDate    map[string]float64 `json:"byDate"`
}

// WeekStart is the most recent Sunday at local midnight relative to now.
func WeekStart(now time.Time) time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// MonthStart is the first of the current calendar month at local midnight.
func MonthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

// ComputeEarnings aggregates the stored prices of completed sessions.
// Sessions whose status is not completed are ignored, so callers may pass
// a pre-filtered or a mixed slice. A tutor with no completed sessions gets
// an all-zero result.
func ComputeEarnings(completed []Session, now time.Time) Earnings {
	earnings := Earnings{
		BySubject: map[string]float64{},
		ByDate:    map[string]float64{},
	}

	weekStart := WeekStart(now)
	monthStart := MonthStart(now)

	for _, s := range completed {
		if s.Status != StatusCompleted {
			continue
		}

		amount := s.Price
		earnings.Total += amount

		if !s.Date.Before(weekStart) {
			earnings.Weekly += amount
		}
		if !s.Date.Before(monthStart) {
			earnings.Monthly += amount
		}

		earnings.BySubject[s.Subject] += amount
		earnings.ByDate[s.Date.Format("2006-01-02")] += amount
	}

	return earnings
}
