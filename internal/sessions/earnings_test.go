package sessions

import (
	"testing"
	"time"
)

// fixedNow is a Wednesday; the containing week starts Sunday 2024-06-09 and
// the containing month on 2024-06-01.
var fixedNow = time.Date(2024, 6, 12, 15, 30, 0, 0, time.UTC)

func completedSession(date time.Time, subject string, price float64) Session {
	return Session{
		Date:    date,
		Subject: subject,
		Price:   price,
		Status:  StatusCompleted,
	}
}

// TestWeekStart verifies the week boundary is the most recent Sunday at
// local midnight, including when now already is a Sunday.
func TestWeekStart(t *testing.T) {
	got := WeekStart(fixedNow)
	want := time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("WeekStart(%v) = %v, want %v", fixedNow, got, want)
	}

	sunday := time.Date(2024, 6, 9, 18, 0, 0, 0, time.UTC)
	if got := WeekStart(sunday); !got.Equal(want) {
		t.Errorf("WeekStart on a Sunday = %v, want %v", got, want)
	}
}

// TestComputeEarnings_Boundaries verifies total/weekly/monthly against
// manually placed sessions around the week and month boundaries.
func TestComputeEarnings_Boundaries(t *testing.T) {
	sessions := []Session{
		// inside the current week and month
		completedSession(time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC), "Math", 1000),
		// exactly at the week boundary (Sunday midnight), counted as weekly
		completedSession(time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC), "Math", 500),
		// earlier this month but before the week
		completedSession(time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC), "Physics", 750),
		// previous month
		completedSession(time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC), "Math", 2000),
	}

	earnings := ComputeEarnings(sessions, fixedNow)

	if earnings.Total != 4250 {
		t.Errorf("total = %v, want 4250", earnings.Total)
	}
	if earnings.Weekly != 1500 {
		t.Errorf("weekly = %v, want 1500", earnings.Weekly)
	}
	if earnings.Monthly != 2250 {
		t.Errorf("monthly = %v, want 2250", earnings.Monthly)
	}
	if earnings.BySubject["Math"] != 3500 || earnings.BySubject["Physics"] != 750 {
		t.Errorf("bySubject = %v", earnings.BySubject)
	}
	if earnings.ByDate["2024-06-10"] != 1000 {
		t.Errorf("byDate = %v", earnings.ByDate)
	}
}

// TestComputeEarnings_IgnoresNonCompleted verifies that pending, confirmed
// and cancelled sessions contribute nothing.
func TestComputeEarnings_IgnoresNonCompleted(t *testing.T) {
	date := time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC)
	sessions := []Session{
		{Date: date, Subject: "Math", Price: 1000, Status: StatusPending},
		{Date: date, Subject: "Math", Price: 1000, Status: StatusConfirmed},
		{Date: date, Subject: "Math", Price: 1000, Status: StatusCancelled},
		completedSession(date, "Math", 1000),
	}

	earnings := ComputeEarnings(sessions, fixedNow)
	if earnings.Total != 1000 {
		t.Errorf("total = %v, want 1000 (only the completed session)", earnings.Total)
	}
}

// TestComputeEarnings_Empty verifies the all-zero (not error) shape for a
// tutor with no completed sessions.
func TestComputeEarnings_Empty(t *testing.T) {
	earnings := ComputeEarnings(nil, fixedNow)

	if earnings.Total != 0 || earnings.Weekly != 0 || earnings.Monthly != 0 {
		t.Errorf("expected all-zero earnings, got %+v", earnings)
	}
	if earnings.BySubject == nil || len(earnings.BySubject) != 0 {
		t.Errorf("bySubject should be an empty map, got %v", earnings.BySubject)
	}
}

// TestComputeEarnings_UsesStoredPrice verifies earnings never re-derive the
// amount from a rate: only the stored price matters, so a tutor raising
// their rate later cannot change historical earnings.
func TestComputeEarnings_UsesStoredPrice(t *testing.T) {
	s := completedSession(time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC), "Math", 1000)
	s.Duration = 60

	before := ComputeEarnings([]Session{s}, fixedNow).Total
	// A rate change would alter Price(rate, duration) but not s.Price.
	after := ComputeEarnings([]Session{s}, fixedNow).Total

	if before != 1000 || after != 1000 {
		t.Errorf("earnings must equal stored price, got %v then %v", before, after)
	}
}
