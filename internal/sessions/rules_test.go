package sessions

import (
	"errors"
	"testing"
	"time"
)

// TestCanTransition_Closure verifies the full transition table: pending may
// only move to confirmed or cancelled, confirmed only to completed or
// cancelled, and the terminal states admit nothing.
func TestCanTransition_Closure(t *testing.T) {
	statuses := []string{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}

	allowed := map[[2]string]bool{
		{StatusPending, StatusConfirmed}:   true,
		{StatusPending, StatusCancelled}:   true,
		{StatusConfirmed, StatusCompleted}: true,
		{StatusConfirmed, StatusCancelled}: true,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			want := allowed[[2]string{from, to}]
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

// TestTransition_TutorOnly verifies that only the owning tutor may drive the
// status machine.
func TestTransition_TutorOnly(t *testing.T) {
	session := Session{TutorID: "tutor-1", StudentID: "student-1", Status: StatusPending}

	err := Transition(&session, "student-1", StatusConfirmed)
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden for student caller, got %v", err)
	}
	if session.Status != StatusPending {
		t.Errorf("status changed on rejected transition: %s", session.Status)
	}

	if err := Transition(&session, "tutor-1", StatusConfirmed); err != nil {
		t.Fatalf("tutor accept failed: %v", err)
	}
	if session.Status != StatusConfirmed {
		t.Errorf("expected confirmed, got %s", session.Status)
	}
}

// TestTransition_TerminalConflict verifies that re-transitioning a terminal
// session yields ErrConflict, and an unknown target a validation error.
func TestTransition_TerminalConflict(t *testing.T) {
	session := Session{TutorID: "tutor-1", Status: StatusCompleted}
	if err := Transition(&session, "tutor-1", StatusCancelled); !errors.Is(err, ErrConflict) {
		t.Errorf("expected ErrConflict from completed, got %v", err)
	}

	session = Session{TutorID: "tutor-1", Status: StatusPending}
	if err := Transition(&session, "tutor-1", "booked"); !IsValidation(err) {
		t.Errorf("expected validation error for unknown status, got %v", err)
	}

	// pending may not jump straight to completed
	session = Session{TutorID: "tutor-1", Status: StatusPending}
	if err := Transition(&session, "tutor-1", StatusCompleted); !errors.Is(err, ErrConflict) {
		t.Errorf("expected ErrConflict for pending to completed, got %v", err)
	}
}

// TestOverlaps verifies the half-open interval comparison: touching
// intervals do not overlap, intersecting ones do.
func TestOverlaps(t *testing.T) {
	base := time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		bStart time.Time
		bDur   int
		want   bool
	}{
		{"identical", base, 60, true},
		{"second half-hour in", base.Add(30 * time.Minute), 60, true},
		{"ends exactly at start", base.Add(-60 * time.Minute), 60, false},
		{"starts exactly at end", base.Add(60 * time.Minute), 60, false},
		{"contained", base.Add(15 * time.Minute), 30, true},
		{"disjoint later", base.Add(2 * time.Hour), 60, false},
	}

	for _, tc := range cases {
		if got := Overlaps(base, 60, tc.bStart, tc.bDur); got != tc.want {
			t.Errorf("%s: Overlaps = %v, want %v", tc.name, got, tc.want)
		}
	}
}

// TestCanCancel_CutoffBoundary checks both sides of the 24-hour cutoff,
// which is inclusive at exactly 24h.
func TestCanCancel_CutoffBoundary(t *testing.T) {
	now := time.Date(2024, 6, 9, 14, 0, 0, 0, time.UTC)

	if !CanCancel(now, now.Add(24*time.Hour)) {
		t.Error("cancellation at exactly 24h before start should succeed")
	}
	if !CanCancel(now, now.Add(25*time.Hour)) {
		t.Error("cancellation above 24h before start should succeed")
	}
	if CanCancel(now, now.Add(24*time.Hour-time.Minute)) {
		t.Error("cancellation below 24h before start should fail")
	}
}

// TestCancel_Rules verifies ownership, cutoff and terminal-state handling of
// a full cancel.
func TestCancel_Rules(t *testing.T) {
	now := time.Date(2024, 6, 9, 14, 0, 0, 0, time.UTC)
	start := now.Add(48 * time.Hour)

	session := Session{TutorID: "tutor-1", StudentID: "student-1", Status: StatusConfirmed, Date: start}
	if err := Cancel(&session, "someone-else", now); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden for outsider, got %v", err)
	}

	if err := Cancel(&session, "student-1", now); err != nil {
		t.Fatalf("student cancel failed: %v", err)
	}
	if session.Status != StatusCancelled {
		t.Errorf("expected cancelled, got %s", session.Status)
	}

	// Cancelling again conflicts.
	if err := Cancel(&session, "tutor-1", now); !errors.Is(err, ErrConflict) {
		t.Errorf("expected ErrConflict on re-cancel, got %v", err)
	}

	// Past the cutoff it's a validation error, not forbidden or conflict.
	late := Session{TutorID: "tutor-1", StudentID: "student-1", Status: StatusPending, Date: now.Add(2 * time.Hour)}
	if err := Cancel(&late, "tutor-1", now); !IsValidation(err) {
		t.Errorf("expected validation error past cutoff, got %v", err)
	}
}

// TestAttachReview_Rules verifies the review guards: completed-only, student
// owner, rating range, and one review per session.
func TestAttachReview_Rules(t *testing.T) {
	session := Session{TutorID: "tutor-1", StudentID: "student-1", Status: StatusConfirmed}
	if err := AttachReview(&session, "student-1", 5, "great"); !IsValidation(err) {
		t.Errorf("expected validation error on non-completed session, got %v", err)
	}

	session.Status = StatusCompleted
	if err := AttachReview(&session, "tutor-1", 5, "great"); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden for tutor caller, got %v", err)
	}

	if err := AttachReview(&session, "student-1", 0, "meh"); !IsValidation(err) {
		t.Errorf("expected validation error for rating 0, got %v", err)
	}
	if err := AttachReview(&session, "student-1", 6, "wow"); !IsValidation(err) {
		t.Errorf("expected validation error for rating 6, got %v", err)
	}

	if err := AttachReview(&session, "student-1", 5, "great"); err != nil {
		t.Fatalf("first review failed: %v", err)
	}
	if session.Rating == nil || *session.Rating != 5 || session.Review != "great" {
		t.Errorf("review not attached: rating=%v review=%q", session.Rating, session.Review)
	}
	if session.Status != StatusCompleted {
		t.Errorf("status must remain completed, got %s", session.Status)
	}

	if err := AttachReview(&session, "student-1", 4, "again"); !errors.Is(err, ErrConflict) {
		t.Errorf("expected ErrConflict on second review, got %v", err)
	}
}

// TestPrice_Determinism verifies price = rate * minutes / 60 exactly,
// including both duration bounds.
func TestPrice_Determinism(t *testing.T) {
	if got := Price(1000, 60); got != 1000 {
		t.Errorf("Price(1000, 60) = %v, want 1000", got)
	}
	if got := Price(1000, 90); got != 1500 {
		t.Errorf("Price(1000, 90) = %v, want 1500", got)
	}
	if got := Price(1000, MinDuration); got != 500 {
		t.Errorf("Price(1000, 30) = %v, want 500", got)
	}
	if got := Price(1000, MaxDuration); got != 8000 {
		t.Errorf("Price(1000, 480) = %v, want 8000", got)
	}
}

// TestValidDuration checks the [30,480] minute bounds.
func TestValidDuration(t *testing.T) {
	for _, d := range []int{30, 60, 480} {
		if !ValidDuration(d) {
			t.Errorf("ValidDuration(%d) = false, want true", d)
		}
	}
	for _, d := range []int{0, 29, 481, -60} {
		if ValidDuration(d) {
			t.Errorf("ValidDuration(%d) = true, want false", d)
		}
	}
}
