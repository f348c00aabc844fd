package sessions

import (
	"errors"
	"fmt"
	"time"
)

// Error taxonomy surfaced by the booking rules. Handlers map these onto
// 404 / 403 / 409 / 400.
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
	ErrConflict  = errors.New("conflict")
)

// ValidationError marks a caller mistake: malformed input, out-of-range
// values, or a cancellation past the cutoff.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// CancellationCutoff is how long before the start a booking may still be
// cancelled. The boundary is inclusive: exactly 24h out still cancels.
const CancellationCutoff = 24 * time.Hour

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func IsTerminal(status string) bool {
	return status == StatusCompleted || status == StatusCancelled
}

// CanTransition reports whether the status machine permits from -> to.
// pending -> confirmed | cancelled; confirmed -> completed | cancelled;
// completed and cancelled are terminal.
func CanTransition(from, to string) bool {
	switch from {
	case StatusPending:
		return to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusCompleted || to == StatusCancelled
	}
	return false
}

// Transition validates a tutor-driven status change and returns the error the
// handler should surface.
func Transition(s *Session, callerID, target string) error {
	if s.TutorID != callerID {
		return ErrForbidden
	}
	if !ValidStatus(target) {
		return Validationf("invalid status %q", target)
	}
	if IsTerminal(s.Status) {
		return ErrConflict
	}
	if !CanTransition(s.Status, target) {
		return ErrConflict
	}
	s.Status = target
	return nil
}

func ValidDuration(minutes int) bool {
	return minutes >= MinDuration && minutes <= MaxDuration
}

// Price derives the session price from the tutor's hourly rate and the
// duration in minutes. Computed once at booking time and stored.
func Price(hourlyRate float64, minutes int) float64 {
	return hourlyRate * float64(minutes) / 60
}

// Overlaps reports whether the half-open intervals [aStart, aStart+aDur)
// and [bStart, bStart+bDur) intersect. Durations are minutes.
func Overlaps(aStart time.Time, aDur int, bStart time.Time, bDur int) bool {
	aEnd := aStart.Add(time.Duration(aDur) * time.Minute)
	bEnd := bStart.Add(time.Duration(bDur) * time.Minute)
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// CanCancel applies the cancellation cutoff: the start must be at least
// CancellationCutoff away from now.
func CanCancel(now, start time.Time) bool {
	return !start.Before(now.Add(CancellationCutoff))
}

// Cancel validates a cancellation by the student or tutor on the session.
func Cancel(s *Session, callerID string, now time.Time) error {
	if s.TutorID != callerID && s.StudentID != callerID {
		return ErrForbidden
	}
	if IsTerminal(s.Status) {
		return ErrConflict
	}
	if !CanCancel(now, s.Date) {
		return Validationf("sessions can only be cancelled at least 24 hours before the start")
	}
	s.Status = StatusCancelled
	return nil
}

// AttachReview validates a one-time student review on a completed session.
func AttachReview(s *Session, callerID string, rating int, comment string) error {
	if s.StudentID != callerID {
		return ErrForbidden
	}
	if s.Status != StatusCompleted {
		return Validationf("can only review completed sessions")
	}
	if s.Rating != nil {
		return ErrConflict
	}
	if rating < 1 || rating > 5 {
		return Validationf("rating must be between 1 and 5")
	}
	r := rating
	s.Rating = &r
	s.Review = comment
	return nil
}
