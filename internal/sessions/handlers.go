package sessions

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/TutorLink/TL-Backend/internal/auth"
	"github.com/TutorLink/TL-Backend/internal/db"
	"github.com/TutorLink/TL-Backend/internal/reviews"
	"github.com/TutorLink/TL-Backend/internal/utils"
	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"
)

// httpStatus maps a rule error onto the response code the API contract
// promises: 404 not-found, 403 forbidden, 409 conflict, 400 validation.
func httpStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case IsValidation(err):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeRuleError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), httpStatus(err))
}

func findSession(id string) (Session, error) {
	var session Session
	err := db.DB.First(&session, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return session, fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	return session, err
}

func userSummary(userID string) *UserSummary {
	if userID == "" {
		return nil
	}
	var user auth.User
	if err := db.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return nil
	}
	return &UserSummary{
		UserID:     user.UserID,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Email:      user.Email,
		City:       user.City,
		HourlyRate: user.HourlyRate,
	}
}

func sessionView(s Session) SessionView {
	return SessionView{
		Session: s,
		Tutor:   userSummary(s.TutorID),
		Student: userSummary(s.StudentID),
	}
}

type bookRequest struct {
	TutorID  string    `json:"tutorId"`
	Subject  string    `json:"subject"`
	Date     time.Time `json:"date"`
	Duration int       `json:"duration"` // minutes
	Location string    `json:"location"`
	Notes    string    `json:"notes"`
}

// BookSessionHandler creates a pending booking for the calling student.
// The overlap check and the insert share one transaction so two racing
// requests for the same tutor cannot both pass the check.
func BookSessionHandler(w http.ResponseWriter, r *http.Request) {
	studentID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input bookRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if input.TutorID == "" || input.Subject == "" || input.Date.IsZero() || input.Duration == 0 || input.Location == "" {
		http.Error(w, "Please provide all required fields", http.StatusBadRequest)
		return
	}
	if !ValidDuration(input.Duration) {
		http.Error(w, fmt.Sprintf("Duration must be between %d and %d minutes", MinDuration, MaxDuration), http.StatusBadRequest)
		return
	}

	var tutor auth.User
	err := db.DB.First(&tutor, "user_id = ? AND role = ?", input.TutorID, auth.RoleTutor).Error
	if err != nil {
		http.Error(w, "Tutor not found", http.StatusNotFound)
		return
	}

	session := Session{
		ID:        utils.GenerateUUID(),
		TutorID:   input.TutorID,
		StudentID: studentID,
		Subject:   input.Subject,
		Date:      input.Date,
		Duration:  input.Duration,
		Location:  input.Location,
		Price:     Price(tutor.HourlyRate, input.Duration),
		Status:    StatusPending,
		Notes:     input.Notes,
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		conflict, err := hasOverlap(tx, input.TutorID, input.Date, input.Duration, "")
		if err != nil {
			return err
		}
		if conflict {
			return fmt.Errorf("this time slot is already booked: %w", ErrConflict)
		}
		return tx.Create(&session).Error
	})
	if err != nil {
		if errors.Is(err, ErrConflict) {
			writeRuleError(w, err)
		} else {
			http.Error(w, "Failed to book session", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(sessionView(session))
}

// hasOverlap checks the tutor's non-cancelled sessions against the
// half-open interval [start, start+duration). Candidates are narrowed in
// SQL by the widest possible session length, then compared exactly in Go.
func hasOverlap(tx *gorm.DB, tutorID string, start time.Time, duration int, excludeID string) (bool, error) {
	end := start.Add(time.Duration(duration) * time.Minute)
	earliest := start.Add(-MaxDuration * time.Minute)

	var candidates []Session
	q := tx.Where("tutor = ? AND status <> ? AND date < ? AND date > ?",
		tutorID, StatusCancelled, end, earliest)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Find(&candidates).Error; err != nil {
		return false, err
	}

	for _, s := range candidates {
		if Overlaps(start, duration, s.Date, s.Duration) {
			return true, nil
		}
	}
	return false, nil
}

// ListSessionsHandler returns the caller's sessions, as student or tutor,
// ascending by date, with joined counterpart summaries.
func ListSessionsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var list []Session
	err := db.DB.Where("student = ? OR tutor = ?", userID, userID).
		Order("date asc").Find(&list).Error
	if err != nil {
		http.Error(w, "Error fetching sessions", http.StatusInternalServerError)
		return
	}

	views := make([]SessionView, 0, len(list))
	for _, s := range list {
		views = append(views, sessionView(s))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(views)
}

func GetSessionHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	session, err := findSession(chi.URLParam(r, "id"))
	if err != nil {
		writeRuleError(w, err)
		return
	}

	if session.TutorID != userID && session.StudentID != userID {
		var caller auth.User
		if err := db.DB.First(&caller, "user_id = ?", userID).Error; err != nil || caller.Role != auth.RoleAdmin {
			http.Error(w, "Not authorized to view this session", http.StatusForbidden)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sessionView(session))
}

// UpdateStatusHandler lets the owning tutor accept, reject or complete a
// session via the status machine.
func UpdateStatusHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	session, err := findSession(chi.URLParam(r, "id"))
	if err != nil {
		writeRuleError(w, err)
		return
	}

	if err := Transition(&session, userID, input.Status); err != nil {
		writeRuleError(w, err)
		return
	}

	if err := db.DB.Model(&session).Update("status", session.Status).Error; err != nil {
		http.Error(w, "Failed to update session status", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sessionView(session))
}

// CancelSessionHandler handles DELETE. An unbooked open slot owned by the
// caller is hard-deleted; a booking is cancelled subject to the 24h cutoff.
func CancelSessionHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	session, err := findSession(chi.URLParam(r, "id"))
	if err != nil {
		writeRuleError(w, err)
		return
	}

	if session.IsOpenSlot() {
		if session.TutorID != userID {
			http.Error(w, "Not authorized to delete this session", http.StatusForbidden)
			return
		}
		if err := db.DB.Delete(&session).Error; err != nil {
			http.Error(w, "Failed to delete session", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Session deleted successfully"})
		return
	}

	if err := Cancel(&session, userID, time.Now()); err != nil {
		writeRuleError(w, err)
		return
	}

	if err := db.DB.Model(&session).Update("status", session.Status).Error; err != nil {
		http.Error(w, "Failed to cancel session", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Session cancelled successfully"})
}

// ReviewSessionHandler attaches the student's one-time rating/review to a
// completed session, writes the ledger entry and refreshes the tutor's
// average rating.
func ReviewSessionHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		Rating int    `json:"rating"`
		Review string `json:"review"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	session, err := findSession(chi.URLParam(r, "id"))
	if err != nil {
		writeRuleError(w, err)
		return
	}

	if err := AttachReview(&session, userID, input.Rating, input.Review); err != nil {
		writeRuleError(w, err)
		return
	}

	ledger := reviews.Review{
		ID:        utils.GenerateUUID(),
		SessionID: session.ID,
		StudentID: session.StudentID,
		TutorID:   session.TutorID,
		Rating:    input.Rating,
		Comment:   input.Review,
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&session).Updates(map[string]interface{}{
			"rating": session.Rating,
			"review": session.Review,
		}).Error; err != nil {
			return err
		}
		return tx.Create(&ledger).Error
	})
	if err != nil {
		if db.IsUniqueViolation(err) {
			http.Error(w, "Review already exists for this session", http.StatusConflict)
		} else {
			http.Error(w, "Failed to save review", http.StatusInternalServerError)
		}
		return
	}

	if err := reviews.RecalcTutorRating(session.TutorID); err != nil {
		// Rating refresh is best-effort; the review itself is saved.
		fmt.Println("Failed to recalc tutor rating:", err)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sessionView(session))
}

// AvailabilityHandler lists a tutor's open hour-aligned slots for one date.
func AvailabilityHandler(w http.ResponseWriter, r *http.Request) {
	tutorID := chi.URLParam(r, "tutorId")

	var tutor auth.User
	err := db.DB.First(&tutor, "user_id = ? AND role = ?", tutorID, auth.RoleTutor).Error
	if err != nil {
		http.Error(w, "Tutor not found", http.StatusNotFound)
		return
	}

	date, err := time.ParseInLocation("2006-01-02", r.URL.Query().Get("date"), time.Local)
	if err != nil {
		http.Error(w, "Invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	startOfDay := date
	endOfDay := date.AddDate(0, 0, 1)

	var booked []Session
	err = db.DB.Where("tutor = ? AND status <> ? AND date >= ? AND date < ?",
		tutorID, StatusCancelled, startOfDay, endOfDay).Find(&booked).Error
	if err != nil {
		http.Error(w, "Error checking availability", http.StatusInternalServerError)
		return
	}

	slots := AvailableSlots(date, tutor.Availability[WeekdayKey(date)], booked)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(slots)
}

// EarningsHandler reports the calling tutor's derived earnings. Recomputed
// per request, never persisted.
func EarningsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var completed []Session
	err := db.DB.Where("tutor = ? AND status = ?", userID, StatusCompleted).Find(&completed).Error
	if err != nil {
		http.Error(w, "Error fetching earnings", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ComputeEarnings(completed, time.Now()))
}
