package sessions

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/TutorLink/TL-Backend/internal/auth"
	"github.com/TutorLink/TL-Backend/internal/db"
	"github.com/TutorLink/TL-Backend/internal/utils"
	"github.com/go-chi/chi/v5"
)

type slotRequest struct {
	Subject  string    `json:"subject"`
	Date     time.Time `json:"date"`
	Duration int       `json:"duration"` // minutes
	Location string    `json:"location"`
	Notes    string    `json:"notes"`
}

// CreateSlotHandler lets a tutor publish an open slot: a session with no
// student attached yet. Price is derived from the tutor's own rate so the
// amount is fixed the moment a student books it.
func CreateSlotHandler(w http.ResponseWriter, r *http.Request) {
	tutorID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input slotRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if input.Subject == "" || input.Date.IsZero() || input.Duration == 0 || input.Location == "" {
		http.Error(w, "Please provide all required fields", http.StatusBadRequest)
		return
	}
	if !ValidDuration(input.Duration) {
		http.Error(w, fmt.Sprintf("Duration must be between %d and %d minutes", MinDuration, MaxDuration), http.StatusBadRequest)
		return
	}
	if input.Date.Before(time.Now()) {
		http.Error(w, "Session date and time must be in the future", http.StatusBadRequest)
		return
	}

	var tutor auth.User
	if err := db.DB.First(&tutor, "user_id = ?", tutorID).Error; err != nil {
		http.Error(w, "Tutor not found", http.StatusNotFound)
		return
	}

	session := Session{
		ID:       utils.GenerateUUID(),
		TutorID:  tutorID,
		Subject:  input.Subject,
		Date:     input.Date,
		Duration: input.Duration,
		Location: input.Location,
		Price:    Price(tutor.HourlyRate, input.Duration),
		Status:   StatusPending,
		Notes:    input.Notes,
	}

	if err := db.DB.Create(&session).Error; err != nil {
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(session)
}

// UpdateSlotHandler edits an unbooked slot. Tutor, student and status are
// immutable here; the booking flow owns those.
func UpdateSlotHandler(w http.ResponseWriter, r *http.Request) {
	tutorID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	session, err := findSession(chi.URLParam(r, "id"))
	if err != nil {
		writeRuleError(w, err)
		return
	}

	if session.TutorID != tutorID {
		http.Error(w, "Not authorized to update this session", http.StatusForbidden)
		return
	}
	if !session.IsOpenSlot() {
		http.Error(w, "Cannot edit a booked session", http.StatusConflict)
		return
	}

	var input slotRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if input.Subject != "" {
		session.Subject = input.Subject
	}
	if !input.Date.IsZero() {
		if input.Date.Before(time.Now()) {
			http.Error(w, "Session date and time must be in the future", http.StatusBadRequest)
			return
		}
		session.Date = input.Date
	}
	if input.Duration != 0 {
		if !ValidDuration(input.Duration) {
			http.Error(w, fmt.Sprintf("Duration must be between %d and %d minutes", MinDuration, MaxDuration), http.StatusBadRequest)
			return
		}
		session.Duration = input.Duration

		var tutor auth.User
		if err := db.DB.First(&tutor, "user_id = ?", tutorID).Error; err == nil {
			session.Price = Price(tutor.HourlyRate, input.Duration)
		}
	}
	if input.Location != "" {
		session.Location = input.Location
	}
	if input.Notes != "" {
		session.Notes = input.Notes
	}

	if err := db.DB.Save(&session).Error; err != nil {
		http.Error(w, "Failed to update session", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(session)
}
