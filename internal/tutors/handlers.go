package tutors

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/TutorLink/TL-Backend/internal/auth"
	"github.com/TutorLink/TL-Backend/internal/db"
	"github.com/TutorLink/TL-Backend/internal/utils"
	"github.com/go-chi/chi/v5"
)

// ListTutorsHandler lists tutor accounts, optionally filtered by subject,
// city and maximum hourly rate.
func ListTutorsHandler(w http.ResponseWriter, r *http.Request) {
	q := db.DB.Where("role = ?", auth.RoleTutor)

	if subject := r.URL.Query().Get("subject"); subject != "" {
		q = q.Where("? = ANY(subjects)", NormalizeSubject(subject))
	}
	if city := r.URL.Query().Get("city"); city != "" {
		q = q.Where("city ILIKE ?", city)
	}
	if maxRate := r.URL.Query().Get("max_rate"); maxRate != "" {
		rate, err := strconv.ParseFloat(maxRate, 64)
		if err != nil {
			http.Error(w, "Invalid max_rate", http.StatusBadRequest)
			return
		}
		q = q.Where("hourly_rate <= ?", rate)
	}

	var tutors []auth.User
	if err := q.Order("rating desc").Find(&tutors).Error; err != nil {
		http.Error(w, "Error fetching tutors", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tutors)
}

func GetTutorHandler(w http.ResponseWriter, r *http.Request) {
	var tutor auth.User
	err := db.DB.First(&tutor, "user_id = ? AND role = ?", chi.URLParam(r, "id"), auth.RoleTutor).Error
	if err != nil {
		http.Error(w, "Tutor not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tutor)
}

func GetMyProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var tutor auth.User
	err := db.DB.First(&tutor, "user_id = ?", userID).Error
	if err != nil {
		http.Error(w, "Tutor not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tutor)
}

type profileUpdate struct {
	Subjects            []string                 `json:"subjects"`
	HourlyRate          *float64                 `json:"hourly_rate"`
	Education           *string                  `json:"education"`
	Experience          *string                  `json:"experience"`
	Bio                 *string                  `json:"bio"`
	Availability        auth.WeeklyAvailability  `json:"availability"`
	TeachingPreferences *auth.TeachingPreferences `json:"teaching_preferences"`
}

// UpdateProfileHandler updates the calling tutor's teaching profile.
// Subjects are normalized so search and earnings grouping see one spelling.
func UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var tutor auth.User
	err := db.DB.First(&tutor, "user_id = ?", userID).Error
	if err != nil {
		http.Error(w, "Tutor not found", http.StatusNotFound)
		return
	}

	var input profileUpdate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if input.Subjects != nil {
		subjects := NormalizeSubjects(input.Subjects)
		if len(subjects) == 0 {
			http.Error(w, "At least one subject is required", http.StatusBadRequest)
			return
		}
		tutor.Subjects = subjects
	}
	if input.HourlyRate != nil {
		if *input.HourlyRate <= 0 {
			http.Error(w, "Hourly rate must be positive", http.StatusBadRequest)
			return
		}
		tutor.HourlyRate = *input.HourlyRate
	}
	if input.Education != nil {
		tutor.Education = *input.Education
	}
	if input.Experience != nil {
		tutor.Experience = *input.Experience
	}
	if input.Bio != nil {
		tutor.Bio = *input.Bio
	}
	if input.Availability != nil {
		tutor.Availability = input.Availability
	}
	if input.TeachingPreferences != nil {
		if input.TeachingPreferences.InPerson && input.TeachingPreferences.Location == "" {
			http.Error(w, "Location is required for in-person tutoring", http.StatusBadRequest)
			return
		}
		tutor.TeachingPreferences = *input.TeachingPreferences
	}

	if err := db.DB.Save(&tutor).Error; err != nil {
		http.Error(w, "Failed to update profile", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tutor)
}

// SaveSearchHandler appends one entry to the caller's search history.
func SaveSearchHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		Filters SearchFilters `json:"filters"`
		Results []string      `json:"results"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	search := TutorSearch{
		ID:        utils.GenerateUUID(),
		StudentID: userID,
		Filters:   input.Filters,
		Results:   input.Results,
	}
	if err := db.DB.Create(&search).Error; err != nil {
		http.Error(w, "Failed to save search", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(search)
}

// SearchHistoryHandler returns the caller's search history, newest first.
func SearchHistoryHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var history []TutorSearch
	err := db.DB.Where("student = ?", userID).Order("created_at desc").Find(&history).Error
	if err != nil {
		http.Error(w, "Error fetching search history", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(history)
}
