package wishlist

import (
	"encoding/json"
	"net/http"

	"github.com/TutorLink/TL-Backend/internal/auth"
	"github.com/TutorLink/TL-Backend/internal/db"
	"github.com/TutorLink/TL-Backend/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/lib/pq"
)

// TutorSummary is what a wishlist listing shows per favorited tutor.
type TutorSummary struct {
	UserID     string         `json:"user_id"`
	FirstName  string         `json:"first_name"`
	LastName   string         `json:"last_name"`
	Email      string         `json:"email"`
	City       string         `json:"city"`
	Subjects   pq.StringArray `gorm:"type:text[]" json:"subjects"`
	HourlyRate float64        `json:"hourly_rate"`
	Rating     float64        `json:"rating"`
}

type entryView struct {
	Entry
	Tutor *TutorSummary `json:"tutor_info,omitempty"`
}

func tutorSummary(tutorID string) *TutorSummary {
	var tutor auth.User
	if err := db.DB.First(&tutor, "user_id = ?", tutorID).Error; err != nil {
		return nil
	}
	return &TutorSummary{
		UserID:     tutor.UserID,
		FirstName:  tutor.FirstName,
		LastName:   tutor.LastName,
		Email:      tutor.Email,
		City:       tutor.City,
		Subjects:   tutor.Subjects,
		HourlyRate: tutor.HourlyRate,
		Rating:     tutor.Rating,
	}
}

func GetWishlistHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var entries []Entry
	err := db.DB.Where("student = ?", userID).Order("created_at desc").Find(&entries).Error
	if err != nil {
		http.Error(w, "Error fetching wishlist", http.StatusInternalServerError)
		return
	}

	views := make([]entryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, entryView{Entry: e, Tutor: tutorSummary(e.TutorID)})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(views)
}

func AddToWishlistHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		TutorID string `json:"tutorId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.TutorID == "" {
		http.Error(w, "tutorId is required", http.StatusBadRequest)
		return
	}

	var tutor auth.User
	err := db.DB.First(&tutor, "user_id = ? AND role = ?", input.TutorID, auth.RoleTutor).Error
	if err != nil {
		http.Error(w, "Tutor not found", http.StatusNotFound)
		return
	}

	entry := Entry{
		ID:        utils.GenerateUUID(),
		StudentID: userID,
		TutorID:   input.TutorID,
	}
	if err := db.DB.Create(&entry).Error; err != nil {
		if db.IsUniqueViolation(err) {
			http.Error(w, "Tutor already in wishlist", http.StatusConflict)
		} else {
			http.Error(w, "Error adding to wishlist", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(entryView{Entry: entry, Tutor: tutorSummary(entry.TutorID)})
}

func RemoveFromWishlistHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	tutorID := chi.URLParam(r, "tutorId")

	result := db.DB.Where("student = ? AND tutor = ?", userID, tutorID).Delete(&Entry{})
	if result.Error != nil {
		http.Error(w, "Error removing from wishlist", http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "Wishlist item not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Removed from wishlist"})
}
