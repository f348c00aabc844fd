package reviews

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/TutorLink/TL-Backend/internal/db"
	"github.com/TutorLink/TL-Backend/internal/utils"
	"github.com/go-chi/chi/v5"
)

// mirrorOntoSession keeps the session row's rating/review pair in sync with
// the ledger. The sessions table belongs to the sessions package; a raw
// update avoids an import cycle between the two.
func mirrorOntoSession(sessionID string, rating *int, comment string) error {
	return db.DB.Exec(
		`UPDATE "sessions"."sessions" SET rating = ?, review = ? WHERE id = ?`,
		rating, comment, sessionID,
	).Error
}

func GetReviewHandler(w http.ResponseWriter, r *http.Request) {
	var review Review
	err := db.DB.First(&review, "id = ?", chi.URLParam(r, "id")).Error
	if err != nil {
		http.Error(w, "Review not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(review)
}

// TutorReviewsHandler lists all ledger entries for one tutor, newest first.
func TutorReviewsHandler(w http.ResponseWriter, r *http.Request) {
	var list []Review
	err := db.DB.Where("tutor = ?", chi.URLParam(r, "tutorId")).
		Order("created_at desc").Find(&list).Error
	if err != nil {
		http.Error(w, "Error fetching reviews", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// UpdateReviewHandler lets the authoring student revise rating/comment.
// The session mirror and the tutor's average follow the ledger.
func UpdateReviewHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if input.Rating < 1 || input.Rating > 5 {
		http.Error(w, "Rating must be between 1 and 5", http.StatusBadRequest)
		return
	}

	var review Review
	err := db.DB.First(&review, "id = ?", chi.URLParam(r, "id")).Error
	if err != nil {
		http.Error(w, "Review not found", http.StatusNotFound)
		return
	}

	if review.StudentID != userID {
		http.Error(w, "Not authorized to update this review", http.StatusForbidden)
		return
	}

	review.Rating = input.Rating
	review.Comment = input.Comment
	if err := db.DB.Save(&review).Error; err != nil {
		http.Error(w, "Failed to update review", http.StatusInternalServerError)
		return
	}

	if err := mirrorOntoSession(review.SessionID, &review.Rating, review.Comment); err != nil {
		log.Println("Failed to mirror review onto session:", err)
	}
	if err := RecalcTutorRating(review.TutorID); err != nil {
		log.Println("Failed to recalc tutor rating:", err)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(review)
}

// DeleteReviewHandler removes the student's review and clears the mirrored
// pair on the session.
func DeleteReviewHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var review Review
	err := db.DB.First(&review, "id = ?", chi.URLParam(r, "id")).Error
	if err != nil {
		http.Error(w, "Review not found", http.StatusNotFound)
		return
	}

	if review.StudentID != userID {
		http.Error(w, "Not authorized to delete this review", http.StatusForbidden)
		return
	}

	if err := db.DB.Delete(&review).Error; err != nil {
		http.Error(w, "Failed to delete review", http.StatusInternalServerError)
		return
	}

	if err := mirrorOntoSession(review.SessionID, nil, ""); err != nil {
		log.Println("Failed to clear review on session:", err)
	}
	if err := RecalcTutorRating(review.TutorID); err != nil {
		log.Println("Failed to recalc tutor rating:", err)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Review deleted successfully"})
}
