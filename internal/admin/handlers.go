package admin

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/TutorLink/TL-Backend/internal/auth"
	"github.com/TutorLink/TL-Backend/internal/db"
	"github.com/TutorLink/TL-Backend/internal/reviews"
	"github.com/TutorLink/TL-Backend/internal/sessions"
	"github.com/TutorLink/TL-Backend/internal/tutors"
	"github.com/TutorLink/TL-Backend/internal/wishlist"
	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"
)

func UsersHandler(w http.ResponseWriter, r *http.Request) {
	var users []auth.User
	if err := db.DB.Order("created_at desc").Find(&users).Error; err != nil {
		http.Error(w, "Error fetching users", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(users)
}

type platformStats struct {
	TotalStudents int64 `json:"totalStudents"`
	TotalTutors   int64 `json:"totalTutors"`
	TotalSessions int64 `json:"totalSessions"`
	TotalReviews  int64 `json:"totalReviews"`
}

func StatsHandler(w http.ResponseWriter, r *http.Request) {
	var stats platformStats

	db.DB.Model(&auth.User{}).Where("role = ?", auth.RoleStudent).Count(&stats.TotalStudents)
	db.DB.Model(&auth.User{}).Where("role = ?", auth.RoleTutor).Count(&stats.TotalTutors)
	db.DB.Model(&sessions.Session{}).Count(&stats.TotalSessions)
	db.DB.Model(&reviews.Review{}).Count(&stats.TotalReviews)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

func UpdateRoleHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || !auth.ValidRole(input.Role) {
		http.Error(w, "Role must be one of student, tutor or admin", http.StatusBadRequest)
		return
	}

	var user auth.User
	err := db.DB.First(&user, "user_id = ?", chi.URLParam(r, "id")).Error
	if err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	if err := db.DB.Model(&user).Update("role", input.Role).Error; err != nil {
		http.Error(w, "Failed to update role", http.StatusInternalServerError)
		return
	}
	user.Role = input.Role

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}

// DeleteUserHandler removes an account and everything hanging off it:
// sessions either side, reviews either side, wishlist entries, search
// history, and the login session.
func DeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	var user auth.User
	err := db.DB.First(&user, "user_id = ?", chi.URLParam(r, "id")).Error
	if err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		steps := []*gorm.DB{
			tx.Where("tutor = ? OR student = ?", user.UserID, user.UserID).Delete(&sessions.Session{}),
			tx.Where("tutor = ? OR student = ?", user.UserID, user.UserID).Delete(&reviews.Review{}),
			tx.Where("student = ? OR tutor = ?", user.UserID, user.UserID).Delete(&wishlist.Entry{}),
			tx.Where("student = ?", user.UserID).Delete(&tutors.TutorSearch{}),
			tx.Where("user_id = ?", user.UserID).Delete(&auth.Session{}),
			tx.Delete(&user),
		}
		for _, step := range steps {
			if step.Error != nil {
				return step.Error
			}
		}
		return nil
	})
	if err != nil {
		http.Error(w, "Failed to delete user", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "User deleted successfully"})
}

func SessionsHandler(w http.ResponseWriter, r *http.Request) {
	var list []sessions.Session
	if err := db.DB.Order("date asc").Find(&list).Error; err != nil {
		http.Error(w, "Error fetching sessions", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

func ReviewsHandler(w http.ResponseWriter, r *http.Request) {
	var list []reviews.Review
	if err := db.DB.Order("created_at desc").Find(&list).Error; err != nil {
		http.Error(w, "Error fetching reviews", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// DeleteReviewHandler is the moderation path: unlike the student-owned
// delete it skips the ownership check but still fixes the mirror and the
// tutor average.
func DeleteReviewHandler(w http.ResponseWriter, r *http.Request) {
	var review reviews.Review
	err := db.DB.First(&review, "id = ?", chi.URLParam(r, "id")).Error
	if err != nil {
		http.Error(w, "Review not found", http.StatusNotFound)
		return
	}

	if err := db.DB.Delete(&review).Error; err != nil {
		http.Error(w, "Failed to delete review", http.StatusInternalServerError)
		return
	}

	db.DB.Model(&sessions.Session{}).Where("id = ?", review.SessionID).
		Updates(map[string]interface{}{"rating": nil, "review": ""})
	if err := reviews.RecalcTutorRating(review.TutorID); err != nil {
		log.Println("Failed to recalc tutor rating:", err)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Review deleted successfully"})
}
