package reviews

import (
	"time"

	"github.com/TutorLink/TL-Backend/internal/auth"
	"github.com/TutorLink/TL-Backend/internal/db"
)

// Review is the standalone ledger entry, one per completed session. The
// session row carries a mirrored rating/review pair; the unique index on
// SessionID is what enforces one-review-per-session at the storage layer.
type Review struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	SessionID string    `gorm:"column:session;uniqueIndex;not null" json:"session"`
	StudentID string    `gorm:"column:student;index" json:"student"`
	TutorID   string    `gorm:"column:tutor;index" json:"tutor"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Review) TableName() string { return "reviews.reviews" }

// RecalcTutorRating recomputes the tutor's average rating and review count
// from the ledger and persists them on the account.
func RecalcTutorRating(tutorID string) error {
	var result struct {
		Avg   float64
		Count int64
	}
	err := db.DB.Model(&Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("tutor = ?", tutorID).
		Scan(&result).Error
	if err != nil {
		return err
	}

	return db.DB.Model(&auth.User{}).Where("user_id = ?", tutorID).Updates(map[string]interface{}{
		"rating":        result.Avg,
		"total_reviews": result.Count,
	}).Error
}
