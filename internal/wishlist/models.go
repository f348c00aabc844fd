package wishlist

import "time"

// Entry is one favorited tutor for one student. The composite unique index
// guarantees no duplicates per (student, tutor) pair.
type Entry struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	StudentID string    `gorm:"column:student;uniqueIndex:idx_wishlist_student_tutor" json:"student"`
	TutorID   string    `gorm:"column:tutor;uniqueIndex:idx_wishlist_student_tutor" json:"tutor"`
	CreatedAt time.Time `json:"created_at"`
}

func (Entry) TableName() string { return "wishlist.entries" }
