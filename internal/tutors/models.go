package tutors

import (
	"time"

	"github.com/lib/pq"
)

// SearchFilters are the criteria a student searched with. Stored verbatim
// for the history view; nothing else reads them back.
type SearchFilters struct {
	Subject  string  `json:"subject,omitempty"`
	City     string  `json:"city,omitempty"`
	MinPrice float64 `json:"min_price,omitempty"`
	MaxPrice float64 `json:"max_price,omitempty"`
	Rating   float64 `json:"rating,omitempty"`
}

// TutorSearch is one entry in a student's append-only search history.
type TutorSearch struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	StudentID string         `gorm:"column:student;index" json:"student"`
	Filters   SearchFilters  `gorm:"serializer:json" json:"filters"`
	Results   pq.StringArray `gorm:"type:text[]" json:"results"` // matched tutor ids
	CreatedAt time.Time      `json:"created_at"`
}

func (TutorSearch) TableName() string { return "tutors.searches" }
