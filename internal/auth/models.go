package auth

import (
	"time"

	"github.com/lib/pq"
)

const (
	RoleStudent = "student"
	RoleTutor   = "tutor"
	RoleAdmin   = "admin"
)

func ValidRole(role string) bool {
	switch role {
	case RoleStudent, RoleTutor, RoleAdmin:
		return true
	}
	return false
}

type Session struct {
	SessionID string    `gorm:"primaryKey" json:"-"`
	UserID    string    `gorm:"not null;unique" json:"-"`
	ExpiresAt time.Time `gorm:"not null"`
}

// DayWindow is a tutor's working window for one weekday, "HH:MM" strings.
// Both fields empty means the tutor did not set hours for that day.
type DayWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// WeeklyAvailability is keyed by lowercase weekday name ("monday" ... "sunday").
type WeeklyAvailability map[string]DayWindow

type TeachingPreferences struct {
	Online   bool   `json:"online"`
	InPerson bool   `json:"in_person"`
	Location string `json:"location,omitempty"`
}

// User is the single account record for students, tutors and admins.
// Tutor- and student-specific columns are simply empty for other roles;
// RegisterHandler enforces the role-specific required fields.
type User struct {
	UserID         string `gorm:"primaryKey" json:"user_id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	Password       string `json:"password,omitempty" gorm:"-"`
	HashedPassword string `json:"-"`
	Phone          string `json:"phone"`
	City           string `json:"city"`
	Role           string `gorm:"default:'student'" json:"role"`

	// Student fields
	Grade string `json:"grade,omitempty"`

	// Tutor fields
	Subjects            pq.StringArray      `gorm:"type:text[]" json:"subjects,omitempty"`
	HourlyRate          float64             `json:"hourly_rate,omitempty"`
	Education           string              `json:"education,omitempty"`
	Experience          string              `json:"experience,omitempty"`
	Bio                 string              `json:"bio,omitempty"`
	Availability        WeeklyAvailability  `gorm:"serializer:json" json:"availability,omitempty"`
	TeachingPreferences TeachingPreferences `gorm:"serializer:json" json:"teaching_preferences,omitempty"`
	Rating              float64             `json:"rating"`
	TotalReviews        int                 `json:"total_reviews"`
	ProfilePicURL       string              `json:"profile_pic_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	Session   Session   `gorm:"foreignKey:UserID" json:"-"`
}

func (Session) TableName() string { return "app_auth.sessions" }
func (User) TableName() string    { return "app_auth.users" }
