package sessions

import "time"

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Duration bounds in minutes.
const (
	MinDuration = 30
	MaxDuration = 480
)

// Session is one tutoring engagement. A row with an empty Student column is
// an open slot the tutor published; once a student is attached it is a
// booking governed by the status machine in rules.go.
type Session struct {
	ID        string    `gorm:"primaryKey" json:"_id"`
	TutorID   string    `gorm:"column:tutor;index:idx_sessions_tutor_date" json:"tutor"`
	StudentID string    `gorm:"column:student;index" json:"student,omitempty"`
	Subject   string    `gorm:"not null" json:"subject"`
	Date      time.Time `gorm:"index:idx_sessions_tutor_date" json:"date"`
	Duration  int       `gorm:"not null" json:"duration"` // minutes
	Location  string    `json:"location"`
	Price     float64   `json:"price"`
	Status    string    `gorm:"default:'pending';index" json:"status"`
	Notes     string    `json:"notes,omitempty"`
	Rating    *int      `json:"rating,omitempty"` // 1..5, set once after completion
	Review    string    `json:"review,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Session) TableName() string { return "sessions.sessions" }

// IsOpenSlot reports whether no student has booked the session yet.
func (s Session) IsOpenSlot() bool { return s.StudentID == "" }

// UserSummary is the joined counterpart info returned with session listings.
type UserSummary struct {
	UserID     string  `json:"user_id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Email      string  `json:"email"`
	City       string  `json:"city,omitempty"`
	HourlyRate float64 `json:"hourly_rate,omitempty"`
}

// SessionView is a Session plus joined tutor/student summaries.
type SessionView struct {
	Session
	Tutor   *UserSummary `json:"tutor_info,omitempty"`
	Student *UserSummary `json:"student_info,omitempty"`
}
