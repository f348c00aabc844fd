package seeds

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/TutorLink/TL-Backend/internal/auth"
	"github.com/TutorLink/TL-Backend/internal/db"
	"github.com/TutorLink/TL-Backend/internal/sessions"
	"github.com/TutorLink/TL-Backend/internal/utils"
	"github.com/goccy/go-yaml"
	"golang.org/x/crypto/bcrypt"
)

// Fixtures is the shape of the YAML seed file.
type Fixtures struct {
	Users    []UserFixture    `yaml:"users"`
	Sessions []SessionFixture `yaml:"sessions"`
}

type UserFixture struct {
	FirstName    string                  `yaml:"first_name"`
	LastName     string                  `yaml:"last_name"`
	Email        string                  `yaml:"email"`
	Password     string                  `yaml:"password"`
	Phone        string                  `yaml:"phone"`
	City         string                  `yaml:"city"`
	Role         string                  `yaml:"role"`
	Grade        string                  `yaml:"grade"`
	Subjects     []string                `yaml:"subjects"`
	HourlyRate   float64                 `yaml:"hourly_rate"`
	Education    string                  `yaml:"education"`
	Experience   string                  `yaml:"experience"`
	Bio          string                  `yaml:"bio"`
	Availability auth.WeeklyAvailability `yaml:"availability"`
}

type SessionFixture struct {
	TutorEmail   string `yaml:"tutor_email"`
	StudentEmail string `yaml:"student_email"`
	Subject      string `yaml:"subject"`
	Date         string `yaml:"date"` // RFC 3339
	Duration     int    `yaml:"duration"`
	Location     string `yaml:"location"`
	Status       string `yaml:"status"`
	Rating       *int   `yaml:"rating"`
	Review       string `yaml:"review"`
}

// SeedAll loads the fixture file and inserts any users/sessions that are
// not already present. Users are matched by email, so reruns are safe.
func SeedAll(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read fixtures: %w", err)
	}

	var fixtures Fixtures
	if err := yaml.Unmarshal(raw, &fixtures); err != nil {
		return fmt.Errorf("parse fixtures: %w", err)
	}

	idsByEmail := map[string]string{}
	ratesByEmail := map[string]float64{}

	for _, f := range fixtures.Users {
		var existing auth.User
		err := db.DB.First(&existing, "email = ?", f.Email).Error
		if err == nil {
			idsByEmail[f.Email] = existing.UserID
			ratesByEmail[f.Email] = existing.HourlyRate
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(f.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", f.Email, err)
		}

		user := auth.User{
			UserID:         utils.GenerateUUID(),
			FirstName:      f.FirstName,
			LastName:       f.LastName,
			Email:          f.Email,
			HashedPassword: string(hashed),
			Phone:          f.Phone,
			City:           f.City,
			Role:           f.Role,
			Grade:          f.Grade,
			Subjects:       f.Subjects,
			HourlyRate:     f.HourlyRate,
			Education:      f.Education,
			Experience:     f.Experience,
			Bio:            f.Bio,
			Availability:   f.Availability,
		}
		if err := db.DB.Create(&user).Error; err != nil {
			return fmt.Errorf("create user %s: %w", f.Email, err)
		}
		idsByEmail[f.Email] = user.UserID
		ratesByEmail[f.Email] = user.HourlyRate
		log.Println("Seeded user", f.Email)
	}

	for _, f := range fixtures.Sessions {
		tutorID, ok := idsByEmail[f.TutorEmail]
		if !ok {
			return fmt.Errorf("session references unknown tutor %s", f.TutorEmail)
		}
		studentID := idsByEmail[f.StudentEmail]

		date, err := time.Parse(time.RFC3339, f.Date)
		if err != nil {
			return fmt.Errorf("parse session date %q: %w", f.Date, err)
		}

		var count int64
		db.DB.Model(&sessions.Session{}).
			Where("tutor = ? AND date = ?", tutorID, date).Count(&count)
		if count > 0 {
			continue
		}

		session := sessions.Session{
			ID:        utils.GenerateUUID(),
			TutorID:   tutorID,
			StudentID: studentID,
			Subject:   f.Subject,
			Date:      date,
			Duration:  f.Duration,
			Location:  f.Location,
			Price:     sessions.Price(ratesByEmail[f.TutorEmail], f.Duration),
			Status:    f.Status,
			Rating:    f.Rating,
			Review:    f.Review,
		}
		if err := db.DB.Create(&session).Error; err != nil {
			return fmt.Errorf("create session for %s: %w", f.TutorEmail, err)
		}
		log.Println("Seeded session", f.Subject, "on", f.Date)
	}

	return nil
}
