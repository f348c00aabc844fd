package tutors

import (
	"log"

	"github.com/TutorLink/TL-Backend/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "tutors"); err != nil {
		log.Fatal("Failed to ensure schema tutors: ", err)
	}

	if err := db.DB.AutoMigrate(&TutorSearch{}); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}
}
