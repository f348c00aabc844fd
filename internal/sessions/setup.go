package sessions

import (
	"log"

	"github.com/TutorLink/TL-Backend/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "sessions"); err != nil {
		log.Fatal("Failed to ensure schema sessions: ", err)
	}

	if err := db.DB.AutoMigrate(&Session{}); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}
}
