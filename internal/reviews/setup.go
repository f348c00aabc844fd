package reviews

import (
	"log"

	"github.com/TutorLink/TL-Backend/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "reviews"); err != nil {
		log.Fatal("Failed to ensure schema reviews: ", err)
	}

	if err := db.DB.AutoMigrate(&Review{}); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}
}
