package wishlist

import (
	"log"

	"github.com/TutorLink/TL-Backend/internal/db"
)

func Init() {
	if err := db.EnsureSchema(db.DB, "wishlist"); err != nil {
		log.Fatal("Failed to ensure schema wishlist: ", err)
	}

	if err := db.DB.AutoMigrate(&Entry{}); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}
}
