package main

import (
	"flag"
	"log"

	"github.com/TutorLink/TL-Backend/internal/auth"
	"github.com/TutorLink/TL-Backend/internal/db"
	"github.com/TutorLink/TL-Backend/internal/reviews"
	"github.com/TutorLink/TL-Backend/internal/seeds"
	"github.com/TutorLink/TL-Backend/internal/sessions"
	"github.com/TutorLink/TL-Backend/internal/tutors"
	"github.com/TutorLink/TL-Backend/internal/wishlist"
	"github.com/joho/godotenv"
)

func main() {
	fixtures := flag.String("fixtures", "seeds/fixtures.yaml", "path to the YAML fixture file")
	flag.Parse()

	_ = godotenv.Load(".env.local")
	db.Connect()

	auth.Init()
	tutors.Init()
	sessions.Init()
	reviews.Init()
	wishlist.Init()

	if err := seeds.SeedAll(*fixtures); err != nil {
		log.Fatal("Seeding failed: ", err)
	}
	log.Println("Seeding complete")
}
