package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/TutorLink/TL-Backend/internal/admin"
	"github.com/TutorLink/TL-Backend/internal/auth"
	"github.com/TutorLink/TL-Backend/internal/db"
	"github.com/TutorLink/TL-Backend/internal/middleware"
	"github.com/TutorLink/TL-Backend/internal/reviews"
	"github.com/TutorLink/TL-Backend/internal/sessions"
	"github.com/TutorLink/TL-Backend/internal/tutors"
	"github.com/TutorLink/TL-Backend/internal/wishlist"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	response := "Server is up!"
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, response)
}

func main() {
	_ = godotenv.Load(".env.local")
	db.Connect()

	port := os.Getenv("PORT")
	if port == "" {
		port = "5050"
	}

	auth.Init()
	tutors.Init()
	sessions.Init()
	reviews.Init()
	wishlist.Init()

	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)
	r.Get("/", RootHandler)

	r.Mount("/auth", auth.SetupRoutes())
	r.Mount("/tutors", tutors.SetupRoutes())
	r.Mount("/sessions", sessions.SetupRoutes())
	r.Mount("/tutor", sessions.SetupTutorRoutes())
	r.Mount("/reviews", reviews.SetupRoutes())
	r.Mount("/wishlist", wishlist.SetupRoutes())
	r.Mount("/admin", admin.SetupRoutes())

	fmt.Println("Server listening on port :" + port + "...")

	http.ListenAndServe("0.0.0.0:"+port, r)
}
