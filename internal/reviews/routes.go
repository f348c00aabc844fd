package reviews

import (
	"net/http"

	"github.com/TutorLink/TL-Backend/internal/auth"
	"github.com/TutorLink/TL-Backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()
	sessionFetcher := auth.SessionInfo{}

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(sessionFetcher))
		r.Get("/tutor/{tutorId}", TutorReviewsHandler)
		r.Get("/{id}", GetReviewHandler)
		r.Put("/{id}", UpdateReviewHandler)
		r.Delete("/{id}", DeleteReviewHandler)
	})

	return r
}
