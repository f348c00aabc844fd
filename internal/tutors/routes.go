package tutors

import (
	"net/http"

	"github.com/TutorLink/TL-Backend/internal/auth"
	"github.com/TutorLink/TL-Backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes() http.Handler {
	r := chi.NewRouter()
	sessionFetcher := auth.SessionInfo{}

	r.Get("/", ListTutorsHandler)

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(sessionFetcher))

		r.Post("/search-history", SaveSearchHandler)
		r.Get("/search-history", SearchHistoryHandler)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RoleMiddleware(sessionFetcher, auth.RoleTutor))
			r.Get("/profile", GetMyProfileHandler)
			r.Put("/profile", UpdateProfileHandler)
		})

		r.Get("/{id}", GetTutorHandler)
	})

	return r
}
