package admin

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
		r.Use(middleware.AdminMiddleware(sessionFetcher))

		r.Get("/users", UsersHandler)
		r.Get("/stats", StatsHandler)
		r.Patch("/users/{id}/role", UpdateRoleHandler)
		r.Delete("/users/{id}", DeleteUserHandler)
		r.Get("/sessions", SessionsHandler)
		r.Get("/reviews", ReviewsHandler)
		r.Delete("/reviews/{id}", DeleteReviewHandler)
	})

	return r
}
