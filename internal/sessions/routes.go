package sessions

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

		r.Get("/", ListSessionsHandler)
		r.Get("/availability/{tutorId}", AvailabilityHandler)
		r.Get("/{id}", GetSessionHandler)
		r.Patch("/{id}/status", UpdateStatusHandler)
		r.Delete("/{id}", CancelSessionHandler)
		r.Post("/{id}/review", ReviewSessionHandler)

		r.With(middleware.RoleMiddleware(sessionFetcher, auth.RoleStudent)).
			Post("/book", BookSessionHandler)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RoleMiddleware(sessionFetcher, auth.RoleTutor))
			r.Post("/", CreateSlotHandler)
			r.Put("/{id}", UpdateSlotHandler)
		})
	})

	return r
}

// SetupTutorRoutes serves the /tutor prefix (currently just earnings).
func SetupTutorRoutes() http.Handler {
	r := chi.NewRouter()
	sessionFetcher := auth.SessionInfo{}

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionMiddleware(sessionFetcher))
		r.Use(middleware.RoleMiddleware(sessionFetcher, auth.RoleTutor))
		r.Get("/earnings", EarningsHandler)
	})

	return r
}
