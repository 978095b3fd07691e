// internal/app/features/ratings/routes.go
package ratings

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the rating endpoints, meant to be
// mounted under /ratings.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Post("/", h.ServeCreate)
	r.Delete("/{ratingID}", h.ServeDelete)
	return r
}
