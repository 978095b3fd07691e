// internal/app/features/users/routes.go
package users

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the user management endpoints,
// meant to be mounted under /users.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Get("/{userID}", h.ServeView)
	r.Post("/{userID}/status", h.ServeSetStatus)
	r.Delete("/{userID}", h.ServeDelete)
	return r
}
