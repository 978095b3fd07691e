// internal/app/features/requests/routes.go
package requests

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the collection request endpoints,
// meant to be mounted under /requests.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Get("/{requestID}", h.ServeView)
	r.Post("/{requestID}/status", h.ServeSetStatus)
	r.Delete("/{requestID}", h.ServeDelete)
	return r
}
