// internal/app/features/collectors/routes.go
package collectors

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter for the collector management endpoints,
// meant to be mounted under /collectors.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Get("/{collectorID}", h.ServeView)
	r.Post("/{collectorID}/status", h.ServeSetStatus)
	r.Post("/{collectorID}/verify", h.ServeSetVerified)
	r.Delete("/{collectorID}", h.ServeDelete)
	return r
}
