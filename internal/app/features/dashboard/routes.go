// internal/app/features/dashboard/routes.go
package dashboard

import "github.com/go-chi/chi/v5"

// Routes returns the router for the dashboard endpoints. Everything here
// is read-only: each endpoint recomputes its numbers from the current
// record state.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/overview", h.ServeOverview)
	r.Get("/trend", h.ServeTrend)
	r.Get("/categories", h.ServeCategories)
	r.Get("/leaderboard", h.ServeLeaderboard)
	return r
}
