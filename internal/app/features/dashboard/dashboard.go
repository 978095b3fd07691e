// internal/app/features/dashboard/dashboard.go
package dashboard

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/dalemusser/recyclehub/internal/app/insights"
	"github.com/dalemusser/recyclehub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
)

// defaultTrendMonths is the window the monthly-trend chart shows.
const defaultTrendMonths = 6

// ServeOverview returns the system-wide stat set.
// GET /dashboard/overview
func (h *Handler) ServeOverview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long, h.Log, "dashboard overview")
	defer cancel()

	snap, err := h.Records.LoadSnapshot(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "dashboard snapshot load failed", err, "A database error occurred.")
		return
	}

	writeJSON(w, insights.OverviewFor(snap))
}

// ServeTrend returns the recent monthly trend buckets in chronological
// order. The window defaults to six months; ?months=N overrides it.
// GET /dashboard/trend
func (h *Handler) ServeTrend(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long, h.Log, "dashboard trend")
	defer cancel()

	months := defaultTrendMonths
	if s := query.Get(r, "months"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			months = n
		}
	}

	snap, err := h.Records.LoadSnapshot(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "dashboard snapshot load failed", err, "A database error occurred.")
		return
	}

	writeJSON(w, trendData{Months: insights.RecentTrend(snap.Requests, months)})
}

// ServeCategories returns the material category breakdown ranked by
// revenue. ?top=N truncates the list; the default returns every
// category.
// GET /dashboard/categories
func (h *Handler) ServeCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long, h.Log, "dashboard categories")
	defer cancel()

	top := 0
	if s := query.Get(r, "top"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			top = n
		}
	}

	snap, err := h.Records.LoadSnapshot(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "dashboard snapshot load failed", err, "A database error occurred.")
		return
	}

	writeJSON(w, categoryData{Categories: insights.CategoryBreakdown(snap.Requests, top)})
}

// ServeLeaderboard returns the top collectors by earnings.
// GET /dashboard/leaderboard
func (h *Handler) ServeLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long, h.Log, "dashboard leaderboard")
	defer cancel()

	snap, err := h.Records.LoadSnapshot(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "dashboard snapshot load failed", err, "A database error occurred.")
		return
	}

	writeJSON(w, leaderboardData{Collectors: insights.Leaderboard(snap, time.Now().UTC())})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(v)
}
