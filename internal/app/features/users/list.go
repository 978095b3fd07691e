// internal/app/features/users/list.go
package users

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dalemusser/recyclehub/internal/app/insights"
	"github.com/dalemusser/recyclehub/internal/app/system/timeouts"
)

// ServeList returns every user with their derived statistics.
// GET /users
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long, h.Log, "user list")
	defer cancel()

	// The list is derived from the snapshot, not the bare collection, so
	// every row's stats come from the same consistent view.
	snap, err := h.Records.LoadSnapshot(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "user list snapshot load failed", err, "A database error occurred.")
		return
	}

	now := time.Now().UTC()
	rows := make([]userRow, 0, len(snap.Users))
	for _, u := range snap.Users {
		rows = append(rows, userRow{
			User:  u,
			Stats: insights.UserStatsFor(u, snap, now),
		})
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(listData{Users: rows, Total: len(rows)})
}
