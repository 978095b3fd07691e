// internal/app/features/collectors/list.go
package collectors

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dalemusser/recyclehub/internal/app/insights"
	"github.com/dalemusser/recyclehub/internal/app/system/timeouts"
)

// ServeList returns every collector with their derived statistics.
// GET /collectors
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long, h.Log, "collector list")
	defer cancel()

	snap, err := h.Records.LoadSnapshot(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "collector list snapshot load failed", err, "A database error occurred.")
		return
	}

	now := time.Now().UTC()
	rows := make([]collectorRow, 0, len(snap.Collectors))
	for _, c := range snap.Collectors {
		rows = append(rows, collectorRow{
			Collector: c,
			Stats:     insights.CollectorStatsFor(c, snap, now),
		})
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(listData{Collectors: rows, Total: len(rows)})
}
