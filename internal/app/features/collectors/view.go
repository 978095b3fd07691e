// internal/app/features/collectors/view.go
package collectors

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	uierrors "github.com/dalemusser/recyclehub/internal/app/features/errors"
	"github.com/dalemusser/recyclehub/internal/app/insights"
	"github.com/dalemusser/recyclehub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ServeView returns one collector with their derived statistics.
// GET /collectors/{collectorID}
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "collectorID"))
	if err != nil {
		uierrors.WriteBadRequest(w, "invalid collector id")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long, h.Log, "collector view")
	defer cancel()

	c, err := h.Collectors.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			uierrors.WriteNotFound(w)
			return
		}
		h.ErrLog.LogServerError(w, r, "collector lookup failed", err, "A database error occurred.")
		return
	}

	snap, err := h.Records.LoadSnapshot(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "collector view snapshot load failed", err, "A database error occurred.")
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(collectorRow{
		Collector: *c,
		Stats:     insights.CollectorStatsFor(*c, snap, time.Now().UTC()),
	})
}
