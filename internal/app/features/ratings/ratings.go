// internal/app/features/ratings/ratings.go
package ratings

import (
	"encoding/json"
	"errors"
	"net/http"

	uierrors "github.com/dalemusser/recyclehub/internal/app/features/errors"
	ratingstore "github.com/dalemusser/recyclehub/internal/app/store/ratings"
	"github.com/dalemusser/recyclehub/internal/app/system/timeouts"
	"github.com/dalemusser/recyclehub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// listData is the envelope for the rating list endpoint.
type listData struct {
	Ratings []models.Rating `json:"ratings"`
	Total   int             `json:"total"`
}

// ServeList returns ratings, optionally narrowed to one collector.
// GET /ratings?collector=<hex id>
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long, h.Log, "rating list")
	defer cancel()

	var (
		out []models.Rating
		err error
	)
	if hex := query.Get(r, "collector"); hex != "" {
		collectorID, idErr := primitive.ObjectIDFromHex(hex)
		if idErr != nil {
			uierrors.WriteBadRequest(w, "invalid collector id")
			return
		}
		out, err = h.Ratings.ListByCollector(ctx, collectorID)
	} else {
		out, err = h.Ratings.List(ctx)
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "rating list failed", err, "A database error occurred.")
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(listData{Ratings: out, Total: len(out)})
}

// ServeCreate records a new rating.
// POST /ratings
func (h *Handler) ServeCreate(w http.ResponseWriter, r *http.Request) {
	var in models.Rating
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		uierrors.WriteBadRequest(w, "invalid request body")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium, h.Log, "rating create")
	defer cancel()

	created, err := h.Ratings.Create(ctx, in)
	if err != nil {
		if errors.Is(err, ratingstore.ErrBadRating) {
			uierrors.WriteBadRequest(w, "rating must be between 1 and 5")
			return
		}
		h.ErrLog.LogServerError(w, r, "rating create failed", err, "A database error occurred.")
		return
	}

	h.Log.Info("rating recorded",
		zap.String("rating_id", created.ID.Hex()),
		zap.String("collector_id", created.CollectorID.Hex()),
		zap.Int("rating", created.Rating))

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(created)
}

// ServeDelete removes a rating.
// DELETE /ratings/{ratingID}
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "ratingID"))
	if err != nil {
		uierrors.WriteBadRequest(w, "invalid rating id")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium, h.Log, "rating delete")
	defer cancel()

	n, err := h.Ratings.Delete(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "rating delete failed", err, "A database error occurred.")
		return
	}
	if n == 0 {
		uierrors.WriteNotFound(w)
		return
	}

	h.Log.Info("rating deleted", zap.String("rating_id", id.Hex()))
	w.WriteHeader(http.StatusNoContent)
}
