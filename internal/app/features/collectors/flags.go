// internal/app/features/collectors/flags.go
package collectors

import (
	"encoding/json"
	"errors"
	"net/http"

	uierrors "github.com/dalemusser/recyclehub/internal/app/features/errors"
	"github.com/dalemusser/recyclehub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ServeSetStatus activates or deactivates a collector account.
// POST /collectors/{collectorID}/status with {"active": bool}
func (h *Handler) ServeSetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "collectorID"))
	if err != nil {
		uierrors.WriteBadRequest(w, "invalid collector id")
		return
	}

	var payload statusPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		uierrors.WriteBadRequest(w, "invalid request body")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium, h.Log, "collector status update")
	defer cancel()

	if err := h.Collectors.SetActive(ctx, id, payload.Active); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			uierrors.WriteNotFound(w)
			return
		}
		h.ErrLog.LogServerError(w, r, "collector status update failed", err, "A database error occurred.")
		return
	}

	h.Log.Info("collector status updated",
		zap.String("collector_id", id.Hex()),
		zap.Bool("active", payload.Active))

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(statusPayload{Active: payload.Active})
}

// ServeSetVerified marks a collector verified or unverified.
// POST /collectors/{collectorID}/verify with {"verified": bool}
func (h *Handler) ServeSetVerified(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "collectorID"))
	if err != nil {
		uierrors.WriteBadRequest(w, "invalid collector id")
		return
	}

	var payload verifyPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		uierrors.WriteBadRequest(w, "invalid request body")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium, h.Log, "collector verify update")
	defer cancel()

	if err := h.Collectors.SetVerified(ctx, id, payload.Verified); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			uierrors.WriteNotFound(w)
			return
		}
		h.ErrLog.LogServerError(w, r, "collector verify update failed", err, "A database error occurred.")
		return
	}

	h.Log.Info("collector verification updated",
		zap.String("collector_id", id.Hex()),
		zap.Bool("verified", payload.Verified))

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(verifyPayload{Verified: payload.Verified})
}

// ServeDelete removes a collector account.
// DELETE /collectors/{collectorID}
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "collectorID"))
	if err != nil {
		uierrors.WriteBadRequest(w, "invalid collector id")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium, h.Log, "collector delete")
	defer cancel()

	n, err := h.Collectors.Delete(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "collector delete failed", err, "A database error occurred.")
		return
	}
	if n == 0 {
		uierrors.WriteNotFound(w)
		return
	}

	h.Log.Info("collector deleted", zap.String("collector_id", id.Hex()))
	w.WriteHeader(http.StatusNoContent)
}
