// internal/app/features/requests/status.go
package requests

import (
	"encoding/json"
	"errors"
	"net/http"

	uierrors "github.com/dalemusser/recyclehub/internal/app/features/errors"
	requeststore "github.com/dalemusser/recyclehub/internal/app/store/requests"
	"github.com/dalemusser/recyclehub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// ServeSetStatus transitions a request to a new status.
// POST /requests/{requestID}/status with {"status": "..."}
func (h *Handler) ServeSetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "requestID"))
	if err != nil {
		uierrors.WriteBadRequest(w, "invalid request id")
		return
	}

	var payload statusPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		uierrors.WriteBadRequest(w, "invalid request body")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium, h.Log, "request status update")
	defer cancel()

	if err := h.Requests.SetStatus(ctx, id, payload.Status); err != nil {
		switch {
		case errors.Is(err, requeststore.ErrBadStatus):
			uierrors.WriteBadRequest(w, "invalid status")
		case errors.Is(err, mongo.ErrNoDocuments):
			uierrors.WriteNotFound(w)
		default:
			h.ErrLog.LogServerError(w, r, "request status update failed", err, "A database error occurred.")
		}
		return
	}

	h.Log.Info("request status updated",
		zap.String("request_id", id.Hex()),
		zap.String("status", payload.Status))

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(statusPayload{Status: payload.Status})
}

// ServeDelete removes a request.
// DELETE /requests/{requestID}
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "requestID"))
	if err != nil {
		uierrors.WriteBadRequest(w, "invalid request id")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium, h.Log, "request delete")
	defer cancel()

	n, err := h.Requests.Delete(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "request delete failed", err, "A database error occurred.")
		return
	}
	if n == 0 {
		uierrors.WriteNotFound(w)
		return
	}

	h.Log.Info("request deleted", zap.String("request_id", id.Hex()))
	w.WriteHeader(http.StatusNoContent)
}
