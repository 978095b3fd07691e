// internal/app/features/users/status.go
package users

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

// ServeSetStatus activates or deactivates a user account.
// POST /users/{userID}/status with {"active": bool}
func (h *Handler) ServeSetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "userID"))
	if err != nil {
		uierrors.WriteBadRequest(w, "invalid user id")
		return
	}

	var payload statusPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		uierrors.WriteBadRequest(w, "invalid request body")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium, h.Log, "user status update")
	defer cancel()

	if err := h.Users.SetActive(ctx, id, payload.Active); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			uierrors.WriteNotFound(w)
			return
		}
		h.ErrLog.LogServerError(w, r, "user status update failed", err, "A database error occurred.")
		return
	}

	h.Log.Info("user status updated",
		zap.String("user_id", id.Hex()),
		zap.Bool("active", payload.Active))

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(statusPayload{Active: payload.Active})
}

// ServeDelete removes a user account.
// DELETE /users/{userID}
func (h *Handler) ServeDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "userID"))
	if err != nil {
		uierrors.WriteBadRequest(w, "invalid user id")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium, h.Log, "user delete")
	defer cancel()

	n, err := h.Users.Delete(ctx, id)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "user delete failed", err, "A database error occurred.")
		return
	}
	if n == 0 {
		uierrors.WriteNotFound(w)
		return
	}

	h.Log.Info("user deleted", zap.String("user_id", id.Hex()))
	w.WriteHeader(http.StatusNoContent)
}
