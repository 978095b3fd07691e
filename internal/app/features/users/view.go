// internal/app/features/users/view.go
package users

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

// ServeView returns one user with their derived statistics.
// GET /users/{userID}
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "userID"))
	if err != nil {
		uierrors.WriteBadRequest(w, "invalid user id")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long, h.Log, "user view")
	defer cancel()

	u, err := h.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			uierrors.WriteNotFound(w)
			return
		}
		h.ErrLog.LogServerError(w, r, "user lookup failed", err, "A database error occurred.")
		return
	}

	snap, err := h.Records.LoadSnapshot(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "user view snapshot load failed", err, "A database error occurred.")
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(userRow{
		User:  *u,
		Stats: insights.UserStatsFor(*u, snap, time.Now().UTC()),
	})
}
