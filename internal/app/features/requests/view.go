// internal/app/features/requests/view.go
package requests

import (
	"encoding/json"
	"errors"
	"net/http"

	uierrors "github.com/dalemusser/recyclehub/internal/app/features/errors"
	"github.com/dalemusser/recyclehub/internal/app/insights"
	"github.com/dalemusser/recyclehub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ServeView returns one request together with the live user and
// collector records its embedded snapshots resolve to.
// GET /requests/{requestID}
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "requestID"))
	if err != nil {
		uierrors.WriteBadRequest(w, "invalid request id")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long, h.Log, "request view")
	defer cancel()

	req, err := h.Requests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			uierrors.WriteNotFound(w)
			return
		}
		h.ErrLog.LogServerError(w, r, "request lookup failed", err, "A database error occurred.")
		return
	}

	snap, err := h.Records.LoadSnapshot(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "request view snapshot load failed", err, "A database error occurred.")
		return
	}

	out := viewData{Request: *req}
	if u, ok := insights.ResolveUser(*req, snap.Users); ok {
		out.User = &u
	}
	if c, ok := insights.ResolveCollector(req.CollectorInfo, snap.Collectors); ok {
		out.Collector = &c
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(out)
}
