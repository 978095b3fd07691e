// internal/app/features/requests/list.go
package requests

import (
	"encoding/json"
	"net/http"

	uierrors "github.com/dalemusser/recyclehub/internal/app/features/errors"
	"github.com/dalemusser/recyclehub/internal/app/system/timeouts"
	"github.com/dalemusser/recyclehub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
)

// ServeList returns collection requests, newest first, optionally
// narrowed to one status.
// GET /requests?status=
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	status := query.Get(r, "status")
	if status != "" && !models.ValidStatus(status) {
		uierrors.WriteBadRequest(w, "invalid status filter")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long, h.Log, "request list")
	defer cancel()

	reqs, err := h.Requests.List(ctx, status)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "request list failed", err, "A database error occurred.")
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(listData{Requests: reqs, Total: len(reqs)})
}
