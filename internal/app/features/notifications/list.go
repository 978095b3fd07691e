// internal/app/features/notifications/list.go
package notifications

import (
	"encoding/json"
	"net/http"
	"time"

	uierrors "github.com/dalemusser/recyclehub/internal/app/features/errors"
	"github.com/dalemusser/recyclehub/internal/app/insights"
	"github.com/dalemusser/recyclehub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
)

// listData is the envelope for the notification feed endpoint. Unread
// tracks the count the console badges with; with no read state stored it
// always equals Total.
type listData struct {
	Notifications []insights.Notification `json:"notifications"`
	Total         int                     `json:"total"`
	Unread        int                     `json:"unread"`
}

// ServeList synthesizes and returns the notification feed.
// GET /notifications?filter=all|unread&type=
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	filter := query.Get(r, "filter")
	switch filter {
	case "", insights.FilterAll, insights.FilterUnread:
	default:
		uierrors.WriteBadRequest(w, "invalid filter")
		return
	}

	typ := query.Get(r, "type")
	switch typ {
	case "", insights.TypePendingRequest, insights.TypeLowRating, insights.TypeNewUser:
	default:
		uierrors.WriteBadRequest(w, "invalid notification type")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long, h.Log, "notification feed")
	defer cancel()

	snap, err := h.Records.LoadSnapshot(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "notification snapshot load failed", err, "A database error occurred.")
		return
	}

	feed := insights.FilterFeed(h.Synth.Synthesize(snap, time.Now().UTC()), filter, typ)
	if h.FeedCap > 0 && len(feed) > h.FeedCap {
		feed = feed[:h.FeedCap]
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(listData{
		Notifications: feed,
		Total:         len(feed),
		Unread:        len(feed),
	})
}
