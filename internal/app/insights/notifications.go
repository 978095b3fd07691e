// internal/app/insights/notifications.go
package insights

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dalemusser/recyclehub/internal/domain/models"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

// Notification types.
const (
	TypePendingRequest = "pending_request"
	TypeLowRating      = "low_rating"
	TypeNewUser        = "new_user"
)

// Notification priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Feed filters. Unread is vacuously the whole feed: read state is never
// persisted anywhere, so every notification is unread on every view.
const (
	FilterAll    = "all"
	FilterUnread = "unread"
)

// DefaultNewUserWindow is how far back the new-user scan looks.
const DefaultNewUserWindow = 7 * 24 * time.Hour

// LowRatingThreshold is the highest rating that still raises an alert.
const LowRatingThreshold = 2

// excerptLen caps the feedback excerpt carried on a low-rating event.
const excerptLen = 50

// Namespace for deterministic notification ids. Fixed so re-synthesizing
// the feed from the same snapshot produces identical ids.
var notificationNS = uuid.MustParse("8f9c1d52-7a64-4a0e-9b35-c2f70d1a6e41")

// Notification is one derived alert. The feed is never stored; it is
// recomputed from the record collections on every view.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Priority  string    `json:"priority"`

	// ActionRef is a symbolic route the console navigates to, not markup.
	ActionRef string `json:"action_ref"`

	Read bool `json:"read"`
}

// Synthesizer builds the notification feed from a snapshot. The zero
// value is not usable; construct with NewSynthesizer.
type Synthesizer struct {
	window   time.Duration
	sanitize *bluemonday.Policy
}

// NewSynthesizer returns a Synthesizer that flags users created within
// window. A non-positive window falls back to DefaultNewUserWindow.
func NewSynthesizer(window time.Duration) *Synthesizer {
	if window <= 0 {
		window = DefaultNewUserWindow
	}
	return &Synthesizer{
		window:   window,
		sanitize: bluemonday.StrictPolicy(),
	}
}

// Synthesize derives the full notification feed for the snapshot as of
// now. Scan order is pending requests, then low ratings, then new users;
// the result is sorted by timestamp descending with that scan order
// breaking ties. Pure and idempotent: the same snapshot always yields the
// same feed in the same order.
func (s *Synthesizer) Synthesize(snap Snapshot, now time.Time) []Notification {
	var out []Notification

	for _, r := range snap.Requests {
		if r.Status != models.StatusPending {
			continue
		}
		name := r.UserInfo.Name
		if name == "" {
			if u, ok := ResolveUser(r, snap.Users); ok {
				name = u.FullName
			}
		}
		if name == "" {
			name = "Unknown"
		}
		out = append(out, Notification{
			ID:        notificationID(TypePendingRequest, r.ID.Hex()),
			Type:      TypePendingRequest,
			Title:     "New collection request",
			Message:   fmt.Sprintf("%s submitted a collection request", name),
			Timestamp: r.RequestDate,
			Priority:  PriorityHigh,
			ActionRef: "/requests/" + r.ID.Hex(),
		})
	}

	for _, rt := range snap.Ratings {
		if rt.Rating > LowRatingThreshold {
			continue
		}
		action := "/ratings"
		for _, r := range snap.Requests {
			if r.ID == rt.CollectionRequestID {
				action = "/requests/" + r.ID.Hex()
				break
			}
		}
		msg := fmt.Sprintf("%d-star rating received", rt.Rating)
		if excerpt := s.excerpt(rt.Feedback); excerpt != "" {
			msg = fmt.Sprintf("%s: %q", msg, excerpt)
		}
		out = append(out, Notification{
			ID:        notificationID(TypeLowRating, rt.ID.Hex()),
			Type:      TypeLowRating,
			Title:     "Low rating received",
			Message:   msg,
			Timestamp: rt.RatingDate,
			Priority:  PriorityMedium,
			ActionRef: action,
		})
	}

	for _, u := range snap.Users {
		age := now.Sub(u.CreatedAt)
		if age < 0 || age > s.window {
			continue
		}
		name := u.FullName
		if name == "" {
			name = "Unknown"
		}
		out = append(out, Notification{
			ID:        notificationID(TypeNewUser, u.ID.Hex()),
			Type:      TypeNewUser,
			Title:     "New user registered",
			Message:   fmt.Sprintf("%s joined the platform", name),
			Timestamp: u.CreatedAt,
			Priority:  PriorityLow,
			ActionRef: "/users/" + u.ID.Hex(),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// excerpt strips any markup from rating feedback and truncates it for
// display in the feed.
func (s *Synthesizer) excerpt(feedback string) string {
	clean := strings.TrimSpace(s.sanitize.Sanitize(feedback))
	runes := []rune(clean)
	if len(runes) > excerptLen {
		return string(runes[:excerptLen]) + "..."
	}
	return clean
}

// FilterFeed narrows a synthesized feed. filter "unread" returns the full
// feed (nothing is ever marked read); typ, when non-empty, keeps only
// notifications of that type. Order is preserved.
func FilterFeed(feed []Notification, filter, typ string) []Notification {
	// filter "all" and "unread" are deliberately equivalent; see the
	// Filter* constants.
	_ = filter
	if typ == "" {
		return feed
	}
	var out []Notification
	for _, n := range feed {
		if n.Type == typ {
			out = append(out, n)
		}
	}
	return out
}

func notificationID(kind, sourceID string) string {
	return uuid.NewSHA1(notificationNS, []byte(kind+":"+sourceID)).String()
}
