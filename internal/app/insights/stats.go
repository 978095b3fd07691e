// internal/app/insights/stats.go
package insights

import (
	"math"
	"time"

	"github.com/dalemusser/recyclehub/internal/domain/models"
	"github.com/shopspring/decimal"
)

// Status labels derived from the is_active flag.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// CollectorStats is the derived stat set for one collector.
type CollectorStats struct {
	TotalRequests     int             `json:"total_requests"`
	CompletedRequests int             `json:"completed_requests"`
	CompletionRate    int             `json:"completion_rate"`
	TotalEarnings     decimal.Decimal `json:"total_earnings"`
	AverageRating     float64         `json:"average_rating"`
	ReviewCount       int             `json:"review_count"`
	LastActivity      time.Time       `json:"last_activity"`
	Status            string          `json:"status"`
}

// UserStats is the derived stat set for one user.
type UserStats struct {
	TotalRequests     int             `json:"total_requests"`
	CompletedRequests int             `json:"completed_requests"`
	CompletionRate    int             `json:"completion_rate"`
	TotalValue        decimal.Decimal `json:"total_value"`
	LastActivity      time.Time       `json:"last_activity"`
	Status            string          `json:"status"`
}

// Overview is the system-wide stat set shown on the dashboard.
type Overview struct {
	TotalUsers         int             `json:"total_users"`
	ActiveUsers        int             `json:"active_users"`
	TotalCollectors    int             `json:"total_collectors"`
	VerifiedCollectors int             `json:"verified_collectors"`
	TotalRequests      int             `json:"total_requests"`
	CompletedRequests  int             `json:"completed_requests"`
	PendingRequests    int             `json:"pending_requests"`
	CompletionRate     int             `json:"completion_rate"`
	TotalRevenue       decimal.Decimal `json:"total_revenue"`
	AverageRating      float64         `json:"average_rating"`
}

// CompletionRate returns completed/total as a round-half-up percentage.
// A zero total yields 0, never a division error.
func CompletionRate(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

// RatingAverage returns the mean rating rounded to one decimal place.
// An empty slice yields 0, never NaN.
func RatingAverage(ratings []models.Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Rating
	}
	return math.Round(10*float64(sum)/float64(len(ratings))) / 10
}

// CollectorStatsFor computes the derived stats for one collector against
// the snapshot. Requests are matched through ResolveCollector so the
// id-then-name precedence applies; ratings are matched by collector id.
// Earnings sum only completed requests. LastActivity is the latest
// matched request date, falling back to the collector's created_at, then
// to now.
func CollectorStatsFor(c models.Collector, snap Snapshot, now time.Time) CollectorStats {
	out := CollectorStats{
		TotalEarnings: decimal.Zero,
		Status:        statusLabel(c.Active()),
	}

	var last time.Time
	for _, r := range snap.Requests {
		rc, ok := ResolveCollector(r.CollectorInfo, snap.Collectors)
		if !ok || rc.ID != c.ID {
			continue
		}
		out.TotalRequests++
		if r.Completed() {
			out.CompletedRequests++
			out.TotalEarnings = out.TotalEarnings.Add(parseAmount(r.TotalEstimatedValue))
		}
		if r.RequestDate.After(last) {
			last = r.RequestDate
		}
	}
	out.CompletionRate = CompletionRate(out.CompletedRequests, out.TotalRequests)

	var matched []models.Rating
	for _, rt := range snap.Ratings {
		if rt.CollectorID == c.ID {
			matched = append(matched, rt)
		}
	}
	out.AverageRating = RatingAverage(matched)
	out.ReviewCount = len(matched)

	out.LastActivity = lastActivity(last, c.CreatedAt, now)
	return out
}

// UserStatsFor computes the derived stats for one user. Requests are
// matched by the embedded snapshot email; value sums only completed
// requests.
func UserStatsFor(u models.User, snap Snapshot, now time.Time) UserStats {
	out := UserStats{
		TotalValue: decimal.Zero,
		Status:     statusLabel(u.Active()),
	}

	var last time.Time
	for _, r := range snap.Requests {
		if u.Email == "" || r.UserInfo.Email != u.Email {
			continue
		}
		out.TotalRequests++
		if r.Completed() {
			out.CompletedRequests++
			out.TotalValue = out.TotalValue.Add(parseAmount(r.TotalEstimatedValue))
		}
		if r.RequestDate.After(last) {
			last = r.RequestDate
		}
	}
	out.CompletionRate = CompletionRate(out.CompletedRequests, out.TotalRequests)
	out.LastActivity = lastActivity(last, u.CreatedAt, now)
	return out
}

// OverviewFor computes the system-wide dashboard stats. Each aggregate is
// independent: a malformed record affects only the aggregate it feeds.
func OverviewFor(snap Snapshot) Overview {
	out := Overview{
		TotalUsers:      len(snap.Users),
		TotalCollectors: len(snap.Collectors),
		TotalRequests:   len(snap.Requests),
		TotalRevenue:    decimal.Zero,
	}

	for i := range snap.Users {
		if snap.Users[i].Active() {
			out.ActiveUsers++
		}
	}
	for i := range snap.Collectors {
		if snap.Collectors[i].IsVerified {
			out.VerifiedCollectors++
		}
	}
	for _, r := range snap.Requests {
		switch {
		case r.Completed():
			out.CompletedRequests++
			out.TotalRevenue = out.TotalRevenue.Add(parseAmount(r.TotalEstimatedValue))
		case r.Status == models.StatusPending:
			out.PendingRequests++
		}
	}
	out.CompletionRate = CompletionRate(out.CompletedRequests, out.TotalRequests)
	out.AverageRating = RatingAverage(snap.Ratings)
	return out
}

func statusLabel(active bool) string {
	if active {
		return StatusActive
	}
	return StatusInactive
}

// lastActivity picks the latest matched request date, falling back to the
// entity's own created_at, then to now when both are absent.
func lastActivity(latest, createdAt, now time.Time) time.Time {
	if !latest.IsZero() {
		return latest
	}
	if !createdAt.IsZero() {
		return createdAt
	}
	return now
}
