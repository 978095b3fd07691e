// internal/app/insights/leaderboard.go
package insights

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// LeaderboardSize is how many collectors the leaderboard shows.
const LeaderboardSize = 5

// LeaderboardEntry is one ranked collector.
type LeaderboardEntry struct {
	CollectorID       string          `json:"collector_id"`
	FullName          string          `json:"full_name"`
	TotalRequests     int             `json:"total_requests"`
	CompletedRequests int             `json:"completed_requests"`
	TotalEarnings     decimal.Decimal `json:"total_earnings"`
	AverageRating     float64         `json:"average_rating"`
	ReviewCount       int             `json:"review_count"`
}

// Leaderboard ranks collectors by total earnings descending and keeps the
// top LeaderboardSize. Collectors with equal earnings keep their source
// collection order.
func Leaderboard(snap Snapshot, now time.Time) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(snap.Collectors))
	for _, c := range snap.Collectors {
		stats := CollectorStatsFor(c, snap, now)
		entries = append(entries, LeaderboardEntry{
			CollectorID:       c.ID.Hex(),
			FullName:          c.FullName,
			TotalRequests:     stats.TotalRequests,
			CompletedRequests: stats.CompletedRequests,
			TotalEarnings:     stats.TotalEarnings,
			AverageRating:     stats.AverageRating,
			ReviewCount:       stats.ReviewCount,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalEarnings.GreaterThan(entries[j].TotalEarnings)
	})

	if len(entries) > LeaderboardSize {
		entries = entries[:LeaderboardSize]
	}
	return entries
}
