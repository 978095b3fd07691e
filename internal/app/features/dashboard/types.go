// internal/app/features/dashboard/types.go
package dashboard

import "github.com/dalemusser/recyclehub/internal/app/insights"

// trendData is the envelope for the monthly trend endpoint.
type trendData struct {
	Months []insights.TrendBucket `json:"months"`
}

// categoryData is the envelope for the category breakdown endpoint.
type categoryData struct {
	Categories []insights.CategoryBucket `json:"categories"`
}

// leaderboardData is the envelope for the leaderboard endpoint.
type leaderboardData struct {
	Collectors []insights.LeaderboardEntry `json:"collectors"`
}
