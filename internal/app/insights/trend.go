// internal/app/insights/trend.go
package insights

import (
	"sort"

	"github.com/dalemusser/recyclehub/internal/domain/models"
	"github.com/shopspring/decimal"
)

// TrendBucket is one calendar month of request activity.
type TrendBucket struct {
	Month     string          `json:"month"` // "YYYY-MM"
	Requests  int             `json:"requests"`
	Completed int             `json:"completed"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// MonthlyTrend groups requests into "YYYY-MM" buckets, returned in
// first-seen order of the input. Revenue sums only completed requests.
// Input order determines bucket order here, not the calendar; use
// RecentTrend for a chronological window.
func MonthlyTrend(requests []models.Request) []TrendBucket {
	var buckets []TrendBucket
	index := make(map[string]int)

	for _, r := range requests {
		key := r.RequestDate.Format("2006-01")
		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, TrendBucket{Month: key, Revenue: decimal.Zero})
		}
		buckets[i].Requests++
		if r.Completed() {
			buckets[i].Completed++
			buckets[i].Revenue = buckets[i].Revenue.Add(parseAmount(r.TotalEstimatedValue))
		}
	}
	return buckets
}

// RecentTrend returns the most recent n monthly buckets in chronological
// order. Buckets are sorted on the "YYYY-MM" key before truncating:
// first-seen order tracks input iteration order, not the calendar, so
// sorting here is what makes "most recent" well defined.
func RecentTrend(requests []models.Request, n int) []TrendBucket {
	buckets := MonthlyTrend(requests)
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Month < buckets[j].Month
	})
	if n > 0 && len(buckets) > n {
		buckets = buckets[len(buckets)-n:]
	}
	return buckets
}
