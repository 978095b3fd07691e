// internal/app/insights/category.go
package insights

import (
	"sort"

	"github.com/dalemusser/recyclehub/internal/domain/models"
	"github.com/shopspring/decimal"
)

// DefaultCategory is the bucket for items with no category set.
const DefaultCategory = "Others"

// CategoryBucket is the per-material-category aggregate.
type CategoryBucket struct {
	Category string          `json:"category"`
	Count    int             `json:"count"` // item line occurrences
	Items    int             `json:"items"` // summed quantity
	Revenue  decimal.Decimal `json:"revenue"`

	// Width is the bar-rendering percentage relative to the largest
	// category's revenue, rounded to one decimal. Zero everywhere when no
	// category has revenue.
	Width float64 `json:"width"`
}

// CategoryBreakdown flattens the items of every request into per-category
// buckets sorted by revenue descending. Categories with equal revenue keep
// their first-encountered order. topN > 0 truncates the result; topN <= 0
// returns every category.
//
// Defaults per item: category "Others", estimated value 0, quantity 1 when
// missing.
func CategoryBreakdown(requests []models.Request, topN int) []CategoryBucket {
	var buckets []CategoryBucket
	index := make(map[string]int)

	for _, r := range requests {
		for _, it := range r.Items {
			cat := it.Category
			if cat == "" {
				cat = DefaultCategory
			}
			i, ok := index[cat]
			if !ok {
				i = len(buckets)
				index[cat] = i
				buckets = append(buckets, CategoryBucket{Category: cat, Revenue: decimal.Zero})
			}
			buckets[i].Count++
			qty := it.Quantity
			if qty <= 0 {
				qty = 1
			}
			buckets[i].Items += qty
			buckets[i].Revenue = buckets[i].Revenue.Add(parseAmount(it.EstimatedValue))
		}
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Revenue.GreaterThan(buckets[j].Revenue)
	})

	if len(buckets) > 0 {
		max := buckets[0].Revenue
		if max.IsPositive() {
			hundred := decimal.NewFromInt(100)
			for i := range buckets {
				buckets[i].Width, _ = buckets[i].Revenue.Mul(hundred).Div(max).Round(1).Float64()
			}
		}
	}

	if topN > 0 && len(buckets) > topN {
		buckets = buckets[:topN]
	}
	return buckets
}
