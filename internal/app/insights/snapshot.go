// Package insights derives operational metrics and the notification feed
// from the marketplace record collections.
//
// Everything in this package is a pure function of a Snapshot: no I/O, no
// caching, no state between calls. Callers load a fresh snapshot from the
// record stores and recompute after any mutation; invoking any function
// twice against the same snapshot yields identical results.
//
// Data quality problems (missing fields, unparsable amounts, dangling
// references, empty collections) are never errors here. Every aggregate
// degrades to a neutral default: zero, an empty slice, or "Unknown".
package insights

import (
	"github.com/dalemusser/recyclehub/internal/domain/models"
	"github.com/shopspring/decimal"
)

// Snapshot is one immutable view of the four record collections, supplied
// wholesale per computation. The engine never mutates it.
type Snapshot struct {
	Users      []models.User
	Collectors []models.Collector
	Requests   []models.Request
	Ratings    []models.Rating
}

// parseAmount parses a decimal money string. Missing or malformed values
// parse to zero so a single bad record never poisons a sum.
func parseAmount(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
