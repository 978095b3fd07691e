// internal/app/features/collectors/types.go
package collectors

import (
	"github.com/dalemusser/recyclehub/internal/app/insights"
	"github.com/dalemusser/recyclehub/internal/domain/models"
)

// collectorRow is one collector plus the statistics derived from the
// current snapshot.
type collectorRow struct {
	models.Collector
	Stats insights.CollectorStats `json:"stats"`
}

// listData is the envelope for the collector list endpoint.
type listData struct {
	Collectors []collectorRow `json:"collectors"`
	Total      int            `json:"total"`
}

// statusPayload is the body for the status toggle endpoint.
type statusPayload struct {
	Active bool `json:"active"`
}

// verifyPayload is the body for the verification toggle endpoint.
type verifyPayload struct {
	Verified bool `json:"verified"`
}
