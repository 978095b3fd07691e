// internal/app/features/requests/types.go
package requests

import "github.com/dalemusser/recyclehub/internal/domain/models"

// listData is the envelope for the request list endpoint.
type listData struct {
	Requests []models.Request `json:"requests"`
	Total    int              `json:"total"`
}

// viewData is one request plus the live records its embedded snapshots
// resolve to. Either resolution may come up empty: the user record by
// a missing or unmatched email, the collector record by an unmatched
// reference.
type viewData struct {
	models.Request
	User      *models.User      `json:"user,omitempty"`
	Collector *models.Collector `json:"collector,omitempty"`
}

// statusPayload is the body for the status transition endpoint.
type statusPayload struct {
	Status string `json:"status"`
}
