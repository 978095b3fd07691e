// internal/app/features/users/types.go
package users

import (
	"github.com/dalemusser/recyclehub/internal/app/insights"
	"github.com/dalemusser/recyclehub/internal/domain/models"
)

// userRow is one user plus the statistics derived from the current
// snapshot.
type userRow struct {
	models.User
	Stats insights.UserStats `json:"stats"`
}

// listData is the envelope for the user list endpoint.
type listData struct {
	Users []userRow `json:"users"`
	Total int       `json:"total"`
}

// statusPayload is the body for the status toggle endpoint.
type statusPayload struct {
	Active bool `json:"active"`
}
