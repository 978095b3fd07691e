// internal/domain/models/collector.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collector represents a collection agent who accepts and fulfills requests.
//
// Requests carry an embedded CollectorRef snapshot that may hold the
// collector's id, the collector's name, or both. Joins therefore match on
// id first and fall back to FullName (see insights.ResolveCollector).
type Collector struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName        string             `bson:"full_name" json:"full_name"`
	FullNameCI      string             `bson:"full_name_ci" json:"full_name_ci"` // lowercase, diacritics-stripped
	Email           string             `bson:"email" json:"email"`
	Phone           string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Specializations []string           `bson:"specializations,omitempty" json:"specializations,omitempty"`
	ServiceAreas    []string           `bson:"service_areas,omitempty" json:"service_areas,omitempty"`
	Experience      string             `bson:"experience,omitempty" json:"experience,omitempty"`
	VehicleType     string             `bson:"vehicle_type,omitempty" json:"vehicle_type,omitempty"`

	// IsActive defaults to true; only an explicit false disables the collector.
	IsActive   *bool `bson:"is_active,omitempty" json:"is_active,omitempty"`
	IsVerified bool  `bson:"is_verified" json:"is_verified"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Active reports whether the collector counts as active. A missing flag
// means active; only an explicit false means disabled.
func (c *Collector) Active() bool {
	return c.IsActive == nil || *c.IsActive
}
