// internal/domain/models/request.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Request status values. SetStatus on the request store rejects anything
// outside this set.
const (
	StatusPending    = "Pending"
	StatusAccepted   = "Accepted"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
	StatusRejected   = "Rejected"
)

// ValidStatus reports whether s is one of the request status values.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusAccepted, StatusInProgress, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

// UserInfo is the requester snapshot embedded on a request at submission
// time. It is denormalized and can be stale; the live user record is
// resolved by email.
type UserInfo struct {
	Name    string `bson:"name,omitempty" json:"name,omitempty"`
	Email   string `bson:"email,omitempty" json:"email,omitempty"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Address string `bson:"address,omitempty" json:"address,omitempty"`
}

// CollectorRef is the collector snapshot embedded on a request once a
// collector is involved. Either field may be empty: older records carry
// only a name, newer ones carry the id.
type CollectorRef struct {
	ID   string `bson:"id,omitempty" json:"id,omitempty"`
	Name string `bson:"name,omitempty" json:"name,omitempty"`
}

// RequestItem is one line item of recyclable material on a request.
// Quantity and EstimatedValue come from user input and may be absent.
type RequestItem struct {
	Name           string `bson:"name,omitempty" json:"name,omitempty"`
	Category       string `bson:"category,omitempty" json:"category,omitempty"`
	Quantity       int    `bson:"quantity,omitempty" json:"quantity,omitempty"`
	EstimatedValue string `bson:"estimated_value,omitempty" json:"estimated_value,omitempty"`
}

// Request represents a collection request posted by a user.
//
// Money fields are decimal strings as submitted; they are parsed (with a
// zero default for anything unparsable) only at aggregation time.
type Request struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Status string             `bson:"status" json:"status"`

	RequestDate time.Time     `bson:"request_date" json:"request_date"`
	Items       []RequestItem `bson:"items,omitempty" json:"items,omitempty"`

	TotalEstimatedValue string `bson:"total_estimated_value,omitempty" json:"total_estimated_value,omitempty"`

	UserInfo      UserInfo      `bson:"user_info,omitempty" json:"user_info,omitempty"`
	CollectorInfo *CollectorRef `bson:"collector_info,omitempty" json:"collector_info,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Completed reports whether the request has reached the Completed status.
// Currency aggregates only count completed requests.
func (r *Request) Completed() bool {
	return r.Status == StatusCompleted
}
