// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a resident who posts collection requests.
//
// NOTE:
//   - Requests do not reference users by ObjectID. They carry an embedded
//     UserInfo snapshot, and the join key is the email address. Email is
//     therefore the identity key and is unique-indexed.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName     string             `bson:"full_name" json:"full_name"`
	FullNameCI   string             `bson:"full_name_ci" json:"full_name_ci"` // lowercase, diacritics-stripped
	Email        string             `bson:"email" json:"email"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address      string             `bson:"address,omitempty" json:"address,omitempty"`
	City         string             `bson:"city,omitempty" json:"city,omitempty"`
	ProfileImage string             `bson:"profile_image,omitempty" json:"profile_image,omitempty"`

	// IsActive defaults to true; only an explicit false disables the account.
	IsActive *bool `bson:"is_active,omitempty" json:"is_active,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Active reports whether the user counts as active. A missing flag means
// active; only an explicit false means disabled.
func (u *User) Active() bool {
	return u.IsActive == nil || *u.IsActive
}
