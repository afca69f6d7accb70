package models

import "github.com/google/uuid"

// Wrapper types for identifiers and text fields. Each wraps exactly one
// string so that semantically different values cannot be swapped at a call
// site; unwrapping to the raw string happens only at the storage and
// transport boundaries, via String. Equality is plain value equality.
//
// No format validation happens here. The transport layer validates payloads
// before they become one of these.

// UserID is the opaque identifier of a user, generated once at creation and
// immutable afterwards.
type UserID string

// NewUserID returns a fresh random identifier.
func NewUserID() UserID {
	return UserID(uuid.NewString())
}

func (id UserID) String() string { return string(id) }

// FoodID is the opaque identifier of a food item.
type FoodID string

// NewFoodID returns a fresh random identifier.
func NewFoodID() FoodID {
	return FoodID(uuid.NewString())
}

func (id FoodID) String() string { return string(id) }

// UserName is a user's display name.
type UserName string

func (n UserName) String() string { return string(n) }

// Mail is a user's mail address.
type Mail string

func (m Mail) String() string { return string(m) }

// Password is a stored credential. Once attached to a User it always holds
// the argon2id hash, never the plaintext.
type Password string

func (p Password) String() string { return string(p) }

// FoodName is a food item's display name.
type FoodName string

func (n FoodName) String() string { return string(n) }
