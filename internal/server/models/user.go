// Package models defines the persisted entities, their identifier wrapper
// types, and the create payloads entity constructors work from.
package models

import "github.com/ymatsuzawa/foodkeeper/internal/hashx"

// CreateUserPayload carries the caller-supplied fields for a new user.
// Password is the plaintext here; it does not survive past NewUser.
type CreateUserPayload struct {
	UserName UserName
	Mail     Mail
	Password string
}

// User is the stored account row. Password always holds the hash.
type User struct {
	UserID   UserID
	UserName UserName
	Mail     Mail
	Password Password
}

// NewUser builds a User from the payload: a fresh UserID is generated and
// the plaintext password goes through the injected hashing capability.
// When hashing fails no User is returned, so an empty or plaintext password
// can never reach storage.
func NewUser(p CreateUserPayload, hash hashx.HashFunc) (*User, error) {
	hashed, err := hash(p.Password)
	if err != nil {
		return nil, err
	}
	return &User{
		UserID:   NewUserID(),
		UserName: p.UserName,
		Mail:     p.Mail,
		Password: Password(hashed),
	}, nil
}

// PubUserInfo is the redaction of User that is safe to return to any
// caller. It never carries the mail address or the password hash.
type PubUserInfo struct {
	UserID   UserID   `json:"user_id"`
	UserName UserName `json:"user_name"`
}
