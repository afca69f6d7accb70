// Package services contains the application logic sitting between transport
// layers and the repositories: payloads come in, entities are constructed
// (ids generated, passwords hashed), and the repositories persist them.
package services

import (
	"context"
	"fmt"

	"github.com/ymatsuzawa/foodkeeper/internal/hashx"
	"github.com/ymatsuzawa/foodkeeper/internal/server/models"
	"github.com/ymatsuzawa/foodkeeper/internal/server/repositories/users"
)

// UserService handles account CRUD. The hashing capability is injected so
// tests can swap the argon2id implementation for a fast deterministic stub.
type UserService struct {
	repo users.Repository
	hash hashx.HashFunc
}

// NewUserService constructs a UserService over the given repository and
// hashing capability.
func NewUserService(repo users.Repository, hash hashx.HashFunc) *UserService {
	return &UserService{repo: repo, hash: hash}
}

// Create builds the user (fresh id, hashed password) and persists it. The
// returned value is the stored, redacted projection. Create is not
// idempotent: retrying it generates a new user_id.
func (s *UserService) Create(ctx context.Context, p models.CreateUserPayload) (*models.PubUserInfo, error) {
	user, err := models.NewUser(p, s.hash)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	out, err := s.repo.Insert(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return out, nil
}

// Get returns the redacted projection of the user with the given id.
func (s *UserService) Get(ctx context.Context, id models.UserID) (*models.PubUserInfo, error) {
	return s.repo.Read(ctx, id)
}

// Update replaces every mutable field of the user. The payload's password
// is plaintext and gets re-hashed, so the stored hash changes even when the
// plaintext does not.
func (s *UserService) Update(ctx context.Context, id models.UserID, p models.CreateUserPayload) (*models.PubUserInfo, error) {
	user, err := models.NewUser(p, s.hash)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	user.UserID = id
	out, err := s.repo.Update(ctx, id, user)
	if err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}
	return out, nil
}

// Delete removes the user.
func (s *UserService) Delete(ctx context.Context, id models.UserID) error {
	return s.repo.Delete(ctx, id)
}
