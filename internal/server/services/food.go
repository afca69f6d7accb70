package services

import (
	"context"
	"fmt"

	"github.com/ymatsuzawa/foodkeeper/internal/server/models"
	"github.com/ymatsuzawa/foodkeeper/internal/server/repositories/foods"
)

// FoodService handles food-item CRUD and the per-owner listing.
type FoodService struct {
	repo foods.Repository
}

// NewFoodService constructs a FoodService over the given repository.
func NewFoodService(repo foods.Repository) *FoodService {
	return &FoodService{repo: repo}
}

// Create builds a food item owned by the acting user and persists it. The
// returned value is the stored state. Create is not idempotent: retrying it
// generates a new food_id.
func (s *FoodService) Create(ctx context.Context, p models.CreateFoodPayload, owner models.PubUserInfo) (*models.Food, error) {
	food := models.NewFood(p, owner)
	out, err := s.repo.Insert(ctx, food)
	if err != nil {
		return nil, fmt.Errorf("creating food: %w", err)
	}
	return out, nil
}

// Get returns the food item with the given id.
func (s *FoodService) Get(ctx context.Context, id models.FoodID) (*models.Food, error) {
	return s.repo.Read(ctx, id)
}

// Update replaces the item's name and expiry date. Ownership is immutable,
// so no acting user is needed here.
func (s *FoodService) Update(ctx context.Context, id models.FoodID, p models.CreateFoodPayload) (*models.Food, error) {
	food := &models.Food{FoodID: id, FoodName: p.FoodName, Exp: p.Exp}
	out, err := s.repo.Update(ctx, id, food)
	if err != nil {
		return nil, fmt.Errorf("updating food: %w", err)
	}
	return out, nil
}

// Delete removes the food item.
func (s *FoodService) Delete(ctx context.Context, id models.FoodID) error {
	return s.repo.Delete(ctx, id)
}

// ListByOwner returns every food item owned by ownerID, in storage order.
func (s *FoodService) ListByOwner(ctx context.Context, ownerID models.UserID) (*models.AllFoods, error) {
	return s.repo.ReadAll(ctx, ownerID)
}
