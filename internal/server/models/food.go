package models

import "github.com/ymatsuzawa/foodkeeper/internal/timex"

// CreateFoodPayload carries the caller-supplied fields for a new food item.
type CreateFoodPayload struct {
	FoodName FoodName
	Exp      timex.Date
}

// Food is a stored food item. Exp is a plain calendar date. UserID
// references the owning user; the schema enforces that it exists.
type Food struct {
	FoodID   FoodID     `json:"food_id"`
	FoodName FoodName   `json:"food_name"`
	Exp      timex.Date `json:"exp"`
	UserID   UserID     `json:"user_id"`
}

// NewFood builds a Food owned by the acting user, with a fresh FoodID.
func NewFood(p CreateFoodPayload, owner PubUserInfo) *Food {
	return &Food{
		FoodID:   NewFoodID(),
		FoodName: p.FoodName,
		Exp:      p.Exp,
		UserID:   owner.UserID,
	}
}

// AllFoods is one owner's food items in storage order. Callers must not
// rely on the ordering.
type AllFoods struct {
	Foods []*Food `json:"foods"`
}
