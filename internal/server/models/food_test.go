package models

import (
	"testing"
	"time"

	"github.com/ymatsuzawa/foodkeeper/internal/timex"
)

func TestNewFood(t *testing.T) {
	owner := PubUserInfo{UserID: "u-1", UserName: "alice"}
	p := CreateFoodPayload{FoodName: "milk", Exp: timex.NewDate(2025, time.April, 8)}

	f := NewFood(p, owner)

	if f.FoodID == "" {
		t.Fatal("expected a generated food id")
	}
	if f.FoodName != "milk" {
		t.Fatalf("FoodName = %q, want milk", f.FoodName)
	}
	if !f.Exp.Equal(p.Exp) {
		t.Fatalf("Exp = %v, want %v", f.Exp, p.Exp)
	}
	if f.UserID != owner.UserID {
		t.Fatalf("UserID = %q, want %q", f.UserID, owner.UserID)
	}

	f2 := NewFood(p, owner)
	if f.FoodID == f2.FoodID {
		t.Fatalf("two constructions produced the same id %q", f.FoodID)
	}
}
