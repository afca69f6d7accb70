package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ymatsuzawa/foodkeeper/internal/server/models"
	"github.com/ymatsuzawa/foodkeeper/internal/timex"
)

// foodRequest is the create/update body for a food item.
type foodRequest struct {
	FoodName string `json:"food_name" validate:"required"`
	Exp      string `json:"exp" validate:"required,datetime=2006-01-02"`
}

func (r *foodRequest) payload() (models.CreateFoodPayload, error) {
	exp, err := timex.ParseDate(r.Exp)
	if err != nil {
		return models.CreateFoodPayload{}, err
	}
	return models.CreateFoodPayload{
		FoodName: models.FoodName(r.FoodName),
		Exp:      exp,
	}, nil
}

// createFood resolves the acting user first; the food constructor takes the
// owner's public info, not a raw id.
func (s *Server) createFood(c echo.Context) error {
	userID := models.UserID(c.Param("user_id"))

	req := new(foodRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	p, err := req.payload()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	owner, err := s.users.Get(ctx, userID)
	if err != nil {
		return s.domainError(c, err)
	}

	food, err := s.foods.Create(ctx, p, *owner)
	if err != nil {
		return s.domainError(c, err)
	}
	return c.JSON(http.StatusCreated, food)
}

func (s *Server) listFoods(c echo.Context) error {
	userID := models.UserID(c.Param("user_id"))

	all, err := s.foods.ListByOwner(c.Request().Context(), userID)
	if err != nil {
		return s.domainError(c, err)
	}
	return c.JSON(http.StatusOK, all)
}

func (s *Server) getFood(c echo.Context) error {
	id := models.FoodID(c.Param("food_id"))

	food, err := s.foods.Get(c.Request().Context(), id)
	if err != nil {
		return s.domainError(c, err)
	}
	return c.JSON(http.StatusOK, food)
}

func (s *Server) updateFood(c echo.Context) error {
	id := models.FoodID(c.Param("food_id"))

	req := new(foodRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	p, err := req.payload()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	food, err := s.foods.Update(c.Request().Context(), id, p)
	if err != nil {
		return s.domainError(c, err)
	}
	return c.JSON(http.StatusOK, food)
}

func (s *Server) deleteFood(c echo.Context) error {
	id := models.FoodID(c.Param("food_id"))

	if err := s.foods.Delete(c.Request().Context(), id); err != nil {
		return s.domainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
