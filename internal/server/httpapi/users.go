package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ymatsuzawa/foodkeeper/internal/server/models"
)

// userRequest is the create/update body for a user. Validation happens
// here, at the boundary; the value objects themselves stay validation-free.
type userRequest struct {
	UserName string `json:"user_name" validate:"required"`
	Mail     string `json:"mail" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (r *userRequest) payload() models.CreateUserPayload {
	return models.CreateUserPayload{
		UserName: models.UserName(r.UserName),
		Mail:     models.Mail(r.Mail),
		Password: r.Password,
	}
}

func (s *Server) createUser(c echo.Context) error {
	req := new(userRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	info, err := s.users.Create(c.Request().Context(), req.payload())
	if err != nil {
		return s.domainError(c, err)
	}
	return c.JSON(http.StatusCreated, info)
}

func (s *Server) getUser(c echo.Context) error {
	id := models.UserID(c.Param("user_id"))

	info, err := s.users.Get(c.Request().Context(), id)
	if err != nil {
		return s.domainError(c, err)
	}
	return c.JSON(http.StatusOK, info)
}

func (s *Server) updateUser(c echo.Context) error {
	id := models.UserID(c.Param("user_id"))

	req := new(userRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	info, err := s.users.Update(c.Request().Context(), id, req.payload())
	if err != nil {
		return s.domainError(c, err)
	}
	return c.JSON(http.StatusOK, info)
}

func (s *Server) deleteUser(c echo.Context) error {
	id := models.UserID(c.Param("user_id"))

	if err := s.users.Delete(c.Request().Context(), id); err != nil {
		return s.domainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
