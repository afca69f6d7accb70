// Package httpapi exposes the CRUD operations over a JSON HTTP API. It is a
// thin boundary: request DTOs are bound and validated here, then handed to
// the services; domain errors come back and are mapped onto HTTP statuses.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/ymatsuzawa/foodkeeper/internal/common"
	"github.com/ymatsuzawa/foodkeeper/internal/logging"
	"github.com/ymatsuzawa/foodkeeper/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

// Server wires the echo router, the services, and the logger.
type Server struct {
	echo   *echo.Echo
	logger logging.Logger
	users  *services.UserService
	foods  *services.FoodService
}

type payloadValidator struct {
	v *validator.Validate
}

func (pv *payloadValidator) Validate(i any) error {
	if err := pv.v.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// NewServer builds the API server and registers all routes.
func NewServer(logger logging.Logger, users *services.UserService, foods *services.FoodService) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = &payloadValidator{v: validator.New()}

	s := &Server{echo: e, logger: logger, users: users, foods: foods}
	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.echo.Group("/api")

	api.POST("/users", s.createUser)
	api.GET("/users/:user_id", s.getUser)
	api.PUT("/users/:user_id", s.updateUser)
	api.DELETE("/users/:user_id", s.deleteUser)

	api.POST("/users/:user_id/foods", s.createFood)
	api.GET("/users/:user_id/foods", s.listFoods)

	api.GET("/foods/:food_id", s.getFood)
	api.PUT("/foods/:food_id", s.updateFood)
	api.DELETE("/foods/:food_id", s.deleteFood)
}

// Run starts the HTTP server and shuts it down when ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.echo.Start(addr)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.echo.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// domainError translates service/repository failures into HTTP errors.
// NotFound and Conflict are ordinary outcomes; Unavailable and anything
// unknown get logged because they point at infrastructure.
func (s *Server) domainError(c echo.Context, err error) error {
	ctx := c.Request().Context()
	switch {
	case errors.Is(err, common.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	case errors.Is(err, common.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, "conflict")
	case errors.Is(err, common.ErrUnavailable):
		s.logger.Error(ctx, "storage unavailable", "error", err.Error())
		return echo.NewHTTPError(http.StatusServiceUnavailable, "storage unavailable")
	default:
		s.logger.Error(ctx, "request failed", "error", err.Error())
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
