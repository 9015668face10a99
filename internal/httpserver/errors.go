package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hyeonbin/boardhub/internal/domain"
)

// toHTTPError maps domain errors onto the response taxonomy. Anything
// unrecognized is a plain 500 so storage details never reach the client.
func toHTTPError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	case errors.Is(err, domain.ErrEmailTaken):
		return echo.NewHTTPError(http.StatusConflict, "email already exists")
	case errors.Is(err, domain.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, domain.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, "not enough rights")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
