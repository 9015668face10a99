package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hyeonbin/boardhub/internal/events"
	"github.com/hyeonbin/boardhub/internal/service"
	"github.com/hyeonbin/boardhub/internal/transport"
	"github.com/hyeonbin/boardhub/pkg/logging"
)

type AuthHTTP struct {
	Svc      *service.AuthService
	Producer events.Publisher
}

func (h *AuthHTTP) SignUp(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.signup")

	var req transport.SignUpRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("signup_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := req.Validate(); err != nil {
		l.Warn("signup_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.Svc.SignUp(ctx, req.Username, req.Password, req.Email)
	if err != nil {
		return toHTTPError(err)
	}

	h.publish(c, events.TopicUserEvents, user.Email, map[string]any{
		"type":     "user_registered",
		"user_id":  user.ID,
		"username": user.Username,
	})

	return c.JSON(http.StatusCreated, user)
}

func (h *AuthHTTP) SignIn(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.signin")

	var req transport.SignInRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("signin_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := req.Validate(); err != nil {
		l.Warn("signin_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.Svc.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		return toHTTPError(err)
	}

	h.publish(c, events.TopicUserEvents, req.Email, map[string]any{
		"type":  "user_signed_in",
		"email": req.Email,
	})

	c.Response().Header().Set(echo.HeaderAuthorization, "Bearer "+token)
	return c.JSON(http.StatusOK, transport.TokenResponse{AccessToken: token})
}

// publish is fire-and-forget: a broker outage never fails the request.
func (h *AuthHTTP) publish(c echo.Context, topic, key string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Producer.Publish(ctx, topic, key, event); err != nil {
		logging.FromContext(c.Request().Context()).Error("event_publish_failed", "topic", topic, "error", err)
	}
}
