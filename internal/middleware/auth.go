package middleware

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hyeonbin/boardhub/internal/domain"
	"github.com/hyeonbin/boardhub/internal/models"
	"github.com/hyeonbin/boardhub/internal/service"
	"github.com/hyeonbin/boardhub/pkg/logging"
	"github.com/hyeonbin/boardhub/pkg/tokens"
)

const principalKey = "principal"

type Auth struct {
	Directory service.UserDirectory
	JWTSecret []byte
}

func NewAuth(directory service.UserDirectory, secret []byte) *Auth {
	return &Auth{Directory: directory, JWTSecret: secret}
}

// RequireAuth verifies the bearer token and then re-resolves the account
// from the directory. The token payload is only trusted to name an identity;
// role and existence come from the fresh record, so a deleted or demoted
// account is cut off on its next request even with a still-valid token.
func (m *Auth) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		l := logging.FromContext(ctx).With("middleware", "require_auth")

		raw, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			l.Warn("auth_failed", "status", 401, "reason", "missing bearer token")
			return echo.NewHTTPError(http.StatusUnauthorized, "missing access token")
		}

		claims, err := tokens.AccessClaimsFromToken(raw, m.JWTSecret)
		if err != nil {
			l.Warn("auth_failed", "status", 401, "reason", "invalid or expired token")
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
		}

		user, err := m.Directory.FindByEmail(ctx, claims.Email)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				l.Warn("auth_failed", "status", 401, "reason", "account no longer exists")
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}
			l.Error("auth_failed", "status", 500, "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "cannot resolve account")
		}

		c.Set(principalKey, user)
		return next(c)
	}
}

// RequireRoles rejects principals whose current role is outside the set.
// Runs after RequireAuth, purely on the already-resolved principal.
func RequireRoles(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := Principal(c)
			if principal == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing access token")
			}
			if !slices.Contains(roles, principal.Role) {
				logging.FromContext(c.Request().Context()).Warn("role_denied",
					"status", 403, "user_id", principal.ID, "role", principal.Role)
				return echo.NewHTTPError(http.StatusForbidden, "not enough rights")
			}
			return next(c)
		}
	}
}

func Principal(c echo.Context) *models.User {
	if u, ok := c.Get(principalKey).(*models.User); ok {
		return u
	}
	return nil
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
