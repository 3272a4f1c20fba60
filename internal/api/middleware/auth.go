package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/travelnotes/backoffice/internal/core/domain"
	"github.com/travelnotes/backoffice/internal/core/ports"
)

// Context keys set by Auth for downstream handlers.
const (
	ContextKeyIdentity = "identity"
	ContextKeyToken    = "session_token"
)

// Auth resolves the bearer token through the session store and injects the
// authenticated identity into the echo context. It only reads the store;
// session state is never mutated here.
func Auth(sessions ports.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			identity, err := sessions.Resolve(c.Request().Context(), parts[1])
			if err != nil {
				if errors.Is(err, domain.ErrUnauthenticated) {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired session")
				}
				return err
			}

			c.Set(ContextKeyIdentity, *identity)
			c.Set(ContextKeyToken, parts[1])

			return next(c)
		}
	}
}

// IdentityFrom extracts the authenticated identity placed by Auth.
func IdentityFrom(c echo.Context) (domain.Identity, bool) {
	identity, ok := c.Get(ContextKeyIdentity).(domain.Identity)
	return identity, ok
}

// TokenFrom extracts the raw session token placed by Auth.
func TokenFrom(c echo.Context) string {
	token, _ := c.Get(ContextKeyToken).(string)
	return token
}
