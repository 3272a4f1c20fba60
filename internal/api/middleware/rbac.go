package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/travelnotes/backoffice/internal/core/domain"
)

// RequireRole enforces the ordered-role capability check: the authenticated
// identity must meet or exceed the required authority (admin satisfies every
// moderator-gated route). It is the single role check in the system; call
// sites never compare roles themselves.
func RequireRole(required domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := IdentityFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "no authenticated identity")
			}
			if !identity.Role.Meets(required) {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
			}
			return next(c)
		}
	}
}
