package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/book_library/internal/models"
	"github.com/Skotchmaster/book_library/internal/tokens"
)

// Guard gates protected routes. Both a missing/invalid/expired token and an
// insufficient role are rejected as 401 so the response never reveals which
// check failed.
type Guard struct {
	JWTSecret []byte
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	return strings.TrimPrefix(header, prefix), true
}

func (g *Guard) authenticate(c echo.Context) (*tokens.AccessClaims, error) {
	raw, ok := bearerToken(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication failed")
	}
	claims, err := tokens.ParseAccess(raw, g.JWTSecret)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "authentication failed")
	}
	return claims, nil
}

func setUserContext(c echo.Context, claims *tokens.AccessClaims) error {
	id, err := claims.UserID()
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication failed")
	}
	c.Set("userID", id)
	c.Set("username", claims.Username)
	c.Set("role", claims.Role)
	return nil
}

func (g *Guard) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := g.authenticate(c)
		if err != nil {
			return err
		}
		if err := setUserContext(c, claims); err != nil {
			return err
		}
		return next(c)
	}
}

func (g *Guard) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := g.authenticate(c)
		if err != nil {
			return err
		}
		if claims.Role != models.RoleAdmin {
			return echo.NewHTTPError(http.StatusUnauthorized, "authentication failed")
		}
		if err := setUserContext(c, claims); err != nil {
			return err
		}
		return next(c)
	}
}
