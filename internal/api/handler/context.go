package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// claims is the authenticated subject extracted from the verified token.
type claims struct {
	UserID string
	Email  string
	Role   string
}

// ctxClaims extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: email and role must
// be non-empty (presence proves the middleware ran and the token carried a
// usable identity).
func ctxClaims(c echo.Context) (claims, error) {
	email, _ := c.Get("email").(string)
	role, _ := c.Get("role").(string)
	if email == "" || role == "" {
		return claims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	userID, _ := c.Get("user_id").(string)
	return claims{UserID: userID, Email: email, Role: role}, nil
}
