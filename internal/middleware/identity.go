package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

// currentUserID returns the subject stored by JWTAuth, or "anon" when the
// request is unauthenticated.  Rate-limit keys use it to separate callers.
func currentUserID(c echo.Context) string {
	switch v := c.Get(ctxUserID).(type) {
	case string:
		if v != "" {
			return v
		}
	case float64:
		return fmt.Sprintf("%.0f", v)
	}
	return "anon"
}
