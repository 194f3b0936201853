package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Elliot-87/YOUTHCENTRE/internal/accounts"
	"github.com/Elliot-87/YOUTHCENTRE/pkg/models"
)

// Context keys set by the auth middleware.
const (
	ContextUserID = "user_id"
	ContextRole   = "user_role"
)

// RequireAuth extracts and verifies the bearer token, then stores the
// caller's identity on the request context.
func RequireAuth(tokens *accounts.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return authFailure(c, "Missing or malformed Authorization header")
			}

			claims, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				return authFailure(c, "Invalid or expired token")
			}

			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextRole, claims.Role)
			return next(c)
		}
	}
}

// RequireAdmin gates a route group on the admin role. Must run after
// RequireAuth.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextRole).(string)
			if role != models.RoleAdmin {
				requestID, _ := c.Get("request_id").(string)
				return c.JSON(http.StatusForbidden, models.ErrorResponse{
					Error:     "permission_denied",
					Message:   "Admin access required",
					RequestID: requestID,
					Timestamp: time.Now(),
				})
			}
			return next(c)
		}
	}
}

// UserID returns the authenticated caller's id. Zero when unauthenticated.
func UserID(c echo.Context) uint {
	id, _ := c.Get(ContextUserID).(uint)
	return id
}

func authFailure(c echo.Context, message string) error {
	requestID, _ := c.Get("request_id").(string)
	return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
		Error:     "authentication_failed",
		Message:   message,
		RequestID: requestID,
		Timestamp: time.Now(),
	})
}
