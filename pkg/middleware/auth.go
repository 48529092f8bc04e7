package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nexaai/nexa-backend/pkg/auth"
	"github.com/nexaai/nexa-backend/pkg/models"
)

// JWTAuth validates the bearer token and puts user_id and user_email on the
// context. The token carries identity only; entitlements always come from
// the balance store.
func JWTAuth(secret string, blacklist *auth.TokenBlacklist) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "unauthorized",
					Message: "Authentication required",
				})
			}

			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenString == "" {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "unauthorized",
					Message: "Invalid authorization header",
				})
			}

			claims, err := auth.ValidateJWTWithBlacklist(c.Request().Context(), tokenString, secret, blacklist)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "unauthorized",
					Message: "Invalid or expired token",
				})
			}

			c.Set("user_id", claims.UserID)
			c.Set("user_email", claims.Email)
			c.Set("jwt_token", tokenString)

			return next(c)
		}
	}
}

// UserID returns the authenticated user ID from the context, or "" if the
// request is unauthenticated.
func UserID(c echo.Context) string {
	userID, _ := c.Get("user_id").(string)
	return userID
}
