package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	apierrors "github.com/nexaai/nexa-backend/pkg/api/errors"
	"github.com/nexaai/nexa-backend/pkg/auth"
	"github.com/nexaai/nexa-backend/pkg/middleware"
)

// Invalidator drops cached premium statuses across instances
type Invalidator interface {
	Broadcast(ctx context.Context, userID string)
}

// SessionHandler handles sign-out. Sign-in happens at the identity service;
// this side only needs to revoke the token and drop the cached premium
// status so the next session starts from a fresh store read.
type SessionHandler struct {
	blacklist     *auth.TokenBlacklist
	invalidator   Invalidator
	tokenLifetime time.Duration
}

func NewSessionHandler(blacklist *auth.TokenBlacklist, invalidator Invalidator, tokenLifetime time.Duration) *SessionHandler {
	return &SessionHandler{
		blacklist:     blacklist,
		invalidator:   invalidator,
		tokenLifetime: tokenLifetime,
	}
}

// SignOut revokes the current token and invalidates the premium cache
// @Summary Sign out
// @Tags Session
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Router /auth/signout [post]
func (h *SessionHandler) SignOut(c echo.Context) error {
	userID := middleware.UserID(c)
	if userID == "" {
		return apierrors.UnauthorizedError(c)
	}
	ctx := c.Request().Context()

	if token, ok := c.Get("jwt_token").(string); ok && token != "" && h.blacklist != nil {
		// Blacklist for the full token lifetime; the entry expires with it
		if err := h.blacklist.Add(ctx, token, h.tokenLifetime); err != nil {
			return apierrors.InternalError(c, err)
		}
	}

	if h.invalidator != nil {
		h.invalidator.Broadcast(ctx, userID)
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "signed_out"})
}
