package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexaai/nexa-backend/pkg/auth"
	"github.com/nexaai/nexa-backend/pkg/models"
)

func performRequest(e *echo.Echo, mw echo.MiddlewareFunc, headers map[string]string, preset func(echo.Context)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if preset != nil {
		preset(c)
	}

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	_ = handler(c)
	return rec
}

func TestRateLimiter_AllowsWithinBurst(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(60, 5)
	mw := rl.RateLimitMiddleware()

	for i := 0; i < 5; i++ {
		rec := performRequest(e, mw, nil, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimiter_BlocksBeyondBurst(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(60, 3)
	mw := rl.RateLimitMiddleware()

	for i := 0; i < 3; i++ {
		performRequest(e, mw, nil, nil)
	}
	rec := performRequest(e, mw, nil, nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

type staticResolver struct {
	premium map[string]bool
}

func (r *staticResolver) Resolve(ctx context.Context, userID string) models.PremiumStatus {
	return models.PremiumStatus{UserID: userID, IsPremium: r.premium[userID], FetchedAt: time.Now()}
}

func (r *staticResolver) Invalidate(userID string) {}
func (r *staticResolver) InvalidateAll()           {}

func TestPremiumRateLimiter_PremiumGetsHigherBurst(t *testing.T) {
	e := echo.New()
	prl := NewPremiumRateLimiter(&staticResolver{premium: map[string]bool{"premium-user": true}})
	mw := prl.Middleware()

	asUser := func(userID string) func(echo.Context) {
		return func(c echo.Context) { c.Set("user_id", userID) }
	}

	// Free user exhausts the free burst of 10
	blockedAt := -1
	for i := 0; i < 20; i++ {
		rec := performRequest(e, mw, nil, asUser("free-user"))
		if rec.Code == http.StatusTooManyRequests {
			blockedAt = i
			break
		}
	}
	require.NotEqual(t, -1, blockedAt, "free user should hit the limit")
	assert.LessOrEqual(t, blockedAt, 11)

	// Premium user sails past the same request count
	for i := 0; i < 20; i++ {
		rec := performRequest(e, mw, nil, asUser("premium-user"))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestPremiumRateLimiter_UnauthenticatedUsesIPLimits(t *testing.T) {
	e := echo.New()
	prl := NewPremiumRateLimiter(&staticResolver{premium: map[string]bool{}})
	mw := prl.Middleware()

	blocked := false
	for i := 0; i < 10; i++ {
		rec := performRequest(e, mw, nil, nil)
		if rec.Code == http.StatusTooManyRequests {
			blocked = true
			break
		}
	}
	assert.True(t, blocked, "unauthenticated burst of 5 should be exceeded")
}

func TestJWTAuth(t *testing.T) {
	e := echo.New()
	secret := "test-secret"
	mw := JWTAuth(secret, nil)

	t.Run("Success - valid bearer token sets user context", func(t *testing.T) {
		token, err := auth.GenerateJWT("user-1", "user@example.com", secret, 1)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := mw(func(c echo.Context) error {
			assert.Equal(t, "user-1", UserID(c))
			assert.Equal(t, "user@example.com", c.Get("user_email"))
			return c.NoContent(http.StatusOK)
		})
		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Error - missing header", func(t *testing.T) {
		rec := performRequest(e, mw, nil, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Error - malformed header", func(t *testing.T) {
		rec := performRequest(e, mw, map[string]string{echo.HeaderAuthorization: "Token abc"}, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Error - wrong secret", func(t *testing.T) {
		token, err := auth.GenerateJWT("user-1", "user@example.com", "other-secret", 1)
		require.NoError(t, err)
		rec := performRequest(e, mw, map[string]string{echo.HeaderAuthorization: "Bearer " + token}, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
