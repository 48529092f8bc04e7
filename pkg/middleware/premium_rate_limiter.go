package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/nexaai/nexa-backend/pkg/domain"
)

// TierLimits defines rate limits for a tier
type TierLimits struct {
	RequestsPerMinute int
	Burst             int
}

// PremiumRateLimiter rate-limits authenticated users by their resolved
// premium status rather than a value baked into the token, so a purchase
// raises the limit within the resolver's cache TTL. Unauthenticated
// requests fall back to IP-based limits.
type PremiumRateLimiter struct {
	userLimiters map[string]*rate.Limiter
	ipLimiters   map[string]*rate.Limiter
	mu           sync.RWMutex

	resolver domain.PremiumResolver

	freeLimits    TierLimits
	premiumLimits TierLimits
	defaultLimits TierLimits
}

// NewPremiumRateLimiter creates a premium-aware rate limiter
func NewPremiumRateLimiter(resolver domain.PremiumResolver) *PremiumRateLimiter {
	prl := &PremiumRateLimiter{
		userLimiters: make(map[string]*rate.Limiter),
		ipLimiters:   make(map[string]*rate.Limiter),
		resolver:     resolver,
		freeLimits: TierLimits{
			RequestsPerMinute: 60, // 1 request per second
			Burst:             10,
		},
		premiumLimits: TierLimits{
			RequestsPerMinute: 300, // 5 requests per second
			Burst:             50,
		},
		defaultLimits: TierLimits{
			RequestsPerMinute: 30, // Unauthenticated: 30 req/min
			Burst:             5,
		},
	}

	go prl.cleanupLimiters()

	return prl
}

// getUserLimiter returns or creates a rate limiter for a user
func (prl *PremiumRateLimiter) getUserLimiter(userID string, isPremium bool) *rate.Limiter {
	prl.mu.Lock()
	defer prl.mu.Unlock()

	if limiter, exists := prl.userLimiters[userID]; exists {
		return limiter
	}

	limits := prl.freeLimits
	if isPremium {
		limits = prl.premiumLimits
	}

	rps := float64(limits.RequestsPerMinute) / 60.0
	limiter := rate.NewLimiter(rate.Limit(rps), limits.Burst)
	prl.userLimiters[userID] = limiter

	return limiter
}

// getIPLimiter returns or creates a rate limiter for an IP address
func (prl *PremiumRateLimiter) getIPLimiter(ip string) *rate.Limiter {
	prl.mu.Lock()
	defer prl.mu.Unlock()

	if limiter, exists := prl.ipLimiters[ip]; exists {
		return limiter
	}

	rps := float64(prl.defaultLimits.RequestsPerMinute) / 60.0
	limiter := rate.NewLimiter(rate.Limit(rps), prl.defaultLimits.Burst)
	prl.ipLimiters[ip] = limiter

	return limiter
}

// cleanupLimiters removes inactive limiters every 5 minutes. Eviction also
// means a user whose premium status changed gets re-tiered on reuse.
func (prl *PremiumRateLimiter) cleanupLimiters() {
	for {
		time.Sleep(5 * time.Minute)

		prl.mu.Lock()

		for userID, limiter := range prl.userLimiters {
			// Full burst tokens means it hasn't been used recently
			if limiter.Tokens() >= float64(limiter.Burst()) {
				delete(prl.userLimiters, userID)
			}
		}

		for ip, limiter := range prl.ipLimiters {
			if limiter.Tokens() >= float64(limiter.Burst()) {
				delete(prl.ipLimiters, ip)
			}
		}

		prl.mu.Unlock()
	}
}

// Middleware creates an Echo middleware for premium-aware rate limiting
func (prl *PremiumRateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var limiter *rate.Limiter

			userID, authenticated := c.Get("user_id").(string)

			if authenticated && userID != "" {
				status := prl.resolver.Resolve(c.Request().Context(), userID)
				limiter = prl.getUserLimiter(userID, status.IsPremium)
			} else {
				ip := c.RealIP()
				if ip == "" {
					ip = c.Request().RemoteAddr
				}
				limiter = prl.getIPLimiter(ip)
			}

			if !limiter.Allow() {
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"error":   "rate_limit_exceeded",
					"message": "Rate limit exceeded. Premium accounts get higher limits.",
				})
			}

			return next(c)
		}
	}
}
