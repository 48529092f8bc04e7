package premium

import (
	"sync"
	"time"

	"github.com/nexaai/nexa-backend/pkg/models"
)

// statusCache is a process-local TTL cache for resolved premium statuses.
// Entries are tiny and short-lived, so expired entries are simply
// overwritten on the next resolve rather than swept.
type statusCache struct {
	mu      sync.RWMutex
	entries map[string]cachedStatus
	ttl     time.Duration
	now     func() time.Time
}

type cachedStatus struct {
	status    models.PremiumStatus
	expiresAt time.Time
}

func newStatusCache(ttl time.Duration, now func() time.Time) *statusCache {
	return &statusCache{
		entries: make(map[string]cachedStatus),
		ttl:     ttl,
		now:     now,
	}
}

func (c *statusCache) get(userID string) (models.PremiumStatus, bool) {
	c.mu.RLock()
	entry, ok := c.entries[userID]
	c.mu.RUnlock()
	if !ok || c.now().After(entry.expiresAt) {
		return models.PremiumStatus{}, false
	}
	return entry.status, true
}

func (c *statusCache) set(userID string, status models.PremiumStatus) {
	c.mu.Lock()
	c.entries[userID] = cachedStatus{status: status, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
}

func (c *statusCache) delete(userID string) {
	c.mu.Lock()
	delete(c.entries, userID)
	c.mu.Unlock()
}

func (c *statusCache) purge() {
	c.mu.Lock()
	c.entries = make(map[string]cachedStatus)
	c.mu.Unlock()
}
