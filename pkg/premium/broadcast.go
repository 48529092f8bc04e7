package premium

import (
	"context"

	"github.com/nexaai/nexa-backend/pkg/cache"
	"github.com/nexaai/nexa-backend/pkg/logger"
)

// InvalidationChannel is the Redis pub/sub channel used to fan out premium
// cache invalidations across API instances.
const InvalidationChannel = "premium:invalidate"

// invalidateAllPayload is the broadcast message that clears every cached
// status instead of a single user's.
const invalidateAllPayload = "*"

// InvalidationBus fans resolver cache invalidations out to every running
// instance. Each instance keeps its own in-process TTL cache, so a balance
// write on one instance must tell the others to drop their copy.
type InvalidationBus struct {
	cache    *cache.Client
	resolver *Resolver
	log      logger.Logger
}

func NewInvalidationBus(cacheClient *cache.Client, resolver *Resolver, log logger.Logger) *InvalidationBus {
	return &InvalidationBus{
		cache:    cacheClient,
		resolver: resolver,
		log:      log,
	}
}

// Broadcast invalidates the local cache and publishes the user ID so other
// instances do the same. The local drop happens regardless of publish
// errors; a failed publish only delays remote instances by the cache TTL.
func (b *InvalidationBus) Broadcast(ctx context.Context, userID string) {
	b.resolver.Invalidate(userID)
	if err := b.cache.Publish(ctx, InvalidationChannel, userID); err != nil {
		b.log.Error("failed to broadcast premium invalidation", "user_id", userID, "error", err)
	}
}

// BroadcastAll drops every cached status on every instance.
func (b *InvalidationBus) BroadcastAll(ctx context.Context) {
	b.resolver.InvalidateAll()
	if err := b.cache.Publish(ctx, InvalidationChannel, invalidateAllPayload); err != nil {
		b.log.Error("failed to broadcast premium invalidation", "error", err)
	}
}

// Listen consumes invalidations published by other instances until the
// context is cancelled. Run it in its own goroutine.
func (b *InvalidationBus) Listen(ctx context.Context) {
	sub := b.cache.Subscribe(ctx, InvalidationChannel)
	defer sub.Close()

	b.log.Info("premium invalidation listener started", "channel", InvalidationChannel)

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if msg.Payload == invalidateAllPayload {
				b.resolver.InvalidateAll()
				continue
			}
			b.resolver.Invalidate(msg.Payload)
		}
	}
}
