package premium

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexaai/nexa-backend/pkg/cache"
	"github.com/nexaai/nexa-backend/pkg/logger"
	"github.com/nexaai/nexa-backend/pkg/models"
)

func setupBus(t *testing.T, store *fakeStore) (*InvalidationBus, *Resolver, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	cacheClient := &cache.Client{Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	t.Cleanup(func() { _ = cacheClient.Close() })

	clock := &fakeClock{t: time.Now()}
	resolver, _ := newTestResolver(store, nil, clock)
	return NewInvalidationBus(cacheClient, resolver, logger.Default()), resolver, mr
}

func TestInvalidationBus_BroadcastClearsLocalCache(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.put(premiumAccount("user-1", nil))
	bus, resolver, _ := setupBus(t, store)

	resolver.Resolve(ctx, "user-1")
	store.put(premiumAccount("user-1", func(a *models.Account) { a.PaidBalance = 500 }))

	bus.Broadcast(ctx, "user-1")

	status := resolver.Resolve(ctx, "user-1")
	assert.True(t, status.IsPremium)
	assert.Equal(t, 2, store.reads())
}

func TestInvalidationBus_ListenAppliesRemoteInvalidations(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := newFakeStore()
	store.put(premiumAccount("user-1", nil))
	bus, resolver, _ := setupBus(t, store)

	go bus.Listen(ctx)

	// Give the subscriber a moment to attach before publishing
	require.Eventually(t, func() bool {
		return bus.cache.Redis.PubSubNumSub(ctx, InvalidationChannel).Val()[InvalidationChannel] == 1
	}, 2*time.Second, 10*time.Millisecond)

	resolver.Resolve(ctx, "user-1")
	store.put(premiumAccount("user-1", func(a *models.Account) { a.IsPremium = true }))

	// Another instance announces the change
	require.NoError(t, bus.cache.Publish(ctx, InvalidationChannel, "user-1"))

	require.Eventually(t, func() bool {
		return resolver.Resolve(ctx, "user-1").IsPremium
	}, 2*time.Second, 10*time.Millisecond)
}

func TestInvalidationBus_ListenAppliesInvalidateAll(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := newFakeStore()
	store.put(premiumAccount("user-1", nil))
	store.put(premiumAccount("user-2", nil))
	bus, resolver, _ := setupBus(t, store)

	go bus.Listen(ctx)
	require.Eventually(t, func() bool {
		return bus.cache.Redis.PubSubNumSub(ctx, InvalidationChannel).Val()[InvalidationChannel] == 1
	}, 2*time.Second, 10*time.Millisecond)

	resolver.Resolve(ctx, "user-1")
	resolver.Resolve(ctx, "user-2")

	require.NoError(t, bus.cache.Publish(ctx, InvalidationChannel, invalidateAllPayload))

	require.Eventually(t, func() bool {
		resolver.Resolve(ctx, "user-1")
		resolver.Resolve(ctx, "user-2")
		return store.reads() >= 4
	}, 2*time.Second, 10*time.Millisecond)
}
