package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a test Redis client using miniredis
func setupTestRedis(t *testing.T) (*Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	redisClient := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return &Client{Redis: redisClient}, mr
}

func TestClient_SetGet(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	err := client.Set(ctx, "premium:user-1", "1", 2*time.Second)
	require.NoError(t, err)

	val, err := client.Get(ctx, "premium:user-1")
	require.NoError(t, err)
	assert.Equal(t, "1", val)
}

func TestClient_SetNX(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	// First delivery wins
	set, err := client.SetNX(ctx, "stripe:event:evt_123", "1", 24*time.Hour)
	require.NoError(t, err)
	assert.True(t, set)

	// Replayed delivery is rejected
	set, err = client.SetNX(ctx, "stripe:event:evt_123", "1", 24*time.Hour)
	require.NoError(t, err)
	assert.False(t, set)
}

func TestClient_Delete(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	_ = client.Set(ctx, "premium:user-1", "1", time.Hour)
	_ = client.Set(ctx, "premium:user-2", "1", time.Hour)

	err := client.Delete(ctx, "premium:user-1")
	require.NoError(t, err)

	_, err = client.Get(ctx, "premium:user-1")
	assert.Error(t, err) // Should be redis.Nil error

	val, err := client.Get(ctx, "premium:user-2")
	require.NoError(t, err)
	assert.Equal(t, "1", val)
}

func TestClient_DeletePattern(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	_ = client.Set(ctx, "stripe:event:evt_1", "1", time.Hour)
	_ = client.Set(ctx, "stripe:event:evt_2", "1", time.Hour)
	_ = client.Set(ctx, "premium:user-1", "1", time.Hour)

	err := client.DeletePattern(ctx, "stripe:event:*")
	require.NoError(t, err)

	_, err = client.Get(ctx, "stripe:event:evt_1")
	assert.Error(t, err)

	_, err = client.Get(ctx, "stripe:event:evt_2")
	assert.Error(t, err)

	val, err := client.Get(ctx, "premium:user-1")
	require.NoError(t, err)
	assert.Equal(t, "1", val)
}

func TestClient_Exists(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	exists, err := client.Exists(ctx, "premium:nonexistent")
	require.NoError(t, err)
	assert.False(t, exists)

	_ = client.Set(ctx, "premium:user-1", "1", time.Hour)

	exists, err = client.Exists(ctx, "premium:user-1")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestClient_PublishSubscribe(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	sub := client.Subscribe(ctx, "premium:invalidate")
	defer sub.Close()

	// Wait for the subscription to be established before publishing
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	err = client.Publish(ctx, "premium:invalidate", "user-1")
	require.NoError(t, err)

	select {
	case msg := <-sub.Channel():
		assert.Equal(t, "premium:invalidate", msg.Channel)
		assert.Equal(t, "user-1", msg.Payload)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for published message")
	}
}
