package secrets

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
)

// Manager is the read interface over the configured secrets backend
type Manager interface {
	GetSecret(ctx context.Context, key string) (string, error)
	GetSecretJSON(ctx context.Context, key string, dest interface{}) error
	RefreshCache(ctx context.Context) error
	Close() error
}

// Config holds secrets manager configuration
type Config struct {
	Backend        string        // "env" or "aws-secrets-manager"
	AWSRegion      string        // AWS region for Secrets Manager
	CacheDuration  time.Duration // How long to cache secrets
	RefreshOnStart bool          // Whether to refresh cache on startup
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Backend:       "env",
		AWSRegion:     "us-east-1",
		CacheDuration: 5 * time.Minute,
	}
}

// NewManager creates a secrets manager for the configured backend
func NewManager(cfg Config) (Manager, error) {
	switch cfg.Backend {
	case "aws-secrets-manager", "aws":
		log.Printf("🔐 Initializing AWS Secrets Manager (region: %s)", cfg.AWSRegion)
		return NewAWSSecretsManager(cfg)
	case "env", "environment":
		log.Printf("🔐 Using environment variables for secrets (development mode)")
		return NewEnvironmentManager(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported secrets backend: %s", cfg.Backend)
	}
}

type cachedSecret struct {
	value     string
	expiresAt time.Time
}

// secretCache is the TTL cache both backends share
type secretCache struct {
	mu      sync.RWMutex
	entries map[string]cachedSecret
	ttl     time.Duration
}

func newSecretCache(ttl time.Duration) *secretCache {
	return &secretCache{entries: make(map[string]cachedSecret), ttl: ttl}
}

func (c *secretCache) get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cached, ok := c.entries[key]
	if !ok || time.Now().After(cached.expiresAt) {
		return "", false
	}
	return cached.value, true
}

func (c *secretCache) set(key, value string) {
	c.mu.Lock()
	c.entries[key] = cachedSecret{value: value, expiresAt: time.Now().Add(c.ttl)}
	c.mu.Unlock()
}

func (c *secretCache) clear() {
	c.mu.Lock()
	c.entries = make(map[string]cachedSecret)
	c.mu.Unlock()
}

// EnvironmentManager reads secrets from environment variables. Used in
// development and in deployments where the orchestrator injects secrets.
type EnvironmentManager struct {
	cache *secretCache
}

// NewEnvironmentManager creates a new environment-based secrets manager
func NewEnvironmentManager(cfg Config) *EnvironmentManager {
	return &EnvironmentManager{cache: newSecretCache(cfg.CacheDuration)}
}

// GetSecret retrieves a secret from environment variables
func (m *EnvironmentManager) GetSecret(ctx context.Context, key string) (string, error) {
	if value, ok := m.cache.get(key); ok {
		return value, nil
	}

	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("secret not found: %s", key)
	}

	m.cache.set(key, value)
	return value, nil
}

// GetSecretJSON retrieves a secret and unmarshals it as JSON
func (m *EnvironmentManager) GetSecretJSON(ctx context.Context, key string, dest interface{}) error {
	value, err := m.GetSecret(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(value), dest)
}

// RefreshCache clears the cache so the next access reloads from the environment
func (m *EnvironmentManager) RefreshCache(ctx context.Context) error {
	m.cache.clear()
	log.Printf("🔄 Environment secrets cache cleared")
	return nil
}

// Close is a no-op for environment manager
func (m *EnvironmentManager) Close() error {
	return nil
}

// AWSSecretsManager reads secrets from AWS Secrets Manager
type AWSSecretsManager struct {
	client *secretsmanager.SecretsManager
	cache  *secretCache
}

// NewAWSSecretsManager creates a new AWS Secrets Manager client
func NewAWSSecretsManager(cfg Config) (*AWSSecretsManager, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.AWSRegion),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	manager := &AWSSecretsManager{
		client: secretsmanager.New(sess),
		cache:  newSecretCache(cfg.CacheDuration),
	}

	if cfg.RefreshOnStart {
		if err := manager.RefreshCache(context.Background()); err != nil {
			log.Printf("⚠️  Failed to refresh secrets cache on startup: %v", err)
		}
	}

	log.Printf("✅ AWS Secrets Manager initialized (cache duration: %s)", cfg.CacheDuration)
	return manager, nil
}

// GetSecret retrieves a secret from AWS Secrets Manager
func (m *AWSSecretsManager) GetSecret(ctx context.Context, key string) (string, error) {
	if value, ok := m.cache.get(key); ok {
		return value, nil
	}

	result, err := m.client.GetSecretValueWithContext(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(key),
	})
	if err != nil {
		return "", fmt.Errorf("failed to get secret %s: %w", key, err)
	}
	if result.SecretString == nil {
		return "", fmt.Errorf("secret %s has no string value", key)
	}

	m.cache.set(key, *result.SecretString)
	log.Printf("✅ Loaded secret from AWS Secrets Manager: %s", key)
	return *result.SecretString, nil
}

// GetSecretJSON retrieves a secret and unmarshals it as JSON
func (m *AWSSecretsManager) GetSecretJSON(ctx context.Context, key string, dest interface{}) error {
	value, err := m.GetSecret(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(value), dest)
}

// RefreshCache drops all cached values so they reload on next access
func (m *AWSSecretsManager) RefreshCache(ctx context.Context) error {
	m.cache.clear()
	log.Printf("🔄 AWS Secrets Manager cache cleared")
	return nil
}

// Close closes the AWS Secrets Manager client
func (m *AWSSecretsManager) Close() error {
	// SDK sessions need no explicit cleanup
	return nil
}
