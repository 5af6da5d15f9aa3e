package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ghuser/swapspace/internal/logger"
	"github.com/ghuser/swapspace/internal/models"
)

// ItemCacheRepository caches item reads in Redis. Mutations must call Delete
// so stale entries never outlive an update.
type ItemCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for cached items
}

// NewItemCacheRepository creates a new cache repository with the given TTL.
func NewItemCacheRepository(client *redis.Client, expiration time.Duration) *ItemCacheRepository {
	return &ItemCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func itemKey(itemID uuid.UUID) string {
	return fmt.Sprintf("item:%s", itemID)
}

// Get fetches a cached item. A cache miss returns (nil, nil).
func (r *ItemCacheRepository) Get(ctx context.Context, itemID uuid.UUID) (*models.ItemDB, error) {
	key := itemKey(itemID)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		logger.Log.Errorw("item cache get failed", "key", key, "error", err)
		return nil, err
	}

	var item models.ItemDB
	if err := json.Unmarshal(val, &item); err != nil {
		logger.Log.Errorw("item cache decode failed", "key", key, "error", err)
		return nil, err
	}

	logger.Log.Debugw("item cache hit", "key", key)
	return &item, nil
}

// Set caches an item with the configured expiration.
func (r *ItemCacheRepository) Set(ctx context.Context, item *models.ItemDB) error {
	key := itemKey(item.ItemID)

	data, err := json.Marshal(item)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Debugw("item cache set", "key", key, "error", err)

	return err
}

// Delete evicts an item from the cache.
func (r *ItemCacheRepository) Delete(ctx context.Context, itemID uuid.UUID) error {
	key := itemKey(itemID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Debugw("item cache delete", "key", key, "error", err)

	return err
}
