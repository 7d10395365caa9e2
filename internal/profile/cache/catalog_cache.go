package cache

import (
	"context"
	"encoding/json"
	"time"

	"royale_backend/domain"
	"royale_backend/internal/service/logger"
	"royale_backend/internal/service/middleware"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const catalogKey = "store:catalog"
const catalogTTL = 5 * time.Minute

// CatalogCache is the read-through cache interface for the store catalog.
type CatalogCache interface {
	Get(ctx context.Context) ([]domain.StoreItemResponse, bool)
	Set(ctx context.Context, catalog []domain.StoreItemResponse)
}

// redisCatalogCache keeps the store listing in redis. The catalog is
// read-only to this subsystem, so a TTL is the only invalidation needed.
// Cache failures degrade to a store read; they are logged, never surfaced.
type redisCatalogCache struct {
	client *redis.Client
}

func NewCatalogCache(client *redis.Client) CatalogCache {
	return &redisCatalogCache{
		client: client,
	}
}

func (c *redisCatalogCache) Get(ctx context.Context) ([]domain.StoreItemResponse, bool) {
	requestID := middleware.GetRequestID(ctx)

	data, err := c.client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.DBLogger.Warn("Catalog cache read failed", zap.String("request_id", requestID), zap.Error(err))
		}
		return nil, false
	}

	var catalog []domain.StoreItemResponse
	if err := json.Unmarshal(data, &catalog); err != nil {
		logger.DBLogger.Warn("Catalog cache entry corrupt", zap.String("request_id", requestID), zap.Error(err))
		return nil, false
	}
	return catalog, true
}

func (c *redisCatalogCache) Set(ctx context.Context, catalog []domain.StoreItemResponse) {
	requestID := middleware.GetRequestID(ctx)

	data, err := json.Marshal(catalog)
	if err != nil {
		logger.DBLogger.Warn("Catalog cache marshal failed", zap.String("request_id", requestID), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, catalogKey, data, catalogTTL).Err(); err != nil {
		logger.DBLogger.Warn("Catalog cache write failed", zap.String("request_id", requestID), zap.Error(err))
	}
}
