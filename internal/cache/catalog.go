// Package cache puts a Redis read-through cache in front of the shop and
// product lookups that every cart and order request repeats.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dukerupert/kirana/internal/repository"
	"github.com/dukerupert/kirana/internal/telemetry"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix     = "kirana:"
	shopPrefix    = keyPrefix + "shop:"
	productPrefix = keyPrefix + "product:"

	notFound    = "notfound"
	notFoundTTL = time.Minute
)

// Catalog is a repository.Store whose shop and product reads go through
// Redis. Every write to a cached row drops its key. Redis failures fall back
// to the database.
type Catalog struct {
	repository.Store
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewCatalog(store repository.Store, rdb *redis.Client, ttl time.Duration, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	return &Catalog{
		Store:  store,
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
	}
}

func shopKey(id pgtype.UUID) string {
	return shopPrefix + uuid.UUID(id.Bytes).String()
}

func productKey(id pgtype.UUID) string {
	return productPrefix + uuid.UUID(id.Bytes).String()
}

func (c *Catalog) GetShopByID(ctx context.Context, id pgtype.UUID) (repository.Shop, error) {
	return readThrough(ctx, c, "shop", shopKey(id), func() (repository.Shop, error) {
		return c.Store.GetShopByID(ctx, id)
	})
}

func (c *Catalog) GetProductByID(ctx context.Context, id pgtype.UUID) (repository.Product, error) {
	return readThrough(ctx, c, "product", productKey(id), func() (repository.Product, error) {
		return c.Store.GetProductByID(ctx, id)
	})
}

// readThrough serves key from Redis, or loads it and caches the result.
// Misses are cached briefly as a sentinel so unknown IDs do not reach the
// database on every request.
func readThrough[T any](ctx context.Context, c *Catalog, entity, key string, load func() (T, error)) (T, error) {
	var zero T

	data, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if string(data) == notFound {
			c.hit(entity)
			return zero, pgx.ErrNoRows
		}
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			c.logger.Warn("failed to decode cached value, continuing with database", "key", key, "error", err)
			break
		}
		c.hit(entity)
		return v, nil
	case errors.Is(err, redis.Nil):
	default:
		c.fail(entity)
		c.logger.Warn("redis read failed, continuing with database", "key", key, "error", err)
	}

	if telemetry.Business != nil {
		telemetry.Business.CacheMisses.WithLabelValues(entity).Inc()
	}

	v, err := load()
	if err != nil {
		if repository.IsNotFound(err) {
			c.set(ctx, entity, key, notFound, notFoundTTL)
		}
		return zero, err
	}

	encoded, err := json.Marshal(v)
	if err != nil {
		c.logger.Warn("failed to encode value for cache", "key", key, "error", err)
		return v, nil
	}
	c.set(ctx, entity, key, encoded, c.ttl)

	return v, nil
}

func (c *Catalog) set(ctx context.Context, entity, key string, value any, ttl time.Duration) {
	if err := c.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		c.fail(entity)
		c.logger.Warn("redis write failed", "key", key, "error", err)
	}
}

func (c *Catalog) hit(entity string) {
	if telemetry.Business != nil {
		telemetry.Business.CacheHits.WithLabelValues(entity).Inc()
	}
}

func (c *Catalog) fail(entity string) {
	if telemetry.Business != nil {
		telemetry.Business.CacheErrors.WithLabelValues(entity).Inc()
	}
}

func (c *Catalog) invalidate(ctx context.Context, keys ...string) {
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.fail("invalidate")
		c.logger.Warn("redis delete failed", "keys", keys, "error", err)
	}
}

// invalidatePrefix drops every key under prefix. Used after bulk updates,
// where the affected IDs are not known.
func (c *Catalog) invalidatePrefix(ctx context.Context, prefix string) {
	iter := c.rdb.Scan(ctx, 0, prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.fail("invalidate")
		c.logger.Warn("redis scan failed", "prefix", prefix, "error", err)
		return
	}
	if len(keys) > 0 {
		c.invalidate(ctx, keys...)
	}
}

func (c *Catalog) UpdateShop(ctx context.Context, arg repository.UpdateShopParams) (repository.Shop, error) {
	shop, err := c.Store.UpdateShop(ctx, arg)
	c.invalidate(ctx, shopKey(arg.ID))
	return shop, err
}

// DeleteShop also drops every cached product, since the shop's products go
// with it.
func (c *Catalog) DeleteShop(ctx context.Context, id pgtype.UUID) error {
	err := c.Store.DeleteShop(ctx, id)
	c.invalidate(ctx, shopKey(id))
	if err == nil {
		c.invalidatePrefix(ctx, productPrefix)
	}
	return err
}

func (c *Catalog) SetShopCoordinates(ctx context.Context, arg repository.SetShopCoordinatesParams) (repository.Shop, error) {
	shop, err := c.Store.SetShopCoordinates(ctx, arg)
	c.invalidate(ctx, shopKey(arg.ID))
	return shop, err
}

func (c *Catalog) SetAllShopsOpen(ctx context.Context) (int64, error) {
	n, err := c.Store.SetAllShopsOpen(ctx)
	if n > 0 {
		c.invalidatePrefix(ctx, shopPrefix)
	}
	return n, err
}

func (c *Catalog) SetShopOpenByName(ctx context.Context, arg repository.SetShopOpenByNameParams) (int64, error) {
	n, err := c.Store.SetShopOpenByName(ctx, arg)
	if n > 0 {
		c.invalidatePrefix(ctx, shopPrefix)
	}
	return n, err
}

// CreateShop clears a cached miss for the new ID. IDs are generated by the
// database so this only matters if one was looked up before.
func (c *Catalog) CreateShop(ctx context.Context, arg repository.CreateShopParams) (repository.Shop, error) {
	shop, err := c.Store.CreateShop(ctx, arg)
	if err == nil {
		c.invalidate(ctx, shopKey(shop.ID))
	}
	return shop, err
}

func (c *Catalog) CreateProduct(ctx context.Context, arg repository.CreateProductParams) (repository.Product, error) {
	product, err := c.Store.CreateProduct(ctx, arg)
	if err == nil {
		c.invalidate(ctx, productKey(product.ID))
	}
	return product, err
}

func (c *Catalog) UpdateProduct(ctx context.Context, arg repository.UpdateProductParams) (repository.Product, error) {
	product, err := c.Store.UpdateProduct(ctx, arg)
	c.invalidate(ctx, productKey(arg.ID))
	return product, err
}

func (c *Catalog) DeleteProduct(ctx context.Context, id pgtype.UUID) error {
	err := c.Store.DeleteProduct(ctx, id)
	c.invalidate(ctx, productKey(id))
	return err
}

// Flush drops every catalog key.
func (c *Catalog) Flush(ctx context.Context) {
	c.invalidatePrefix(ctx, shopPrefix)
	c.invalidatePrefix(ctx, productPrefix)
}

// Close releases the Redis client.
func (c *Catalog) Close() error {
	if err := c.rdb.Close(); err != nil {
		return fmt.Errorf("failed to close redis: %w", err)
	}
	return nil
}

var _ repository.Store = (*Catalog)(nil)
