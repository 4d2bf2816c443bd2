package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/featherwood/featherwood-backend/internal/app/model"
	"github.com/featherwood/featherwood-backend/pkg/logger"
	"github.com/goccy/go-json"
)

const (
	cacheOpTimeout = 500 * time.Millisecond

	// generationKey holds the current catalog generation. Every other key
	// is prefixed with it, so bumping it drops the whole catalog at once.
	generationKey = "catalog:generation"

	categoriesKey   = "categories"
	categorySlugKey = "category:slug:"
	productSlugKey  = "product:slug:"
	projectSlugKey  = "project:slug:"
)

// Cache is a byte-oriented key/value store with expiry.
type Cache interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// CachedStorage serves hot catalog reads from a Cache and passes every
// other call through to the wrapped Storage. Cache failures degrade to
// direct reads. Misses are not cached.
type CachedStorage struct {
	Storage
	cache Cache
	ttl   time.Duration
}

func NewCachedStorage(next Storage, cache Cache, ttl time.Duration) *CachedStorage {
	return &CachedStorage{Storage: next, cache: cache, ttl: ttl}
}

// Uncached strips a CachedStorage wrapper, if any.
func Uncached(s Storage) Storage {
	if cached, ok := s.(*CachedStorage); ok {
		return cached.Storage
	}
	return s
}

// InvalidateCatalog starts a new cache generation. Entries written by
// earlier generations, including other processes, are no longer read.
func (s *CachedStorage) InvalidateCatalog() error {
	ctx, cancel := context.WithTimeout(context.Background(), cacheOpTimeout)
	defer cancel()
	return s.cache.Set(ctx, generationKey, []byte(uuid.NewString()), 0)
}

func (s *CachedStorage) generation(ctx context.Context) string {
	raw, found, err := s.cache.Get(ctx, generationKey)
	if err != nil || !found {
		return "0"
	}
	return string(raw)
}

func (s *CachedStorage) key(ctx context.Context, suffix string) string {
	return "catalog:" + s.generation(ctx) + ":" + suffix
}

func (s *CachedStorage) ListCategories() ([]model.ProductCategory, error) {
	return readThrough(s, categoriesKey, s.Storage.ListCategories)
}

func (s *CachedStorage) FindCategoryBySlug(slug string) (*model.ProductCategory, error) {
	return readThrough(s, categorySlugKey+slug, func() (*model.ProductCategory, error) {
		return s.Storage.FindCategoryBySlug(slug)
	})
}

func (s *CachedStorage) FindProductBySlug(slug string) (*model.Product, error) {
	return readThrough(s, productSlugKey+slug, func() (*model.Product, error) {
		return s.Storage.FindProductBySlug(slug)
	})
}

func (s *CachedStorage) FindProjectBySlug(slug string) (*model.InteriorProject, error) {
	return readThrough(s, projectSlugKey+slug, func() (*model.InteriorProject, error) {
		return s.Storage.FindProjectBySlug(slug)
	})
}

func (s *CachedStorage) CreateCategory(category *model.ProductCategory) error {
	if err := s.Storage.CreateCategory(category); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cacheOpTimeout)
	defer cancel()
	if err := s.cache.Delete(ctx, s.key(ctx, categoriesKey)); err != nil {
		logger.Warn("Failed to invalidate category cache", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return nil
}

func readThrough[T any](s *CachedStorage, suffix string, load func() (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cacheOpTimeout)
	defer cancel()

	key := s.key(ctx, suffix)

	raw, found, err := s.cache.Get(ctx, key)
	if err != nil {
		logger.Warn("Catalog cache read failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
	if found {
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			logger.Debug("Catalog cache hit", map[string]interface{}{"key": key})
			return cached, nil
		}
		logger.Warn("Discarding undecodable cache entry", map[string]interface{}{"key": key})
	}

	value, err := load()
	if err != nil {
		return value, err
	}

	if encoded, err := json.Marshal(value); err == nil {
		if err := s.cache.Set(ctx, key, encoded, s.ttl); err != nil {
			logger.Warn("Catalog cache write failed", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
	}
	return value, nil
}
