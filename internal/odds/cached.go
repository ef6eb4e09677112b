package odds

import (
	"fmt"
	"time"

	cache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/stake-engine/internal/metrics"
	"github.com/yourusername/stake-engine/internal/models"
)

// CachedConverter wraps another Converter with TTL memoization. Conversions
// are pure, so a cached result never goes stale; the TTL only bounds memory.
type CachedConverter struct {
	inner   Converter
	cache   *cache.Cache
	maxSize int
	logger  *logrus.Logger
}

// NewCachedConverter creates a caching wrapper around inner.
func NewCachedConverter(inner Converter, ttl time.Duration, maxSize int, logger *logrus.Logger) *CachedConverter {
	return &CachedConverter{
		inner:   inner,
		cache:   cache.New(ttl, ttl*2),
		maxSize: maxSize,
		logger:  logger,
	}
}

// Convert returns the cached result when available, otherwise delegates to
// the wrapped converter. Failed conversions are not cached; the error policy
// belongs to the caller.
func (c *CachedConverter) Convert(price models.Price, target models.PriceFormat) (float64, error) {
	key := cacheKey(price, target)

	if v, found := c.cache.Get(key); found {
		metrics.ConversionCacheHitsTotal.Inc()
		if result, ok := v.(float64); ok {
			return result, nil
		}
	}
	metrics.ConversionCacheMissesTotal.Inc()

	result, err := c.inner.Convert(price, target)
	if err != nil {
		return 0, err
	}

	if c.cache.ItemCount() >= c.maxSize {
		c.cache.DeleteExpired()
	}
	c.cache.SetDefault(key, result)

	c.logger.WithFields(logrus.Fields{
		"key":    key,
		"result": result,
	}).Debug("Conversion cached")

	return result, nil
}

func cacheKey(price models.Price, target models.PriceFormat) string {
	return fmt.Sprintf("%s:%s:%s", price.Format, price.Value, target)
}
