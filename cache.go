package repolink

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PageCache is an in-memory cache of rendered documents keyed by page URL.
// Entries expire after ttl; beyond size entries the least recently used
// one is evicted. Page URLs carry the request query, so the bound matters.
type PageCache struct {
	lru    *expirable.LRU[string, []byte]
	hits   prometheus.Counter
	misses prometheus.Counter
}

// NewPageCache creates a PageCache. Hit and miss counters are registered on
// reg when it is not nil.
func NewPageCache(size int, ttl time.Duration, reg prometheus.Registerer) *PageCache {
	factory := promauto.With(reg)
	return &PageCache{
		lru: expirable.NewLRU[string, []byte](size, nil, ttl),
		hits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "repolink",
			Subsystem: "page_cache",
			Name:      "hits_total",
			Help:      "Rendered pages served from the cache.",
		}),
		misses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "repolink",
			Subsystem: "page_cache",
			Name:      "misses_total",
			Help:      "Page renders that missed the cache.",
		}),
	}
}

// Get returns the cached document for pageURL.
func (c *PageCache) Get(pageURL string) ([]byte, bool) {
	doc, ok := c.lru.Get(pageURL)
	if ok {
		c.hits.Inc()
	} else {
		c.misses.Inc()
	}
	return doc, ok
}

// Contains reports whether pageURL is cached without touching the counters
// or recency.
func (c *PageCache) Contains(pageURL string) bool {
	return c.lru.Contains(pageURL)
}

// Add stores the rendered document for pageURL.
func (c *PageCache) Add(pageURL string, doc []byte) {
	c.lru.Add(pageURL, doc)
}

// Len returns the number of cached documents.
func (c *PageCache) Len() int {
	return c.lru.Len()
}

// Invalidate clears the cache so the next read triggers a fresh render.
func (c *PageCache) Invalidate() {
	c.lru.Purge()
}
