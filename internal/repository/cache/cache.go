package cache

import (
	"sync"
	"time"

	"warung-pos/internal/models"
)

type KV interface {
	Put(id int64, ord models.Order)
	Get(id int64) (models.Order, bool)
	Delete(id int64)
	Snapshot() map[int64]models.Order
}

// Cache keeps order headers in memory keyed by id. With a TTL set, a janitor
// goroutine sweeps expired entries; with TTL zero entries live until deleted.
type Cache struct {
	mu   sync.RWMutex
	data map[int64]expiring

	ttl       time.Duration
	noJanitor bool
	ticker    *time.Ticker
	stop      chan struct{}
	now       func() time.Time
}

type expiring struct {
	ord models.Order
	exp time.Time
}

type Option func(*Cache)

func WithTTL(ttl time.Duration) Option { return func(c *Cache) { c.ttl = ttl } }

// WithNoJanitor disables the background sweep; expired entries are only
// dropped lazily on access. Tests use this to keep the clock deterministic.
func WithNoJanitor() Option { return func(c *Cache) { c.noJanitor = true } }

// WithClock overrides the expiry clock.
func WithClock(now func() time.Time) Option { return func(c *Cache) { c.now = now } }

func New(opts ...Option) *Cache {
	c := &Cache{
		data: make(map[int64]expiring),
		stop: make(chan struct{}),
		now:  time.Now,
	}
	for _, o := range opts {
		o(c)
	}

	if c.ttl > 0 && !c.noJanitor {
		c.ticker = time.NewTicker(c.ttl / 2)
		go func() {
			for {
				select {
				case <-c.ticker.C:
					c.purgeExpired()
				case <-c.stop:
					return
				}
			}
		}()
	}
	return c
}

func (c *Cache) Close() {
	if c.ticker != nil {
		c.ticker.Stop()
	}
	close(c.stop)
}

func (c *Cache) Put(id int64, ord models.Order) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ttl > 0 {
		c.data[id] = expiring{ord: ord, exp: c.now().Add(c.ttl)}
	} else {
		c.data[id] = expiring{ord: ord}
	}
}

func (c *Cache) Get(id int64) (models.Order, bool) {
	c.mu.RLock()
	e, ok := c.data[id]
	c.mu.RUnlock()
	if !ok {
		return models.Order{}, false
	}
	if !e.exp.IsZero() && c.now().After(e.exp) {
		c.Delete(id)
		return models.Order{}, false
	}
	return e.ord, true
}

func (c *Cache) Delete(id int64) {
	c.mu.Lock()
	delete(c.data, id)
	c.mu.Unlock()
}

func (c *Cache) purgeExpired() {
	now := c.now()
	c.mu.Lock()
	for id, e := range c.data {
		if !e.exp.IsZero() && now.After(e.exp) {
			delete(c.data, id)
		}
	}
	c.mu.Unlock()
}

func (c *Cache) Snapshot() map[int64]models.Order {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[int64]models.Order, len(c.data))
	now := c.now()
	for id, e := range c.data {
		if !e.exp.IsZero() && now.After(e.exp) {
			continue
		}
		out[id] = e.ord
	}
	return out
}
