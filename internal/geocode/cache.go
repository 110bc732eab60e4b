package geocode

import (
	"context"
	"log"
	"sync"

	"github.com/mnakagawa/eatmap-backend-go/internal/models"
)

// Store persists resolved addresses between runs. Misses return
// (nil, nil).
type Store interface {
	Get(address string) (*models.GeoPoint, error)
	Put(address string, point models.GeoPoint) error
}

// CachedGeocoder memoizes results per address, first in memory, then in
// the persistent store. The caller owns the cache lifetime: construct
// one per process and pass it where needed. Not-found results are
// memoized in memory only, so a later run retries the address.
type CachedGeocoder struct {
	next  Geocoder
	store Store

	mu  sync.Mutex
	mem map[string]*models.GeoPoint
}

// NewCachedGeocoder wraps a geocoder with an address-keyed cache.
// store may be nil for a memory-only cache.
func NewCachedGeocoder(next Geocoder, store Store) *CachedGeocoder {
	return &CachedGeocoder{
		next:  next,
		store: store,
		mem:   make(map[string]*models.GeoPoint),
	}
}

// Geocode resolves an address through the cache layers
func (c *CachedGeocoder) Geocode(ctx context.Context, address string) (*models.GeoPoint, error) {
	if address == "" {
		return nil, nil
	}

	c.mu.Lock()
	if p, ok := c.mem[address]; ok {
		c.mu.Unlock()
		return p, nil
	}
	c.mu.Unlock()

	if c.store != nil {
		p, err := c.store.Get(address)
		if err != nil {
			log.Printf("geocode cache read failed for %q: %v", address, err)
		} else if p != nil {
			c.remember(address, p)
			return p, nil
		}
	}

	p, err := c.next.Geocode(ctx, address)
	if err != nil {
		return nil, err
	}

	c.remember(address, p)
	if p != nil && c.store != nil {
		if err := c.store.Put(address, *p); err != nil {
			log.Printf("geocode cache write failed for %q: %v", address, err)
		}
	}

	return p, nil
}

func (c *CachedGeocoder) remember(address string, p *models.GeoPoint) {
	c.mu.Lock()
	c.mem[address] = p
	c.mu.Unlock()
}
