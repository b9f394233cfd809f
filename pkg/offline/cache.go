package offline

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
)

// Asset is one cached response body.
type Asset struct {
	Body        []byte
	ContentType string
}

// Cache is the asset proxy. It never persists across restarts; a cold start
// simply refills from the network.
type Cache struct {
	client *http.Client

	mu     sync.RWMutex
	assets map[string]Asset

	rmu          sync.Mutex
	revalidating map[string]bool
}

// NewCache wraps client, defaulting to http.DefaultClient.
func NewCache(client *http.Client) *Cache {
	if client == nil {
		client = http.DefaultClient
	}
	return &Cache{
		client:       client,
		assets:       make(map[string]Asset),
		revalidating: make(map[string]bool),
	}
}

// Fetch serves rawURL under its classified policy.
func (c *Cache) Fetch(ctx context.Context, rawURL string) (Asset, error) {
	switch Classify(rawURL) {
	case NetworkOnly:
		return c.fetch(ctx, rawURL, false)
	case CacheFirst:
		if a, ok := c.lookup(rawURL); ok {
			return a, nil
		}
		return c.fetch(ctx, rawURL, true)
	default:
		if a, ok := c.lookup(rawURL); ok {
			c.revalidate(rawURL)
			return a, nil
		}
		return c.fetch(ctx, rawURL, true)
	}
}

// Cached reports whether rawURL has a cached copy.
func (c *Cache) Cached(rawURL string) bool {
	_, ok := c.lookup(rawURL)
	return ok
}

func (c *Cache) lookup(rawURL string) (Asset, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	a, ok := c.assets[rawURL]
	return a, ok
}

// fetch performs the network request, storing the body on success when
// store is set. Non-2xx responses are errors and never cached.
func (c *Cache) fetch(ctx context.Context, rawURL string, store bool) (Asset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Asset{}, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return Asset{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Asset{}, fmt.Errorf("fetching %s: %s", rawURL, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Asset{}, err
	}
	a := Asset{Body: body, ContentType: resp.Header.Get("Content-Type")}
	if store {
		c.mu.Lock()
		c.assets[rawURL] = a
		c.mu.Unlock()
	}
	return a, nil
}

// revalidate refreshes rawURL in the background, at most once at a time per
// URL. A failed refresh keeps the stale copy.
func (c *Cache) revalidate(rawURL string) {
	c.rmu.Lock()
	if c.revalidating[rawURL] {
		c.rmu.Unlock()
		return
	}
	c.revalidating[rawURL] = true
	c.rmu.Unlock()

	go func() {
		defer func() {
			c.rmu.Lock()
			delete(c.revalidating, rawURL)
			c.rmu.Unlock()
		}()
		if _, err := c.fetch(context.Background(), rawURL, true); err != nil {
			log.Debug("background refresh failed, keeping stale copy", "url", rawURL, "error", err)
		}
	}()
}
