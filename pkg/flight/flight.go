// Package flight deduplicates identical lookups. Concurrent callers asking
// for the same key share one execution of the fetch function, and completed
// results stay cached behind weak pointers so memory pressure can reclaim
// them once the hold window passes.
package flight

import (
	"sync"
	"sync/atomic"
	"time"
	"weak"
)

// Group coalesces and caches lookups keyed by K.
type Group[K comparable, V any] struct {
	fetch func(K) (V, error)

	mu       sync.Mutex
	inflight map[K]*call[V]

	rmu     sync.RWMutex
	results map[K]*result[V]

	// hold is the strong-reference window in nanoseconds; <= 0 pins results
	// forever.
	hold atomic.Int64
}

type call[V any] struct {
	val  V
	err  error
	done chan struct{}
}

type result[V any] struct {
	w      weak.Pointer[V]
	pinned *V        // nil once the hold window elapsed
	until  time.Time // zero means pinned forever
}

// NewGroup creates a group around fetch with a one-hour hold window.
func NewGroup[K comparable, V any](fetch func(K) (V, error)) *Group[K, V] {
	g := &Group[K, V]{
		fetch:    fetch,
		inflight: make(map[K]*call[V]),
		results:  make(map[K]*result[V]),
	}
	g.hold.Store(int64(time.Hour))
	return g
}

// Hold sets the strong-reference window for future results. d <= 0 pins
// results permanently.
func (g *Group[K, V]) Hold(d time.Duration) {
	if d <= 0 {
		g.hold.Store(0)
		return
	}
	g.hold.Store(int64(d))
}

// Do returns the cached result for k, joins an in-flight fetch for it, or
// starts a new one. Errors are never cached.
func (g *Group[K, V]) Do(k K) (V, error) {
	g.mu.Lock()
	if v, ok := g.cached(k); ok {
		g.mu.Unlock()
		return v, nil
	}
	if c, ok := g.inflight[k]; ok {
		g.mu.Unlock()
		<-c.done
		return c.val, c.err
	}
	c := &call[V]{done: make(chan struct{})}
	g.inflight[k] = c
	g.mu.Unlock()

	c.val, c.err = g.fetch(k)
	if c.err == nil {
		g.store(k, c.val)
	}

	g.mu.Lock()
	close(c.done)
	delete(g.inflight, k)
	g.mu.Unlock()

	return c.val, c.err
}

// Refresh bypasses the cache and fetches k again, waiting out any in-flight
// call for the same key first.
func (g *Group[K, V]) Refresh(k K) (V, error) {
	var c *call[V]
	for {
		g.mu.Lock()
		if existing, ok := g.inflight[k]; ok {
			g.mu.Unlock()
			<-existing.done
			continue
		}
		c = &call[V]{done: make(chan struct{})}
		g.inflight[k] = c
		g.mu.Unlock()
		break
	}

	c.val, c.err = g.fetch(k)
	if c.err == nil {
		g.store(k, c.val)
	}

	g.mu.Lock()
	close(c.done)
	delete(g.inflight, k)
	g.mu.Unlock()

	return c.val, c.err
}

// cached returns a live result for k. Callers hold g.mu, which keeps a
// joining caller from racing the delete below.
func (g *Group[K, V]) cached(k K) (V, bool) {
	g.rmu.RLock()
	r, ok := g.results[k]
	g.rmu.RUnlock()
	var zero V
	if !ok {
		return zero, false
	}

	if !r.until.IsZero() && time.Now().After(r.until) {
		g.rmu.Lock()
		if cur, ok := g.results[k]; ok && cur == r && r.pinned != nil && time.Now().After(r.until) {
			r.pinned = nil
		}
		g.rmu.Unlock()
	}

	if vp := r.w.Value(); vp != nil {
		return *vp, true
	}
	g.rmu.Lock()
	if cur, ok := g.results[k]; ok && cur == r && r.w.Value() == nil {
		delete(g.results, k)
	}
	g.rmu.Unlock()
	return zero, false
}

func (g *Group[K, V]) store(k K, val V) {
	// The weak pointer needs a stable heap cell.
	v := new(V)
	*v = val

	r := &result[V]{w: weak.Make(v), pinned: v}
	if d := time.Duration(g.hold.Load()); d > 0 {
		r.until = time.Now().Add(d)
	}

	g.rmu.Lock()
	g.results[k] = r
	g.rmu.Unlock()
}
