package organizer

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"athena/pkg/store"
)

// Collection is one flat, ordered record sequence persisted as a whole
// under a single storage key. Identifiers are unique within the collection
// only; they come from a millisecond clock, bumped on collision, which is
// enough under the single-writer model.
type Collection[T any] struct {
	key   string
	store store.Store
	getID func(T) int64
	setID func(*T, int64)

	mu     sync.Mutex
	items  []T
	lastID int64
}

// NewCollection hydrates from the store, falling back to seed when the key
// is absent or its value does not deserialize.
func NewCollection[T any](st store.Store, key string, seed []T, getID func(T) int64, setID func(*T, int64)) *Collection[T] {
	c := &Collection[T]{key: key, store: st, getID: getID, setID: setID}
	if raw, ok := st.Get(key); ok {
		var items []T
		if err := json.Unmarshal([]byte(raw), &items); err == nil {
			c.items = items
		} else {
			log.Warn("corrupt collection, seeding defaults", "key", key, "error", err)
			c.items = append([]T(nil), seed...)
		}
	} else {
		c.items = append([]T(nil), seed...)
	}
	for _, it := range c.items {
		if id := getID(it); id > c.lastID {
			c.lastID = id
		}
	}
	return c
}

// List returns the records in order.
func (c *Collection[T]) List() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T(nil), c.items...)
}

// Len reports the record count.
func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Add appends the record with a freshly minted unique id and persists the
// whole collection. The stored record is returned.
func (c *Collection[T]) Add(item T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := time.Now().UnixMilli()
	if id <= c.lastID {
		id = c.lastID + 1
	}
	c.lastID = id
	c.setID(&item, id)
	c.items = append(c.items, item)
	c.persist()
	return item
}

// Update applies fn to the record with the given id and persists. Absent
// ids are a no-op.
func (c *Collection[T]) Update(id int64, fn func(*T)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.getID(c.items[i]) == id {
			fn(&c.items[i])
			c.setID(&c.items[i], id) // partial updates never change identity
			c.persist()
			return true
		}
	}
	return false
}

// Remove deletes the record with the given id and persists. Absent ids are
// a no-op.
func (c *Collection[T]) Remove(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.getID(c.items[i]) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.persist()
			return true
		}
	}
	return false
}

// persist writes the entire collection, not a delta. Callers hold the lock.
func (c *Collection[T]) persist() {
	raw, err := json.Marshal(c.items)
	if err != nil {
		log.Error("failed serializing collection", "key", c.key, "error", err)
		return
	}
	if err := c.store.Set(c.key, string(raw)); err != nil {
		log.Error("failed persisting collection", "key", c.key, "error", err)
	}
}
