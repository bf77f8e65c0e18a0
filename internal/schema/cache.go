package schema

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache memoises compiled definitions by content so that repeated runs
// (watch mode in particular) skip recompiling an unchanged schema.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]Node
	group   singleflight.Group // Prevents duplicate compilations
}

func NewCache() *Cache {
	return &Cache{entries: make(map[string]Node)}
}

// Compile returns the node tree for the definition, compiling at most once
// per distinct definition content. Compile failures are not cached.
func (c *Cache) Compile(definition []byte) (Node, error) {
	sum := sha256.Sum256(definition)
	key := hex.EncodeToString(sum[:])

	c.mu.RLock()
	node, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return node, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		compiled, err := Compile(definition)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries[key] = compiled
		c.mu.Unlock()
		return compiled, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(Node), nil
}
