package cache

import (
	"context"
	"sync"

	"package-intake/internal/domain/client"
)

// ClientCache is a read-through cache over the client repository. Clients
// change rarely while shipment creation resolves them constantly, so entries
// live until the next client write clears the whole cache. Two goroutines
// racing on a miss may both hit the store and populate the same entry; the
// second write is harmless.
type ClientCache struct {
	repo client.Repository

	mu     sync.RWMutex
	byID   map[int64]*client.Client
	byName map[string]*client.Client
	all    []*client.Client
}

func NewClientCache(repo client.Repository) *ClientCache {
	return &ClientCache{
		repo:   repo,
		byID:   make(map[int64]*client.Client),
		byName: make(map[string]*client.Client),
	}
}

func (c *ClientCache) GetByID(ctx context.Context, id int64) (*client.Client, error) {
	c.mu.RLock()
	cached, ok := c.byID[id]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	loaded, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.byID[loaded.ID] = loaded
	c.byName[loaded.Name] = loaded
	c.mu.Unlock()

	return loaded, nil
}

func (c *ClientCache) GetByName(ctx context.Context, name string) (*client.Client, error) {
	c.mu.RLock()
	cached, ok := c.byName[name]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	loaded, err := c.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.byID[loaded.ID] = loaded
	c.byName[loaded.Name] = loaded
	c.mu.Unlock()

	return loaded, nil
}

func (c *ClientCache) List(ctx context.Context) ([]*client.Client, error) {
	c.mu.RLock()
	cached := c.all
	c.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	loaded, err := c.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.all = loaded
	for _, cl := range loaded {
		c.byID[cl.ID] = cl
		c.byName[cl.Name] = cl
	}
	c.mu.Unlock()

	return loaded, nil
}

// Clear drops every entry. Called after any client write so the next read
// reloads from the store.
func (c *ClientCache) Clear() {
	c.mu.Lock()
	c.byID = make(map[int64]*client.Client)
	c.byName = make(map[string]*client.Client)
	c.all = nil
	c.mu.Unlock()
}
