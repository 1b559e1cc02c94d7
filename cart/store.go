package cart

import (
	"context"
	"sync"

	"go-recipes/models"
)

// Store persists one cart document per username. Save is an upsert: a cart
// is created implicitly on first write. Get and Delete report whether a cart
// existed via the bool so absence is not an error at this layer.
type Store interface {
	Get(ctx context.Context, username string) (models.Cart, bool, error)
	Save(ctx context.Context, cart models.Cart) error
	Delete(ctx context.Context, username string) (bool, error)
}

// MemoryStore is an in-process Store, used by tests and local runs without a
// database.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]models.Cart
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string]models.Cart)}
}

func (s *MemoryStore) Get(ctx context.Context, username string) (models.Cart, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.carts[username]
	if !ok {
		return models.Cart{Username: username}, false, nil
	}
	// Copy the items so callers cannot mutate stored state.
	c.Items = append([]models.CartItem(nil), c.Items...)
	return c, true, nil
}

func (s *MemoryStore) Save(ctx context.Context, cart models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart.Items = append([]models.CartItem(nil), cart.Items...)
	s.carts[cart.Username] = cart
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, username string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.carts[username]
	delete(s.carts, username)
	return ok, nil
}
