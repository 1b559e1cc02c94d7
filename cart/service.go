package cart

import (
	"context"
	"sync"

	"go-recipes/models"
)

// RemoveItemResult reports the outcome of Service.RemoveItem.
type RemoveItemResult struct {
	Removed bool              `json:"removed"`
	Items   []models.CartItem `json:"items"`
}

// ReplaceResult reports the outcome of Service.ReplaceCart.
type ReplaceResult struct {
	Success bool `json:"success"`
}

// DeleteResult reports the outcome of Service.DeleteCart.
type DeleteResult struct {
	Deleted bool `json:"deleted"`
}

// Service orchestrates cart operations: validate, load, reconcile, save.
//
// Two requests for the same username racing through a load-reconcile-save
// cycle would silently discard one side's increments, so every mutating
// operation holds a per-username mutex for the full cycle. Different
// usernames never contend. A failed save discards the in-memory result,
// leaving the persisted cart in its pre-operation state.
type Service struct {
	store Store

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewService creates a cart Service over the given store
func NewService(store Store) *Service {
	return &Service{
		store: store,
		locks: make(map[string]*sync.Mutex),
	}
}

func (s *Service) userLock(username string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[username]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[username] = lock
	}
	return lock
}

// GetCart returns the user's cart. An absent user gets an empty cart, not an
// error.
func (s *Service) GetCart(ctx context.Context, username string) (models.Cart, error) {
	username = ValidateUsername(username)

	c, _, err := s.store.Get(ctx, username)
	if err != nil {
		return models.Cart{}, storeFailure(err)
	}
	c.Username = username
	if c.Items == nil {
		c.Items = []models.CartItem{}
	}
	return c, nil
}

// ReplaceCart replaces the user's cart contents wholesale, creating the cart
// if none exists.
func (s *Service) ReplaceCart(ctx context.Context, username string, items []models.CartItem) (ReplaceResult, error) {
	username = ValidateUsername(username)
	if err := ValidateItems(items); err != nil {
		return ReplaceResult{}, err
	}

	lock := s.userLock(username)
	lock.Lock()
	defer lock.Unlock()

	c, _, err := s.store.Get(ctx, username)
	if err != nil {
		return ReplaceResult{}, storeFailure(err)
	}
	c.Username = username
	c = ReplaceAll(c, items)
	if err := s.store.Save(ctx, c); err != nil {
		return ReplaceResult{}, storeFailure(err)
	}
	return ReplaceResult{Success: true}, nil
}

// DeleteCart deletes the user's cart wholesale. Unlike GetCart, an absent
// cart here is a NotFound error.
func (s *Service) DeleteCart(ctx context.Context, username string) (DeleteResult, error) {
	username = ValidateUsername(username)

	lock := s.userLock(username)
	lock.Lock()
	defer lock.Unlock()

	found, err := s.store.Delete(ctx, username)
	if err != nil {
		return DeleteResult{}, storeFailure(err)
	}
	if !found {
		return DeleteResult{}, notFound("no cart exists for this user")
	}
	return DeleteResult{Deleted: true}, nil
}

// RemoveItem removes a single item by exact text match. A missing item is a
// no-op reported via Removed, never an error.
func (s *Service) RemoveItem(ctx context.Context, username, text string) (RemoveItemResult, error) {
	username = ValidateUsername(username)

	lock := s.userLock(username)
	lock.Lock()
	defer lock.Unlock()

	c, _, err := s.store.Get(ctx, username)
	if err != nil {
		return RemoveItemResult{}, storeFailure(err)
	}
	c.Username = username

	c, removed := RemoveItem(c, text)
	if removed {
		if err := s.store.Save(ctx, c); err != nil {
			return RemoveItemResult{}, storeFailure(err)
		}
	}
	if c.Items == nil {
		c.Items = []models.CartItem{}
	}
	return RemoveItemResult{Removed: removed, Items: c.Items}, nil
}

// AddRecipe merges the recipe's ingredient mentions into the user's cart,
// creating the cart if none exists.
func (s *Service) AddRecipe(ctx context.Context, username string, recipe *models.Recipe) (AddSummary, error) {
	username = ValidateUsername(username)
	if err := ValidateRecipe(recipe); err != nil {
		return AddSummary{}, err
	}

	lock := s.userLock(username)
	lock.Lock()
	defer lock.Unlock()

	c, _, err := s.store.Get(ctx, username)
	if err != nil {
		return AddSummary{}, storeFailure(err)
	}
	c.Username = username

	c, summary := AddIngredients(c, recipe.Ingredients)
	if err := s.store.Save(ctx, c); err != nil {
		return AddSummary{}, storeFailure(err)
	}
	return summary, nil
}

// RemoveRecipe decrements the user's cart by the recipe's ingredient
// mentions, dropping items that reach zero.
func (s *Service) RemoveRecipe(ctx context.Context, username string, recipe *models.Recipe) (RemoveSummary, error) {
	username = ValidateUsername(username)
	if err := ValidateRecipe(recipe); err != nil {
		return RemoveSummary{}, err
	}

	lock := s.userLock(username)
	lock.Lock()
	defer lock.Unlock()

	c, _, err := s.store.Get(ctx, username)
	if err != nil {
		return RemoveSummary{}, storeFailure(err)
	}
	c.Username = username

	c, summary := RemoveIngredients(c, recipe.Ingredients)
	if summary.Removed {
		if err := s.store.Save(ctx, c); err != nil {
			return RemoveSummary{}, storeFailure(err)
		}
	}
	if summary.Items == nil {
		summary.Items = []models.CartItem{}
	}
	return summary, nil
}
