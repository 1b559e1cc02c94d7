package cart

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-recipes/models"
)

var errDown = errors.New("connection refused")

// failingStore fails selected operations to exercise the StoreFailure path.
type failingStore struct {
	Store
	failGet    bool
	failSave   bool
	failDelete bool
}

func (s *failingStore) Get(ctx context.Context, username string) (models.Cart, bool, error) {
	if s.failGet {
		return models.Cart{}, false, errDown
	}
	return s.Store.Get(ctx, username)
}

func (s *failingStore) Save(ctx context.Context, cart models.Cart) error {
	if s.failSave {
		return errDown
	}
	return s.Store.Save(ctx, cart)
}

func (s *failingStore) Delete(ctx context.Context, username string) (bool, error) {
	if s.failDelete {
		return false, errDown
	}
	return s.Store.Delete(ctx, username)
}

func recipeOf(ingredients ...string) *models.Recipe {
	return &models.Recipe{Title: "test", Ingredients: ingredients}
}

func TestGetCartAbsentUserReturnsEmptyCart(t *testing.T) {
	svc := NewService(NewMemoryStore())

	c, err := svc.GetCart(context.Background(), "  alice ")
	require.NoError(t, err)
	assert.Equal(t, "alice", c.Username)
	assert.NotNil(t, c.Items)
	assert.Empty(t, c.Items)
}

func TestAddRecipeCreatesCartOnFirstWrite(t *testing.T) {
	store := NewMemoryStore()
	svc := NewService(store)

	summary, err := svc.AddRecipe(context.Background(), "alice", recipeOf("eggs", "eggs", "milk"))
	require.NoError(t, err)
	assert.Equal(t, 3, summary.AddedCount)
	assert.Equal(t, 2, summary.TotalItems)

	c, found, err := store.Get(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, found)
	require.Len(t, c.Items, 2)
	assert.Equal(t, 2, c.Items[0].Qty)
}

func TestAddRecipeNilRecipe(t *testing.T) {
	svc := NewService(NewMemoryStore())

	_, err := svc.AddRecipe(context.Background(), "alice", nil)
	assert.Equal(t, KindInvalidInput, KindOf(err))
}

func TestAddRecipeNoIngredientsList(t *testing.T) {
	svc := NewService(NewMemoryStore())

	_, err := svc.AddRecipe(context.Background(), "alice", &models.Recipe{Title: "bare"})
	assert.Equal(t, KindInvalidInput, KindOf(err))
}

func TestRemoveRecipeRoundTrip(t *testing.T) {
	svc := NewService(NewMemoryStore())
	ctx := context.Background()

	_, err := svc.AddRecipe(ctx, "alice", recipeOf("eggs", "milk"))
	require.NoError(t, err)
	_, err = svc.AddRecipe(ctx, "alice", recipeOf("eggs", "butter"))
	require.NoError(t, err)

	summary, err := svc.RemoveRecipe(ctx, "alice", recipeOf("eggs", "butter"))
	require.NoError(t, err)
	assert.True(t, summary.Removed)
	assert.Equal(t, 2, summary.ChangedCount)
	assert.Equal(t, []string{"butter"}, summary.RemovedTexts)

	c, err := svc.GetCart(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, c.Items, 2)
	assert.Equal(t, "eggs", c.Items[0].Text)
	assert.Equal(t, 1, c.Items[0].Qty)
	assert.Equal(t, "milk", c.Items[1].Text)
}

func TestRemoveRecipeOnAbsentUserIsNoOp(t *testing.T) {
	svc := NewService(NewMemoryStore())

	summary, err := svc.RemoveRecipe(context.Background(), "nobody", recipeOf("eggs"))
	require.NoError(t, err)
	assert.False(t, summary.Removed)
	assert.NotNil(t, summary.Items)
	assert.Empty(t, summary.Items)
}

func TestReplaceCart(t *testing.T) {
	svc := NewService(NewMemoryStore())
	ctx := context.Background()

	result, err := svc.ReplaceCart(ctx, "alice", []models.CartItem{
		{Text: "eggs", Qty: 2, Checked: true},
	})
	require.NoError(t, err)
	assert.True(t, result.Success)

	c, err := svc.GetCart(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.True(t, c.Items[0].Checked)

	_, err = svc.ReplaceCart(ctx, "alice", nil)
	assert.Equal(t, KindInvalidInput, KindOf(err))
}

func TestDeleteCart(t *testing.T) {
	svc := NewService(NewMemoryStore())
	ctx := context.Background()

	_, err := svc.DeleteCart(ctx, "alice")
	assert.Equal(t, KindNotFound, KindOf(err))

	_, err = svc.AddRecipe(ctx, "alice", recipeOf("eggs"))
	require.NoError(t, err)

	result, err := svc.DeleteCart(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, result.Deleted)

	_, err = svc.DeleteCart(ctx, "alice")
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestRemoveItemOnAbsentUser(t *testing.T) {
	svc := NewService(NewMemoryStore())

	result, err := svc.RemoveItem(context.Background(), "nobody", "grape")
	require.NoError(t, err)
	assert.False(t, result.Removed)
	assert.NotNil(t, result.Items)
	assert.Empty(t, result.Items)
}

func TestRemoveItemPersists(t *testing.T) {
	store := NewMemoryStore()
	svc := NewService(store)
	ctx := context.Background()

	_, err := svc.AddRecipe(ctx, "alice", recipeOf("orange", "apple"))
	require.NoError(t, err)

	result, err := svc.RemoveItem(ctx, "alice", "orange")
	require.NoError(t, err)
	assert.True(t, result.Removed)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "apple", result.Items[0].Text)

	c, _, err := store.Get(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
}

func TestStoreFailuresSurfaceAsStoreFailure(t *testing.T) {
	ctx := context.Background()

	svc := NewService(&failingStore{Store: NewMemoryStore(), failGet: true})
	_, err := svc.GetCart(ctx, "alice")
	assert.Equal(t, KindStoreFailure, KindOf(err))
	_, err = svc.AddRecipe(ctx, "alice", recipeOf("eggs"))
	assert.Equal(t, KindStoreFailure, KindOf(err))

	svc = NewService(&failingStore{Store: NewMemoryStore(), failDelete: true})
	_, err = svc.DeleteCart(ctx, "alice")
	assert.Equal(t, KindStoreFailure, KindOf(err))
}

func TestFailedSaveLeavesCartUntouched(t *testing.T) {
	store := NewMemoryStore()
	svc := NewService(store)
	ctx := context.Background()

	_, err := svc.AddRecipe(ctx, "alice", recipeOf("eggs"))
	require.NoError(t, err)

	broken := NewService(&failingStore{Store: store, failSave: true})
	_, err = broken.AddRecipe(ctx, "alice", recipeOf("eggs", "milk"))
	assert.Equal(t, KindStoreFailure, KindOf(err))

	c, err := svc.GetCart(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.Items[0].Qty)
}

// Concurrent adds for one username must not lose increments: the per-user
// lock makes each load-reconcile-save cycle atomic.
func TestConcurrentAddsDoNotLoseUpdates(t *testing.T) {
	svc := NewService(NewMemoryStore())
	ctx := context.Background()

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.AddRecipe(ctx, "alice", recipeOf("eggs", "eggs", "milk"))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	c, err := svc.GetCart(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, c.Items, 2)
	assert.Equal(t, "eggs", c.Items[0].Text)
	assert.Equal(t, 2*workers, c.Items[0].Qty)
	assert.Equal(t, "milk", c.Items[1].Text)
	assert.Equal(t, workers, c.Items[1].Qty)
}
