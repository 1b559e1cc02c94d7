package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-recipes/models"
)

func TestValidateUsername(t *testing.T) {
	assert.Equal(t, "alice", ValidateUsername("  alice  "))
	assert.Equal(t, "Alice", ValidateUsername("Alice"), "case is kept as supplied")
	// Empty after trimming is still accepted as a key.
	assert.Equal(t, "", ValidateUsername("   "))
}

func TestValidateItems(t *testing.T) {
	err := ValidateItems(nil)
	assert.Equal(t, KindInvalidInput, KindOf(err))
	assert.EqualError(t, err, "items must be an array")

	assert.NoError(t, ValidateItems([]models.CartItem{}))
	// Bulk replace trusts the caller's quantities; qty >= 1 is enforced by
	// the reconcile operations, not here.
	assert.NoError(t, ValidateItems([]models.CartItem{{Text: "eggs", Qty: 0}}))
}

func TestValidateRecipe(t *testing.T) {
	err := ValidateRecipe(nil)
	assert.Equal(t, KindInvalidInput, KindOf(err))

	err = ValidateRecipe(&models.Recipe{})
	assert.Equal(t, KindInvalidInput, KindOf(err))
	assert.EqualError(t, err, "recipe.ingredients must be an array")

	assert.NoError(t, ValidateRecipe(&models.Recipe{Ingredients: []string{}}))
	assert.NoError(t, ValidateRecipe(&models.Recipe{Ingredients: []string{"eggs"}}))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, Kind(0), KindOf(assert.AnError))
	assert.Equal(t, KindStoreFailure, KindOf(storeFailure(assert.AnError)))
	assert.Equal(t, KindNotFound, KindOf(notFound("gone")))
}

func TestStoreFailureHidesCause(t *testing.T) {
	err := storeFailure(assert.AnError)
	assert.Equal(t, "cart storage unavailable", err.Error())
	assert.ErrorIs(t, err, assert.AnError)
}
