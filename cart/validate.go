package cart

import (
	"strings"

	"go-recipes/models"
)

// ValidateUsername returns the trimmed cart key. An empty string after
// trimming is still accepted as a key; cart keys are exact strings and any
// stricter policy belongs to the caller.
func ValidateUsername(username string) string {
	return strings.TrimSpace(username)
}

// ValidateItems rejects a missing items array for bulk replace. Item
// contents are otherwise trusted: qty limits are enforced by the reconcile
// operations, not here, and a caller replacing the whole cart is trusted to
// supply an already-deduplicated set.
func ValidateItems(items []models.CartItem) error {
	if items == nil {
		return invalidInput("items must be an array")
	}
	return nil
}

// ValidateRecipe rejects a recipe without a usable ingredients list. An
// empty list is valid; the resulting operation is a no-op.
func ValidateRecipe(recipe *models.Recipe) error {
	if recipe == nil {
		return invalidInput("recipe is required")
	}
	if recipe.Ingredients == nil {
		return invalidInput("recipe.ingredients must be an array")
	}
	return nil
}
