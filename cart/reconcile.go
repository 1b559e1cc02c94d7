// Package cart implements the shopping-cart ingredient reconciliation
// engine: merging a recipe's ingredient list into a user's cart and the
// inverse decrement when ingredients are consumed or a recipe is removed.
//
// After every operation two invariants hold: no two items share the same
// text, and every item has qty >= 1. An item whose quantity would reach zero
// is removed from the cart, never retained at zero.
package cart

import (
	"strings"

	"go-recipes/models"
)

// AddSummary reports the outcome of AddIngredients.
type AddSummary struct {
	Success    bool `json:"success"`
	AddedCount int  `json:"addedCount"`
	TotalItems int  `json:"totalItems"`
}

// RemoveSummary reports the outcome of RemoveIngredients.
type RemoveSummary struct {
	Removed      bool              `json:"removed"`
	ChangedCount int               `json:"changedCount"`
	Items        []models.CartItem `json:"items"`
	RemovedTexts []string          `json:"removedTexts"`
}

// mentionCounts trims and counts the valid ingredient mentions in a recipe's
// ingredient list, dropping empty and whitespace-only entries. The returned
// order preserves first appearance so cart positions stay stable.
func mentionCounts(ingredients []string) ([]string, map[string]int) {
	counts := make(map[string]int, len(ingredients))
	order := make([]string, 0, len(ingredients))
	for _, raw := range ingredients {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		if _, seen := counts[name]; !seen {
			order = append(order, name)
		}
		counts[name]++
	}
	return order, counts
}

func indexOf(items []models.CartItem, text string) int {
	for i, item := range items {
		if item.Text == text {
			return i
		}
	}
	return -1
}

// AddIngredients merges a recipe's ingredient mentions into the cart.
// Recipes routinely repeat an ingredient across steps, so mentions are
// counted rather than deduplicated: listing "egg" three times requests three
// units. Existing items keep their position and their checked flag; new
// items are appended unchecked. The input cart is not modified.
func AddIngredients(c models.Cart, ingredients []string) (models.Cart, AddSummary) {
	order, counts := mentionCounts(ingredients)
	items := append([]models.CartItem(nil), c.Items...)

	added := 0
	for _, name := range order {
		n := counts[name]
		added += n
		if i := indexOf(items, name); i >= 0 {
			items[i].Qty += n
		} else {
			items = append(items, models.CartItem{Text: name, Qty: n, Checked: false})
		}
	}

	c.Items = items
	return c, AddSummary{Success: true, AddedCount: added, TotalItems: len(items)}
}

// RemoveIngredients decrements cart quantities by a recipe's ingredient
// mentions. An item whose quantity reaches zero or below is removed from the
// cart and recorded in RemovedTexts; requesting more units than present is
// not an error. Ingredient names absent from the cart are silently skipped.
// The input cart is not modified.
func RemoveIngredients(c models.Cart, ingredients []string) (models.Cart, RemoveSummary) {
	order, counts := mentionCounts(ingredients)
	items := append([]models.CartItem(nil), c.Items...)

	changed := 0
	removedTexts := []string{}
	for _, name := range order {
		i := indexOf(items, name)
		if i < 0 {
			continue
		}
		changed++
		items[i].Qty -= counts[name]
		if items[i].Qty <= 0 {
			items = append(items[:i], items[i+1:]...)
			removedTexts = append(removedTexts, name)
		}
	}

	c.Items = items
	return c, RemoveSummary{
		Removed:      changed > 0,
		ChangedCount: changed,
		Items:        items,
		RemovedTexts: removedTexts,
	}
}

// RemoveItem deletes a single item by exact text match. A missing item is
// reported via the returned flag, never as an error, so removing from an
// empty cart is a no-op. The input cart is not modified.
func RemoveItem(c models.Cart, text string) (models.Cart, bool) {
	items := append([]models.CartItem(nil), c.Items...)
	if i := indexOf(items, text); i >= 0 {
		c.Items = append(items[:i], items[i+1:]...)
		return c, true
	}
	c.Items = items
	return c, false
}

// ReplaceAll swaps the cart contents wholesale. No merge is performed; the
// caller is trusted to supply an already-deduplicated set.
func ReplaceAll(c models.Cart, items []models.CartItem) models.Cart {
	c.Items = append([]models.CartItem{}, items...)
	return c
}
