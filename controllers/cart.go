package controllers

import (
	"context"
	"encoding/json"
	"go-recipes/cart"
	"go-recipes/middleware"
	"go-recipes/models"
	"go-recipes/utils"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// CartController handles cart-related requests. It is a thin wrapper: all
// cart logic lives in the cart service.
type CartController struct {
	Service *cart.Service
}

// NewCartController creates a new CartController
func NewCartController(service *cart.Service) *CartController {
	return &CartController{
		Service: service,
	}
}

// writeCartError maps cart engine error kinds to HTTP statuses. Store
// failures are reported generically; the cause goes to the log only.
func writeCartError(w http.ResponseWriter, err error) {
	switch cart.KindOf(err) {
	case cart.KindInvalidInput:
		http.Error(w, err.Error(), http.StatusBadRequest)
	case cart.KindNotFound:
		http.Error(w, err.Error(), http.StatusNotFound)
	case cart.KindStoreFailure:
		log.Printf("cart store error: %v", err)
		http.Error(w, "Error accessing cart storage", http.StatusInternalServerError)
	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func cartUsername(r *http.Request) (string, bool) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		return "", false
	}
	return claims.Username, true
}

// GetCart retrieves the user's cart; an absent user gets an empty cart
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	username, ok := cartUsername(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	c, err := cc.Service.GetCart(ctx, username)
	if err != nil {
		writeCartError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// ReplaceCart replaces the user's cart contents wholesale
func (cc *CartController) ReplaceCart(w http.ResponseWriter, r *http.Request) {
	username, ok := cartUsername(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var body struct {
		Items []models.CartItem `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := cc.Service.ReplaceCart(ctx, username, body.Items)
	if err != nil {
		writeCartError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// DeleteCart deletes the user's cart; absent carts are a 404
func (cc *CartController) DeleteCart(w http.ResponseWriter, r *http.Request) {
	username, ok := cartUsername(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := cc.Service.DeleteCart(ctx, username)
	if err != nil {
		writeCartError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// RemoveItem removes a single item from the cart by exact text match
func (cc *CartController) RemoveItem(w http.ResponseWriter, r *http.Request) {
	username, ok := cartUsername(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	params := mux.Vars(r)
	text := params["text"]

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	result, err := cc.Service.RemoveItem(ctx, username, text)
	if err != nil {
		writeCartError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
