package controllers

import (
	"context"
	"encoding/json"
	"go-recipes/cart"
	"go-recipes/middleware"
	"go-recipes/models"
	"go-recipes/utils"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// RecipeController handles recipe-related requests
type RecipeController struct {
	RecipeCollection *mongo.Collection
	UserCollection   *mongo.Collection
	CartService      *cart.Service
}

// NewRecipeController creates a new RecipeController
func NewRecipeController(client *mongo.Client, cartService *cart.Service) *RecipeController {
	recipeCollection := client.Database("recipes").Collection("recipes")
	userCollection := client.Database("recipes").Collection("users")
	return &RecipeController{
		RecipeCollection: recipeCollection,
		UserCollection:   userCollection,
		CartService:      cartService,
	}
}

// findRecipe loads a recipe by path ID and enforces the privacy rule:
// private recipes are visible to their author only.
func (rc *RecipeController) findRecipe(ctx context.Context, w http.ResponseWriter, r *http.Request) (*models.Recipe, *utils.Claims, bool) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return nil, nil, false
	}

	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		http.Error(w, "Invalid recipe ID", http.StatusBadRequest)
		return nil, nil, false
	}

	var recipe models.Recipe
	err = rc.RecipeCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&recipe)
	if err != nil {
		http.Error(w, "Recipe not found", http.StatusNotFound)
		return nil, nil, false
	}

	if !recipe.Public && recipe.Author != claims.Username {
		http.Error(w, "Recipe not found", http.StatusNotFound)
		return nil, nil, false
	}

	return &recipe, claims, true
}

// CreateRecipe handles adding a new recipe
func (rc *RecipeController) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var recipe models.Recipe
	err := json.NewDecoder(r.Body).Decode(&recipe)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if recipe.Title == "" {
		http.Error(w, "Title is required", http.StatusBadRequest)
		return
	}
	if recipe.Ingredients == nil {
		recipe.Ingredients = []string{}
	}

	recipe.ID = primitive.NilObjectID
	recipe.Author = claims.Username
	recipe.CreatedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := rc.RecipeCollection.InsertOne(ctx, recipe)
	if err != nil {
		http.Error(w, "Error creating recipe", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}

// GetRecipes retrieves all recipes visible to the user: public ones plus
// the user's own private ones
func (rc *RecipeController) GetRecipes(w http.ResponseWriter, r *http.Request) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	filter := bson.M{"$or": []bson.M{
		{"public": true},
		{"author": claims.Username},
	}}
	cursor, err := rc.RecipeCollection.Find(ctx, filter)
	if err != nil {
		http.Error(w, "Error fetching recipes", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var recipes []models.Recipe
	for cursor.Next(ctx) {
		var recipe models.Recipe
		cursor.Decode(&recipe)
		recipes = append(recipes, recipe)
	}

	if err := cursor.Err(); err != nil {
		http.Error(w, "Error reading recipes", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(recipes)
}

// GetRecipeByID retrieves a single recipe by ID
func (rc *RecipeController) GetRecipeByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	recipe, _, ok := rc.findRecipe(ctx, w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(recipe)
}

// UpdateRecipe handles updating a recipe (author only)
func (rc *RecipeController) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	recipe, claims, ok := rc.findRecipe(ctx, w, r)
	if !ok {
		return
	}
	if recipe.Author != claims.Username {
		http.Error(w, "Forbidden: not the author", http.StatusForbidden)
		return
	}

	var updated models.Recipe
	err := json.NewDecoder(r.Body).Decode(&updated)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	update := bson.M{
		"$set": bson.M{
			"title":       updated.Title,
			"category":    updated.Category,
			"ingredients": updated.Ingredients,
			"steps":       updated.Steps,
			"public":      updated.Public,
		},
	}

	result, err := rc.RecipeCollection.UpdateOne(ctx, bson.M{"_id": recipe.ID}, update)
	if err != nil {
		http.Error(w, "Error updating recipe", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(result)
}

// DeleteRecipe handles deleting a recipe (author only)
func (rc *RecipeController) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	recipe, claims, ok := rc.findRecipe(ctx, w, r)
	if !ok {
		return
	}
	if recipe.Author != claims.Username {
		http.Error(w, "Forbidden: not the author", http.StatusForbidden)
		return
	}

	result, err := rc.RecipeCollection.DeleteOne(ctx, bson.M{"_id": recipe.ID})
	if err != nil {
		http.Error(w, "Error deleting recipe", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(result)
}

// FavoriteRecipe adds a recipe to the user's favorites
func (rc *RecipeController) FavoriteRecipe(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	recipe, claims, ok := rc.findRecipe(ctx, w, r)
	if !ok {
		return
	}

	_, err := rc.UserCollection.UpdateOne(ctx, bson.M{"username": claims.Username}, bson.M{
		"$addToSet": bson.M{"favorites": recipe.ID},
	})
	if err != nil {
		http.Error(w, "Error updating favorites", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode("Recipe added to favorites")
}

// UnfavoriteRecipe removes a recipe from the user's favorites
func (rc *RecipeController) UnfavoriteRecipe(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	recipe, claims, ok := rc.findRecipe(ctx, w, r)
	if !ok {
		return
	}

	_, err := rc.UserCollection.UpdateOne(ctx, bson.M{"username": claims.Username}, bson.M{
		"$pull": bson.M{"favorites": recipe.ID},
	})
	if err != nil {
		http.Error(w, "Error updating favorites", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode("Recipe removed from favorites")
}

// AddRecipeToCart merges the recipe's ingredients into the user's cart
func (rc *RecipeController) AddRecipeToCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	recipe, claims, ok := rc.findRecipe(ctx, w, r)
	if !ok {
		return
	}

	summary, err := rc.CartService.AddRecipe(ctx, claims.Username, recipe)
	if err != nil {
		writeCartError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}

// RemoveRecipeFromCart decrements the user's cart by the recipe's
// ingredients, dropping depleted items
func (rc *RecipeController) RemoveRecipeFromCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	recipe, claims, ok := rc.findRecipe(ctx, w, r)
	if !ok {
		return
	}

	summary, err := rc.CartService.RemoveRecipe(ctx, claims.Username, recipe)
	if err != nil {
		writeCartError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}
