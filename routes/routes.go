// routes/routes.go
package routes

import (
	"go-recipes/controllers"
	"go-recipes/middleware"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, userController *controllers.UserController, recipeController *controllers.RecipeController, categoryController *controllers.CategoryController, cartController *controllers.CartController) {
	// Public routes
	router.HandleFunc("/register", userController.Register).Methods("POST")
	router.HandleFunc("/login", userController.Login).Methods("POST")
	router.HandleFunc("/verify", userController.VerifyEmail).Methods("GET")
	router.HandleFunc("/categories", categoryController.GetCategories).Methods("GET")

	// Protected routes
	protected := router.PathPrefix("/").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/profile", userController.GetProfile).Methods("GET")

	// Recipe routes
	protected.HandleFunc("/recipes", recipeController.GetRecipes).Methods("GET")
	protected.HandleFunc("/recipes", recipeController.CreateRecipe).Methods("POST")
	protected.HandleFunc("/recipes/{id}", recipeController.GetRecipeByID).Methods("GET")
	protected.HandleFunc("/recipes/{id}", recipeController.UpdateRecipe).Methods("PUT")
	protected.HandleFunc("/recipes/{id}", recipeController.DeleteRecipe).Methods("DELETE")
	protected.HandleFunc("/recipes/{id}/favorite", recipeController.FavoriteRecipe).Methods("POST")
	protected.HandleFunc("/recipes/{id}/favorite", recipeController.UnfavoriteRecipe).Methods("DELETE")

	// Cart routes
	protected.HandleFunc("/cart", cartController.GetCart).Methods("GET")
	protected.HandleFunc("/cart", cartController.ReplaceCart).Methods("PUT")
	protected.HandleFunc("/cart", cartController.DeleteCart).Methods("DELETE")
	protected.HandleFunc("/cart/items/{text}", cartController.RemoveItem).Methods("DELETE")
	protected.HandleFunc("/recipes/{id}/cart", recipeController.AddRecipeToCart).Methods("POST")
	protected.HandleFunc("/recipes/{id}/cart", recipeController.RemoveRecipeFromCart).Methods("DELETE")

	// Admin routes
	admin := router.PathPrefix("/categories").Subrouter()
	admin.Use(middleware.AuthMiddleware)
	admin.Use(middleware.AdminMiddleware)
	admin.HandleFunc("", categoryController.CreateCategory).Methods("POST")
	admin.HandleFunc("/{id}", categoryController.UpdateCategory).Methods("PUT")
	admin.HandleFunc("/{id}", categoryController.DeleteCategory).Methods("DELETE")
}
