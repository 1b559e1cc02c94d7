// main.go
package main

import (
	"context"
	"fmt"
	"go-recipes/cart"
	"go-recipes/controllers"
	"go-recipes/routes"
	"go-recipes/utils"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	// Set the JWT secret key
	utils.JwtKey = []byte(os.Getenv("JWT_SECRET"))

	// Initialize EmailService
	emailService := utils.NewEmailService()

	// Connect to MongoDB
	client := utils.ConnectDB()
	defer func() {
		if err = client.Disconnect(context.TODO()); err != nil {
			log.Fatal(err)
		}
	}()

	// Initialize the cart engine over its Mongo store
	cartService := cart.NewService(cart.NewMongoStore(client))

	// Initialize controllers
	userController := controllers.NewUserController(client, emailService)
	recipeController := controllers.NewRecipeController(client, cartService)
	categoryController := controllers.NewCategoryController(client)
	cartController := controllers.NewCartController(cartService)

	// Set up the router
	router := mux.NewRouter()
	// Register routes
	routes.RegisterRoutes(router, userController, recipeController, categoryController, cartController)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	fmt.Printf("Server is running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
