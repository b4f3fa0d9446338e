package main

import (
	"context"
	"log"

	"github.com/philly/posts-api/internal/server"
)

func main() {
	// Initialize the app with all dependencies wired
	app, err := server.InitializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	// Run the application until SIGINT/SIGTERM
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("Failed to run app: %v", err)
	}
}
