package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"book-club-server/internal/config"
	"book-club-server/internal/handler"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}
	// Wiring; the container restores all three stores from local storage
	container, err := config.NewContainer()
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}

	// Router
	router := handler.NewRouter(container)

	// start server
	server := &http.Server{
		Addr:    ":" + container.Config.GetServerPort(),
		Handler: router,
	}

	// Run server
	go func() {
		container.Logger.Info("Server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			container.Logger.Error("Server failed to start", err)
			os.Exit(1)
		}
	}()
	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	container.Logger.Info("Shutting down server...")
	_ = server.Close()
	if err := container.Close(); err != nil {
		container.Logger.Warn("Failed to close local store", "error", err)
	}

	container.Logger.Info("Server exited")
}
