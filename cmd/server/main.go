package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ozgurgul/taskdemo/internal/app"
	"github.com/ozgurgul/taskdemo/internal/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.App.GinMode)

	a := app.New(cfg)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTP.Port,
		Handler:      a.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	log.Printf("Server starting on :%s", cfg.HTTP.Port)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
