package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/pacive/go-smhi/internal/api/http"
	"github.com/pacive/go-smhi/internal/config"
	"github.com/pacive/go-smhi/internal/smhi"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound SMHI calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	client := smhi.NewClient(httpClient, cfg.SMHIBaseURL)

	// Watcher announcing newly published model runs.
	watcher := smhi.NewWatcher(client, cfg.WatchInterval, nil)
	if err := watcher.Start(); err != nil {
		log.Fatalf("failed to start watcher: %v", err)
	}
	defer watcher.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "smhi-forecast",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "smhi-forecast",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, client, httpapi.Defaults{
		Lon: cfg.DefaultLon,
		Lat: cfg.DefaultLat,
	})

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
