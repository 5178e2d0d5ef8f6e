package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	httpapi "github.com/tripatlas/itinerary-viewer/internal/api/http"
	"github.com/tripatlas/itinerary-viewer/internal/config"
	"github.com/tripatlas/itinerary-viewer/internal/itinerary"
	"github.com/tripatlas/itinerary-viewer/internal/trip"
	"github.com/tripatlas/itinerary-viewer/internal/weather"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger().Level(level)

	// Static trip tables. Any unresolved stop or probe reference is a data
	// bug; abort before serving anything.
	registry := trip.NewRegistry(trip.Locations())
	plans := trip.Plans()

	composer, err := trip.NewComposer(registry, trip.Segments())
	if err != nil {
		log.Fatal().Err(err).Msg("invalid route table")
	}
	if err := trip.ValidatePlans(registry, plans); err != nil {
		log.Fatal().Err(err).Msg("invalid day plans")
	}

	// Shared HTTP client for outbound forecast calls.
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	weatherClient := weather.NewClient(httpClient, cfg.WeatherBaseURL, log)

	presenter := itinerary.New(registry, plans, weatherClient, cfg.WeatherFetchTimeout, log)

	app := fiber.New(fiber.Config{
		AppName:               "itinerary-viewer",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          30 * time.Second,
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

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "itinerary-viewer",
		})
	})

	httpapi.RegisterRoutes(app, composer, presenter)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Error().Err(err).Msg("fiber server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Int("locations", registry.Len()).Msg("itinerary viewer started")

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during shutdown")
	}
}
