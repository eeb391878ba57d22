package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hamshark/internal/config"
	"hamshark/internal/database"
	"hamshark/internal/handler"
	"hamshark/internal/repository"
	"hamshark/internal/router"
	"hamshark/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting hamshark API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize repositories. Without a database the server runs on the
	// seeded in-memory catalogue, which is all the demo needs.
	var (
		menuRepo  repository.MenuItemRepository
		orderRepo repository.OrderRepository
	)

	if cfg.Database.Enabled {
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer pool.Close()

		if err := database.EnsureSchema(ctx, pool, logger); err != nil {
			return fmt.Errorf("failed to prepare database schema: %w", err)
		}

		menuRepo = repository.NewMenuItemRepository(pool, logger)
		orderRepo = repository.NewOrderRepository(pool, logger)
	} else {
		logger.Info().Msg("database disabled, using in-memory repositories")
		menuRepo = repository.NewMemoryMenuItemRepository()
		orderRepo = repository.NewMemoryOrderRepository(logger)
	}

	truckRepo := repository.NewMemoryTruckRepository()
	membershipRepo := repository.NewMemoryMembershipRepository()
	loyaltyRepo := repository.NewMemoryLoyaltyRepository()
	userRepo := repository.NewMemoryUserRepository(logger)

	// Initialize services
	menuService := service.NewMenuService(menuRepo, logger)
	orderService := service.NewOrderService(orderRepo, menuRepo, userRepo, logger)
	truckService := service.NewTruckService(truckRepo, logger)
	membershipService := service.NewMembershipService(membershipRepo, logger)
	loyaltyService := service.NewLoyaltyService(loyaltyRepo, logger)

	// Initialize HTTP handlers
	menuHandler := handler.NewMenuHandler(menuService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)
	truckHandler := handler.NewTruckHandler(truckService, logger)
	membershipHandler := handler.NewMembershipHandler(membershipService, logger)
	loyaltyHandler := handler.NewLoyaltyHandler(loyaltyService, logger)

	// Initialize router
	mux := router.New(
		menuHandler,
		orderHandler,
		truckHandler,
		membershipHandler,
		loyaltyHandler,
		cfg.Auth.APIKey,
		logger,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
