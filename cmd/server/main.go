package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lunchbox-backend/internal/auth"
	"lunchbox-backend/internal/cache"
	"lunchbox-backend/internal/config"
	"lunchbox-backend/internal/database"
	"lunchbox-backend/internal/db"
	"lunchbox-backend/internal/handlers"
	"lunchbox-backend/internal/health"
	lhttp "lunchbox-backend/internal/http"
	"lunchbox-backend/internal/middleware"
	"lunchbox-backend/internal/repositories"
	"lunchbox-backend/internal/services"
	"lunchbox-backend/internal/ws"
)

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	// Load configuration
	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	// Connect to Postgres
	pool := db.Connect(cfg)
	defer pool.Close()

	// Initialize Redis cache (optional - graceful fallback if unavailable)
	if err := cache.Init(); err != nil {
		log.Printf("[Redis] Cache unavailable: %v (reads go straight to Postgres)", err)
	} else {
		log.Println("[Redis] Cache connected successfully")
	}

	// Run database migrations
	migrator := database.NewMigrator(pool)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := migrator.RunMigrations(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize JWT manager and health checker
	jwtManager := auth.NewJWTManager(cfg)
	healthChecker := health.NewHealthChecker(pool)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(pool)
	childRepo := repositories.NewChildRepository(pool)
	menuRepo := repositories.NewMenuRepository(pool)
	subscriptionRepo := repositories.NewSubscriptionRepository(pool)
	invoiceRepo := repositories.NewInvoiceRepository(pool)
	selectionRepo := repositories.NewSelectionRepository(pool)
	deliveryRepo := repositories.NewDeliveryRepository(pool)
	feedbackRepo := repositories.NewFeedbackRepository(pool)
	waitlistRepo := repositories.NewWaitlistRepository(pool)
	onlineTransactionRepo := repositories.NewOnlineTransactionRepository(pool)

	// Websocket hub for dispatch boards
	hub := ws.NewHub()

	// Initialize services
	subscriptionService := services.NewSubscriptionService(subscriptionRepo, childRepo)
	invoiceService := services.NewInvoiceService(invoiceRepo)
	selectionService := services.NewSelectionService(selectionRepo)
	deliveryService := services.NewDeliveryService(deliveryRepo, hub)
	analyticsService := services.NewAnalyticsService(subscriptionRepo, deliveryRepo, invoiceRepo, feedbackRepo)
	packlistService := services.NewPacklistService(childRepo, selectionRepo, menuRepo)
	receiptService := services.NewReceiptService(invoiceRepo, subscriptionRepo, childRepo)
	razorpayService := services.NewRazorpayService(
		cfg.Razorpay.KeyID,
		cfg.Razorpay.KeySecret,
		cfg.Razorpay.WebhookSecret,
		onlineTransactionRepo,
		invoiceService,
	)
	if !razorpayService.IsEnabled() {
		log.Println("[Razorpay] Credentials not configured, online payments disabled")
	}

	// Host metrics collector
	metricsCollector := services.NewMetricsCollector()
	metricsCollector.Start()
	defer metricsCollector.Stop()

	// Nightly export of packlist and invoice ledger to R2
	backupService := services.NewBackupService(cfg, packlistService, receiptService)
	backupService.Start()
	defer backupService.Stop()

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo)
	corsMiddleware := middleware.NewCORS(cfg)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userRepo, jwtManager)
	childHandler := handlers.NewChildHandler(childRepo)
	menuHandler := handlers.NewMenuHandler(menuRepo)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService, receiptService)
	selectionHandler := handlers.NewSelectionHandler(selectionService)
	deliveryHandler := handlers.NewDeliveryHandler(deliveryService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackRepo)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)
	packlistHandler := handlers.NewPacklistHandler(packlistService)
	notifyHandler := handlers.NewNotifyHandler(waitlistRepo)
	razorpayHandler := handlers.NewRazorpayHandler(razorpayService)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	router := lhttp.NewRouter(
		authHandler,
		childHandler,
		menuHandler,
		subscriptionHandler,
		invoiceHandler,
		selectionHandler,
		deliveryHandler,
		feedbackHandler,
		analyticsHandler,
		packlistHandler,
		notifyHandler,
		razorpayHandler,
		healthHandler,
		authMiddleware,
		hub,
		cfg.Server.APIKey,
	)

	handler := middleware.PanicRecovery(
		middleware.MetricsMiddleware(
			middleware.RequestLogging(
				corsMiddleware(router))))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server running on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
