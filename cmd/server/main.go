package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"vente-backend/internal/auth"
	"vente-backend/internal/cache"
	"vente-backend/internal/config"
	"vente-backend/internal/database"
	"vente-backend/internal/db"
	"vente-backend/internal/events"
	"vente-backend/internal/handlers"
	"vente-backend/internal/health"
	h "vente-backend/internal/http"
	"vente-backend/internal/middleware"
	"vente-backend/internal/monitoring"
	"vente-backend/internal/repositories"
	"vente-backend/internal/services"
)

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	// Load configuration
	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	// Connect to PostgreSQL
	pool := db.Connect(cfg)
	defer pool.Close()

	// Initialize Redis cache (optional - graceful fallback if unavailable)
	if err := cache.Init(); err != nil {
		log.Printf("[Redis] Cache unavailable: %v (login will use bcrypt only)", err)
	} else {
		log.Println("[Redis] Cache connected successfully")
	}

	// Run database migrations
	log.Println("Running database migrations...")
	migrator := database.NewMigrator(pool)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := migrator.RunMigrations(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize health checker
	healthChecker := health.NewHealthChecker(pool)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(pool)
	customerRepo := repositories.NewCustomerRepository(pool)
	categoryRepo := repositories.NewCategoryRepository(pool)
	productRepo := repositories.NewProductRepository(pool)
	orderRepo := repositories.NewOrderRepository(pool)
	invoiceRepo := repositories.NewInvoiceRepository(pool)
	paymentRepo := repositories.NewPaymentRepository(pool)

	// Event bus wires the payment side effects
	bus := events.NewBus()
	defer bus.Close()

	// Initialize services
	userService := services.NewUserService(userRepo, jwtManager)
	customerService := services.NewCustomerService(customerRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	productService := services.NewProductService(productRepo)
	orderService := services.NewOrderService(orderRepo, paymentRepo, customerRepo, productService)
	invoiceService := services.NewInvoiceService(invoiceRepo, orderRepo, customerRepo, productService)
	paymentService := services.NewPaymentService(paymentRepo, orderRepo, bus)
	pdfService := services.NewPDFService()
	archiveService := services.NewArchiveService(cfg)

	// Each accepted payment produces a paid invoice
	bus.SubscribePaymentRecorded(invoiceService.HandlePaymentRecorded)

	// Start monitoring server in background
	go monitoring.NewServer(pool, cfg.Server.MonitoringPort, bus).Start()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	productHandler := handlers.NewProductHandler(productService)
	orderHandler := handlers.NewOrderHandler(orderService, paymentService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService, pdfService, archiveService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo)

	// Build router
	router := h.NewRouter(
		authHandler,
		customerHandler,
		categoryHandler,
		productHandler,
		orderHandler,
		invoiceHandler,
		paymentHandler,
		healthHandler,
		authMiddleware,
	)

	// Panic recovery inside CORS. Metrics are registered on the router
	// itself so they can label by route template.
	handler := middleware.NewCORS(cfg)(middleware.PanicRecovery(router))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
