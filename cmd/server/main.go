package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agenz_site/config"
	"agenz_site/content"
	"agenz_site/db"
	"agenz_site/handlers"
	"agenz_site/middleware"
	"agenz_site/models"
	"agenz_site/services"
	"agenz_site/services/i18n"
	"agenz_site/services/jobs"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"gorm.io/gorm"
)

func main() {
	// Load configuration
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := services.InitTracing(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}

	if err := i18n.Load(); err != nil {
		log.Fatalf("Failed to load translations: %v", err)
	}

	store, err := content.Load()
	if err != nil {
		log.Fatalf("Failed to load site content: %v", err)
	}
	log.Printf("Content loaded: %d services, %d case studies, %d posts", len(store.Services), len(store.CaseStudies), len(store.Posts))

	// Lead archive
	var database *gorm.DB
	if cfg.LeadArchiveEnabled {
		if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer db.Close()

		if err := db.AutoMigrate(&models.LeadSubmission{}); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		database = db.DB
	} else {
		log.Println("[WARNING] Lead archive disabled, submissions are only forwarded")
	}

	dispatcher := services.NewDispatcher(cfg, database)
	handlers.Setup(store, dispatcher)
	middleware.InitAssetVersions()

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handlers.HTTPErrorHandler(e)

	// Middleware
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(otelecho.Middleware(cfg.ServiceName, otelecho.WithSkipper(func(c echo.Context) bool {
		p := c.Request().URL.Path
		return p == "/health" || p == "/metrics"
	})))
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         hstsMaxAge(cfg),
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))
	e.Use(echomiddleware.Gzip())

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})
	e.Use(middleware.CSPNonce())
	e.Use(middleware.Locale(cfg))
	e.Use(middleware.CSRF(cfg))

	// Static files
	e.Static("/static", middleware.StaticDir)

	// Operational routes
	e.GET("/health", handlers.HealthHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/robots.txt", handlers.RobotsHandler)
	e.GET("/sitemap.xml", handlers.GetSitemapHandler)

	// Public pages
	e.GET("/", handlers.HomeHandler)
	e.GET("/services", handlers.ServicesHandler)
	e.GET("/services/:slug", handlers.ServiceDetailHandler)
	e.GET("/pricing", handlers.PricingHandler)
	e.GET("/case-studies", handlers.CaseStudiesHandler)
	e.GET("/case-studies/:slug", handlers.CaseStudyDetailHandler)
	e.GET("/blog", handlers.BlogHandler)
	e.GET("/blog/:slug", handlers.BlogPostHandler)
	e.GET("/about", handlers.AboutHandler)

	// Forms
	e.GET("/lead-form", handlers.LeadFormHandler)
	e.POST("/lead-form", handlers.LeadFormPostHandler, middleware.LeadFormRateLimiter.SubmissionMiddleware())
	e.GET("/contact", handlers.ContactHandler)
	e.GET("/contact/form", handlers.ContactFormHandler)
	e.POST("/contact", handlers.ContactPostHandler, middleware.ContactFormRateLimiter.SubmissionMiddleware())

	// Admin routes
	if cfg.AdminEnabled() && database != nil {
		admin := e.Group("/admin")
		admin.Use(middleware.AdminRateLimiter.Middleware())
		admin.Use(middleware.AdminAuth(cfg))
		{
			admin.GET("/leads", handlers.AdminLeadsHandler)
			admin.GET("/leads/export.xlsx", handlers.AdminLeadsExportHandler)
		}
	} else {
		log.Println("Admin area disabled (set ADMIN_PASSWORD_HASH and keep LEAD_ARCHIVE_ENABLED on)")
	}

	// Background redelivery of failed submissions
	if database != nil && cfg.RedeliveryInterval > 0 {
		jobs.StartRedelivery(ctx, database, dispatcher, cfg.RedeliveryInterval)
		log.Printf("Redelivery job started (every %s)", cfg.RedeliveryInterval)
	}

	// Start server
	go func() {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("[WARNING] Server shutdown: %v", err)
	}
	if err := dispatcher.Wait(shutdownCtx); err != nil {
		log.Printf("[WARNING] Pending intake deliveries abandoned: %v", err)
	}
	middleware.LeadFormRateLimiter.Stop()
	middleware.ContactFormRateLimiter.Stop()
	middleware.AdminRateLimiter.Stop()
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Printf("[WARNING] Tracing shutdown: %v", err)
	}
}

func hstsMaxAge(cfg *config.Config) int {
	if cfg.IsProduction() {
		return 31536000
	}
	return 0
}
