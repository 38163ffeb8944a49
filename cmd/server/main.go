package main

import (
	"consulting_site_go/config"
	"consulting_site_go/handlers"
	"consulting_site_go/middleware"
	"consulting_site_go/services"
	"consulting_site_go/services/i18n"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if err := i18n.Load(); err != nil {
		log.Fatalf("Failed to load translations: %v", err)
	}
	middleware.InitAssetVersions("static")

	// Optional inquiry archive
	archive, closeArchive, err := services.OpenInquiryArchive(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize inquiry archive: %v", err)
	}
	defer closeArchive()

	mailer := services.NewMailer(cfg)
	contact := services.NewContactService(mailer, archive, services.ContactServiceConfigFrom(cfg))
	legal := services.NewLegalLibrary(os.DirFS(cfg.LegalContentDir), cfg.IsProduction())

	// Per-visitor decision state, evicted after a period of inactivity
	decisions := services.NewDecisionRegistry(services.DefaultDecisionTTL)
	stopSweeper := make(chan struct{})
	defer close(stopSweeper)
	decisions.StartSweeper(10*time.Minute, stopSweeper)

	h := handlers.New(cfg, decisions, contact, legal)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.BodyLimit("64K"))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
	}))
	e.Use(middleware.CSPNonce())
	e.Use(middleware.CSRF(cfg.IsProduction()))
	e.Use(middleware.Locale(cfg))
	e.Use(middleware.Region())
	e.Use(middleware.VisitorSession(cfg))

	// Static files
	e.Static("/static", "static")

	e.GET("/healthz", h.Healthz)
	e.GET("/sitemap.xml", h.Sitemap)
	e.GET("/robots.txt", h.Robots)
	e.GET("/", h.Landing)

	// HTMX interactions
	e.POST("/region", h.SetRegion)
	e.POST("/decisions/vat", h.SetVatDecision)
	e.POST("/decisions/legal/review", h.ReviewLegal)
	e.POST("/decisions/legal/accept", h.AcceptLegal)
	e.POST("/decisions/legal/close", h.CloseLegal)
	e.POST("/contact/check", h.CheckContact)
	e.GET("/contact/form", h.ContactFormFresh)
	e.POST("/contact", h.SubmitContact, middleware.ContactFormRateLimiter.Middleware())

	// Cookie consent
	e.POST("/cookies/accept", h.AcceptCookies)
	e.POST("/cookies/decline", h.DeclineCookies)
	e.GET("/cookies/preferences", h.CookiePreferences)
	e.POST("/cookies/preferences", h.SaveCookiePreferences)
	e.POST("/cookies/preferences/cancel", h.CancelCookiePreferences)

	// Legal documents
	for _, slug := range services.LegalSlugs {
		e.GET("/"+slug, h.LegalDocument(slug))
	}

	// JSON API
	e.POST("/api/contact", h.APIContact)

	// Start server
	go func() {
		log.Printf("Server starting on port %s", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("[WARNING] Server shutdown: %v", err)
	}
}
