package main

import (
	"context"
	"log"
	"runtime/debug"
	"strings"

	"github.com/TriCode435/Wellnest-Smart-Health/internal/config"
	"github.com/TriCode435/Wellnest-Smart-Health/internal/database"
	"github.com/TriCode435/Wellnest-Smart-Health/internal/middleware"
	"github.com/TriCode435/Wellnest-Smart-Health/internal/reporting"
	"github.com/TriCode435/Wellnest-Smart-Health/internal/routes"
	"github.com/TriCode435/Wellnest-Smart-Health/internal/seed"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Connect to Database
	if cfg.DBUrl == "" {
		log.Fatal("DB_URL is required")
	}
	pool, err := database.Connect(context.Background(), cfg.DBUrl)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	reporter := reporting.New(cfg.SentryDSN, cfg.AppEnv)
	defer reporter.Close()

	svc := routes.NewServices(cfg, pool)
	if cfg.SeedDefaultAccounts {
		if err := seed.DefaultAccounts(context.Background(), svc.Accounts, svc.Auth, cfg.SeedPasswords()); err != nil {
			reporter.Close()
			pool.Close()
			log.Fatalf("Failed to seed default accounts: %v", err)
		}
	}

	// 3. Setup Fiber
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: strings.Join([]string{
			fiber.MethodGet,
			fiber.MethodPost,
			fiber.MethodPut,
			fiber.MethodDelete,
			fiber.MethodOptions,
		}, ","),
	}))
	app.Use(logger.New())
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			if cfg.IsDevelopment() {
				log.Printf("panic in %s %s: %v\n%s", c.Method(), c.Path(), e, debug.Stack())
			}
			reporter.CapturePanic(e)
		},
	}))
	app.Use(middleware.ReportServerErrors(reporter))

	// Routes
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})
	routes.RegisterRoutes(app, cfg, svc)

	// 4. Start Server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		// log.Fatalf skips deferred calls; flush Sentry and release the pool first.
		reporter.Close()
		pool.Close()
		log.Fatalf("Server failed to start: %v", err)
	}
}
