package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/billforge/billforge-api/internal/application/billing"
	"github.com/billforge/billforge-api/internal/infrastructure/mail"
	infrapdf "github.com/billforge/billforge-api/internal/infrastructure/pdf"
	"github.com/billforge/billforge-api/internal/infrastructure/postgres"
	"github.com/billforge/billforge-api/internal/infrastructure/render"
	httpRouter "github.com/billforge/billforge-api/internal/interfaces/http"
	"github.com/billforge/billforge-api/pkg/config"
	"github.com/billforge/billforge-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	if err := postgres.Migrate(cfg.DB.ConnectionString(), cfg.DB.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("database migrations")
	}

	invoiceRepo := postgres.NewInvoiceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	issuer := render.Issuer{
		Name:    cfg.Company.Name,
		Address: cfg.Company.Address,
		Email:   cfg.Company.Email,
	}
	renderer := render.NewHTMLRenderer(issuer)

	// "chrome" prints the same HTML the preview shows; "native" draws the
	// PDF directly and needs no browser on the host.
	var pdfGenerator billing.InvoicePDFGenerator
	switch cfg.PDF.Engine {
	case "native":
		pdfGenerator = infrapdf.NewMarotoPDFGenerator(issuer)
	default:
		pdfGenerator = infrapdf.NewChromePDFGenerator(renderer)
	}
	log.Info().Str("engine", cfg.PDF.Engine).Msg("PDF engine selected")

	mailer := mail.NewGomailSender(cfg.SMTP, cfg.Company.Name)

	invoiceUC := billing.NewInvoiceUseCase(txRunner, invoiceRepo)
	documentUC := billing.NewDocumentUseCase(invoiceRepo, renderer, pdfGenerator, mailer)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	// The invoice form runs on another origin during development.
	app.Use(cors.New())
	app.Use(httpRouter.RequestLogger(log.Zerolog()))

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "BillForge API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InvoiceUC:  invoiceUC,
		DocumentUC: documentUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
