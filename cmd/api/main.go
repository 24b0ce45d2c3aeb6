package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/Caja-api/internal/application/auth"
	"github.com/jhoicas/Caja-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Caja-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Caja-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Caja-api/internal/interfaces/http"
	"github.com/jhoicas/Caja-api/pkg/config"
	"github.com/jhoicas/Caja-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	businessRepo := postgres.NewBusinessRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	ledgerRepo := postgres.NewLedgerRepository(pool)
	stockRepo := postgres.NewStockItemRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, businessRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	ledgerUC := usecase.NewLedgerUseCase(txRunner, ledgerRepo)
	stockUC := usecase.NewStockUseCase(stockRepo)
	performanceUC := usecase.NewPerformanceUseCase(ledgerRepo, stockRepo, usecase.AnalysisConfig{
		DefaultDays: cfg.Analysis.DefaultDays,
		MaxDays:     cfg.Analysis.MaxDays,
	}, log)

	// PDF: versión imprimible del reporte de desempeño
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportPDFUC := usecase.NewReportPDFUseCase(performanceUC, businessRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Caja Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		LedgerUC:      ledgerUC,
		StockUC:       stockUC,
		PerformanceUC: performanceUC,
		ReportPDFUC:   reportPDFUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
