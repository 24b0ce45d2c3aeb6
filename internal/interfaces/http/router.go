package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Caja-api/internal/application/auth"
	"github.com/jhoicas/Caja-api/internal/application/usecase"
	"github.com/jhoicas/Caja-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	LedgerUC      *usecase.LedgerUseCase
	StockUC       *usecase.StockUseCase
	PerformanceUC *usecase.PerformanceUseCase
	ReportPDFUC   *usecase.ReportPDFUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register-business", authHandler.RegisterBusiness)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Libro diario (protegido; cualquier rol registra y consulta)
	ledger := protected.Group("/ledger")
	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	ledger.Post("/entries", ledgerHandler.RegisterEntry)
	ledger.Get("/entries", ledgerHandler.ListEntries)

	// Inventario (protegido; borrar productos es solo para admin)
	stock := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stock.Post("/items", stockHandler.Create)
	stock.Get("/items", stockHandler.List)
	stock.Get("/items/:id", stockHandler.GetByID)
	stock.Put("/items/:id", stockHandler.Update)
	stock.Delete("/items/:id", RequireRole(entity.RoleAdmin), stockHandler.Delete)

	// Desempeño de productos (protegido)
	perf := protected.Group("/performance")
	perfHandler := NewPerformanceHandler(deps.PerformanceUC, deps.ReportPDFUC)
	perf.Get("/report", perfHandler.GetReport)
	perf.Get("/report/pdf", perfHandler.GetReportPDF)
	perf.Get("/categories", perfHandler.Categories)
}
