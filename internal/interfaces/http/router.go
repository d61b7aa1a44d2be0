package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/pdv-admin-api/internal/application/auth"
	"github.com/jhoicas/pdv-admin-api/internal/application/catalog"
	"github.com/jhoicas/pdv-admin-api/internal/application/report"
	"github.com/jhoicas/pdv-admin-api/internal/application/stock"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StockUC   *stock.UseCase
	AuthUC    *auth.UseCase
	CatalogUC *catalog.UseCase
	ReportUC  *report.UseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público salvo /me)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products + flujo de stock (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.StockUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	// Antes de /:id para que "barcode" no se capture como parámetro.
	products.Get("/barcode", productHandler.GenerateBarcode)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/movements", productHandler.RegisterMovement)
	products.Get("/:id/history", productHandler.History)
	products.Delete("/:id/history", productHandler.ResetHistory)

	// Catálogos de referencia (protegido)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	protected.Get("/catalog", catalogHandler.Catalog)

	// Informes (protegido)
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports/stock", reportHandler.StockReport)
}
