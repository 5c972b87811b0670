package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-console/internal/application/catalog"
	"github.com/jhoicas/Inventario-console/internal/application/inventory"
	"github.com/jhoicas/Inventario-console/internal/application/session"
	"github.com/jhoicas/Inventario-console/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Sessions     *session.Manager
	CategoryUC   *catalog.CategoryUseCase
	WarehouseUC  *usecase.WarehouseUseCase
	ItemsUC      *inventory.ItemsUseCase
	Transactions *inventory.TransactionsUseCase
	StockIn      *inventory.StockInUseCase
	StockOut     *inventory.StockOutUseCase
	Adjust       *inventory.AdjustUseCase
	Catalog      *inventory.CatalogUseCase

	// RequestTimeout plazo de cada petición a /api; 0 solo cancela al responder.
	RequestTimeout time.Duration
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", RequestContext(deps.RequestTimeout))

	// Sesión (público)
	sessionHandler := NewSessionHandler(deps.Sessions)
	api.Post("/session/login", sessionHandler.Login)

	// Rutas protegidas (requieren el token de la consola)
	protected := api.Group("/", SessionMiddleware(deps.Sessions))
	protected.Post("/session/logout", sessionHandler.Logout)
	protected.Get("/session/me", sessionHandler.Me)

	// Categorías
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.Tree)
	categories.Get("/view", categoryHandler.View)
	categories.Get("/options", categoryHandler.Options)
	categories.Post("/", categoryHandler.Create)
	categories.Post("/merge", categoryHandler.Merge)
	categories.Post("/rename", categoryHandler.Rename)
	categories.Delete("/", categoryHandler.Delete)

	// Bodegas e inventario por bodega
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC, deps.ItemsUC, deps.Transactions)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Get("/:id/items", warehouseHandler.Items)
	warehouses.Post("/:id/items", warehouseHandler.AddToStore)
	warehouses.Get("/:id/suggestions", warehouseHandler.Suggestions)
	warehouses.Get("/:id/monitoring", warehouseHandler.Monitoring)
	warehouses.Get("/:id/transactions", warehouseHandler.Transactions)

	// Catálogo del vendedor
	catalogHandler := NewCatalogHandler(deps.Catalog)
	warehouses.Get("/:id/catalog", catalogHandler.WarehouseCatalog)
	protected.Get("/products", catalogHandler.Products)

	// Movimientos de stock
	stockHandler := NewStockHandler(deps.StockIn, deps.StockOut, deps.Adjust)
	protected.Post("/stock-in/preview", stockHandler.PreviewStockIn)
	protected.Post("/stock-in/cost-sheet", stockHandler.CostSheet)
	protected.Post("/stock-in", stockHandler.StockIn)
	protected.Post("/stock-out", stockHandler.StockOut)
	protected.Post("/adjustments", stockHandler.Adjust)
}
