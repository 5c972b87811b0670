package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/jhoicas/Inventario-console/docs"
	"github.com/jhoicas/Inventario-console/internal/application/catalog"
	"github.com/jhoicas/Inventario-console/internal/application/inventory"
	"github.com/jhoicas/Inventario-console/internal/application/session"
	"github.com/jhoicas/Inventario-console/internal/application/usecase"
	infrapdf "github.com/jhoicas/Inventario-console/internal/infrastructure/pdf"
	"github.com/jhoicas/Inventario-console/internal/infrastructure/sellerapi"
	httpRouter "github.com/jhoicas/Inventario-console/internal/interfaces/http"
	"github.com/jhoicas/Inventario-console/pkg/config"
	"github.com/jhoicas/Inventario-console/pkg/logger"
)

// @title                       Consola de vendedor
// @version                     1.0
// @description                 BFF del panel del vendedor: categorías, bodegas y movimientos de stock sobre la API remota.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("upstream", cfg.Upstream.BaseURL).
		Msg("iniciando consola")

	client := sellerapi.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, log.Component("sellerapi"))
	sellerRepo := sellerapi.NewSellerRepository(client)
	categoryRepo := sellerapi.NewCategoryRepository(client)
	warehouseRepo := sellerapi.NewWarehouseRepository(client)
	productRepo := sellerapi.NewProductRepository(client)
	inventoryRepo := sellerapi.NewInventoryRepository(client)
	txRepo := sellerapi.NewStockTransactionRepository(client)

	sessions := session.NewManager(sellerRepo, session.Config{
		Secret: cfg.JWT.Secret,
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.Expiration) * time.Minute,
	}, log.Component("session"))

	lookup := inventory.NewProductLookup(productRepo, cfg.Upstream.MaxConcurrency, log.Component("products"))
	costSheets := infrapdf.NewCostSheetGenerator()
	invLog := log.Component("inventory")

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: cfg.Docs.FilePath,
		Path:     "docs",
		Title:    "Consola de vendedor",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "sessions": sessions.Active()})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Sessions:     sessions,
		CategoryUC:   catalog.NewCategoryUseCase(categoryRepo, log.Component("categories")),
		WarehouseUC:  usecase.NewWarehouseUseCase(warehouseRepo, log.Component("warehouses")),
		ItemsUC:      inventory.NewItemsUseCase(inventoryRepo, lookup, invLog),
		Transactions: inventory.NewTransactionsUseCase(txRepo, invLog),
		StockIn:      inventory.NewStockInUseCase(txRepo, lookup, costSheets, invLog),
		StockOut:     inventory.NewStockOutUseCase(inventoryRepo, txRepo, invLog),
		Adjust:       inventory.NewAdjustUseCase(inventoryRepo, invLog),
		Catalog:      inventory.NewCatalogUseCase(productRepo, inventoryRepo, invLog),

		RequestTimeout: cfg.HTTP.RequestTimeout,
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

	log.Info().Msg("consola detenida")
}
