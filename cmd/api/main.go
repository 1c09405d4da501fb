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

	appledger "github.com/jhoicas/khata-api/internal/application/ledger"
	"github.com/jhoicas/khata-api/internal/domain/repository"
	infrapdf "github.com/jhoicas/khata-api/internal/infrastructure/pdf"
	"github.com/jhoicas/khata-api/internal/infrastructure/postgres"
	"github.com/jhoicas/khata-api/internal/infrastructure/sheetdb"
	httpRouter "github.com/jhoicas/khata-api/internal/interfaces/http"
	"github.com/jhoicas/khata-api/pkg/config"
	"github.com/jhoicas/khata-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(cfg.App.Env, "info")
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	// Ledger Store: libro XLSX por defecto, PostgreSQL como ruta de
	// migración. Un almacén inaccesible bloquea el arranque (error de
	// configuración, no de operación).
	var customers repository.CustomerRepository
	var transactions repository.TransactionRepository
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		pool, err := postgres.NewPool(context.Background(), cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		customers = postgres.NewCustomerRepository(pool)
		transactions = postgres.NewTransactionRepository(pool)
	default:
		store := sheetdb.New(sheetdb.Config{
			Path:             cfg.Storage.LedgerFile,
			CustomerSheet:    cfg.Storage.CustomerSheet,
			TransactionSheet: cfg.Storage.TransactionSheet,
		})
		if err := store.Ping(); err != nil {
			log.Fatal().Err(err).Msg("libro XLSX inaccesible; ejecute cmd/migrate para crearlo")
		}
		customers = sheetdb.NewCustomerRepository(store)
		transactions = sheetdb.NewTransactionRepository(store)
	}

	overdueAfter := time.Duration(cfg.Storage.OverdueDays) * 24 * time.Hour
	customerUC := appledger.NewCustomerUseCase(customers, transactions, overdueAfter)
	transactionUC := appledger.NewTransactionUseCase(customers, transactions)
	statementUC := appledger.NewStatementUseCase(customers, transactions, infrapdf.NewMarotoStatementGenerator())

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
		Title:    "Khata API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC:    customerUC,
		TransactionUC: transactionUC,
		StatementUC:   statementUC,
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
