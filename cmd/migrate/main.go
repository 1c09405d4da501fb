// Comando de migración: prepara el almacén una sola vez en el despliegue.
// Con driver sheet crea el libro XLSX con sus hojas y encabezados; con
// driver postgres crea las tablas. Idempotente en ambos casos: el esquema
// nunca se toca como efecto colateral del arranque del servidor.
package main

import (
	"context"

	"github.com/jhoicas/khata-api/internal/infrastructure/postgres"
	"github.com/jhoicas/khata-api/internal/infrastructure/sheetdb"
	"github.com/jhoicas/khata-api/pkg/config"
	"github.com/jhoicas/khata-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(cfg.App.Env, "info")

	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		ctx := context.Background()
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("crear esquema")
		}
		log.Info().Msg("esquema PostgreSQL listo")
	default:
		store := sheetdb.New(sheetdb.Config{
			Path:             cfg.Storage.LedgerFile,
			CustomerSheet:    cfg.Storage.CustomerSheet,
			TransactionSheet: cfg.Storage.TransactionSheet,
		})
		if err := store.Bootstrap(); err != nil {
			log.Fatal().Err(err).Msg("preparar libro XLSX")
		}
		log.Info().Str("archivo", cfg.Storage.LedgerFile).Msg("libro XLSX listo")
	}
}
