// Aplica las migraciones embebidas sobre la base configurada. Se ejecuta
// aparte del servidor para controlar cuándo cambia el esquema en producción.
package main

import (
	"context"

	"github.com/jhoicas/pdv-admin-api/internal/infrastructure/postgres"
	"github.com/jhoicas/pdv-admin-api/pkg/config"
	"github.com/jhoicas/pdv-admin-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	log.Info().Msg("aplicando migraciones")
	if err := postgres.Migrate(pool); err != nil {
		log.Fatal().Err(err).Msg("migración fallida")
	}
	log.Info().Msg("migraciones aplicadas")
}
