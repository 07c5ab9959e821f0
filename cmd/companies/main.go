package main

import (
	"context"

	"github.com/asistify/asistencias-api/internal/application/usecase"
	"github.com/asistify/asistencias-api/internal/infrastructure/postgres"
	httpRouter "github.com/asistify/asistencias-api/internal/interfaces/http"
	"github.com/asistify/asistencias-api/pkg/config"
	"github.com/asistify/asistencias-api/pkg/logger"
)

const serviceName = "companies"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: serviceName,
	})
	log.Info().Str("env", cfg.App.Env).Msg("iniciando servicio de empresas")

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	companyUC := usecase.NewCompanyUseCase(companyRepo)

	app := httpRouter.NewApp(serviceName)
	httpRouter.CompaniesRouter(app, httpRouter.CompaniesRouterDeps{
		CompanyUC: companyUC,
		JWTSecret: cfg.JWT.Secret,
	})

	httpRouter.Run(app, cfg.HTTP.Addr(), log)
}
