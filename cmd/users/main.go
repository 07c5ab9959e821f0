package main

import (
	"context"
	"time"

	"github.com/asistify/asistencias-api/internal/application/usecase"
	"github.com/asistify/asistencias-api/internal/infrastructure/postgres"
	"github.com/asistify/asistencias-api/internal/infrastructure/remote"
	httpRouter "github.com/asistify/asistencias-api/internal/interfaces/http"
	"github.com/asistify/asistencias-api/pkg/config"
	"github.com/asistify/asistencias-api/pkg/logger"
)

const serviceName = "users"

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
	log.Info().
		Str("env", cfg.App.Env).
		Str("companies_url", cfg.Peers.CompaniesURL).
		Msg("iniciando servicio de usuarios")

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	verifier := remote.NewCompanyClient(cfg.Peers.CompaniesURL, time.Duration(cfg.Peers.TimeoutSeconds)*time.Second)
	userUC := usecase.NewUserUseCase(userRepo, verifier)

	app := httpRouter.NewApp(serviceName)
	httpRouter.UsersRouter(app, httpRouter.UsersRouterDeps{
		UserUC:    userUC,
		JWTSecret: cfg.JWT.Secret,
	})

	httpRouter.Run(app, cfg.HTTP.Addr(), log)
}
