package main

import (
	"context"

	"github.com/asistify/asistencias-api/internal/application/auth"
	"github.com/asistify/asistencias-api/internal/infrastructure/postgres"
	httpRouter "github.com/asistify/asistencias-api/internal/interfaces/http"
	"github.com/asistify/asistencias-api/pkg/config"
	"github.com/asistify/asistencias-api/pkg/logger"
)

const serviceName = "auth"

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
	log.Info().Str("env", cfg.App.Env).Msg("iniciando servicio de autenticación")

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := httpRouter.NewApp(serviceName)
	httpRouter.AuthRouter(app, httpRouter.AuthRouterDeps{AuthUC: authUC})

	httpRouter.Run(app, cfg.HTTP.Addr(), log)
}
