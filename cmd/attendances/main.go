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

const serviceName = "attendances"

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
		Msg("iniciando servicio de asistencias")

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	attendanceRepo := postgres.NewAttendanceRepository(pool)
	verifier := remote.NewCompanyClient(cfg.Peers.CompaniesURL, time.Duration(cfg.Peers.TimeoutSeconds)*time.Second)
	attendanceUC := usecase.NewAttendanceUseCase(attendanceRepo, verifier)

	app := httpRouter.NewApp(serviceName)
	httpRouter.AttendancesRouter(app, httpRouter.AttendancesRouterDeps{
		AttendanceUC: attendanceUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	httpRouter.Run(app, cfg.HTTP.Addr(), log)
}
