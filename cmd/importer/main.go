package main

import (
	"time"

	"github.com/asistify/asistencias-api/internal/application/importer"
	"github.com/asistify/asistencias-api/internal/infrastructure/fileimport"
	"github.com/asistify/asistencias-api/internal/infrastructure/remote"
	httpRouter "github.com/asistify/asistencias-api/internal/interfaces/http"
	"github.com/asistify/asistencias-api/pkg/config"
	"github.com/asistify/asistencias-api/pkg/logger"
)

const serviceName = "importer"

// El importador no tiene base de datos propia: parsea archivos y reenvía el
// lote al servicio de asistencias con el bearer del llamador.
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
		Str("attendances_url", cfg.Peers.AttendancesURL).
		Int("max_rows", cfg.Import.MaxRows).
		Msg("iniciando servicio importador")

	submitter := remote.NewAttendanceClient(cfg.Peers.AttendancesURL, time.Duration(cfg.Peers.TimeoutSeconds)*time.Second)
	importUC := importer.NewImportUseCase(submitter, cfg.Import.MaxRows, fileimport.NewCSVParser())

	app := httpRouter.NewApp(serviceName)
	httpRouter.ImporterRouter(app, httpRouter.ImporterRouterDeps{
		ImportUC:  importUC,
		JWTSecret: cfg.JWT.Secret,
	})

	httpRouter.Run(app, cfg.HTTP.Addr(), log)
}
