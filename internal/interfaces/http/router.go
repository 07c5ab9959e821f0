package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/asistify/asistencias-api/internal/application/auth"
	"github.com/asistify/asistencias-api/internal/application/importer"
	"github.com/asistify/asistencias-api/internal/application/usecase"
	"github.com/asistify/asistencias-api/internal/domain/entity"
)

// AuthRouterDeps dependencias del servicio de auth.
type AuthRouterDeps struct {
	AuthUC *auth.AuthUseCase
}

// AuthRouter registra las rutas del servicio de auth. POST /token es la única
// ruta sin bearer; el resto valida el token dentro del handler.
func AuthRouter(app *fiber.App, deps AuthRouterDeps) {
	h := NewAuthHandler(deps.AuthUC)
	app.Post("/token", h.Token)
	app.Get("/validate-token", h.ValidateToken)
	app.Get("/users/me", h.Me)
}

// UsersRouterDeps dependencias del servicio de usuarios.
type UsersRouterDeps struct {
	UserUC    *usecase.UserUseCase
	JWTSecret string
}

// UsersRouter registra las rutas del servicio de usuarios. Toda la gestión de
// usuarios exige al menos company_manager; el alcance fino (qué empresa, qué
// roles puede asignar) lo decide el caso de uso.
func UsersRouter(app *fiber.App, deps UsersRouterDeps) {
	h := NewUserHandler(deps.UserUC)
	users := app.Group("/users", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleCompanyManager))
	users.Get("/", h.List)
	users.Post("/", h.Create)
	users.Get("/by_username/:username", h.GetByUsername)
	users.Get("/:id", h.GetByID)
	users.Put("/:id", h.Update)
	users.Delete("/:id", h.Delete)
}

// CompaniesRouterDeps dependencias del servicio de empresas.
type CompaniesRouterDeps struct {
	CompanyUC *usecase.CompanyUseCase
	JWTSecret string
}

// CompaniesRouter registra las rutas del servicio de empresas. Crear, listar y
// borrar son de admin; /me está abierta a cualquier rol autenticado porque es
// la vía de verificación de los servicios hermanos para roles sin lectura por id.
func CompaniesRouter(app *fiber.App, deps CompaniesRouterDeps) {
	h := NewCompanyHandler(deps.CompanyUC)
	companies := app.Group("/companies", AuthMiddleware(deps.JWTSecret))

	companies.Post("/", RequireRole(entity.RoleAdmin), h.Create)
	companies.Get("/", RequireRole(entity.RoleAdmin), h.List)
	companies.Get("/me", RequireRole(entity.RoleAttendanceOfficer), h.Mine)
	companies.Get("/by_nit/:nit", RequireRole(entity.RoleCompanyManager), h.GetByNIT)
	// GET va por id (verificación entre servicios); PUT y DELETE van por NIT,
	// la llave natural con la que operan los administradores.
	companies.Get("/:id", RequireRole(entity.RoleCompanyManager), h.GetByID)
	companies.Put("/:nit", RequireRole(entity.RoleCompanyManager), h.UpdateByNIT)
	companies.Delete("/:nit", RequireRole(entity.RoleAdmin), h.DeleteByNIT)
}

// AttendancesRouterDeps dependencias del servicio de asistencias.
type AttendancesRouterDeps struct {
	AttendanceUC *usecase.AttendanceUseCase
	JWTSecret    string
}

// AttendancesRouter registra las rutas del servicio de asistencias. Registrar
// asistencias es el rol más bajo de la jerarquía; el scoping por empresa lo
// impone el caso de uso.
func AttendancesRouter(app *fiber.App, deps AttendancesRouterDeps) {
	h := NewAttendanceHandler(deps.AttendanceUC)
	attendances := app.Group("/attendances", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAttendanceOfficer))
	attendances.Get("/", h.List)
	attendances.Post("/", h.Create)
	attendances.Post("/multiple", h.CreateMultiple)
	attendances.Get("/:id", h.GetByID)
	attendances.Put("/:id", h.Update)
	attendances.Delete("/:id", h.Delete)
}

// ImporterRouterDeps dependencias del servicio importador.
type ImporterRouterDeps struct {
	ImportUC  *importer.ImportUseCase
	JWTSecret string
}

// ImporterRouter registra las rutas del importador. No persiste nada local:
// reenvía el lote al servicio de asistencias con el bearer del llamador.
func ImporterRouter(app *fiber.App, deps ImporterRouterDeps) {
	h := NewImportHandler(deps.ImportUC)
	imports := app.Group("/attendances", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAttendanceOfficer))
	imports.Post("/import", h.FromFile)
}
