package main

import (
	"context"
	"flag"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/asistify/asistencias-api/internal/domain/entity"
	"github.com/asistify/asistencias-api/internal/infrastructure/postgres"
	"github.com/asistify/asistencias-api/pkg/config"
	"github.com/asistify/asistencias-api/pkg/logger"
)

// createadmin inserta un administrador global en la base de usuarios.
// Se usa una sola vez para arrancar el sistema: el resto de usuarios se crea
// por la API con el token del admin.
func main() {
	username := flag.String("username", "", "username del admin (requerido)")
	password := flag.String("password", "", "password del admin (requerido)")
	email := flag.String("email", "", "email del admin (requerido)")
	document := flag.String("document", "", "documento de identidad (requerido)")
	documentType := flag.String("document-type", entity.DocumentCC, "tipo de documento: CC, CE, TI o PP")
	firstName := flag.String("first-name", "", "nombre (requerido)")
	lastName := flag.String("last-name", "", "apellido (requerido)")
	birthDate := flag.String("birth-date", "", "fecha de nacimiento YYYY-MM-DD (requerido)")
	phoneNumber := flag.String("phone", "", "teléfono (requerido)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: "createadmin",
	})

	required := map[string]string{
		"username":   *username,
		"password":   *password,
		"email":      *email,
		"document":   *document,
		"first-name": *firstName,
		"last-name":  *lastName,
		"birth-date": *birthDate,
		"phone":      *phoneNumber,
	}
	for name, value := range required {
		if value == "" {
			log.Fatal().Str("flag", name).Msg("flag requerido")
		}
	}

	born, err := time.Parse("2006-01-02", *birthDate)
	if err != nil {
		log.Fatal().Err(err).Msg("birth-date debe ser YYYY-MM-DD")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	repo := postgres.NewUserRepository(pool)
	if existing, err := repo.GetByUsername(ctx, *username); err != nil {
		log.Fatal().Err(err).Msg("consultar username")
	} else if existing != nil {
		log.Fatal().Str("username", *username).Msg("el username ya existe")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear password")
	}

	now := time.Now()
	admin := &entity.User{
		ID:           uuid.New(),
		Username:     *username,
		PasswordHash: string(hash),
		Email:        *email,
		Document:     *document,
		DocumentType: *documentType,
		FirstName:    *firstName,
		LastName:     *lastName,
		BirthDate:    born,
		PhoneNumber:  *phoneNumber,
		Role:         entity.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repo.Create(ctx, admin); err != nil {
		log.Fatal().Err(err).Msg("insertar admin")
	}

	log.Info().
		Str("username", admin.Username).
		Str("uid", admin.ID.String()).
		Msg("administrador creado")
}
