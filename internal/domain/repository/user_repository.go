package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/asistify/asistencias-api/internal/domain/entity"
)

// UserFilter criterios de listado. CompanyID nil = sin filtro (solo admin);
// Search se compara sin acentos contra nombre, apellido y username.
type UserFilter struct {
	CompanyID *uuid.UUID
	Search    string
	Limit     int
	Offset    int
}

// UserRepository define el puerto de persistencia para User (DIP).
// GetBy* devuelven (nil, nil) cuando no hay fila; el alcance se decide arriba.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	List(ctx context.Context, f UserFilter) ([]*entity.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
