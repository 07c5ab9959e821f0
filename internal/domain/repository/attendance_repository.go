package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/asistify/asistencias-api/internal/domain/entity"
)

// AttendanceFilter criterios de listado de asistencias.
type AttendanceFilter struct {
	CompanyID *uuid.UUID
	Search    string
	Limit     int
	Offset    int
}

// AttendanceRepository define el puerto de persistencia para Attendance (DIP).
type AttendanceRepository interface {
	Create(ctx context.Context, attendance *entity.Attendance) error
	// CreateBatch inserta el lote completo o nada (importación masiva).
	CreateBatch(ctx context.Context, attendances []*entity.Attendance) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Attendance, error)
	Update(ctx context.Context, attendance *entity.Attendance) error
	List(ctx context.Context, f AttendanceFilter) ([]*entity.Attendance, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
