package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/asistify/asistencias-api/internal/application/dto"
	"github.com/asistify/asistencias-api/internal/domain"
	"github.com/asistify/asistencias-api/internal/domain/entity"
	"github.com/asistify/asistencias-api/internal/domain/repository"
	"github.com/asistify/asistencias-api/pkg/token"
)

// JWTConfig configuración para emisión de tokens. Compartida con los demás
// servicios: construida una vez al arrancar, nunca mutada.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login, validación y usuario actual.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica username/password y emite un JWT con la identidad completa
// (el receptor no necesita volver a consultar al emisor).
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	ttl := time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute
	tok, err := token.Issue(uc.jwtCfg.Secret, uc.jwtCfg.Issuer, token.Payload{
		UserID:    user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      string(user.Role),
		CompanyID: user.CompanyID,
	}, ttl)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{AccessToken: tok, TokenType: "bearer"}, nil
}

// ValidateToken parsea el token y devuelve su identidad. No toca la base:
// la validez es puramente criptográfica y temporal.
func (uc *AuthUseCase) ValidateToken(tokenString string) (*dto.TokenValidation, error) {
	payload, err := token.Parse(uc.jwtCfg.Secret, tokenString)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	return &dto.TokenValidation{
		Valid:     true,
		UserID:    payload.UserID,
		Username:  payload.Username,
		Role:      payload.Role,
		CompanyID: payload.CompanyID,
	}, nil
}

// CurrentUser devuelve el usuario detrás de un token válido, leído de la base.
func (uc *AuthUseCase) CurrentUser(ctx context.Context, tokenString string) (*dto.UserResponse, error) {
	payload, err := token.Parse(uc.jwtCfg.Secret, tokenString)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	user, err := uc.userRepo.GetByUsername(ctx, payload.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return ToUserResponse(user), nil
}

// ToUserResponse mapea la entidad al DTO de salida (sin password).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		UID:          u.ID,
		Username:     u.Username,
		Email:        u.Email,
		Document:     u.Document,
		DocumentType: u.DocumentType,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		BirthDate:    u.BirthDate,
		PhoneNumber:  u.PhoneNumber,
		Role:         string(u.Role),
		CompanyID:    u.CompanyID,
		CreatedBy:    u.CreatedBy,
		UpdatedBy:    u.UpdatedBy,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
