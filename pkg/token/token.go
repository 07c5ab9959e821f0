package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Payload identidad que viaja dentro del token. Incluye los campos suficientes
// para que el servicio receptor no tenga que consultar de vuelta al emisor.
type Payload struct {
	UserID    uuid.UUID
	Username  string
	FirstName string
	LastName  string
	Role      string // "admin" | "company_manager" | "attendance_officer"
	CompanyID *uuid.UUID
}

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// CompanyID se omite cuando el usuario no pertenece a ninguna empresa (admin global).
type Claims struct {
	jwt.RegisteredClaims
	Username  string     `json:"username"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Role      string     `json:"role"`
	CompanyID *uuid.UUID `json:"company_id,omitempty"`
}

// Issue genera un token JWT firmado (HS256) con el payload y vencimiento absoluto.
// Un ttl <= 0 produce un token ya vencido, que Parse rechaza.
func Issue(secret, issuer string, p Payload, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("token: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   p.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Username:  p.Username,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Role:      p.Role,
		CompanyID: p.CompanyID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma, estructura y vencimiento, y devuelve el payload.
// No hay parseo parcial: cualquier fallo (firma, exp, sub no-UUID) invalida todo.
func Parse(secret, tokenString string) (*Payload, error) {
	if secret == "" {
		return nil, fmt.Errorf("token: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("sub no es un UUID válido: %w", err)
	}
	if claims.Role == "" {
		return nil, fmt.Errorf("token sin rol")
	}
	return &Payload{
		UserID:    userID,
		Username:  claims.Username,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		Role:      claims.Role,
		CompanyID: claims.CompanyID,
	}, nil
}
