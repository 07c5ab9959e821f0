package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/asistify/asistencias-api/internal/application/dto"
	"github.com/asistify/asistencias-api/internal/domain/entity"
	"github.com/asistify/asistencias-api/pkg/token"
)

// LocalPrincipal key del Principal en c.Locals.
const LocalPrincipal = "principal"

// AuthMiddleware valida el Bearer Token JWT y deja el Principal completo en
// c.Locals, incluido el token crudo para reenviarlo en verificaciones remotas.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, errResp := bearerToken(c)
		if errResp != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(errResp)
		}
		payload, err := token.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "INVALID_TOKEN", Message: "token inválido o expirado", Detail: "token inválido o expirado",
			})
		}
		c.Locals(LocalPrincipal, entity.Principal{
			ID:        payload.UserID,
			Username:  payload.Username,
			FirstName: payload.FirstName,
			LastName:  payload.LastName,
			Role:      entity.Role(payload.Role),
			CompanyID: payload.CompanyID,
			Token:     tokenString,
		})
		return c.Next()
	}
}

// RequireRole corta la petición si el principal no satisface el rol requerido.
// Se monta después de AuthMiddleware.
func RequireRole(required entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, ok := principal(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "MISSING_TOKEN", Message: "no autenticado", Detail: "no autenticado",
			})
		}
		if !p.Role.Satisfies(required) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code: "FORBIDDEN", Message: "rol insuficiente", Detail: "rol insuficiente",
			})
		}
		return c.Next()
	}
}

// GetPrincipal devuelve el Principal del contexto (después del middleware de auth).
func GetPrincipal(c *fiber.Ctx) entity.Principal {
	p, _ := principal(c)
	return p
}

func principal(c *fiber.Ctx) (entity.Principal, bool) {
	p, ok := c.Locals(LocalPrincipal).(entity.Principal)
	return p, ok
}

// bearerToken extrae el token del header Authorization.
func bearerToken(c *fiber.Ctx) (string, *dto.ErrorResponse) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", &dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido", Detail: "Authorization header requerido"}
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", &dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>", Detail: "formato: Bearer <token>"}
	}
	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		return "", &dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío", Detail: "token vacío"}
	}
	return tokenString, nil
}
