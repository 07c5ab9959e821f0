package dto

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/asistify/asistencias-api/internal/domain"
)

// validate instancia compartida; es segura para uso concurrente.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate aplica las reglas `validate` del struct y traduce el primer fallo
// a un domain.ValidationError con el campo en snake_case.
func Validate(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &domain.ValidationError{
			Field:  toSnake(fe.Field()),
			Reason: reasonFor(fe),
		}
	}
	return domain.ErrValidation
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es requerido"
	case "email":
		return "no es un email válido"
	case "min":
		return "es demasiado corto (mínimo " + fe.Param() + ")"
	case "max":
		return "es demasiado largo (máximo " + fe.Param() + ")"
	case "oneof":
		return "debe ser uno de: " + fe.Param()
	case "eqfield":
		return "las contraseñas no coinciden"
	default:
		return "no cumple la regla " + fe.Tag()
	}
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && s[i-1] >= 'a' && s[i-1] <= 'z' {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
