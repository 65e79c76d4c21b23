// Package validate envuelve go-playground/validator con las reglas propias de la tienda.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	upperRe   = regexp.MustCompile(`[A-Z]`)
	digitRe   = regexp.MustCompile(`\d`)
	specialRe = regexp.MustCompile(`[@$!%*?&]`)
	profileRe = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚÜÑáéíóúüñ0-9' _-]+$`)
)

// Validator aplica las etiquetas `validate` de los DTO.
type Validator struct {
	validate *validator.Validate
}

// New registra las reglas:
//   - objectid: 24 caracteres hexadecimales en minúscula.
//   - password: al menos una mayúscula, un número y un carácter de @$!%*?&.
//   - profile:  nombre visible (letras, números, espacio, ' _ -).
func New() *Validator {
	v := validator.New()
	_ = v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		oid, err := primitive.ObjectIDFromHex(s)
		return err == nil && oid.Hex() == s
	})
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return upperRe.MatchString(s) && digitRe.MatchString(s) && specialRe.MatchString(s)
	})
	_ = v.RegisterValidation("profile", func(fl validator.FieldLevel) bool {
		return profileRe.MatchString(fl.Field().String())
	})
	v.RegisterTagNameFunc(jsonName)
	return &Validator{validate: v}
}

// Struct valida i; los errores de campo se devuelven como *Error.
func (v *Validator) Struct(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, e := range verrs {
			fields = append(fields, fmt.Sprintf("%s: %s", e.Field(), describe(e)))
		}
		return &Error{Fields: fields}
	}
	return err
}

// Error lista de campos inválidos en formato legible.
type Error struct {
	Fields []string
}

func (e *Error) Error() string {
	return "validación fallida: " + strings.Join(e.Fields, "; ")
}

func describe(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "es requerido"
	case "min":
		return "mínimo " + e.Param()
	case "max":
		return "máximo " + e.Param()
	case "gte":
		return "debe ser >= " + e.Param()
	case "lte":
		return "debe ser <= " + e.Param()
	case "email":
		return "email inválido"
	case "oneof":
		return "debe ser uno de: " + e.Param()
	case "datetime":
		return "formato esperado " + e.Param()
	case "objectid":
		return "identificador inválido"
	case "password":
		return "debe incluir una mayúscula, un número y un carácter especial (@$!%*?&)"
	case "profile":
		return "contiene caracteres no permitidos"
	default:
		return "no cumple la regla " + e.Tag()
	}
}

func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}
