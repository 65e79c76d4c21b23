package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/pkg/validate"
)

var requestValidator = validate.New()

// bindJSON decodifica el cuerpo en out y ejecuta sus reglas `validate`.
func bindJSON(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	return requestValidator.Struct(out)
}

// pageQuery lee skip y limit; la normalización la hace el caso de uso.
func pageQuery(c *fiber.Ctx) (dto.PageRequest, error) {
	var p dto.PageRequest
	if err := c.QueryParser(&p); err != nil {
		return p, fmt.Errorf("%w: skip y limit deben ser enteros", errInvalidBody)
	}
	return p, nil
}
