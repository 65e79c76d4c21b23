package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// DeveloperHandler endpoints de desarrolladores.
type DeveloperHandler struct {
	uc *usecase.DeveloperUseCase
}

// NewDeveloperHandler construye el handler.
func NewDeveloperHandler(uc *usecase.DeveloperUseCase) *DeveloperHandler {
	return &DeveloperHandler{uc: uc}
}

// Create godoc
// @Summary      Crear desarrollador
// @Tags         developers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDeveloperRequest  true  "Datos del desarrollador"
// @Success      201   {object}  dto.DeveloperResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/developers [post]
func (h *DeveloperHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDeveloperRequest
	if err := bindJSON(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), GetIdentity(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener desarrollador
// @Tags         developers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del desarrollador"
// @Success      200  {object}  dto.DeveloperResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/developers/{id} [get]
func (h *DeveloperHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), GetIdentity(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar desarrolladores activos
// @Tags         developers
// @Security     Bearer
// @Produce      json
// @Param        skip   query  int  false  "Desplazamiento"  default(0)
// @Param        limit  query  int  false  "Límite"          default(10)
// @Success      200    {object}  dto.DeveloperListResponse
// @Router       /api/developers [get]
func (h *DeveloperHandler) List(c *fiber.Ctx) error {
	page, err := pageQuery(c)
	if err != nil {
		return err
	}
	out, err := h.uc.List(c.UserContext(), GetIdentity(c), page)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar desarrollador
// @Tags         developers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del desarrollador"
// @Param        body  body  dto.UpdateDeveloperRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.DeveloperResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/developers/{id} [put]
func (h *DeveloperHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDeveloperRequest
	if err := bindJSON(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), GetIdentity(c), c.Params("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Disable godoc
// @Summary      Desactivar desarrollador
// @Tags         developers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del desarrollador"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/developers/{id} [delete]
func (h *DeveloperHandler) Disable(c *fiber.Ctx) error {
	if err := h.uc.Disable(c.UserContext(), GetIdentity(c), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "desarrollador desactivado"})
}
