package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// ContractTypeHandler catálogo de tipos de contrato (solo administradores).
type ContractTypeHandler struct {
	uc *usecase.ContractTypeUseCase
}

func NewContractTypeHandler(uc *usecase.ContractTypeUseCase) *ContractTypeHandler {
	return &ContractTypeHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tipo de contrato
// @Tags         contract-types
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateContractTypeRequest  true  "Descripción"
// @Success      201   {object}  dto.ContractTypeResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/contract-types [post]
func (h *ContractTypeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContractTypeRequest
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
// @Summary      Obtener tipo de contrato
// @Tags         contract-types
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del tipo"
// @Success      200  {object}  dto.ContractTypeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contract-types/{id} [get]
func (h *ContractTypeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), GetIdentity(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar tipos de contrato activos
// @Tags         contract-types
// @Security     Bearer
// @Produce      json
// @Param        skip   query  int  false  "Desplazamiento"  default(0)
// @Param        limit  query  int  false  "Límite"          default(10)
// @Success      200    {object}  dto.ContractTypeListResponse
// @Router       /api/contract-types [get]
func (h *ContractTypeHandler) List(c *fiber.Ctx) error {
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
// @Summary      Actualizar tipo de contrato
// @Tags         contract-types
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del tipo"
// @Param        body  body  dto.UpdateContractTypeRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ContractTypeResponse
// @Router       /api/contract-types/{id} [put]
func (h *ContractTypeHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateContractTypeRequest
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
// @Summary      Desactivar tipo de contrato
// @Tags         contract-types
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del tipo"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/contract-types/{id} [delete]
func (h *ContractTypeHandler) Disable(c *fiber.Ctx) error {
	if err := h.uc.Disable(c.UserContext(), GetIdentity(c), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "tipo de contrato desactivado"})
}
