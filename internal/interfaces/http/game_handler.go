package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// GameHandler catálogo de juegos: lectura pública, escritura de administrador.
type GameHandler struct {
	uc *usecase.GameUseCase
}

// NewGameHandler construye el handler.
func NewGameHandler(uc *usecase.GameUseCase) *GameHandler {
	return &GameHandler{uc: uc}
}

// Create godoc
// @Summary      Crear juego
// @Tags         games
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateGameRequest  true  "Datos del juego"
// @Success      201   {object}  dto.GameResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/games [post]
func (h *GameHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateGameRequest
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
// @Summary      Obtener juego
// @Tags         games
// @Produce      json
// @Param        id   path  string  true  "ID del juego"
// @Success      200  {object}  dto.GameResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/games/{id} [get]
func (h *GameHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar juegos activos
// @Tags         games
// @Produce      json
// @Param        skip   query  int  false  "Desplazamiento"  default(0)
// @Param        limit  query  int  false  "Límite"          default(10)
// @Success      200    {object}  dto.GameListResponse
// @Router       /api/games [get]
func (h *GameHandler) List(c *fiber.Ctx) error {
	page, err := pageQuery(c)
	if err != nil {
		return err
	}
	out, err := h.uc.List(c.UserContext(), page)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar juego
// @Tags         games
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del juego"
// @Param        body  body  dto.UpdateGameRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.GameResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/games/{id} [put]
func (h *GameHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateGameRequest
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
// @Summary      Desactivar juego
// @Tags         games
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del juego"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/games/{id} [delete]
func (h *GameHandler) Disable(c *fiber.Ctx) error {
	if err := h.uc.Disable(c.UserContext(), GetIdentity(c), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "juego desactivado"})
}
