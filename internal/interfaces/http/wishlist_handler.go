package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// WishlistHandler lista de deseos del usuario autenticado.
type WishlistHandler struct {
	uc *usecase.WishlistUseCase
}

func NewWishlistHandler(uc *usecase.WishlistUseCase) *WishlistHandler {
	return &WishlistHandler{uc: uc}
}

// Add godoc
// @Summary      Agregar juego a la lista de deseos
// @Tags         wishlist
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddWishlistRequest  true  "game_id"
// @Success      201   {object}  dto.WishlistItemResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/wishlist [post]
func (h *WishlistHandler) Add(c *fiber.Ctx) error {
	var in dto.AddWishlistRequest
	if err := bindJSON(c, &in); err != nil {
		return err
	}
	out, err := h.uc.Add(c.UserContext(), GetIdentity(c), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Mi lista de deseos
// @Tags         wishlist
// @Security     Bearer
// @Produce      json
// @Param        skip   query  int  false  "Desplazamiento"  default(0)
// @Param        limit  query  int  false  "Límite"          default(10)
// @Success      200    {object}  dto.WishlistResponse
// @Router       /api/wishlist [get]
func (h *WishlistHandler) List(c *fiber.Ctx) error {
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

// Remove godoc
// @Summary      Quitar juego de la lista de deseos
// @Tags         wishlist
// @Security     Bearer
// @Produce      json
// @Param        game_id  path  string  true  "ID del juego"
// @Success      200      {object}  dto.MessageResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Router       /api/wishlist/{game_id} [delete]
func (h *WishlistHandler) Remove(c *fiber.Ctx) error {
	if err := h.uc.Remove(c.UserContext(), GetIdentity(c), c.Params("game_id")); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "juego quitado de la lista de deseos"})
}
