package dto

import "time"

// AddWishlistRequest entrada para añadir un juego a la lista de deseos.
type AddWishlistRequest struct {
	GameID string `json:"game_id" validate:"required,objectid"`
}

// WishlistItemResponse salida de un elemento de la lista de deseos.
type WishlistItemResponse struct {
	ID        string    `json:"id"`
	GameID    string    `json:"game_id"`
	CreatedAt time.Time `json:"created_at"`
}

// WishlistResponse lista paginada de deseos del usuario.
type WishlistResponse struct {
	Items []WishlistItemResponse `json:"items"`
	PageResponse
}
