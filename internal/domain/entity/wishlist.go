package entity

import "time"

// WishlistItem juego deseado por un usuario. Un par (UserID, GameID) aparece una sola vez.
type WishlistItem struct {
	ID        string
	UserID    string
	GameID    string
	CreatedAt time.Time
}
