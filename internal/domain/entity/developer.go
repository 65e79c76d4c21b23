package entity

import "time"

// Developer representa un estudio o desarrollador de videojuegos.
type Developer struct {
	ID          string
	Name        string
	Country     *string
	FoundedYear *int
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
