package repository

// Page ventana skip/limit ya normalizada por la capa de aplicación.
type Page struct {
	Skip  int
	Limit int
}
