package domain

// Identity es la identidad ya verificada de quien origina una petición.
// La construye la capa HTTP a partir del token; los casos de uso solo la consumen.
type Identity struct {
	UserID string
	Admin  bool
	Active bool
}

// RequireActive exige un usuario autenticado y activo.
func (i Identity) RequireActive() error {
	if i.UserID == "" || !i.Active {
		return ErrUnauthorized
	}
	return nil
}

// RequireAdmin exige un administrador activo.
func (i Identity) RequireAdmin() error {
	if err := i.RequireActive(); err != nil {
		return err
	}
	if !i.Admin {
		return ErrForbidden
	}
	return nil
}

// CanAccess indica si la identidad puede ver recursos del usuario ownerID.
func (i Identity) CanAccess(ownerID string) bool {
	return i.Active && (i.Admin || i.UserID == ownerID)
}
