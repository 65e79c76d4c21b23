package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// NewID genera un identificador opaco de 24 caracteres hexadecimales (formato ObjectID).
// Todos los adaptadores de almacenamiento usan el mismo formato.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

// IsValidID reporta si s cumple el formato de identificador del almacenamiento:
// 24 caracteres hexadecimales en minúscula, la forma que emite NewID.
// Las referencias se comparan como texto, así que "6ACF..." y "6acf..." no pueden
// convivir. Ningún identificador que falle esta verificación debe llegar a una consulta.
func IsValidID(s string) bool {
	oid, err := primitive.ObjectIDFromHex(s)
	return err == nil && oid.Hex() == s
}

// CheckID devuelve *MalformedIDError si el identificador no tiene el formato esperado.
func CheckID(field, value string) error {
	if !IsValidID(value) {
		return &MalformedIDError{Field: field, Value: value}
	}
	return nil
}
