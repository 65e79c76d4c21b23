package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptData datos ya resueltos que se imprimen en el comprobante de una compra.
type ReceiptData struct {
	PurchaseID  string
	PurchasedAt time.Time
	Price       decimal.Decimal
	Active      bool
	GameTitle   string
	GameStatus  string
	BuyerName   string
	BuyerEmail  string
}

// ReceiptGenerator define el puerto de salida para generar el comprobante de compra.
// Cualquier adaptador (Maroto, HTML, mock) debe implementar esta interfaz.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, data ReceiptData) ([]byte, error)
}
