package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem línea del carrito. UnitPrice se resuelve en la consulta, no se almacena.
type CartItem struct {
	ID        string
	CartID    string
	ProductID string
	Quantity  int64
	UnitPrice decimal.Decimal
}

// Cart carrito de compras; uno por usuario.
type Cart struct {
	ID        string
	UserID    string
	Items     []CartItem
	CreatedAt time.Time
}

// Total calcula cantidad × precio unitario de cada línea.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity)))
	}
	return total
}
