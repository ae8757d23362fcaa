package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden.
const (
	OrderStatusPending   = "pending"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusDelivered = "delivered"
	OrderStatusCanceled  = "canceled"
)

// ValidOrderStatus indica si el estado es uno de los conocidos.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusReady, OrderStatusDelivered, OrderStatusCanceled:
		return true
	}
	return false
}

// OrderItem línea de una orden. UnitPrice es el precio vigente del producto al
// momento de la consulta (el total es un valor derivado, no se almacena).
type OrderItem struct {
	ID        int64
	OrderID   string
	ProductID string
	Quantity  int64
	UnitPrice decimal.Decimal
}

// Order agrupa líneas de pedido de un cliente.
type Order struct {
	ID            string
	ClientID      string
	Status        string
	PaymentStatus bool
	Items         []OrderItem
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Total calcula cantidad × precio unitario de cada línea al momento de la consulta.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity)))
	}
	return total
}
