package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddCartItemRequest entrada para añadir un producto al carrito.
type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"min=1"`
}

// UpdateCartItemRequest cambio de cantidad de una línea.
type UpdateCartItemRequest struct {
	Quantity int64 `json:"quantity" validate:"min=1"`
}

// CartItemResponse línea del carrito con precio vigente.
type CartItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// CartResponse carrito del usuario; Total es derivado.
type CartResponse struct {
	ID        string             `json:"id"`
	UserID    string             `json:"user_id"`
	Items     []CartItemResponse `json:"items"`
	Total     decimal.Decimal    `json:"total"`
	CreatedAt time.Time          `json:"created_at"`
}
