package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest línea de una orden nueva.
type OrderItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"min=1"`
}

// CreateOrderRequest entrada para crear una orden. El cliente se toma del caller.
type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items" validate:"required,min=1"`
}

// UpdateOrderStatusRequest cambio de estado (solo staff).
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderItemResponse línea de orden con el precio vigente.
type OrderItemResponse struct {
	ID        int64           `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderResponse salida de una orden; Total es derivado (cantidad × precio al consultar).
type OrderResponse struct {
	ID            string              `json:"id"`
	ClientID      string              `json:"client_id"`
	Status        string              `json:"status"`
	PaymentStatus bool                `json:"payment_status"`
	Items         []OrderItemResponse `json:"items"`
	Total         decimal.Decimal     `json:"total"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// OrderListResponse lista paginada de órdenes.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
