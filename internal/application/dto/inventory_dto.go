package dto

import "time"

// ApplyMovementRequest body para POST /api/inventory/movements.
type ApplyMovementRequest struct {
	ProductID   string `json:"product_id" validate:"required"`
	VariationID string `json:"variation_id,omitempty"`
	Type        string `json:"type" validate:"required,oneof=IN OUT ADJUST"`
	Quantity    int64  `json:"quantity" validate:"min=0"`
	Reason      string `json:"reason" validate:"required,max=200"`
}

// ApplyMovementResponse stock resultante tras aplicar el movimiento.
type ApplyMovementResponse struct {
	ProductID   string `json:"product_id"`
	VariationID string `json:"variation_id,omitempty"`
	Stock       int64  `json:"stock"`
}

// MovementResponse entrada del libro de auditoría (solo lectura).
type MovementResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	VariationID *string   `json:"variation_id,omitempty"`
	Type        string    `json:"type"`
	Quantity    int64     `json:"quantity"`
	Reason      string    `json:"reason"`
	UserID      string    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ReconcileRequest body para POST /api/inventory/reconcile.
type ReconcileRequest struct {
	ProductID   string `json:"product_id" validate:"required"`
	VariationID string `json:"variation_id,omitempty"`
	Repair      bool   `json:"repair"`
}
