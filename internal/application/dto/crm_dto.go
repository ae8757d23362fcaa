package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTagRequest entrada para crear una etiqueta CRM.
type CreateTagRequest struct {
	Name  string `json:"name" validate:"required,max=50"`
	Color string `json:"color"`
}

// TagResponse salida de una etiqueta.
type TagResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// UpdateProfileRequest entrada para editar un perfil CRM.
type UpdateProfileRequest struct {
	InternalNotes *string `json:"internal_notes"`
	TagIDs        []int64 `json:"tag_ids"`
}

// ProfileResponse perfil CRM con métricas derivadas de órdenes pagadas.
type ProfileResponse struct {
	ID             int64           `json:"id"`
	UserID         string          `json:"user_id"`
	Tags           []TagResponse   `json:"tags"`
	InternalNotes  string          `json:"internal_notes"`
	LifetimeValue  decimal.Decimal `json:"lifetime_value"`
	TotalOrders    int64           `json:"total_orders_count"`
	LastPurchaseAt *time.Time      `json:"last_purchase_date,omitempty"`
}

// CreateInteractionRequest entrada para registrar una interacción; el agente es el caller.
type CreateInteractionRequest struct {
	ProfileID   int64  `json:"profile_id" validate:"required"`
	Type        string `json:"type" validate:"required"`
	Subject     string `json:"subject" validate:"required,max=150"`
	Description string `json:"description"`
}

// InteractionResponse salida de una interacción.
type InteractionResponse struct {
	ID          int64     `json:"id"`
	ProfileID   int64     `json:"profile_id"`
	AgentID     string    `json:"agent_id"`
	Type        string    `json:"type"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
