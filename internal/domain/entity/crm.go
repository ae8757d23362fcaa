package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CRMTag etiqueta de segmentación de clientes.
type CRMTag struct {
	ID    int64
	Name  string
	Color string // hex, ej. "#FFFFFF"
}

// CustomerProfile perfil CRM de un cliente con métricas derivadas de sus órdenes pagadas.
type CustomerProfile struct {
	ID             int64
	UserID         string
	Tags           []CRMTag
	InternalNotes  string // anotaciones internas, no visibles para el cliente
	LifetimeValue  decimal.Decimal
	TotalOrders    int64
	LastPurchaseAt *time.Time
}

// Tipos de interacción CRM.
const (
	InteractionCall     = "call"
	InteractionEmail    = "email"
	InteractionWhatsApp = "whatsapp"
	InteractionSupport  = "support"
	InteractionMeeting  = "meeting"
	InteractionOther    = "other"
)

// ValidInteractionType indica si el tipo es uno de los conocidos.
func ValidInteractionType(t string) bool {
	switch t {
	case InteractionCall, InteractionEmail, InteractionWhatsApp, InteractionSupport, InteractionMeeting, InteractionOther:
		return true
	}
	return false
}

// CRMInteraction registro de contacto con un cliente (quién lo atendió y por qué canal).
type CRMInteraction struct {
	ID          int64
	ProfileID   int64
	AgentID     string
	Type        string
	Subject     string
	Description string
	CreatedAt   time.Time
}
