package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ErnestoSESB/E-commerce/internal/domain/entity"
	"github.com/ErnestoSESB/E-commerce/internal/domain/listing"
)

// PaidOrderStats métricas derivadas de las órdenes pagadas de un cliente.
type PaidOrderStats struct {
	Count          int64
	LifetimeValue  decimal.Decimal
	LastPurchaseAt *time.Time
}

// OrderRepository define el puerto de persistencia para órdenes.
// ownerID no vacío en List restringe a las órdenes de ese cliente (scoping de
// filas para callers no-staff), independiente de los criterios de filtro.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	List(criteria *listing.OrderCriteria, ownerID string, limit, offset int) ([]*entity.Order, error)
	UpdateStatus(id, status string) error
	SetPaymentStatus(id string, paid bool) error
	AddItem(item *entity.OrderItem) error
	RemoveItem(itemID int64) error
	// StatsByClient calcula conteo, valor de vida y última compra sobre órdenes pagadas.
	StatsByClient(clientID string) (*PaidOrderStats, error)
}
