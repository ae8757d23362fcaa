package repository

import (
	"github.com/ErnestoSESB/E-commerce/internal/domain/entity"
	"github.com/ErnestoSESB/E-commerce/internal/domain/listing"
)

// InventoryMovementRepository define el puerto para el libro de movimientos.
// Deliberadamente sin Update ni Delete: el libro es append-only.
type InventoryMovementRepository interface {
	Create(movement *entity.InventoryMovement) error
	GetByID(id string) (*entity.InventoryMovement, error)
	List(criteria *listing.MovementCriteria, limit, offset int) ([]*entity.InventoryMovement, error)
	// ListByTarget devuelve el historial completo de un objetivo (producto o
	// variación) en orden cronológico ascendente, para el replay de conciliación.
	ListByTarget(productID string, variationID *string) ([]*entity.InventoryMovement, error)
}
