package inventory

import (
	"context"

	"github.com/ErnestoSESB/E-commerce/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza atomicidad para el libro de movimientos: el insert del
// movimiento y la escritura del stock commitean juntos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.InventoryMovementRepository,
		productRepo repository.ProductRepository,
		variationRepo repository.VariationRepository,
	) error) error
}
