package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ErnestoSESB/E-commerce/internal/domain"
	"github.com/ErnestoSESB/E-commerce/internal/domain/entity"
	"github.com/ErnestoSESB/E-commerce/internal/domain/repository"
)

// ApplyMovementUseCase aplica movimientos de inventario de forma transaccional
// (IN, OUT, ADJUST) con bloqueo de fila (SELECT FOR UPDATE) y Commit/Rollback.
// El contador de stock de un producto o variación se muta exclusivamente por aquí:
// el movimiento queda como registro permanente del libro de auditoría.
type ApplyMovementUseCase struct {
	txRunner      TxRunner
	productRepo   repository.ProductRepository
	variationRepo repository.VariationRepository
}

// NewApplyMovementUseCase construye el caso de uso.
func NewApplyMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	variationRepo repository.VariationRepository,
) *ApplyMovementUseCase {
	return &ApplyMovementUseCase{
		txRunner:      txRunner,
		productRepo:   productRepo,
		variationRepo: variationRepo,
	}
}

// MovementInput entrada para aplicar un movimiento de inventario.
// VariationID no vacío hace que el objetivo sea la variación (excluyente con el
// contador del producto padre).
type MovementInput struct {
	ProductID   string
	VariationID string
	Type        string // IN, OUT, ADJUST
	Quantity    int64  // >= 0
	Reason      string
	UserID      string
}

// Apply valida el movimiento, resuelve el objetivo y, dentro de una transacción,
// bloquea la fila, persiste primero el movimiento y luego el stock resultante.
// Devuelve el stock actualizado del objetivo.
//
// Reglas por tipo:
//   - IN:     stock + cantidad
//   - OUT:    max(0, stock - cantidad); el piso en cero es deliberado y el
//     movimiento registra la cantidad solicitada, no la recortada
//   - ADJUST: la cantidad reemplaza el stock (conciliación de conteo físico)
func (uc *ApplyMovementUseCase) Apply(ctx context.Context, input MovementInput) (int64, error) {
	if !entity.ValidMovementType(input.Type) {
		return 0, domain.ErrInvalidInput
	}
	if input.Quantity < 0 || input.ProductID == "" || strings.TrimSpace(input.Reason) == "" {
		return 0, domain.ErrInvalidInput
	}

	// Validar que el objetivo exista antes de abrir la transacción
	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, domain.ErrNotFound
	}
	if input.VariationID != "" {
		variation, err := uc.variationRepo.GetByID(input.VariationID)
		if err != nil {
			return 0, err
		}
		if variation == nil {
			return 0, domain.ErrNotFound
		}
		if variation.ProductID != product.ID {
			return 0, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	var newStock int64

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.InventoryMovementRepository,
		productRepo repository.ProductRepository,
		variationRepo repository.VariationRepository,
	) error {
		// Bloquear el contador objetivo; dos OUT concurrentes sobre el mismo
		// objetivo se serializan aquí.
		var current int64
		if input.VariationID != "" {
			variation, err := variationRepo.GetForUpdate(input.VariationID)
			if err != nil {
				return err
			}
			if variation == nil {
				return domain.ErrNotFound
			}
			current = variation.Stock
		} else {
			product, err := productRepo.GetForUpdate(input.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if product.Stock == nil {
				return domain.ErrStockUntracked
			}
			current = *product.Stock
		}

		// Primero la entrada del libro, luego el stock; misma transacción.
		mov := &entity.InventoryMovement{
			ID:        uuid.New().String(),
			ProductID: input.ProductID,
			Type:      input.Type,
			Quantity:  input.Quantity,
			Reason:    strings.TrimSpace(input.Reason),
			UserID:    input.UserID,
			CreatedAt: now,
		}
		if input.VariationID != "" {
			v := input.VariationID
			mov.VariationID = &v
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}

		newStock = applyType(current, input.Type, input.Quantity)
		if input.VariationID != "" {
			return variationRepo.UpdateStock(input.VariationID, newStock)
		}
		return productRepo.UpdateStock(input.ProductID, newStock)
	})
	if err != nil {
		return 0, err
	}
	return newStock, nil
}

// applyType calcula el stock resultante de aplicar un movimiento a un contador.
func applyType(current int64, movType string, quantity int64) int64 {
	switch movType {
	case entity.MovementTypeIN:
		return current + quantity
	case entity.MovementTypeOUT:
		if quantity > current {
			return 0
		}
		return current - quantity
	case entity.MovementTypeADJUST:
		return quantity
	}
	return current
}
