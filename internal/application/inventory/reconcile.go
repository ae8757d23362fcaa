package inventory

import (
	"context"
	"errors"

	"github.com/ErnestoSESB/E-commerce/internal/domain"
	"github.com/ErnestoSESB/E-commerce/internal/domain/repository"
	"github.com/ErnestoSESB/E-commerce/pkg/logger"
)

// ReconcileUseCase detecta y repara divergencias entre el libro de movimientos y
// el stock vivo de un objetivo. La divergencia es una falla de consistencia: se
// reporta como ConsistencyError y se loguea en nivel error, nunca se traga.
type ReconcileUseCase struct {
	txRunner TxRunner
	log      *logger.Logger
}

// NewReconcileUseCase construye el caso de uso.
func NewReconcileUseCase(txRunner TxRunner, log *logger.Logger) *ReconcileUseCase {
	return &ReconcileUseCase{txRunner: txRunner, log: log}
}

// ReconcileReport resultado de una conciliación.
type ReconcileReport struct {
	ProductID   string `json:"product_id"`
	VariationID string `json:"variation_id,omitempty"`
	LedgerStock int64  `json:"ledger_stock"`
	LiveStock   int64  `json:"live_stock"`
	Consistent  bool   `json:"consistent"`
	Repaired    bool   `json:"repaired"`
}

// Reconcile recalcula el stock del objetivo haciendo replay del historial completo
// de movimientos (desde cero; cualquier ADJUST restablece la base) y lo compara con
// la fila viva, todo bajo el mismo bloqueo que usa el libro. Si divergen y repair es
// false devuelve ConsistencyError; con repair true escribe el valor recalculado.
func (uc *ReconcileUseCase) Reconcile(ctx context.Context, productID, variationID string, repair bool) (*ReconcileReport, error) {
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}

	report := &ReconcileReport{ProductID: productID, VariationID: variationID}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.InventoryMovementRepository,
		productRepo repository.ProductRepository,
		variationRepo repository.VariationRepository,
	) error {
		var live int64
		if variationID != "" {
			variation, err := variationRepo.GetForUpdate(variationID)
			if err != nil {
				return err
			}
			if variation == nil || variation.ProductID != productID {
				return domain.ErrNotFound
			}
			live = variation.Stock
		} else {
			product, err := productRepo.GetForUpdate(productID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if product.Stock == nil {
				return domain.ErrStockUntracked
			}
			live = *product.Stock
		}

		var varID *string
		if variationID != "" {
			varID = &variationID
		}
		history, err := movRepo.ListByTarget(productID, varID)
		if err != nil {
			return err
		}

		ledger := int64(0)
		for _, mov := range history {
			ledger = applyType(ledger, mov.Type, mov.Quantity)
		}

		report.LedgerStock = ledger
		report.LiveStock = live
		report.Consistent = ledger == live
		if report.Consistent {
			return nil
		}

		cErr := &domain.ConsistencyError{
			ProductID:   productID,
			VariationID: variationID,
			LedgerStock: ledger,
			LiveStock:   live,
		}
		uc.log.Error().
			Str("product_id", productID).
			Str("variation_id", variationID).
			Int64("ledger_stock", ledger).
			Int64("live_stock", live).
			Bool("repair", repair).
			Msg("libro de inventario y stock vivo divergen")

		if !repair {
			return cErr
		}
		if variationID != "" {
			if err := variationRepo.UpdateStock(variationID, ledger); err != nil {
				return err
			}
		} else {
			if err := productRepo.UpdateStock(productID, ledger); err != nil {
				return err
			}
		}
		report.Repaired = true
		return nil
	})
	if err != nil {
		var cErr *domain.ConsistencyError
		if errors.As(err, &cErr) {
			// Reporte completo junto con el error, para el camino de monitoreo.
			return report, err
		}
		return nil, err
	}
	return report, nil
}
