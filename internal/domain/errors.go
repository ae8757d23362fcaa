package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrStockUntracked     = errors.New("el producto no lleva control de stock")
)

// ConsistencyError indica que el libro de movimientos y el stock vivo divergen
// para un objetivo concreto. No es recuperable reintentando la operación: la
// reparación es recalcular el stock desde el historial completo de movimientos.
type ConsistencyError struct {
	ProductID   string
	VariationID string // vacío si el objetivo es el producto
	LedgerStock int64  // stock según el replay del libro
	LiveStock   int64  // stock persistido en la fila
}

func (e *ConsistencyError) Error() string {
	target := "producto " + e.ProductID
	if e.VariationID != "" {
		target = "variación " + e.VariationID
	}
	return fmt.Sprintf("inconsistencia de inventario en %s: libro=%d, stock vivo=%d",
		target, e.LedgerStock, e.LiveStock)
}
