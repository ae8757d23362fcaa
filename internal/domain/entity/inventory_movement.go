package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIN     = "IN"     // entrada
	MovementTypeOUT    = "OUT"    // salida (con piso en cero)
	MovementTypeADJUST = "ADJUST" // ajuste de auditoría: fija el stock en un valor absoluto
)

// ValidMovementType indica si el tipo es uno de los conocidos.
func ValidMovementType(t string) bool {
	return t == MovementTypeIN || t == MovementTypeOUT || t == MovementTypeADJUST
}

// InventoryMovement registro inmutable de un cambio de stock (libro de auditoría).
// VariationID no nil hace que el objetivo sea la variación, nunca el producto padre.
// Los movimientos son append-only: no se editan ni se borran por ninguna interfaz.
type InventoryMovement struct {
	ID          string
	ProductID   string
	VariationID *string
	Type        string
	Quantity    int64 // cantidad solicitada, siempre >= 0; se registra aun si OUT termina recortado por el piso
	Reason      string
	UserID      string
	CreatedAt   time.Time
}
