package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Stock nil significa "sin control de stock" (ilimitado); cuando se lleva control,
// el contador solo se muta como efecto de un InventoryMovement y nunca baja de cero.
type Product struct {
	ID          string
	Name        string
	Slug        string
	Description string
	Price       decimal.Decimal
	Stock       *int64
	ImageURL    string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductVariation variación de un producto (talla, color, etc.).
// Lleva su propio stock, independiente del producto padre.
type ProductVariation struct {
	ID            string
	ProductID     string
	Name          string // ej. "talla"
	Value         string // ej. "M"
	PriceOverride *decimal.Decimal
	Stock         int64
}
