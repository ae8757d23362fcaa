package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Stock nil crea el producto sin control de stock (ilimitado).
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=125"`
	Description string          `json:"description" validate:"max=300"`
	Price       decimal.Decimal `json:"price"`
	Stock       *int64          `json:"stock"`
	ImageURL    string          `json:"image_url"`
	IsActive    *bool           `json:"is_active"`
}

// UpdateProductRequest entrada para actualizar un producto (sin Stock: se maneja vía movimientos).
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=125"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	ImageURL    *string          `json:"image_url"`
	IsActive    *bool            `json:"is_active"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       *int64          `json:"stock"`
	ImageURL    string          `json:"image_url,omitempty"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CreateVariationRequest entrada para crear una variación.
type CreateVariationRequest struct {
	ProductID     string           `json:"product_id" validate:"required"`
	Name          string           `json:"name" validate:"required,max=50"`
	Value         string           `json:"value" validate:"required,max=50"`
	PriceOverride *decimal.Decimal `json:"price_override"`
	Stock         int64            `json:"stock"`
}

// UpdateVariationRequest entrada para actualizar una variación. No toca Stock
// (se maneja vía movimientos).
type UpdateVariationRequest struct {
	Name          string           `json:"name" validate:"required,max=50"`
	Value         string           `json:"value" validate:"required,max=50"`
	PriceOverride *decimal.Decimal `json:"price_override"`
}

// VariationResponse salida de una variación.
type VariationResponse struct {
	ID            string           `json:"id"`
	ProductID     string           `json:"product_id"`
	Name          string           `json:"name"`
	Value         string           `json:"value"`
	PriceOverride *decimal.Decimal `json:"price_override,omitempty"`
	Stock         int64            `json:"stock"`
}
