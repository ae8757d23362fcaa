package repository

import (
	"github.com/ErnestoSESB/E-commerce/internal/domain/entity"
	"github.com/ErnestoSESB/E-commerce/internal/domain/listing"
)

// ProductRepository define el puerto de persistencia para productos.
// El stock no se actualiza por Update: solo vía el libro de movimientos
// (UpdateStock/GetForUpdate, dentro de una transacción).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySlug(slug string) (*entity.Product, error)
	List(criteria *listing.ProductCriteria, limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error

	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.Product, error)
	UpdateStock(id string, stock int64) error
}

// VariationRepository define el puerto para variaciones de producto.
type VariationRepository interface {
	Create(variation *entity.ProductVariation) error
	GetByID(id string) (*entity.ProductVariation, error)
	ListByProduct(productID string) ([]*entity.ProductVariation, error)
	Update(variation *entity.ProductVariation) error
	Delete(id string) error

	// GetForUpdate bloquea la fila de la variación (SELECT FOR UPDATE).
	GetForUpdate(id string) (*entity.ProductVariation, error)
	UpdateStock(id string, stock int64) error
}
