package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ErnestoSESB/E-commerce/internal/domain"
	"github.com/ErnestoSESB/E-commerce/internal/domain/entity"
	"github.com/ErnestoSESB/E-commerce/internal/domain/repository"
)

var _ repository.VariationRepository = (*VariationRepo)(nil)

const variationColumns = `id, product_id, name, value, price_override, stock`

// VariationRepo implementación del puerto VariationRepository sobre PostgreSQL (usable con pool o tx).
type VariationRepo struct {
	q Querier
}

// NewVariationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVariationRepository(q Querier) *VariationRepo {
	return &VariationRepo{q: q}
}

// Create persiste una variación.
func (r *VariationRepo) Create(variation *entity.ProductVariation) error {
	query := `
		INSERT INTO product_variations (id, product_id, name, value, price_override, stock)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		variation.ID, variation.ProductID, variation.Name, variation.Value,
		variation.PriceOverride, variation.Stock,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert variation: %w", err)
	}
	return nil
}

// GetByID obtiene una variación por ID.
func (r *VariationRepo) GetByID(id string) (*entity.ProductVariation, error) {
	return r.getOne(`SELECT ` + variationColumns + ` FROM product_variations WHERE id = $1`, id)
}

// GetForUpdate bloquea la fila de la variación para serializar movimientos de stock.
func (r *VariationRepo) GetForUpdate(id string) (*entity.ProductVariation, error) {
	return r.getOne(`SELECT `+variationColumns+` FROM product_variations WHERE id = $1 FOR UPDATE`, id)
}

func (r *VariationRepo) getOne(query, id string) (*entity.ProductVariation, error) {
	var v entity.ProductVariation
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&v.ID, &v.ProductID, &v.Name, &v.Value, &v.PriceOverride, &v.Stock,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get variation: %w", err)
	}
	return &v, nil
}

// ListByProduct lista las variaciones de un producto.
func (r *VariationRepo) ListByProduct(productID string) ([]*entity.ProductVariation, error) {
	query := `SELECT ` + variationColumns + ` FROM product_variations WHERE product_id = $1 ORDER BY name, value`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list variations: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductVariation
	for rows.Next() {
		var v entity.ProductVariation
		if err := rows.Scan(&v.ID, &v.ProductID, &v.Name, &v.Value, &v.PriceOverride, &v.Stock); err != nil {
			return nil, fmt.Errorf("scan variation: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// Update actualiza nombre, valor y precio de una variación. No toca stock.
func (r *VariationRepo) Update(variation *entity.ProductVariation) error {
	query := `UPDATE product_variations SET name = $2, value = $3, price_override = $4 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		variation.ID, variation.Name, variation.Value, variation.PriceOverride,
	)
	if err != nil {
		return fmt.Errorf("update variation: %w", err)
	}
	return nil
}

// UpdateStock escribe el stock absoluto de la variación (solo desde el libro de movimientos).
func (r *VariationRepo) UpdateStock(id string, stock int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE product_variations SET stock = $2 WHERE id = $1`,
		id, stock,
	)
	if err != nil {
		return fmt.Errorf("update variation stock: %w", err)
	}
	return nil
}

// Delete elimina una variación.
func (r *VariationRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM product_variations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete variation: %w", err)
	}
	return nil
}
