package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ErnestoSESB/E-commerce/internal/domain/entity"
	"github.com/ErnestoSESB/E-commerce/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un proveedor y asigna su ID serial.
func (r *SupplierRepo) Create(supplier *entity.Supplier) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO suppliers (name, contact_name, phone, email, notes)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		supplier.Name, supplier.ContactName, supplier.Phone, supplier.Email, supplier.Notes,
	).Scan(&supplier.ID)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor.
func (r *SupplierRepo) GetByID(id int64) (*entity.Supplier, error) {
	var s entity.Supplier
	err := r.q.QueryRow(context.Background(),
		`SELECT id, name, contact_name, phone, email, notes FROM suppliers WHERE id = $1`, id).Scan(
		&s.ID, &s.Name, &s.ContactName, &s.Phone, &s.Email, &s.Notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return &s, nil
}

// List lista proveedores paginados.
func (r *SupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name, contact_name, phone, email, notes FROM suppliers ORDER BY name LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.ContactName, &s.Phone, &s.Email, &s.Notes); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza un proveedor.
func (r *SupplierRepo) Update(supplier *entity.Supplier) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE suppliers SET name = $2, contact_name = $3, phone = $4, email = $5, notes = $6 WHERE id = $1`,
		supplier.ID, supplier.Name, supplier.ContactName, supplier.Phone, supplier.Email, supplier.Notes,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	return nil
}

// Delete elimina un proveedor.
func (r *SupplierRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	return nil
}
