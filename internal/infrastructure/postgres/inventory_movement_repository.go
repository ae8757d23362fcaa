package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ErnestoSESB/E-commerce/internal/domain/entity"
	"github.com/ErnestoSESB/E-commerce/internal/domain/listing"
	"github.com/ErnestoSESB/E-commerce/internal/domain/repository"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

const movementColumns = `id, product_id, variation_id, type, quantity, reason, user_id, created_at`

// InventoryMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
// El libro es append-only: solo INSERT y SELECT.
type InventoryMovementRepo struct {
	q Querier
}

// NewInventoryMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryMovementRepository(q Querier) *InventoryMovementRepo {
	return &InventoryMovementRepo{q: q}
}

// Create persiste un movimiento de inventario.
func (r *InventoryMovementRepo) Create(movement *entity.InventoryMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory_movements (id, product_id, variation_id, type, quantity, reason, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.VariationID, movement.Type,
		movement.Quantity, movement.Reason, movement.UserID, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create inventory movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *InventoryMovementRepo) GetByID(id string) (*entity.InventoryMovement, error) {
	var m entity.InventoryMovement
	err := r.q.QueryRow(context.Background(),
		`SELECT `+movementColumns+` FROM inventory_movements WHERE id = $1`, id).Scan(
		&m.ID, &m.ProductID, &m.VariationID, &m.Type, &m.Quantity, &m.Reason, &m.UserID, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return &m, nil
}

// List lista movimientos según criterios, más recientes primero.
func (r *InventoryMovementRepo) List(criteria *listing.MovementCriteria, limit, offset int) ([]*entity.InventoryMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM inventory_movements WHERE 1=1`
	args := []any{}
	pos := 1
	if criteria != nil {
		if criteria.ProductID != "" {
			query += fmt.Sprintf(" AND product_id = $%d", pos)
			args = append(args, criteria.ProductID)
			pos++
		}
		if criteria.Type != "" {
			query += fmt.Sprintf(" AND type = $%d", pos)
			args = append(args, criteria.Type)
			pos++
		}
		if criteria.MinDate != nil {
			query += fmt.Sprintf(" AND created_at >= $%d", pos)
			args = append(args, *criteria.MinDate)
			pos++
		}
		if criteria.MaxDate != nil {
			query += fmt.Sprintf(" AND created_at <= $%d", pos)
			args = append(args, *criteria.MaxDate)
			pos++
		}
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

// ListByTarget devuelve el historial completo de un producto o variación en orden
// cronológico ascendente, para el replay de conciliación. variation_id NULL
// distingue los movimientos del producto base de los de sus variaciones.
func (r *InventoryMovementRepo) ListByTarget(productID string, variationID *string) ([]*entity.InventoryMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM inventory_movements WHERE product_id = $1`
	args := []any{productID}
	if variationID != nil {
		query += ` AND variation_id = $2`
		args = append(args, *variationID)
	} else {
		query += ` AND variation_id IS NULL`
	}
	query += ` ORDER BY created_at ASC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements by target: %w", err)
	}
	defer rows.Close()
	return scanMovements(rows)
}

func scanMovements(rows pgx.Rows) ([]*entity.InventoryMovement, error) {
	var list []*entity.InventoryMovement
	for rows.Next() {
		var m entity.InventoryMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.VariationID, &m.Type, &m.Quantity,
			&m.Reason, &m.UserID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
