package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ErnestoSESB/E-commerce/internal/domain/entity"
	"github.com/ErnestoSESB/E-commerce/internal/domain/listing"
	"github.com/ErnestoSESB/E-commerce/internal/domain/repository"
)

var _ repository.FinancialTransactionRepository = (*FinancialTransactionRepo)(nil)

const transactionColumns = `id, type, amount, description, category, date, order_id, supplier_id, created_at`

// FinancialTransactionRepo implementación sobre PostgreSQL.
type FinancialTransactionRepo struct {
	q Querier
}

// NewFinancialTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFinancialTransactionRepository(q Querier) *FinancialTransactionRepo {
	return &FinancialTransactionRepo{q: q}
}

// Create persiste una transacción y asigna su ID serial.
func (r *FinancialTransactionRepo) Create(tx *entity.FinancialTransaction) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO financial_transactions (type, amount, description, category, date, order_id, supplier_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		tx.Type, tx.Amount, tx.Description, tx.Category, tx.Date, tx.OrderID, tx.SupplierID, tx.CreatedAt,
	).Scan(&tx.ID)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una transacción.
func (r *FinancialTransactionRepo) GetByID(id int64) (*entity.FinancialTransaction, error) {
	var t entity.FinancialTransaction
	err := r.q.QueryRow(context.Background(),
		`SELECT `+transactionColumns+` FROM financial_transactions WHERE id = $1`, id).Scan(
		&t.ID, &t.Type, &t.Amount, &t.Description, &t.Category, &t.Date, &t.OrderID, &t.SupplierID, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return &t, nil
}

// List lista transacciones según criterios, más recientes primero.
func (r *FinancialTransactionRepo) List(criteria *listing.TransactionCriteria, limit, offset int) ([]*entity.FinancialTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM financial_transactions WHERE 1=1`
	args := []any{}
	pos := 1
	add := func(cond string, val any) {
		query += fmt.Sprintf(" AND "+cond, pos)
		args = append(args, val)
		pos++
	}
	if criteria != nil {
		if criteria.Type != "" {
			add("type = $%d", criteria.Type)
		}
		if criteria.MinAmount != nil {
			add("amount >= $%d", *criteria.MinAmount)
		}
		if criteria.MaxAmount != nil {
			add("amount <= $%d", *criteria.MaxAmount)
		}
		if criteria.MinDate != nil {
			add("date >= $%d", *criteria.MinDate)
		}
		if criteria.MaxDate != nil {
			add("date <= $%d", *criteria.MaxDate)
		}
	}
	query += fmt.Sprintf(" ORDER BY date DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.FinancialTransaction
	for rows.Next() {
		var t entity.FinancialTransaction
		if err := rows.Scan(&t.ID, &t.Type, &t.Amount, &t.Description, &t.Category, &t.Date,
			&t.OrderID, &t.SupplierID, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update actualiza una transacción.
func (r *FinancialTransactionRepo) Update(tx *entity.FinancialTransaction) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE financial_transactions SET type = $2, amount = $3, description = $4, category = $5, date = $6, order_id = $7, supplier_id = $8
		 WHERE id = $1`,
		tx.ID, tx.Type, tx.Amount, tx.Description, tx.Category, tx.Date, tx.OrderID, tx.SupplierID,
	)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	return nil
}

// Delete elimina una transacción.
func (r *FinancialTransactionRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM financial_transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}
