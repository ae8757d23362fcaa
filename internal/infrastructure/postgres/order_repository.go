package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/ErnestoSESB/E-commerce/internal/domain/entity"
	"github.com/ErnestoSESB/E-commerce/internal/domain/listing"
	"github.com/ErnestoSESB/E-commerce/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
// Las líneas no almacenan precio: UnitPrice se resuelve con JOIN al precio
// vigente del producto (el total es derivado, nunca persistido).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la orden y sus líneas.
func (r *OrderRepo) Create(order *entity.Order) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO orders (id, client_id, status, payment_status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		order.ID, order.ClientID, order.Status, order.PaymentStatus, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	for i := range order.Items {
		it := &order.Items[i]
		it.OrderID = order.ID
		if err := r.AddItem(it); err != nil {
			return err
		}
	}
	return nil
}

// GetByID obtiene una orden con sus líneas y el precio vigente de cada producto.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	var o entity.Order
	err := r.q.QueryRow(context.Background(),
		`SELECT id, client_id, status, payment_status, created_at, updated_at FROM orders WHERE id = $1`, id).Scan(
		&o.ID, &o.ClientID, &o.Status, &o.PaymentStatus, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	items, err := r.loadItems(o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *OrderRepo) loadItems(orderID string) ([]entity.OrderItem, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, p.price
		 FROM order_items oi JOIN products p ON p.id = oi.product_id
		 WHERE oi.order_id = $1 ORDER BY oi.id`, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order items: %w", err)
	}
	defer rows.Close()
	var items []entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// List lista órdenes según criterios. ownerID no vacío restringe al cliente dado
// (scoping de filas para callers no-staff), por encima de los criterios.
func (r *OrderRepo) List(criteria *listing.OrderCriteria, ownerID string, limit, offset int) ([]*entity.Order, error) {
	query := `SELECT id, client_id, status, payment_status, created_at, updated_at FROM orders WHERE 1=1`
	args := []any{}
	pos := 1
	add := func(cond string, val any) {
		query += fmt.Sprintf(" AND "+cond, pos)
		args = append(args, val)
		pos++
	}
	if ownerID != "" {
		add("client_id = $%d", ownerID)
	}
	if criteria != nil {
		if criteria.Status != "" {
			add("status = $%d", criteria.Status)
		}
		if criteria.ClientID != "" && ownerID == "" {
			add("client_id = $%d", criteria.ClientID)
		}
		if criteria.MinDate != nil {
			add("created_at >= $%d", *criteria.MinDate)
		}
		if criteria.MaxDate != nil {
			add("created_at <= $%d", *criteria.MaxDate)
		}
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.ClientID, &o.Status, &o.PaymentStatus, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, o := range list {
		items, err := r.loadItems(o.ID)
		if err != nil {
			return nil, err
		}
		o.Items = items
	}
	return list, nil
}

// UpdateStatus cambia el estado de la orden.
func (r *OrderRepo) UpdateStatus(id, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

// SetPaymentStatus marca la orden como pagada o no.
func (r *OrderRepo) SetPaymentStatus(id string, paid bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE orders SET payment_status = $2, updated_at = now() WHERE id = $1`, id, paid)
	if err != nil {
		return fmt.Errorf("set payment status: %w", err)
	}
	return nil
}

// AddItem añade una línea a la orden.
func (r *OrderRepo) AddItem(item *entity.OrderItem) error {
	err := r.q.QueryRow(context.Background(),
		`INSERT INTO order_items (order_id, product_id, quantity) VALUES ($1, $2, $3) RETURNING id`,
		item.OrderID, item.ProductID, item.Quantity,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// RemoveItem elimina una línea de la orden.
func (r *OrderRepo) RemoveItem(itemID int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM order_items WHERE id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("delete order item: %w", err)
	}
	return nil
}

// StatsByClient calcula conteo, valor de vida y última compra sobre órdenes pagadas.
// El valor de cada orden se deriva de cantidad × precio vigente.
func (r *OrderRepo) StatsByClient(clientID string) (*repository.PaidOrderStats, error) {
	stats := &repository.PaidOrderStats{LifetimeValue: decimal.Zero}
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(DISTINCT o.id),
		        COALESCE(SUM(oi.quantity * p.price), 0),
		        MAX(o.created_at)
		 FROM orders o
		 LEFT JOIN order_items oi ON oi.order_id = o.id
		 LEFT JOIN products p ON p.id = oi.product_id
		 WHERE o.client_id = $1 AND o.payment_status = true`, clientID).Scan(
		&stats.Count, &stats.LifetimeValue, &stats.LastPurchaseAt,
	)
	if err != nil {
		return nil, fmt.Errorf("stats by client: %w", err)
	}
	return stats, nil
}
