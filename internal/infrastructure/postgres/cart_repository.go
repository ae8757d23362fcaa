package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ErnestoSESB/E-commerce/internal/domain/entity"
	"github.com/ErnestoSESB/E-commerce/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo implementación del puerto CartRepository sobre PostgreSQL.
// UnitPrice se resuelve con JOIN al precio vigente del producto.
type CartRepo struct {
	q Querier
}

// NewCartRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCartRepository(q Querier) *CartRepo {
	return &CartRepo{q: q}
}

// GetByUser obtiene el carrito del usuario con sus líneas, o nil si no existe.
func (r *CartRepo) GetByUser(userID string) (*entity.Cart, error) {
	var c entity.Cart
	err := r.q.QueryRow(context.Background(),
		`SELECT id, user_id, created_at FROM carts WHERE user_id = $1`, userID).Scan(
		&c.ID, &c.UserID, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}
	rows, err := r.q.Query(context.Background(),
		`SELECT ci.id, ci.cart_id, ci.product_id, ci.quantity, p.price
		 FROM cart_items ci JOIN products p ON p.id = ci.product_id
		 WHERE ci.cart_id = $1 ORDER BY ci.id`, c.ID)
	if err != nil {
		return nil, fmt.Errorf("load cart items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.CartItem
		if err := rows.Scan(&it.ID, &it.CartID, &it.ProductID, &it.Quantity, &it.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		c.Items = append(c.Items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste un carrito vacío (uno por usuario).
func (r *CartRepo) Create(cart *entity.Cart) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO carts (id, user_id, created_at) VALUES ($1, $2, $3)`,
		cart.ID, cart.UserID, cart.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cart: %w", err)
	}
	return nil
}

// AddItem añade una línea al carrito.
func (r *CartRepo) AddItem(item *entity.CartItem) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO cart_items (id, cart_id, product_id, quantity) VALUES ($1, $2, $3, $4)`,
		item.ID, item.CartID, item.ProductID, item.Quantity,
	)
	if err != nil {
		return fmt.Errorf("insert cart item: %w", err)
	}
	return nil
}

// UpdateItemQuantity cambia la cantidad de una línea.
func (r *CartRepo) UpdateItemQuantity(itemID string, quantity int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE cart_items SET quantity = $2 WHERE id = $1`, itemID, quantity)
	if err != nil {
		return fmt.Errorf("update cart item: %w", err)
	}
	return nil
}

// RemoveItem elimina una línea del carrito.
func (r *CartRepo) RemoveItem(itemID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM cart_items WHERE id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	return nil
}

// Clear vacía el carrito (tras checkout).
func (r *CartRepo) Clear(cartID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM cart_items WHERE cart_id = $1`, cartID)
	if err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
