package repository

import "github.com/ErnestoSESB/E-commerce/internal/domain/entity"

// CartRepository define el puerto de persistencia para carritos (uno por usuario).
type CartRepository interface {
	GetByUser(userID string) (*entity.Cart, error)
	Create(cart *entity.Cart) error
	AddItem(item *entity.CartItem) error
	UpdateItemQuantity(itemID string, quantity int64) error
	RemoveItem(itemID string) error
	Clear(cartID string) error
}
