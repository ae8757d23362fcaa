package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ErnestoSESB/E-commerce/internal/application/dto"
	"github.com/ErnestoSESB/E-commerce/internal/domain"
	"github.com/ErnestoSESB/E-commerce/internal/domain/entity"
	"github.com/ErnestoSESB/E-commerce/internal/domain/repository"
)

// CartUseCase casos de uso del carrito. Un carrito por usuario, creado on-demand.
type CartUseCase struct {
	repo        repository.CartRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(repo repository.CartRepository, productRepo repository.ProductRepository, orderRepo repository.OrderRepository) *CartUseCase {
	return &CartUseCase{repo: repo, productRepo: productRepo, orderRepo: orderRepo}
}

// Get obtiene el carrito del usuario, creándolo si aún no existe.
func (uc *CartUseCase) Get(userID string) (*dto.CartResponse, error) {
	cart, err := uc.getOrCreate(userID)
	if err != nil {
		return nil, err
	}
	return toCartResponse(cart), nil
}

// AddItem añade un producto al carrito del usuario. Si la línea ya existe,
// acumula la cantidad.
func (uc *CartUseCase) AddItem(userID string, in dto.AddCartItemRequest) (*dto.CartResponse, error) {
	if in.ProductID == "" || in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, domain.ErrNotFound
	}
	cart, err := uc.getOrCreate(userID)
	if err != nil {
		return nil, err
	}
	for _, it := range cart.Items {
		if it.ProductID == in.ProductID {
			if err := uc.repo.UpdateItemQuantity(it.ID, it.Quantity+in.Quantity); err != nil {
				return nil, err
			}
			return uc.Get(userID)
		}
	}
	item := &entity.CartItem{
		ID:        uuid.New().String(),
		CartID:    cart.ID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
	}
	if err := uc.repo.AddItem(item); err != nil {
		return nil, err
	}
	return uc.Get(userID)
}

// UpdateItem cambia la cantidad de una línea del carrito del usuario.
func (uc *CartUseCase) UpdateItem(userID, itemID string, in dto.UpdateCartItemRequest) (*dto.CartResponse, error) {
	if in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	cart, err := uc.getOrCreate(userID)
	if err != nil {
		return nil, err
	}
	if !cartHasItem(cart, itemID) {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.UpdateItemQuantity(itemID, in.Quantity); err != nil {
		return nil, err
	}
	return uc.Get(userID)
}

// RemoveItem elimina una línea del carrito del usuario.
func (uc *CartUseCase) RemoveItem(userID, itemID string) (*dto.CartResponse, error) {
	cart, err := uc.getOrCreate(userID)
	if err != nil {
		return nil, err
	}
	if !cartHasItem(cart, itemID) {
		return nil, domain.ErrNotFound
	}
	if err := uc.repo.RemoveItem(itemID); err != nil {
		return nil, err
	}
	return uc.Get(userID)
}

// Checkout convierte el carrito en una orden pending y lo vacía.
func (uc *CartUseCase) Checkout(userID string) (*dto.OrderResponse, error) {
	cart, err := uc.getOrCreate(userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	order := &entity.Order{
		ID:        uuid.New().String(),
		ClientID:  userID,
		Status:    entity.OrderStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, it := range cart.Items {
		order.Items = append(order.Items, entity.OrderItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}
	if err := uc.repo.Clear(cart.ID); err != nil {
		return nil, err
	}
	created, err := uc.orderRepo.GetByID(order.ID)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(created), nil
}

func (uc *CartUseCase) getOrCreate(userID string) (*entity.Cart, error) {
	cart, err := uc.repo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if cart != nil {
		return cart, nil
	}
	cart = &entity.Cart{
		ID:        uuid.New().String(),
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func cartHasItem(cart *entity.Cart, itemID string) bool {
	for _, it := range cart.Items {
		if it.ID == itemID {
			return true
		}
	}
	return false
}

func toCartResponse(c *entity.Cart) *dto.CartResponse {
	resp := &dto.CartResponse{
		ID:        c.ID,
		UserID:    c.UserID,
		Items:     []dto.CartItemResponse{},
		Total:     c.Total(),
		CreatedAt: c.CreatedAt,
	}
	for _, it := range c.Items {
		resp.Items = append(resp.Items, dto.CartItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity)),
		})
	}
	return resp
}
